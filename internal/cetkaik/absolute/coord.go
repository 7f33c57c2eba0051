package absolute

import (
	"errors"
	"fmt"
)

var ErrInvalidCoord = errors.New("invalid coordinate")

// Row labels, listed from the A side's edge to the IA side's edge.
type Row uint8

const (
	RowA Row = iota
	RowE
	RowI
	RowU
	RowO
	RowY
	RowAI
	RowAU
	RowIA
)

// Column labels, listed left to right as seen from the IA side.
type Column uint8

const (
	ColumnK Column = iota
	ColumnL
	ColumnN
	ColumnT
	ColumnZ
	ColumnX
	ColumnC
	ColumnM
	ColumnP
)

const Size = 9

var rowLabels = [Size]string{"A", "E", "I", "U", "O", "Y", "AI", "AU", "IA"}

var columnLabels = [Size]string{"K", "L", "N", "T", "Z", "X", "C", "M", "P"}

var labelToRow = map[string]Row{
	"A": RowA, "E": RowE, "I": RowI, "U": RowU, "O": RowO,
	"Y": RowY, "AI": RowAI, "AU": RowAU, "IA": RowIA,
}

var labelToColumn = map[byte]Column{
	'K': ColumnK, 'L': ColumnL, 'N': ColumnN, 'T': ColumnT, 'Z': ColumnZ,
	'X': ColumnX, 'C': ColumnC, 'M': ColumnM, 'P': ColumnP,
}

func (r Row) String() string    { return rowLabels[r] }
func (c Column) String() string { return columnLabels[c] }

// Coord names a square by its labels.
type Coord struct {
	Row    Row
	Column Column
}

// ParseCoord reads "<column><row>", e.g. "NE" or "ZAU". Matching is exact
// and case-sensitive.
func ParseCoord(s string) (Coord, error) {
	if len(s) < 2 || len(s) > 3 {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
	}
	col, ok := labelToColumn[s[0]]
	if !ok {
		return Coord{}, fmt.Errorf("%w: bad column in %q", ErrInvalidCoord, s)
	}
	row, ok := labelToRow[s[1:]]
	if !ok {
		return Coord{}, fmt.Errorf("%w: bad row in %q", ErrInvalidCoord, s)
	}
	return Coord{Row: row, Column: col}, nil
}

// MustParseCoord is ParseCoord for labels known at compile time.
func MustParseCoord(s string) Coord {
	c, err := ParseCoord(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String serializes c; ParseCoord(c.String()) == c.
func (c Coord) String() string {
	return columnLabels[c.Column] + rowLabels[c.Row]
}

// Index returns c's position in the declared label orders. This is the
// relative [row, col] under the perspective where the IA side points
// upward.
func (c Coord) Index() (row, col int) {
	return int(c.Row), int(c.Column)
}

// IsWater reports whether c is one of the 9 tam2 nua2 squares: row O from
// N to C, and column Z from I to AI.
func IsWater(c Coord) bool {
	switch {
	case c.Row == RowO:
		return c.Column >= ColumnN && c.Column <= ColumnC
	case c.Column == ColumnZ:
		return c.Row >= RowI && c.Row <= RowAI
	}
	return false
}

// Distance is the Chebyshev distance between two squares. It does not
// depend on which perspective the indices are taken from, since both
// relabelings preserve differences up to sign.
func Distance(a, b Coord) int {
	ar, ac := a.Index()
	br, bc := b.Index()
	return max(abs(ar-br), abs(ac-bc))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// AllCoords lists the 81 squares, row A first.
func AllCoords() []Coord {
	out := make([]Coord, 0, Size*Size)
	for r := RowA; r <= RowIA; r++ {
		for c := ColumnK; c <= ColumnP; c++ {
			out = append(out, Coord{Row: r, Column: c})
		}
	}
	return out
}
