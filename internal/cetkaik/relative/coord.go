package relative

import "fmt"

const Size = 9

// Coord is [row, col] with 0 nearest the Downward side. Indices outside
// [0,8] are a caller bug: Board.At and Board.Set panic on them, there is no
// error path.
type Coord struct {
	Row int
	Col int
}

func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// String renders JSON style, e.g. "[5,6]".
func (c Coord) String() string {
	return fmt.Sprintf("[%d,%d]", c.Row, c.Col)
}

// Rotate reflects c through the board center.
func (c Coord) Rotate() Coord {
	return Coord{Row: Size - 1 - c.Row, Col: Size - 1 - c.Col}
}

// IsWater reports whether c is a tam2 nua2 square: the cross of 9 squares
// centered on (4,4).
func IsWater(c Coord) bool {
	switch {
	case c.Row == 4:
		return c.Col >= 2 && c.Col <= 6
	case c.Col == 4:
		return c.Row >= 2 && c.Row <= 6
	}
	return false
}

// Distance is the larger of the row and column differences.
func Distance(a, b Coord) int {
	return max(abs(a.Row-b.Row), abs(a.Col-b.Col))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// AllCoords lists the 81 squares in row-major order.
func AllCoords() []Coord {
	out := make([]Coord, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out = append(out, Coord{Row: r, Col: c})
		}
	}
	return out
}
