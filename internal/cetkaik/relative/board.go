package relative

import "strings"

// Board is the dense 9x9 grid; the zero value is an empty board.
type Board struct {
	Squares [Size][Size]Piece
}

func (b *Board) At(c Coord) Piece {
	return b.Squares[c.Row][c.Col]
}

func (b *Board) Set(c Coord, p Piece) {
	b.Squares[c.Row][c.Col] = p
}

// RotateBoard turns the board 180 degrees and swaps the owner of every
// ranked piece. RotateBoard(RotateBoard(b)) == b.
func RotateBoard(b Board) Board {
	var out Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out.Squares[r][c] = b.Squares[Size-1-r][Size-1-c].Flip()
		}
	}
	return out
}

// Count returns the number of occupied squares, Tam2 included.
func (b *Board) Count() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !b.Squares[r][c].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// String draws row 0 first, one line per row.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(padToken(b.Squares[r][c].String()))
		}
	}
	return sb.String()
}

// padToken right-pads tokens to the width of a ranked piece token so the
// columns line up.
func padToken(s string) string {
	const cells = 3
	n := len([]rune(s))
	if n >= cells {
		return s
	}
	return s + strings.Repeat("　", cells-n)
}
