// Package perspective converts between the absolute frame (fixed labels,
// fixed players) and the relative frame (the viewer's pieces point up).
package perspective

import (
	"fmt"

	"cetkaik/internal/cetkaik"
	"cetkaik/internal/cetkaik/absolute"
	"cetkaik/internal/cetkaik/relative"
)

// Perspective picks which absolute side is the Upward viewer.
type Perspective uint8

const (
	// The IA side sits at the bottom and its pieces point upward. Relative
	// indices map straight onto the label orders.
	IaIsDownAndPointsUpward Perspective = iota
	// The IA side sits at the top and its pieces point downward. Indices
	// are taken as 8-i before lookup.
	IaIsUpAndPointsDownward
)

func (p Perspective) Flip() Perspective {
	return p ^ 1
}

func (p Perspective) String() string {
	if p == IaIsDownAndPointsUpward {
		return "IaIsDownAndPointsUpward"
	}
	return "IaIsUpAndPointsDownward"
}

// Upward returns the absolute side seen as Upward under p.
func (p Perspective) Upward() absolute.Side {
	if p == IaIsDownAndPointsUpward {
		return absolute.IASide
	}
	return absolute.ASide
}

func ToAbsoluteSide(s relative.Side, p Perspective) absolute.Side {
	if s == relative.Upward {
		return p.Upward()
	}
	return p.Upward().Not()
}

func ToRelativeSide(s absolute.Side, p Perspective) relative.Side {
	if s == p.Upward() {
		return relative.Upward
	}
	return relative.Downward
}

func ToAbsolutePiece(pc relative.Piece, p Perspective) absolute.Piece {
	switch {
	case pc.IsEmpty():
		return absolute.NoPiece
	case pc.IsTam2():
		return absolute.Tam2
	}
	return absolute.NewPiece(pc.Color(), pc.Prof(), ToAbsoluteSide(pc.Side(), p))
}

func ToRelativePiece(pc absolute.Piece, p Perspective) relative.Piece {
	switch {
	case pc.IsEmpty():
		return relative.NoPiece
	case pc.IsTam2():
		return relative.Tam2
	}
	return relative.NewPiece(pc.Color(), pc.Prof(), ToRelativeSide(pc.Side(), p))
}

func orient(i int, p Perspective) int {
	if p == IaIsDownAndPointsUpward {
		return i
	}
	return absolute.Size - 1 - i
}

// ToAbsoluteCoord maps [row, col] to labels. It panics when c is out of
// bounds, like relative.Board.At.
func ToAbsoluteCoord(c relative.Coord, p Perspective) absolute.Coord {
	if !c.InBounds() {
		panic(fmt.Sprintf("perspective: relative coordinate %v out of range", c))
	}
	return absolute.Coord{
		Row:    absolute.Row(orient(c.Row, p)),
		Column: absolute.Column(orient(c.Col, p)),
	}
}

func ToRelativeCoord(c absolute.Coord, p Perspective) relative.Coord {
	row, col := c.Index()
	return relative.Coord{Row: orient(row, p), Col: orient(col, p)}
}

// ToAbsoluteBoard converts all 81 squares; empty squares are left out of
// the map.
func ToAbsoluteBoard(b relative.Board, p Perspective) absolute.Board {
	out := make(absolute.Board, relative.Size*relative.Size)
	for r := 0; r < relative.Size; r++ {
		for c := 0; c < relative.Size; c++ {
			pc := b.Squares[r][c]
			if pc.IsEmpty() {
				continue
			}
			out[ToAbsoluteCoord(relative.Coord{Row: r, Col: c}, p)] = ToAbsolutePiece(pc, p)
		}
	}
	return out
}

// ToRelativeBoard probes every absolute square, so the result is always a
// full grid however sparse b is. Keys outside the 81 labels are ignored.
func ToRelativeBoard(b absolute.Board, p Perspective) relative.Board {
	var out relative.Board
	for _, c := range absolute.AllCoords() {
		pc, ok := b[c]
		if !ok {
			continue
		}
		out.Set(ToRelativeCoord(c, p), ToRelativePiece(pc, p))
	}
	return out
}

// ToAbsoluteField converts the board and hands the Upward hand to whichever
// absolute side p makes Upward, so hands follow the same mapping as pieces.
func ToAbsoluteField(f relative.Field, p Perspective) absolute.Field {
	out := absolute.Field{Board: ToAbsoluteBoard(f.Board, p)}
	up := cetkaik.CloneHand(f.HandOfUpward)
	down := cetkaik.CloneHand(f.HandOfDownward)
	if ToAbsoluteSide(relative.Upward, p) == absolute.IASide {
		out.HandOfIASide, out.HandOfASide = up, down
	} else {
		out.HandOfASide, out.HandOfIASide = up, down
	}
	return out
}

func ToRelativeField(f absolute.Field, p Perspective) relative.Field {
	out := relative.Field{Board: ToRelativeBoard(f.Board, p)}
	a := cetkaik.CloneHand(f.HandOfASide)
	ia := cetkaik.CloneHand(f.HandOfIASide)
	if ToRelativeSide(absolute.IASide, p) == relative.Upward {
		out.HandOfUpward, out.HandOfDownward = ia, a
	} else {
		out.HandOfUpward, out.HandOfDownward = a, ia
	}
	return out
}
