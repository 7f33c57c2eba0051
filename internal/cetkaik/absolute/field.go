package absolute

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"cetkaik/internal/cetkaik"
)

var ErrNotInHand = errors.New("piece not found in hand")

// Board maps occupied squares to pieces; a missing key is an empty square.
type Board map[Coord]Piece

func (b Board) Clone() Board {
	return maps.Clone(b)
}

// Equal treats a stored NoPiece the same as a missing key.
func (b Board) Equal(o Board) bool {
	for c, p := range b {
		if p != NoPiece && o[c] != p {
			return false
		}
	}
	for c, p := range o {
		if p != NoPiece && b[c] != p {
			return false
		}
	}
	return true
}

// Grid draws the board with column labels on top and row labels on the
// right, row A first.
func (b Board) Grid() string {
	var sb strings.Builder
	for c := ColumnK; c <= ColumnP; c++ {
		fmt.Fprintf(&sb, "%-6s", c)
	}
	for r := RowA; r <= RowIA; r++ {
		sb.WriteByte('\n')
		for c := ColumnK; c <= ColumnP; c++ {
			p, ok := b[Coord{Row: r, Column: c}]
			if !ok {
				p = NoPiece
			}
			fmt.Fprintf(&sb, "%-6s", p)
		}
		sb.WriteString(r.String())
	}
	return sb.String()
}

// Field is a board plus each side's hand.
type Field struct {
	Board        Board
	HandOfASide  []cetkaik.HandPiece
	HandOfIASide []cetkaik.HandPiece
}

func (f Field) Clone() Field {
	return Field{
		Board:        f.Board.Clone(),
		HandOfASide:  cetkaik.CloneHand(f.HandOfASide),
		HandOfIASide: cetkaik.CloneHand(f.HandOfIASide),
	}
}

func (f *Field) Hand(side Side) []cetkaik.HandPiece {
	if side == ASide {
		return f.HandOfASide
	}
	return f.HandOfIASide
}

func (f *Field) InsertIntoHand(color cetkaik.Color, prof cetkaik.Profession, side Side) {
	h := cetkaik.HandPiece{Color: color, Prof: prof}
	if side == ASide {
		f.HandOfASide = append(slices.Clip(f.HandOfASide), h)
		return
	}
	f.HandOfIASide = append(slices.Clip(f.HandOfIASide), h)
}

// FindAndRemoveFromHand returns a copy of f without the first matching
// entry of side's hand; f is not modified.
func (f Field) FindAndRemoveFromHand(color cetkaik.Color, prof cetkaik.Profession, side Side) (Field, error) {
	want := cetkaik.HandPiece{Color: color, Prof: prof}
	rest, ok := cetkaik.RemoveFirst(f.Hand(side), want)
	if !ok {
		return Field{}, fmt.Errorf("%w: %s@%s", ErrNotInHand, want, side)
	}
	out := f.Clone()
	if side == ASide {
		out.HandOfASide = rest
	} else {
		out.HandOfIASide = rest
	}
	return out, nil
}

func (f Field) SameState(g Field) bool {
	return f.Board.Equal(g.Board) &&
		cetkaik.SameHand(f.HandOfASide, g.HandOfASide) &&
		cetkaik.SameHand(f.HandOfIASide, g.HandOfIASide)
}
