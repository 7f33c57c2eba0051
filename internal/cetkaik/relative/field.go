package relative

import (
	"errors"
	"fmt"
	"slices"

	"cetkaik/internal/cetkaik"
)

var ErrNotInHand = errors.New("piece not found in hand")

// Field is a board plus both hands (hop1zuo1).
type Field struct {
	Board          Board
	HandOfUpward   []cetkaik.HandPiece
	HandOfDownward []cetkaik.HandPiece
}

// Clone returns a deep copy; the board is an array and copies by value.
func (f Field) Clone() Field {
	return Field{
		Board:          f.Board,
		HandOfUpward:   cetkaik.CloneHand(f.HandOfUpward),
		HandOfDownward: cetkaik.CloneHand(f.HandOfDownward),
	}
}

func (f *Field) Hand(side Side) []cetkaik.HandPiece {
	if side == Upward {
		return f.HandOfUpward
	}
	return f.HandOfDownward
}

// InsertIntoHand appends to the hand of side. Duplicates are allowed. The
// hand is reallocated, so copies of f made with plain assignment keep
// their own entries.
func (f *Field) InsertIntoHand(color cetkaik.Color, prof cetkaik.Profession, side Side) {
	h := cetkaik.HandPiece{Color: color, Prof: prof}
	if side == Upward {
		f.HandOfUpward = append(slices.Clip(f.HandOfUpward), h)
		return
	}
	f.HandOfDownward = append(slices.Clip(f.HandOfDownward), h)
}

// FindAndRemoveFromHand returns a copy of f with the first matching entry
// of side's hand removed. f itself is left untouched; ErrNotInHand when
// nothing matches.
func (f Field) FindAndRemoveFromHand(color cetkaik.Color, prof cetkaik.Profession, side Side) (Field, error) {
	want := cetkaik.HandPiece{Color: color, Prof: prof}
	rest, ok := cetkaik.RemoveFirst(f.Hand(side), want)
	if !ok {
		return Field{}, fmt.Errorf("%w: %s%s", ErrNotInHand, want, side)
	}
	out := f.Clone()
	if side == Upward {
		out.HandOfUpward = rest
	} else {
		out.HandOfDownward = rest
	}
	return out, nil
}

// SameState compares boards exactly and hands as multisets.
func (f Field) SameState(g Field) bool {
	return f.Board == g.Board &&
		cetkaik.SameHand(f.HandOfUpward, g.HandOfUpward) &&
		cetkaik.SameHand(f.HandOfDownward, g.HandOfDownward)
}

// RotateField views the same field from the opponent's seat: the board is
// rotated and the hands trade places.
func RotateField(f Field) Field {
	return Field{
		Board:          RotateBoard(f.Board),
		HandOfUpward:   cetkaik.CloneHand(f.HandOfDownward),
		HandOfDownward: cetkaik.CloneHand(f.HandOfUpward),
	}
}
