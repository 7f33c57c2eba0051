package absolute

import (
	"errors"
	"fmt"

	"cetkaik/internal/cetkaik"
)

var ErrInvalidSide = errors.New("invalid side")

// Side is a player by fixed identity, independent of who is looking.
type Side uint8

const (
	ASide Side = iota
	IASide
)

func (s Side) Not() Side {
	return s ^ 1
}

func (s Side) String() string {
	if s == ASide {
		return "A"
	}
	return "IA"
}

// ParseSide accepts "A" or "IA".
func ParseSide(s string) (Side, error) {
	switch s {
	case "A":
		return ASide, nil
	case "IA":
		return IASide, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSide, s)
}

// Piece uses the same packing as relative.Piece with an absolute side.
type Piece uint8

const (
	NoPiece Piece = 0
	Tam2    Piece = 1

	rankedBase = 2
)

func NewPiece(color cetkaik.Color, prof cetkaik.Profession, side Side) Piece {
	return rankedBase + Piece((uint8(prof)*cetkaik.NumColors+uint8(color))*2+uint8(side))
}

func (p Piece) IsEmpty() bool { return p == NoPiece }
func (p Piece) IsTam2() bool  { return p == Tam2 }
func (p Piece) ranked() bool  { return p >= rankedBase }

func (p Piece) Color() cetkaik.Color {
	return cetkaik.Color((uint8(p-rankedBase) / 2) % cetkaik.NumColors)
}

func (p Piece) Prof() cetkaik.Profession {
	return cetkaik.Profession(uint8(p-rankedBase) / 2 / cetkaik.NumColors)
}

func (p Piece) Side() Side {
	return Side(uint8(p-rankedBase) % 2)
}

func (p Piece) HasColor(c cetkaik.Color) bool {
	return p.ranked() && p.Color() == c
}

func (p Piece) HasProf(prof cetkaik.Profession) bool {
	return p.ranked() && p.Prof() == prof
}

func (p Piece) HasSide(s Side) bool {
	return p.ranked() && p.Side() == s
}

func (p Piece) String() string {
	switch {
	case p == NoPiece:
		return cetkaik.EmptyGlyph
	case p == Tam2:
		return cetkaik.Tam2Glyph
	}
	return p.Color().String() + p.Prof().String() + "@" + p.Side().String()
}
