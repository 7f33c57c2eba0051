package relative

import "cetkaik/internal/cetkaik"

// Side is a player seen from the viewer: Upward is the viewer, whose pieces
// point up the screen; Downward is the opponent.
type Side uint8

const (
	Upward Side = iota
	Downward
)

// Not returns the other side. Not(Not(s)) == s.
func (s Side) Not() Side {
	return s ^ 1
}

func (s Side) String() string {
	if s == Upward {
		return "↑"
	}
	return "↓"
}

// Piece 0=empty, 1=Tam2; ranked pieces pack (prof, color, side).
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

// ranked reports whether p is neither empty nor Tam2.
func (p Piece) ranked() bool { return p >= rankedBase }

// Color, Prof and Side are only meaningful on ranked pieces; check with
// HasColor/HasProf/HasSide when p may be Tam2 or empty.
func (p Piece) Color() cetkaik.Color {
	return cetkaik.Color((uint8(p-rankedBase) / 2) % cetkaik.NumColors)
}

func (p Piece) Prof() cetkaik.Profession {
	return cetkaik.Profession(uint8(p-rankedBase) / 2 / cetkaik.NumColors)
}

func (p Piece) Side() Side {
	return Side(uint8(p-rankedBase) % 2)
}

// HandPiece drops the side; ok is false for Tam2 and empty squares.
func (p Piece) HandPiece() (cetkaik.HandPiece, bool) {
	if !p.ranked() {
		return cetkaik.HandPiece{}, false
	}
	return cetkaik.HandPiece{Color: p.Color(), Prof: p.Prof()}, true
}

// Tam2 has neither color.
func (p Piece) HasColor(c cetkaik.Color) bool {
	return p.ranked() && p.Color() == c
}

func (p Piece) HasProf(prof cetkaik.Profession) bool {
	return p.ranked() && p.Prof() == prof
}

// Tam2 belongs to neither side.
func (p Piece) HasSide(s Side) bool {
	return p.ranked() && p.Side() == s
}

// Flip swaps the owner of a ranked piece; Tam2 and empty are unchanged.
func (p Piece) Flip() Piece {
	if !p.ranked() {
		return p
	}
	return p ^ 1
}

func (p Piece) String() string {
	switch {
	case p == NoPiece:
		return cetkaik.EmptyGlyph
	case p == Tam2:
		return cetkaik.Tam2Glyph
	}
	return p.Color().String() + p.Prof().String() + p.Side().String()
}
