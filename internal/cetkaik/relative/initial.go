package relative

import (
	c "cetkaik/internal/cetkaik"
)

// InitialBoardWhereBlackKingPointsUpward returns the y1 huap1 standard
// layout with the black king on the viewer's side. A fresh value every call.
func InitialBoardWhereBlackKingPointsUpward() Board {
	const r, b = c.Kok1, c.Huok2
	d := func(col c.Color, p c.Profession) Piece { return NewPiece(col, p, Downward) }
	u := func(col c.Color, p c.Profession) Piece { return NewPiece(col, p, Upward) }
	const __ = NoPiece

	return Board{Squares: [Size][Size]Piece{
		{d(b, c.Kua2), d(b, c.Maun1), d(b, c.Kaun1), d(b, c.Uai1), d(r, c.Io), d(r, c.Uai1), d(r, c.Kaun1), d(r, c.Maun1), d(r, c.Kua2)},
		{d(r, c.Tuk2), d(r, c.Gua2), __, d(r, c.Dau2), __, d(b, c.Dau2), __, d(b, c.Gua2), d(b, c.Tuk2)},
		{d(b, c.Kauk2), d(r, c.Kauk2), d(b, c.Kauk2), d(r, c.Kauk2), d(r, c.Nuak1), d(r, c.Kauk2), d(b, c.Kauk2), d(r, c.Kauk2), d(b, c.Kauk2)},
		{__, __, __, __, __, __, __, __, __},
		{__, __, __, __, Tam2, __, __, __, __},
		{__, __, __, __, __, __, __, __, __},
		{u(b, c.Kauk2), u(r, c.Kauk2), u(b, c.Kauk2), u(r, c.Kauk2), u(b, c.Nuak1), u(r, c.Kauk2), u(b, c.Kauk2), u(r, c.Kauk2), u(b, c.Kauk2)},
		{u(b, c.Tuk2), u(b, c.Gua2), __, u(b, c.Dau2), __, u(r, c.Dau2), __, u(r, c.Gua2), u(r, c.Tuk2)},
		{u(r, c.Kua2), u(r, c.Maun1), u(r, c.Kaun1), u(r, c.Uai1), u(b, c.Io), u(b, c.Uai1), u(b, c.Kaun1), u(b, c.Maun1), u(b, c.Kua2)},
	}}
}

// InitialBoardWhereRedKingPointsUpward is the same layout seen from the
// other seat.
func InitialBoardWhereRedKingPointsUpward() Board {
	return RotateBoard(InitialBoardWhereBlackKingPointsUpward())
}

// InitialField is the canonical layout with both hands empty.
func InitialField() Field {
	return Field{Board: InitialBoardWhereBlackKingPointsUpward()}
}
