package absolute

import (
	c "cetkaik/internal/cetkaik"
)

// InitialBoard returns the y1 huap1 standard layout. Each call builds a
// new map.
func InitialBoard() Board {
	b := make(Board, 49)
	set := func(label string, s Side, col c.Color, p c.Profession) {
		b[MustParseCoord(label)] = NewPiece(col, p, s)
	}
	const r, k = c.Kok1, c.Huok2

	// --- A side ---
	set("KA", ASide, k, c.Kua2)
	set("LA", ASide, k, c.Maun1)
	set("NA", ASide, k, c.Kaun1)
	set("TA", ASide, k, c.Uai1)
	set("ZA", ASide, r, c.Io)
	set("XA", ASide, r, c.Uai1)
	set("CA", ASide, r, c.Kaun1)
	set("MA", ASide, r, c.Maun1)
	set("PA", ASide, r, c.Kua2)

	set("KE", ASide, r, c.Tuk2)
	set("LE", ASide, r, c.Gua2)
	set("TE", ASide, r, c.Dau2)
	set("XE", ASide, k, c.Dau2)
	set("ME", ASide, k, c.Gua2)
	set("PE", ASide, k, c.Tuk2)

	set("KI", ASide, k, c.Kauk2)
	set("LI", ASide, r, c.Kauk2)
	set("NI", ASide, k, c.Kauk2)
	set("TI", ASide, r, c.Kauk2)
	set("ZI", ASide, r, c.Nuak1)
	set("XI", ASide, r, c.Kauk2)
	set("CI", ASide, k, c.Kauk2)
	set("MI", ASide, r, c.Kauk2)
	set("PI", ASide, k, c.Kauk2)

	// 皇
	b[MustParseCoord("ZO")] = Tam2

	// --- IA side ---
	set("KAI", IASide, k, c.Kauk2)
	set("LAI", IASide, r, c.Kauk2)
	set("NAI", IASide, k, c.Kauk2)
	set("TAI", IASide, r, c.Kauk2)
	set("ZAI", IASide, k, c.Nuak1)
	set("XAI", IASide, r, c.Kauk2)
	set("CAI", IASide, k, c.Kauk2)
	set("MAI", IASide, r, c.Kauk2)
	set("PAI", IASide, k, c.Kauk2)

	set("KAU", IASide, k, c.Tuk2)
	set("LAU", IASide, k, c.Gua2)
	set("TAU", IASide, k, c.Dau2)
	set("XAU", IASide, r, c.Dau2)
	set("MAU", IASide, r, c.Gua2)
	set("PAU", IASide, r, c.Tuk2)

	set("KIA", IASide, r, c.Kua2)
	set("LIA", IASide, r, c.Maun1)
	set("NIA", IASide, r, c.Kaun1)
	set("TIA", IASide, r, c.Uai1)
	set("ZIA", IASide, k, c.Io)
	set("XIA", IASide, k, c.Uai1)
	set("CIA", IASide, k, c.Kaun1)
	set("MIA", IASide, k, c.Maun1)
	set("PIA", IASide, k, c.Kua2)

	return b
}

// InitialField is the standard layout with both hands empty.
func InitialField() Field {
	return Field{Board: InitialBoard()}
}
