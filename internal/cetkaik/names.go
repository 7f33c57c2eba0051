package cetkaik

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

var (
	ErrUnknownColor      = errors.New("unknown color")
	ErrUnknownProfession = errors.New("unknown profession")
)

// Synonyms are stored already normalized (see normalizeName). Adding a
// spelling is a table edit only.
var colorSynonyms = map[string]Color{
	"kok1": Kok1, "kok": Kok1, "赤": Kok1, "red": Kok1,
	"huok2": Huok2, "huok": Huok2, "黒": Huok2, "黑": Huok2, "black": Huok2,
}

var professionSynonyms = map[string]Profession{
	// 船
	"nuak1": Nuak1, "nuak": Nuak1, "船": Nuak1, "vessel": Nuak1, "boat": Nuak1, "felkana": Nuak1,
	// 兵
	"kauk2": Kauk2, "kauk": Kauk2, "兵": Kauk2, "pawn": Kauk2, "elmer": Kauk2,
	// 弓
	"gua2": Gua2, "gua": Gua2, "弓": Gua2, "rook": Gua2, "bow": Gua2, "gustuer": Gua2,
	// 車
	"kaun1": Kaun1, "kaun": Kaun1, "車": Kaun1, "bishop": Kaun1, "chariot": Kaun1, "vadyrd": Kaun1,
	// 虎
	"dau2": Dau2, "dau": Dau2, "虎": Dau2, "tiger": Dau2, "stistyst": Dau2,
	// 馬
	"maun1": Maun1, "maun": Maun1, "馬": Maun1, "horse": Maun1, "dodor": Maun1,
	// 筆
	"kua2": Kua2, "kua": Kua2, "筆": Kua2, "clerk": Kua2, "brush": Kua2,
	// 巫
	"tuk2": Tuk2, "tuk": Tuk2, "巫": Tuk2, "shaman": Tuk2, "terlsk": Tuk2,
	// 将
	"uai1": Uai1, "uai": Uai1, "将": Uai1, "將": Uai1, "general": Uai1, "varxle": Uai1,
	// 王
	"io": Io, "王": Io, "king": Io, "ales": Io,
}

// normalizeName folds full-width latin to ASCII and applies Unicode case
// folding, so "ＫＩＮＧ", "King" and "king" share one table entry.
func normalizeName(s string) string {
	s = strings.TrimSpace(s)
	s = width.Fold.String(s)
	return cases.Fold().String(s)
}

func ParseColor(s string) (Color, error) {
	c, ok := colorSynonyms[normalizeName(s)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return c, nil
}

func ParseProfession(s string) (Profession, error) {
	p, ok := professionSynonyms[normalizeName(s)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownProfession, s)
	}
	return p, nil
}
