package cetkaik

import (
	"errors"
	"testing"
)

func TestParseProfessionSynonyms(t *testing.T) {
	cases := []struct {
		in   string
		want Profession
	}{
		{"nuak1", Nuak1},
		{"船", Nuak1},
		{"Vessel", Nuak1},
		{"kauk2", Kauk2},
		{"ELMER", Kauk2},
		{"gua2", Gua2},
		{"kaun1", Kaun1},
		{"Tiger", Dau2},
		{"maun1", Maun1},
		{"筆", Kua2},
		{"terlsk", Tuk2},
		{"將", Uai1},
		{"ＫＩＮＧ", Io},
		{" io ", Io},
	}
	for _, tc := range cases {
		got, err := ParseProfession(tc.in)
		if err != nil {
			t.Fatalf("ParseProfession(%q) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseProfession(%q)=%v want=%v", tc.in, got, tc.want)
		}
	}
}

func TestParseProfessionUnknown(t *testing.T) {
	for _, in := range []string{"", "queen", "nuak3", "船船"} {
		if _, err := ParseProfession(in); !errors.Is(err, ErrUnknownProfession) {
			t.Errorf("ParseProfession(%q) err=%v, want ErrUnknownProfession", in, err)
		}
	}
}

func TestParseColor(t *testing.T) {
	for in, want := range map[string]Color{
		"kok1": Kok1, "赤": Kok1, "Red": Kok1,
		"huok2": Huok2, "黒": Huok2, "ＢＬＡＣＫ": Huok2,
	} {
		got, err := ParseColor(in)
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseColor(%q)=%v want=%v", in, got, want)
		}
	}
	if _, err := ParseColor("green"); !errors.Is(err, ErrUnknownColor) {
		t.Fatalf("ParseColor(green) err=%v", err)
	}
}

func TestEveryProfessionHasGlyphSynonym(t *testing.T) {
	for p := Profession(0); p < NumProfessions; p++ {
		got, err := ParseProfession(p.String())
		if err != nil || got != p {
			t.Errorf("glyph %q of %d parses to %v (err=%v)", p.String(), p, got, err)
		}
	}
}
