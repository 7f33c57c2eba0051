package cetkaik

type Color uint8

const (
	Kok1  Color = iota // 赤 red
	Huok2              // 黒 black
)

const NumColors = 2

type Profession uint8

const (
	Nuak1 Profession = iota // 船 vessel
	Kauk2                   // 兵 pawn
	Gua2                    // 弓 rook
	Kaun1                   // 車 bishop
	Dau2                    // 虎 tiger
	Maun1                   // 馬 horse
	Kua2                    // 筆 clerk
	Tuk2                    // 巫 shaman
	Uai1                    // 将 general
	Io                      // 王 king
)

const NumProfessions = 10

var colorGlyphs = [NumColors]string{"赤", "黒"}

var professionGlyphs = [NumProfessions]string{
	"船", "兵", "弓", "車", "虎", "馬", "筆", "巫", "将", "王",
}

func (c Color) Valid() bool { return c < NumColors }

func (c Color) String() string {
	if !c.Valid() {
		return "?"
	}
	return colorGlyphs[c]
}

func (p Profession) Valid() bool { return p < NumProfessions }

func (p Profession) String() string {
	if !p.Valid() {
		return "?"
	}
	return professionGlyphs[p]
}

// HandPiece is an entry of a hand (hop1zuo1). It never represents Tam2 and
// carries no side: the hand holding it decides that.
type HandPiece struct {
	Color Color
	Prof  Profession
}

func (h HandPiece) String() string {
	return h.Color.String() + h.Prof.String()
}

// Tam2Glyph is the display token of the shared piece.
const Tam2Glyph = "皇"

// EmptyGlyph is the display token of an empty square.
const EmptyGlyph = "・"

// SameHand reports whether a and b hold the same pieces, ignoring order.
func SameHand(a, b []HandPiece) bool {
	if len(a) != len(b) {
		return false
	}
	var counts [NumColors][NumProfessions]int
	for _, h := range a {
		counts[h.Color][h.Prof]++
	}
	for _, h := range b {
		counts[h.Color][h.Prof]--
		if counts[h.Color][h.Prof] < 0 {
			return false
		}
	}
	return true
}

// CloneHand copies a hand into a fresh backing array.
func CloneHand(h []HandPiece) []HandPiece {
	if h == nil {
		return nil
	}
	out := make([]HandPiece, len(h))
	copy(out, h)
	return out
}

// RemoveFirst returns a copy of h without its first entry equal to want.
// ok is false when no entry matches; h is never modified.
func RemoveFirst(h []HandPiece, want HandPiece) (out []HandPiece, ok bool) {
	for i, x := range h {
		if x != want {
			continue
		}
		out = make([]HandPiece, 0, len(h)-1)
		out = append(out, h[:i]...)
		out = append(out, h[i+1:]...)
		return out, true
	}
	return nil, false
}
