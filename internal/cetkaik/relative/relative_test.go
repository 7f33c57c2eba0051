package relative

import (
	"errors"
	"testing"

	"cetkaik/internal/cetkaik"
)

func TestSideNotIsInvolution(t *testing.T) {
	for _, s := range []Side{Upward, Downward} {
		if s.Not() == s {
			t.Fatalf("Not(%v) returned itself", s)
		}
		if s.Not().Not() != s {
			t.Fatalf("Not(Not(%v))=%v", s, s.Not().Not())
		}
	}
}

func TestPieceAccessors(t *testing.T) {
	for col := cetkaik.Color(0); col < cetkaik.NumColors; col++ {
		for prof := cetkaik.Profession(0); prof < cetkaik.NumProfessions; prof++ {
			for _, side := range []Side{Upward, Downward} {
				p := NewPiece(col, prof, side)
				if p.IsTam2() || p.IsEmpty() {
					t.Fatalf("ranked piece %v reported as Tam2/empty", p)
				}
				if p.Color() != col || p.Prof() != prof || p.Side() != side {
					t.Fatalf("round trip: got (%v,%v,%v) want (%v,%v,%v)",
						p.Color(), p.Prof(), p.Side(), col, prof, side)
				}
				if !p.HasColor(col) || !p.HasProf(prof) || !p.HasSide(side) {
					t.Fatalf("Has* false on own attributes of %v", p)
				}
				if p.HasSide(side.Not()) {
					t.Fatalf("%v claims the other side", p)
				}
				if f := p.Flip(); f.Side() != side.Not() || f.Color() != col || f.Prof() != prof {
					t.Fatalf("Flip(%v)=%v", p, f)
				}
			}
		}
	}
}

func TestTam2HasNoAttributes(t *testing.T) {
	if !Tam2.IsTam2() {
		t.Fatalf("Tam2 not Tam2")
	}
	for col := cetkaik.Color(0); col < cetkaik.NumColors; col++ {
		if Tam2.HasColor(col) || NoPiece.HasColor(col) {
			t.Fatalf("Tam2/empty has color %v", col)
		}
	}
	for prof := cetkaik.Profession(0); prof < cetkaik.NumProfessions; prof++ {
		if Tam2.HasProf(prof) {
			t.Fatalf("Tam2 has profession %v", prof)
		}
	}
	if Tam2.HasSide(Upward) || Tam2.HasSide(Downward) {
		t.Fatalf("Tam2 has a side")
	}
	if Tam2.Flip() != Tam2 || NoPiece.Flip() != NoPiece {
		t.Fatalf("Flip changed Tam2 or empty")
	}
	if _, ok := Tam2.HandPiece(); ok {
		t.Fatalf("Tam2 converted to a hand piece")
	}
}

func TestSerializePiece(t *testing.T) {
	if got := Tam2.String(); got != "皇" {
		t.Fatalf("Tam2=%q", got)
	}
	if got := NewPiece(cetkaik.Kok1, cetkaik.Uai1, Downward).String(); got != "赤将↓" {
		t.Fatalf("got %q want 赤将↓", got)
	}
	if got := NewPiece(cetkaik.Huok2, cetkaik.Nuak1, Upward).String(); got != "黒船↑" {
		t.Fatalf("got %q want 黒船↑", got)
	}
	if got := (Coord{5, 6}).String(); got != "[5,6]" {
		t.Fatalf("coord=%q", got)
	}
}

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b Coord
		want int
	}{
		{Coord{4, 5}, Coord{4, 0}, 5},
		{Coord{4, 5}, Coord{1, 2}, 3},
		{Coord{1, 2}, Coord{4, 5}, 3},
		{Coord{0, 0}, Coord{8, 8}, 8},
		{Coord{3, 7}, Coord{3, 7}, 0},
	}
	for _, tc := range cases {
		if got := Distance(tc.a, tc.b); got != tc.want {
			t.Errorf("Distance(%v,%v)=%d want=%d", tc.a, tc.b, got, tc.want)
		}
	}
	for _, a := range AllCoords() {
		for _, b := range AllCoords() {
			if Distance(a, b) != Distance(b, a) {
				t.Fatalf("Distance not symmetric for %v %v", a, b)
			}
		}
	}
}

func TestWaterIsCrossOfNine(t *testing.T) {
	want := map[Coord]bool{
		{4, 2}: true, {4, 3}: true, {4, 4}: true, {4, 5}: true, {4, 6}: true,
		{2, 4}: true, {3, 4}: true, {5, 4}: true, {6, 4}: true,
	}
	n := 0
	for _, c := range AllCoords() {
		if IsWater(c) != want[c] {
			t.Errorf("IsWater(%v)=%v", c, IsWater(c))
		}
		if IsWater(c) {
			n++
		}
		if IsWater(c) != IsWater(c.Rotate()) {
			t.Errorf("water not symmetric at %v", c)
		}
	}
	if n != 9 {
		t.Fatalf("water squares=%d want=9", n)
	}
}

func TestRotateCoordInvolution(t *testing.T) {
	for _, c := range AllCoords() {
		if c.Rotate().Rotate() != c {
			t.Fatalf("Rotate twice moved %v", c)
		}
	}
	if got := (Coord{0, 2}).Rotate(); got != (Coord{8, 6}) {
		t.Fatalf("Rotate([0,2])=%v", got)
	}
}

func TestOutOfRangeIndexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-range coord")
		}
	}()
	var b Board
	c := Coord{Row: 9, Col: 0}
	if c.InBounds() {
		t.Fatalf("InBounds accepted %v", c)
	}
	b.At(c)
}

func TestRotateBoard(t *testing.T) {
	black := InitialBoardWhereBlackKingPointsUpward()
	red := InitialBoardWhereRedKingPointsUpward()
	if RotateBoard(red) != black {
		t.Fatalf("rotating the red layout does not give the black layout")
	}
	if RotateBoard(RotateBoard(black)) != black {
		t.Fatalf("RotateBoard is not an involution")
	}

	var b Board
	b.Set(Coord{0, 1}, NewPiece(cetkaik.Kok1, cetkaik.Dau2, Upward))
	b.Set(Coord{4, 4}, Tam2)
	rot := RotateBoard(b)
	if got := rot.At(Coord{8, 7}); got != NewPiece(cetkaik.Kok1, cetkaik.Dau2, Downward) {
		t.Fatalf("rotated piece=%v", got)
	}
	if rot.At(Coord{4, 4}) != Tam2 {
		t.Fatalf("Tam2 moved or changed")
	}
	if rot.At(Coord{0, 1}) != NoPiece {
		t.Fatalf("source square not cleared")
	}
}

func TestInitialBoard(t *testing.T) {
	b := InitialBoardWhereBlackKingPointsUpward()
	if got := b.Count(); got != 49 {
		t.Fatalf("occupied=%d want=49", got)
	}
	if b.At(Coord{4, 4}) != Tam2 {
		t.Fatalf("Tam2 not at center")
	}
	if got := b.At(Coord{8, 4}); got != NewPiece(cetkaik.Huok2, cetkaik.Io, Upward) {
		t.Fatalf("upward king=%v", got)
	}
	up, down := 0, 0
	for _, c := range AllCoords() {
		switch p := b.At(c); {
		case p.HasSide(Upward):
			up++
		case p.HasSide(Downward):
			down++
		}
	}
	if up != 24 || down != 24 {
		t.Fatalf("up=%d down=%d want 24 each", up, down)
	}
	b.Set(Coord{0, 0}, NoPiece)
	fresh := InitialBoardWhereBlackKingPointsUpward()
	if fresh.At(Coord{0, 0}).IsEmpty() {
		t.Fatalf("initial board aliased between calls")
	}
}

func TestHandInsertAndRemove(t *testing.T) {
	var f Field
	f.InsertIntoHand(cetkaik.Kok1, cetkaik.Kauk2, Upward)
	f.InsertIntoHand(cetkaik.Huok2, cetkaik.Gua2, Upward)
	f.InsertIntoHand(cetkaik.Kok1, cetkaik.Kauk2, Downward)

	if len(f.HandOfUpward) != 2 || len(f.HandOfDownward) != 1 {
		t.Fatalf("hands up=%v down=%v", f.HandOfUpward, f.HandOfDownward)
	}

	g, err := f.FindAndRemoveFromHand(cetkaik.Kok1, cetkaik.Kauk2, Upward)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(g.HandOfUpward) != 1 || g.HandOfUpward[0] != (cetkaik.HandPiece{Color: cetkaik.Huok2, Prof: cetkaik.Gua2}) {
		t.Fatalf("after remove up=%v", g.HandOfUpward)
	}
	if len(g.HandOfDownward) != 1 {
		t.Fatalf("downward hand touched: %v", g.HandOfDownward)
	}
	if len(f.HandOfUpward) != 2 {
		t.Fatalf("input field modified: %v", f.HandOfUpward)
	}

	_, err = g.FindAndRemoveFromHand(cetkaik.Kok1, cetkaik.Kauk2, Upward)
	if !errors.Is(err, ErrNotInHand) {
		t.Fatalf("second remove err=%v, want ErrNotInHand", err)
	}
}

func TestRemoveTakesFirstMatch(t *testing.T) {
	var f Field
	f.InsertIntoHand(cetkaik.Kok1, cetkaik.Kauk2, Downward)
	f.InsertIntoHand(cetkaik.Huok2, cetkaik.Io, Downward)
	f.InsertIntoHand(cetkaik.Kok1, cetkaik.Kauk2, Downward)

	g, err := f.FindAndRemoveFromHand(cetkaik.Kok1, cetkaik.Kauk2, Downward)
	if err != nil {
		t.Fatal(err)
	}
	if g.HandOfDownward[0].Prof != cetkaik.Io || g.HandOfDownward[1].Prof != cetkaik.Kauk2 {
		t.Fatalf("wrong entry removed: %v", g.HandOfDownward)
	}
	g.InsertIntoHand(cetkaik.Huok2, cetkaik.Dau2, Downward)
	if len(f.HandOfDownward) != 3 || f.HandOfDownward[2].Prof != cetkaik.Kauk2 {
		t.Fatalf("insert on copy leaked into original: %v", f.HandOfDownward)
	}
}

func TestRotateFieldSwapsHands(t *testing.T) {
	f := InitialField()
	f.InsertIntoHand(cetkaik.Kok1, cetkaik.Maun1, Upward)
	rot := RotateField(f)
	if len(rot.HandOfDownward) != 1 || len(rot.HandOfUpward) != 0 {
		t.Fatalf("hands not swapped: up=%v down=%v", rot.HandOfUpward, rot.HandOfDownward)
	}
	if !RotateField(rot).SameState(f) {
		t.Fatalf("RotateField is not an involution")
	}
}

func TestHashFollowsSameState(t *testing.T) {
	a := InitialField()
	a.InsertIntoHand(cetkaik.Kok1, cetkaik.Kauk2, Upward)
	a.InsertIntoHand(cetkaik.Huok2, cetkaik.Io, Upward)

	b := InitialField()
	b.InsertIntoHand(cetkaik.Huok2, cetkaik.Io, Upward)
	b.InsertIntoHand(cetkaik.Kok1, cetkaik.Kauk2, Upward)

	if !a.SameState(b) {
		t.Fatalf("hand order should not matter for state equality")
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("hash differs for same state: %d vs %d", a.Hash(), b.Hash())
	}

	c := InitialField()
	c.InsertIntoHand(cetkaik.Kok1, cetkaik.Kauk2, Downward)
	c.InsertIntoHand(cetkaik.Huok2, cetkaik.Io, Upward)
	if a.SameState(c) {
		t.Fatalf("different owners reported as same state")
	}
	if a.Hash() == c.Hash() {
		t.Fatalf("hash collision between different hand owners")
	}

	d := InitialField()
	rd := RotateField(d)
	if d.Hash() == rd.Hash() {
		t.Fatalf("rotated layout hashes like the original")
	}
}

func TestInsertIntoCopiedFieldDoesNotShareHand(t *testing.T) {
	var f Field
	f.InsertIntoHand(cetkaik.Kok1, cetkaik.Kauk2, Upward)
	f.InsertIntoHand(cetkaik.Huok2, cetkaik.Gua2, Upward)
	f.InsertIntoHand(cetkaik.Kok1, cetkaik.Maun1, Upward)

	g := f
	g.InsertIntoHand(cetkaik.Huok2, cetkaik.Io, Upward)
	f.InsertIntoHand(cetkaik.Kok1, cetkaik.Dau2, Upward)

	if got := g.HandOfUpward[3]; got != (cetkaik.HandPiece{Color: cetkaik.Huok2, Prof: cetkaik.Io}) {
		t.Fatalf("g.HandOfUpward[3]=%v want 黒王", got)
	}
	if got := f.HandOfUpward[3]; got != (cetkaik.HandPiece{Color: cetkaik.Kok1, Prof: cetkaik.Dau2}) {
		t.Fatalf("f.HandOfUpward[3]=%v want 赤虎", got)
	}

	h := f
	h.InsertIntoHand(cetkaik.Huok2, cetkaik.Tuk2, Downward)
	if len(f.HandOfDownward) != 0 {
		t.Fatalf("insert into a copy reached the original: %v", f.HandOfDownward)
	}
}
