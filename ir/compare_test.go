package ir

import "testing"

func TestCompareScalars(t *testing.T) {
	tts := []struct {
		a, b *Node
		want int
	}{
		{FromBool(false), FromBool(true), -1},
		{FromBool(true), FromBool(true), 0},
		{FromInt(1), FromInt(2), -1},
		{FromInt(2), FromInt(2), 0},
		{FromFloat(1.5), FromFloat(1.25), 1},
		{FromString("a"), FromString("b"), -1},
		{FromInt(1), FromFloat(1), -1}, // int sorts before float
		{nil, FromInt(0), -1},
	}
	for i, tt := range tts {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("case %d: got %d, want %d", i, got, tt.want)
		}
	}
}

func TestCompareComposite(t *testing.T) {
	a := FromSlice([]*Node{FromInt(1), FromInt(2)})
	b := FromSlice([]*Node{FromInt(1), FromInt(2)})
	c := FromSlice([]*Node{FromInt(1), FromInt(3)})
	d := FromSlice([]*Node{FromInt(1)})
	if !Equal(a, b) {
		t.Error("equal arrays compare unequal")
	}
	if Compare(a, c) != -1 || Compare(a, d) != 1 {
		t.Error("array ordering")
	}

	s1 := Positional("Some", FromInt(5))
	s2 := Positional("Some", FromInt(5))
	s3 := Positional("None")
	if !Equal(s1, s2) {
		t.Error("equal structs compare unequal")
	}
	if Equal(s1, s3) {
		t.Error("Some(5) == None")
	}

	n1 := Named("Vec2", Field{"x", FromFloat(1)}, Field{"y", FromFloat(2)})
	n2 := Named("Vec2", Field{"x", FromFloat(1)}, Field{"y", FromFloat(2)})
	if !Equal(n1, n2) {
		t.Error("equal named structs compare unequal")
	}
	if Equal(n1, Positional("Vec2", FromFloat(1), FromFloat(2))) {
		t.Error("named equals positional")
	}
}

func TestHashAgreesWithEqual(t *testing.T) {
	mk := func() *Node {
		return FromKeyVals([]KeyVal{
			{Key: FromString("a"), Val: Positional("Some", FromInt(1))},
			{Key: FromString("b"), Val: Positional("Some", FromInt(2))},
		})
	}
	a, b := mk(), mk()
	if a.Hash() != b.Hash() {
		t.Error("equal nodes hash differently")
	}
	c := mk()
	c.Values[1].Values[0] = FromInt(3)
	if a.Hash() == c.Hash() {
		t.Error("distinct nodes hash equal (unlikely collision?)")
	}
}

func TestMapGet(t *testing.T) {
	m := FromKeyVals([]KeyVal{
		{Key: FromInt(10), Val: FromString("ten")},
		{Key: FromInt(20), Val: FromString("twenty")},
	})
	if got := m.Get(FromInt(20)); got == nil || got.String != "twenty" {
		t.Errorf("Get(20) = %v", got)
	}
	if got := m.Get(FromInt(30)); got != nil {
		t.Errorf("Get(30) = %v, want nil", got)
	}

	sm := FromKeyVals([]KeyVal{
		{Key: FromString("k"), Val: FromInt(1)},
	})
	if got := Get(sm, "k"); got == nil || got.Int64 != 1 {
		t.Errorf("Get(k) = %v", got)
	}
	st := Named("S", Field{"f", FromBool(true)})
	if got := Get(st, "f"); got == nil || !got.Bool {
		t.Errorf("struct Get(f) = %v", got)
	}
}
