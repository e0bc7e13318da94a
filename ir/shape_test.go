package ir

import "testing"

func TestShapeOf(t *testing.T) {
	tts := []struct {
		n    *Node
		want Shape
	}{
		{FromBool(true), BoolShape},
		{FromInt(1), IntShape},
		{FromFloat(1), FloatShape},
		{FromString(""), StringShape},
		{FromSlice(nil), ArrayShape},
		{FromKeyVals(nil), MapShape},
		{Unit(), "()"},
		{Positional("Some", FromInt(1)), "Some(_)"},
		{Positional("", FromInt(1), FromInt(2)), "(_,_)"},
		{Named("Vec2", Field{"x", FromFloat(0)}, Field{"y", FromFloat(0)}), "Vec2(x:,y:)"},
		{Named("", Field{"a", FromInt(1)}), "(a:)"},
	}
	for _, tt := range tts {
		if got := ShapeOf(tt.n); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestStructShapesDistinct(t *testing.T) {
	// same name, different arity or style
	a := ShapeOf(Positional("P", FromInt(1)))
	b := ShapeOf(Positional("P", FromInt(1), FromInt(2)))
	c := ShapeOf(Named("P", Field{"x", FromInt(1)}))
	if a == b || a == c || b == c {
		t.Errorf("shapes not distinct: %q %q %q", a, b, c)
	}
	// arrays are one class regardless of element type
	if ShapeOf(FromSlice([]*Node{FromInt(1)})) != ShapeOf(FromSlice([]*Node{FromString("s")})) {
		t.Error("array shapes should not depend on element type")
	}
}
