package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/ron-format/go-ron/ir"
	"github.com/ron-format/go-ron/token"
)

func TestParseConstants(t *testing.T) {
	tts := []struct {
		in   string
		want *ir.Node
	}{
		{"true", ir.FromBool(true)},
		{"false", ir.FromBool(false)},
		{"0", ir.FromInt(0)},
		{"-42", ir.FromInt(-42)},
		{"3.25", ir.FromFloat(3.25)},
		{"-1e3", ir.FromFloat(-1000)},
		{`"hello"`, ir.FromString("hello")},
		{`"a\nb"`, ir.FromString("a\nb")},
		{`"é"`, ir.FromString("é")},
	}
	for _, tt := range tts {
		got, err := ParseString(tt.in)
		if err != nil {
			t.Errorf("%q: %s", tt.in, err)
			continue
		}
		if !ir.Equal(got, tt.want) {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseStructDisambiguation(t *testing.T) {
	// anonymous positional
	n, err := ParseString("(1, 2)")
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != ir.StructType || n.Named || n.Name != "" || len(n.Values) != 2 {
		t.Errorf("got shape %s, want (_,_)", ir.ShapeOf(n))
	}

	// named struct with one field
	n, err = ParseString("Some(5)")
	if err != nil {
		t.Fatal(err)
	}
	if n.Name != "Some" || n.Named || len(n.Values) != 1 {
		t.Errorf("got shape %s, want Some(_)", ir.ShapeOf(n))
	}
	if n.Values[0].Int64 != 5 {
		t.Errorf("got %d, want 5", n.Values[0].Int64)
	}

	// named fields
	n, err = ParseString("(a: 1, b: 2)")
	if err != nil {
		t.Fatal(err)
	}
	if !n.Named || len(n.FieldNames) != 2 {
		t.Fatalf("got shape %s, want (a:,b:)", ir.ShapeOf(n))
	}
	if b := ir.Get(n, "b"); b == nil || b.Int64 != 2 {
		t.Errorf("field b: %v", b)
	}

	// unit
	n, err = ParseString("()")
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(n, ir.Unit()) {
		t.Errorf("got %s, want ()", ir.ShapeOf(n))
	}
}

func TestParseAmbiguousStructFields(t *testing.T) {
	for _, in := range []string{
		"(a: 1, 2)",
		"(1, a: 2)",
		"Thing(a: 1, [2])",
	} {
		_, err := ParseString(in)
		if !errors.Is(err, ErrAmbiguousStructFields) {
			t.Errorf("%q: got %v, want ErrAmbiguousStructFields", in, err)
		}
	}
}

func TestParseDuplicates(t *testing.T) {
	_, err := ParseString("(a: 1, a: 2)")
	if !errors.Is(err, ErrDuplicateField) {
		t.Errorf("got %v, want ErrDuplicateField", err)
	}
	_, err = ParseString(`{"x": 1, "x": 2}`)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("got %v, want ErrDuplicateKey", err)
	}
	_, err = ParseString("{1: true, 1: false}")
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("got %v, want ErrDuplicateKey", err)
	}
}

func TestParseHomogeneity(t *testing.T) {
	tts := []struct {
		in    string
		err   error
		index int
		want  ir.Shape
		got   ir.Shape
	}{
		{`[1, "x"]`, ErrHeterogeneousArray, 1, ir.IntShape, ir.StringShape},
		{`[Some(1), None()]`, ErrHeterogeneousArray, 1, "Some(_)", "None()"},
		{`[(a: 1), (b: 1)]`, ErrHeterogeneousArray, 1, "(a:)", "(b:)"},
		{`{1: true, "s": false}`, ErrHeterogeneousMapKey, 1, ir.IntShape, ir.StringShape},
		{`{"a": 1, "b": []}`, ErrHeterogeneousMapValue, 1, ir.IntShape, ir.ArrayShape},
	}
	for _, tt := range tts {
		_, err := ParseString(tt.in)
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: got %v, want %v", tt.in, err, tt.err)
			continue
		}
		var pe *Error
		if !errors.As(err, &pe) {
			t.Errorf("%q: not a *parse.Error", tt.in)
			continue
		}
		if pe.Index != tt.index || pe.Want != tt.want || pe.Got != tt.got {
			t.Errorf("%q: index=%d want=%s got=%s", tt.in, pe.Index, pe.Want, pe.Got)
		}
	}

	// arrays are one shape class, nested element types don't matter
	if _, err := ParseString(`[[1], ["x"]]`); err != nil {
		t.Errorf("nested arrays of differing element types: %s", err)
	}
	// same struct shape in both positions is fine
	if _, err := ParseString(`[Some(1), Some(2)]`); err != nil {
		t.Errorf("homogeneous struct array: %s", err)
	}
}

func TestParseTrailingComma(t *testing.T) {
	for _, in := range []string{
		"[1, 2,]",
		"(a: 1, b: 2,)",
		`{"k": 1,}`,
		"Thing(1,)",
	} {
		if _, err := ParseString(in); err != nil {
			t.Errorf("%q: %s", in, err)
		}
	}
	// a comma alone is not an element
	if _, err := ParseString("[,]"); !errors.Is(err, ErrUnexpectedToken) {
		t.Error("expected ErrUnexpectedToken for [,]")
	}
}

func TestParseComments(t *testing.T) {
	n, err := ParseString(`
// a scene fragment
Scene( // name
    materials: { // per-material config
        "metal": (reflectivity: 1.0),
    },
)`)
	if err != nil {
		t.Fatal(err)
	}
	if n.Name != "Scene" || !n.Named {
		t.Fatalf("got shape %s", ir.ShapeOf(n))
	}
	mats := ir.Get(n, "materials")
	if mats == nil || mats.Type != ir.MapType {
		t.Fatalf("materials: %v", mats)
	}
	metal := ir.Get(mats, "metal")
	if metal == nil || ir.Get(metal, "reflectivity").Float64 != 1.0 {
		t.Errorf("metal: %v", metal)
	}
}

func TestParseMapOrder(t *testing.T) {
	n, err := ParseString(`{"z": 1, "a": 2, "m": 3}`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	for i, k := range n.Keys {
		if k.String != want[i] {
			t.Errorf("key %d: got %q, want %q", i, k.String, want[i])
		}
	}
}

func TestParseDepth(t *testing.T) {
	const n = 10000
	in := strings.Repeat("[", n) + strings.Repeat("]", n)
	_, err := Parse([]byte(in))
	if !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("got %v, want ErrDepthExceeded", err)
	}

	// just inside the default bound
	in = strings.Repeat("[", DefaultMaxDepth) + strings.Repeat("]", DefaultMaxDepth)
	if _, err := Parse([]byte(in)); err != nil {
		t.Errorf("depth %d should parse: %s", DefaultMaxDepth, err)
	}

	// the bound is adjustable
	if _, err := ParseString("[[[]]]", ParseMaxDepth(2)); !errors.Is(err, ErrDepthExceeded) {
		t.Error("expected ErrDepthExceeded with ParseMaxDepth(2)")
	}
}

func TestParseErrors(t *testing.T) {
	tts := []struct {
		in  string
		err error
	}{
		{"", ErrUnexpectedEOF},
		{"[1, 2", ErrUnexpectedEOF},
		{"(a:", ErrUnexpectedEOF},
		{"1 2", ErrTrailingData},
		{"[] []", ErrTrailingData},
		{"foo", ErrUnexpectedToken},
		{"[1 2]", ErrUnexpectedToken},
		{"{[1]: 2}", ErrUnexpectedToken},
		{"{1 2}", ErrUnexpectedToken},
		{"(:)", ErrUnexpectedToken},
		{"9223372036854775808", token.ErrNumber},
		{"-9223372036854775809", token.ErrNumber},
		{`"\ud800"`, token.ErrEscape},
	}
	for _, tt := range tts {
		_, err := ParseString(tt.in)
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: got %v, want %v", tt.in, err, tt.err)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := ParseString("[1,\n  true]")
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want *parse.Error", err)
	}
	if pe.Pos == nil {
		t.Fatal("nil position")
	}
	line, col := pe.Pos.LineCol()
	if line != 1 || col != 2 {
		t.Errorf("got line=%d col=%d, want line=1 col=2", line, col)
	}
	if !strings.Contains(err.Error(), "line=1") {
		t.Errorf("error message %q should name the line", err.Error())
	}

	// EOF errors have no position
	_, err = ParseString("[1,")
	if errors.As(err, &pe) && pe.Pos != nil {
		t.Error("end of input error should carry no position")
	}
	if !strings.Contains(err.Error(), "end of input") {
		t.Errorf("error message %q", err.Error())
	}
}

func TestParsePositions(t *testing.T) {
	positions := map[*ir.Node]*token.Pos{}
	n, err := ParseString("(a: 1,\n b: [2])", ParsePositions(positions))
	if err != nil {
		t.Fatal(err)
	}
	b := ir.Get(n, "b")
	pos := positions[b]
	if pos == nil {
		t.Fatal("no position for field b value")
	}
	line, col := pos.LineCol()
	if line != 1 || col != 4 {
		t.Errorf("got line=%d col=%d, want line=1 col=4", line, col)
	}
	if positions[n] == nil {
		t.Error("no position for root")
	}
}

func TestParseParentLinks(t *testing.T) {
	n, err := ParseString(`(xs: [10, 20], m: {"k": true})`)
	if err != nil {
		t.Fatal(err)
	}
	xs := ir.Get(n, "xs")
	if xs.Parent != n || xs.ParentField != "xs" {
		t.Error("field parent link")
	}
	if xs.Values[1].Parent != xs || xs.Values[1].ParentIndex != 1 {
		t.Error("array element parent link")
	}
	m := ir.Get(n, "m")
	if m.Values[0].ParentField != "k" || m.Keys[0].Parent != m {
		t.Error("map entry parent link")
	}
	if xs.Values[1].Root() != n {
		t.Error("Root should reach the document root")
	}
}

func TestParseFloatVsInt(t *testing.T) {
	n, err := ParseString("1")
	if err != nil || n.Type != ir.IntType {
		t.Errorf("1: %v %v", n, err)
	}
	n, err = ParseString("1.0")
	if err != nil || n.Type != ir.FloatType {
		t.Errorf("1.0: %v %v", n, err)
	}
	// int and float do not mix in an array
	if _, err := ParseString("[1, 2.0]"); !errors.Is(err, ErrHeterogeneousArray) {
		t.Error("expected ErrHeterogeneousArray for [1, 2.0]")
	}
}
