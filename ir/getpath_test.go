package ir

import (
	"errors"
	"testing"
)

func getPathDoc() *Node {
	return Named("Scene",
		Field{Name: "name", Value: FromString("demo")},
		Field{Name: "dims", Value: FromSlice([]*Node{FromInt(3), FromInt(4)})},
		Field{Name: "materials", Value: FromKeyVals([]KeyVal{
			{Key: FromString("metal"), Val: FromFloat(1.0)},
			{Key: FromString("a key"), Val: FromFloat(0.5)},
			{Key: FromInt(7), Val: FromBool(true)},
			{Key: FromFloat(2.0), Val: FromBool(false)},
		})},
		Field{Name: "at", Value: Positional("Vec", FromInt(10), FromInt(20))},
	)
}

func TestGetPath(t *testing.T) {
	doc := getPathDoc()
	for _, tc := range []struct {
		path string
		want *Node
	}{
		{"$", doc},
		{"$.name", FromString("demo")},
		{"$.dims[1]", FromInt(4)},
		{"$.materials.metal", FromFloat(1.0)},
		{`$.materials["metal"]`, FromFloat(1.0)},
		{`$.materials["a key"]`, FromFloat(0.5)},
		{"$.materials[7]", FromBool(true)},
		{"$.materials[2.0]", FromBool(false)},
		{"$.at[0]", FromInt(10)},
	} {
		got, err := doc.GetPath(tc.path)
		if err != nil {
			t.Errorf("GetPath(%q): %s", tc.path, err)
			continue
		}
		if !Equal(got, tc.want) {
			t.Errorf("GetPath(%q) gave %v", tc.path, got)
		}
	}
}

func TestGetPathRoundTrip(t *testing.T) {
	doc := getPathDoc()
	var walk func(y *Node)
	walk = func(y *Node) {
		got, err := doc.GetPath(y.Path())
		if err != nil {
			t.Errorf("GetPath(%q): %s", y.Path(), err)
		} else if got != y {
			t.Errorf("GetPath(%q) resolved to a different node", y.Path())
		}
		for _, v := range y.Values {
			walk(v)
		}
	}
	walk(doc)
}

func TestGetPathErrs(t *testing.T) {
	doc := getPathDoc()
	for _, path := range []string{
		"name",
		"$.",
		"$.nope",
		"$.dims[9]",
		"$.dims[x]",
		"$.dims[0",
		"$.at.x",
		"$.name[0]",
		`$.materials["missing"]`,
	} {
		if _, err := doc.GetPath(path); !errors.Is(err, ErrPath) {
			t.Errorf("GetPath(%q): got %v, want ErrPath", path, err)
		}
	}
}
