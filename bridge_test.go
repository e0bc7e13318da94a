package ron

import (
	"testing"

	"github.com/ron-format/go-ron/ir"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := ParseString(s)
	if err != nil {
		t.Fatalf("%q: %s", s, err)
	}
	return n
}

func TestToJSON(t *testing.T) {
	tts := []struct {
		in   string
		want string
	}{
		{"(a: 1, b: 2)", `{"a":1,"b":2}`},
		{"Vec2(x: 1.5, y: 2.5)", `{"x":1.5,"y":2.5}`},
		{"(1, 2)", `[1,2]`},
		{"Some(5)", `[5]`},
		{"()", `null`},
		{`{"k": [true]}`, `{"k":[true]}`},
		{"{3: true}", `{"3":true}`},
	}
	for _, tt := range tts {
		got, err := ToJSON(mustParse(t, tt.in))
		if err != nil {
			t.Errorf("%q: %s", tt.in, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("%q: got %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFromJSON(t *testing.T) {
	n, err := FromJSON([]byte(`{"xs": [1, 2], "ys": [1.5, 2.5]}`))
	if err != nil {
		t.Fatal(err)
	}
	xs := ir.Get(n, "xs")
	if xs.Values[0].Type != ir.IntType {
		t.Errorf("1 decoded as %s", xs.Values[0].Type)
	}
	ys := ir.Get(n, "ys")
	if ys.Values[0].Type != ir.FloatType {
		t.Errorf("1.5 decoded as %s", ys.Values[0].Type)
	}

	// heterogeneous arrays come back as positional structs
	n, err = FromJSON([]byte(`[1, "x"]`))
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != ir.StructType || n.Named {
		t.Errorf("got %s, want anonymous positional struct", ir.ShapeOf(n))
	}

	if _, err = FromJSON([]byte(`{"a": 1} trailing`)); err == nil {
		t.Error("expected error for trailing data")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	orig := mustParse(t, `{"server": (host: "a", port: 80), "backup": (host: "b", port: 81)}`)
	d, err := ToYAML(orig)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromYAML(d)
	if err != nil {
		t.Fatal(err)
	}
	// struct names and shapes degrade, but values survive
	host, err := back.GetPath("$.server.host")
	if err != nil {
		t.Fatal(err)
	}
	if host.String != "a" {
		t.Errorf("host %q", host.String)
	}
	port, err := back.GetPath("$.backup.port")
	if err != nil {
		t.Fatal(err)
	}
	if port.Int64 != 81 {
		t.Errorf("port %d", port.Int64)
	}
}

func TestApplyPatch(t *testing.T) {
	doc := mustParse(t, `{"a": 1, "b": 2}`)
	got, err := ApplyPatch(doc, []byte(`[
		{"op": "replace", "path": "/a", "value": 3},
		{"op": "remove", "path": "/b"},
		{"op": "add", "path": "/c", "value": 4}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, mustParse(t, `{"a": 3, "c": 4}`)) {
		t.Errorf("got %v", got)
	}

	if _, err := ApplyPatch(doc, []byte(`[{"op": "replace", "path": "/missing", "value": 1}]`)); err == nil {
		t.Error("expected error for bad patch target")
	}
}

func TestApplyMergePatch(t *testing.T) {
	doc := mustParse(t, `{"a": 1, "b": 2}`)
	got, err := ApplyMergePatch(doc, []byte(`{"b": null, "c": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, mustParse(t, `{"a": 1, "c": 3}`)) {
		t.Errorf("got %v", got)
	}
}

func TestParseEncodeEntryPoints(t *testing.T) {
	n, err := Parse([]byte("Some(5)"))
	if err != nil {
		t.Fatal(err)
	}
	s, err := String(n)
	if err != nil {
		t.Fatal(err)
	}
	if s != "Some(5)" {
		t.Errorf("got %q", s)
	}
}
