package ron

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ron-format/go-ron/ir"
)

// ToJSON converts a RON value to JSON.  The conversion is lossy where
// JSON has no counterpart: a named-field struct becomes an object, a
// positional struct an array, the unit value null, and struct names
// disappear.  Non-string map keys become their literal text, and map
// order is not preserved.
func ToJSON(node *ir.Node) ([]byte, error) {
	return json.Marshal(ir.ToAny(node))
}

// FromJSON converts a JSON document to a RON value.  Numbers without a
// fraction or exponent become ints, others floats.  Heterogeneous JSON
// arrays and objects come back as anonymous structs, restoring the
// homogeneity RON requires of arrays and maps.
func FromJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return ir.FromAny(v)
}
