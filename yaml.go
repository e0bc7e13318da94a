package ron

import (
	"github.com/ron-format/go-ron/ir"

	"github.com/goccy/go-yaml"
)

// ToYAML converts a RON value to YAML, with the same lossiness rules as
// ToJSON.
func ToYAML(node *ir.Node) ([]byte, error) {
	return yaml.Marshal(ir.ToAny(node))
}

// FromYAML converts a YAML document to a RON value.
func FromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return ir.FromAny(v)
}
