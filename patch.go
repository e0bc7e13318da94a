package ron

import (
	"github.com/ron-format/go-ron/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyPatch applies an RFC 6902 JSON patch to a RON value through the
// JSON bridge.  The ToJSON lossiness rules apply: structs degrade to
// objects or arrays on the way through.  For lossless RON-native
// patching see the libdiff package.
func ApplyPatch(node *ir.Node, patch []byte) (*ir.Node, error) {
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	doc, err := ToJSON(node)
	if err != nil {
		return nil, err
	}
	out, err := p.Apply(doc)
	if err != nil {
		return nil, err
	}
	return FromJSON(out)
}

// ApplyMergePatch applies an RFC 7386 merge patch through the JSON
// bridge.
func ApplyMergePatch(node *ir.Node, patch []byte) (*ir.Node, error) {
	doc, err := ToJSON(node)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, err
	}
	return FromJSON(out)
}
