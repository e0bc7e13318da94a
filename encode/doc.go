// Package encode encodes ir nodes to RON format text.
//
// # Usage
//
//	// compact, single line
//	node := ir.Named("Vec2",
//	    ir.Field{"x", ir.FromFloat(1)},
//	    ir.Field{"y", ir.FromFloat(2)},
//	)
//	err := encode.Encode(node, w)
//
//	// indented multi-line form
//	err = encode.Encode(node, w, encode.EncodePretty(true))
//
// Encoding is the inverse of parsing: for any node without NaN or
// infinite floats, parsing the output yields an equal node.
//
// # Related Packages
//
//   - github.com/ron-format/go-ron/ir - value representation
//   - github.com/ron-format/go-ron/parse - parse text to ir
package encode
