// Package ron parses, manipulates and serializes RON (Rusty Object
// Notation) values.
//
// RON extends a JSON-like surface with named structs, positional and
// named fields, homogeneous arrays and maps, and // comments:
//
//	Scene( // a tiny scene
//	    materials: {
//	        "metal": (reflectivity: 1.0),
//	    },
//	)
//
// The heavy lifting lives in the subpackages:
//
//   - github.com/ron-format/go-ron/token - tokenizer and positions
//   - github.com/ron-format/go-ron/parse - recursive descent parser
//   - github.com/ron-format/go-ron/ir - value representation
//   - github.com/ron-format/go-ron/encode - serializer
//   - github.com/ron-format/go-ron/libdiff - structural diff and patch
//   - github.com/ron-format/go-ron/eval - expression evaluation
//
// This package re-exports the common entry points and bridges RON
// values to JSON and YAML.
package ron
