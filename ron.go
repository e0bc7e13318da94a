package ron

import (
	"io"

	"github.com/ron-format/go-ron/encode"
	"github.com/ron-format/go-ron/ir"
	"github.com/ron-format/go-ron/parse"
)

// Parse parses a single RON element.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// ParseString parses a single RON element from a string.
func ParseString(s string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseString(s, opts...)
}

// Encode writes node to w as RON text.
func Encode(node *ir.Node, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(node, w, opts...)
}

// String encodes node as RON text.
func String(node *ir.Node, opts ...encode.EncodeOption) (string, error) {
	return encode.String(node, opts...)
}
