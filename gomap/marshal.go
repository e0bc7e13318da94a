package gomap

import (
	"github.com/ron-format/go-ron/encode"
	"github.com/ron-format/go-ron/parse"
)

// Marshal converts a Go value to RON text.
func Marshal(v any, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := ToIR(v)
	if err != nil {
		return nil, err
	}
	s, err := encode.String(node, opts...)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Unmarshal parses RON text and fills the Go value pointed to by v.
func Unmarshal(d []byte, v any) error {
	node, err := parse.Parse(d)
	if err != nil {
		return err
	}
	return FromIR(node, v)
}
