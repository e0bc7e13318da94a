package parse

import (
	"github.com/ron-format/go-ron/ir"
	"github.com/ron-format/go-ron/token"
)

// DefaultMaxDepth bounds nesting of structs, arrays and maps so that
// adversarial input cannot exhaust the call stack.
const DefaultMaxDepth = 128

type parseOpts struct {
	maxDepth  int
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParseMaxDepth overrides DefaultMaxDepth.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParsePositions records the source position of every parsed node into m.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}
