package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ron-format/go-ron/ir"
	"github.com/ron-format/go-ron/token"
)

var (
	ErrUnexpectedToken       = errors.New("unexpected token")
	ErrUnexpectedEOF         = errors.New("unexpected end of input")
	ErrAmbiguousStructFields = errors.New("ambiguous struct fields")
	ErrDuplicateField        = errors.New("duplicate field")
	ErrDuplicateKey          = errors.New("duplicate key")
	ErrHeterogeneousArray    = errors.New("heterogeneous array")
	ErrHeterogeneousMapKey   = errors.New("heterogeneous map key")
	ErrHeterogeneousMapValue = errors.New("heterogeneous map value")
	ErrTrailingData          = errors.New("trailing data")
	ErrDepthExceeded         = errors.New("depth exceeded")
)

// Error is a structured parse error.  Err is one of the sentinel errors
// above (or a token package sentinel for literal conversion failures),
// Pos the source position of the offending token.  For homogeneity
// violations Index names the offending element and Want/Got the
// canonical and conflicting shapes.
type Error struct {
	Err    error
	Pos    *token.Pos
	Detail string

	Index     int
	Want, Got ir.Shape
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Err.Error())
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	if e.Got != "" {
		fmt.Fprintf(&sb, ": element %d has shape %s, want %s", e.Index, e.Got, e.Want)
	}
	if e.Pos != nil {
		sb.WriteString(" at ")
		sb.WriteString(e.Pos.String())
	} else {
		sb.WriteString(" at end of input")
	}
	return sb.String()
}
