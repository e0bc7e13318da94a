package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ron-format/go-ron/ir"
	"github.com/ron-format/go-ron/token"
)

// ErrNonRepresentable is returned for values the text form cannot carry,
// such as NaN or infinite floats.
var ErrNonRepresentable = errors.New("value not representable")

type EncState struct {
	pretty   bool
	indent   int
	depth    int
	trailing bool

	Color func(ir.Type, ColorAttr, string) string
}

// default configuration: compact, indent 4, no trailing commas
func newEncState() *EncState {
	return &EncState{indent: 4}
}

// Encode writes node to w.  The default is the compact single-line form;
// see EncodePretty.  The output parses back to a value equal to node.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState()
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

// String encodes node into a string.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.IntType:
		return encodeInt(node, w, es)
	case ir.FloatType:
		return encodeFloat(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.MapType:
		return encodeMap(node, w, es)
	case ir.StructType:
		return encodeStruct(node, w, es)
	default:
		panic("type")
	}
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeColored(w io.Writer, es *EncState, t ir.Type, attr ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, attr, s)
	}
	return writeString(w, s)
}

func writeNL(w io.Writer, es *EncState) error {
	if !es.pretty {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

// writeEltSep writes the separator after an element at position i of n.
func writeEltSep(w io.Writer, es *EncState, cType ir.Type, i, n int) error {
	last := i == n-1
	if es.pretty {
		if last && !es.trailing {
			return nil
		}
		return writeColored(w, es, cType, SepColor, ",")
	}
	if last {
		return nil
	}
	return writeColored(w, es, cType, SepColor, ", ")
}

func writeOpen(w io.Writer, es *EncState, cType ir.Type, open string) error {
	if err := writeColored(w, es, cType, SepColor, open); err != nil {
		return err
	}
	es.depth++
	return nil
}

func writeClose(w io.Writer, es *EncState, cType ir.Type, close string) error {
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeColored(w, es, cType, SepColor, close)
}

// Constant encoding

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	return writeColored(w, es, ir.BoolType, ValueColor, strconv.FormatBool(node.Bool))
}

func encodeInt(node *ir.Node, w io.Writer, es *EncState) error {
	return writeColored(w, es, ir.IntType, ValueColor, strconv.FormatInt(node.Int64, 10))
}

func encodeFloat(node *ir.Node, w io.Writer, es *EncState) error {
	f := node.Float64
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %s at %s", ErrNonRepresentable,
			strconv.FormatFloat(f, 'g', -1, 64), node.Path())
	}
	v := strconv.FormatFloat(f, 'g', -1, 64)
	// keep a mark of floatness so the value parses back as a float
	if !strings.ContainsAny(v, ".eE") {
		v += ".0"
	}
	return writeColored(w, es, ir.FloatType, ValueColor, v)
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	return writeColored(w, es, ir.StringType, ValueColor, token.Quote(node.String))
}

// Composite encoding

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeColored(w, es, ir.ArrayType, SepColor, "[]")
	}
	if err := writeOpen(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	for i, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if err := writeEltSep(w, es, ir.ArrayType, i, len(node.Values)); err != nil {
			return err
		}
	}
	return writeClose(w, es, ir.ArrayType, "]")
}

func encodeMap(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeColored(w, es, ir.MapType, SepColor, "{}")
	}
	if err := writeOpen(w, es, ir.MapType, "{"); err != nil {
		return err
	}
	for i, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeMapKey(node.Keys[i], w, es); err != nil {
			return err
		}
		if err := writeColored(w, es, ir.MapType, SepColor, ": "); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if err := writeEltSep(w, es, ir.MapType, i, len(node.Values)); err != nil {
			return err
		}
	}
	return writeClose(w, es, ir.MapType, "}")
}

func encodeMapKey(key *ir.Node, w io.Writer, es *EncState) error {
	switch key.Type {
	case ir.BoolType:
		return writeColored(w, es, key.Type, FieldColor, strconv.FormatBool(key.Bool))
	case ir.IntType:
		return writeColored(w, es, key.Type, FieldColor, strconv.FormatInt(key.Int64, 10))
	case ir.FloatType:
		f := key.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %s as map key", ErrNonRepresentable,
				strconv.FormatFloat(f, 'g', -1, 64))
		}
		v := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(v, ".eE") {
			v += ".0"
		}
		return writeColored(w, es, key.Type, FieldColor, v)
	case ir.StringType:
		return writeColored(w, es, key.Type, FieldColor, token.Quote(key.String))
	default:
		return fmt.Errorf("%w: %s map key at %s", ErrNonRepresentable, key.Type, key.Path())
	}
}

func encodeStruct(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Name != "" {
		if err := writeColored(w, es, ir.StructType, NameColor, node.Name); err != nil {
			return err
		}
	}
	if len(node.Values) == 0 {
		return writeColored(w, es, ir.StructType, SepColor, "()")
	}
	if err := writeOpen(w, es, ir.StructType, "("); err != nil {
		return err
	}
	for i, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if node.Named {
			if err := writeColored(w, es, ir.StructType, FieldColor, node.FieldNames[i]); err != nil {
				return err
			}
			if err := writeColored(w, es, ir.StructType, SepColor, ": "); err != nil {
				return err
			}
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if err := writeEltSep(w, es, ir.StructType, i, len(node.Values)); err != nil {
			return err
		}
	}
	return writeClose(w, es, ir.StructType, ")")
}
