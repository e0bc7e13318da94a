// Package parse parses RON format text into ir nodes.
package parse

import (
	"fmt"
	"strconv"

	"github.com/ron-format/go-ron/ir"
	"github.com/ron-format/go-ron/token"
)

// Parse consumes exactly one element and returns its ir tree.  Anything
// but whitespace and comments after the element is ErrTrailingData.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	pi := 0
	res, err := parseElement(toks, nil, &pi, 0, pOpts)
	if err != nil {
		return nil, err
	}
	if pi < len(toks) {
		return nil, &Error{Err: ErrTrailingData, Pos: toks[pi].Pos}
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func trackPos(node *ir.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
}

func parseElement(toks []token.Token, p *ir.Node, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	if *pi >= len(toks) {
		return nil, &Error{Err: ErrUnexpectedEOF}
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TIdent:
		// a leading identifier is only valid as a struct name
		if *pi+1 >= len(toks) || toks[*pi+1].Type != token.TLParen {
			return nil, &Error{
				Err:    ErrUnexpectedToken,
				Pos:    t.Pos,
				Detail: fmt.Sprintf("identifier %q not followed by '('", t.Bytes),
			}
		}
		*pi += 2
		return parseStruct(toks, p, string(t.Bytes), t.Pos, pi, depth+1, opts)
	case token.TLParen:
		*pi++
		return parseStruct(toks, p, "", t.Pos, pi, depth+1, opts)
	case token.TLSquare:
		*pi++
		return parseArr(toks, p, t.Pos, pi, depth+1, opts)
	case token.TLCurl:
		*pi++
		return parseMap(toks, p, t.Pos, pi, depth+1, opts)
	default:
		return parseConstant(toks, p, pi, opts)
	}
}

func parseConstant(toks []token.Token, p *ir.Node, pi *int, opts *parseOpts) (*ir.Node, error) {
	t := &toks[*pi]
	var node *ir.Node
	switch t.Type {
	case token.TString:
		s, err := token.Unquote(string(t.Bytes))
		if err != nil {
			return nil, &Error{Err: err, Pos: t.Pos}
		}
		node = ir.FromString(s)
	case token.TInteger:
		i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err != nil {
			return nil, &Error{Err: token.ErrNumber, Pos: t.Pos, Detail: string(t.Bytes)}
		}
		node = ir.FromInt(i)
	case token.TFloat:
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, &Error{Err: token.ErrNumber, Pos: t.Pos, Detail: string(t.Bytes)}
		}
		node = ir.FromFloat(f)
	case token.TTrue:
		node = ir.FromBool(true)
	case token.TFalse:
		node = ir.FromBool(false)
	default:
		return nil, &Error{Err: ErrUnexpectedToken, Pos: t.Pos, Detail: fmt.Sprintf("%q", t.Bytes)}
	}
	*pi++
	node.Parent = p
	trackPos(node, t.Pos, opts)
	return node, nil
}

func parseStruct(toks []token.Token, p *ir.Node, name string, pos *token.Pos, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	if depth > opts.maxDepth {
		return nil, &Error{Err: ErrDepthExceeded, Pos: pos}
	}
	res := &ir.Node{Type: ir.StructType, Name: name, Parent: p}
	trackPos(res, pos, opts)
	var seen map[string]bool
	for {
		if *pi >= len(toks) {
			return nil, &Error{Err: ErrUnexpectedEOF}
		}
		t := &toks[*pi]
		if t.Type == token.TRParen {
			*pi++
			return res, nil
		}
		named := t.Type == token.TIdent &&
			*pi+1 < len(toks) &&
			toks[*pi+1].Type == token.TColon
		if len(res.Values) == 0 {
			res.Named = named
		} else if named != res.Named {
			return nil, &Error{Err: ErrAmbiguousStructFields, Pos: t.Pos}
		}
		if res.Named {
			fname := string(t.Bytes)
			if seen == nil {
				seen = map[string]bool{}
			}
			if seen[fname] {
				return nil, &Error{Err: ErrDuplicateField, Pos: t.Pos, Detail: fname}
			}
			seen[fname] = true
			*pi += 2
			val, err := parseElement(toks, res, pi, depth, opts)
			if err != nil {
				return nil, err
			}
			val.ParentIndex = len(res.Values)
			val.ParentField = fname
			res.FieldNames = append(res.FieldNames, fname)
			res.Values = append(res.Values, val)
		} else {
			val, err := parseElement(toks, res, pi, depth, opts)
			if err != nil {
				return nil, err
			}
			val.ParentIndex = len(res.Values)
			res.Values = append(res.Values, val)
		}
		if err := eltSep(toks, pi, token.TRParen); err != nil {
			return nil, err
		}
		if toks[*pi-1].Type == token.TRParen {
			return res, nil
		}
	}
}

func parseArr(toks []token.Token, p *ir.Node, pos *token.Pos, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	if depth > opts.maxDepth {
		return nil, &Error{Err: ErrDepthExceeded, Pos: pos}
	}
	res := &ir.Node{Type: ir.ArrayType, Parent: p}
	trackPos(res, pos, opts)
	var want ir.Shape
	for {
		if *pi >= len(toks) {
			return nil, &Error{Err: ErrUnexpectedEOF}
		}
		t := &toks[*pi]
		if t.Type == token.TRSquare {
			*pi++
			return res, nil
		}
		eltPos := t.Pos
		elt, err := parseElement(toks, res, pi, depth, opts)
		if err != nil {
			return nil, err
		}
		got := ir.ShapeOf(elt)
		if len(res.Values) == 0 {
			want = got
		} else if got != want {
			return nil, &Error{
				Err:   ErrHeterogeneousArray,
				Pos:   eltPos,
				Index: len(res.Values),
				Want:  want,
				Got:   got,
			}
		}
		elt.ParentIndex = len(res.Values)
		res.Values = append(res.Values, elt)
		if err := eltSep(toks, pi, token.TRSquare); err != nil {
			return nil, err
		}
		if toks[*pi-1].Type == token.TRSquare {
			return res, nil
		}
	}
}

func parseMap(toks []token.Token, p *ir.Node, pos *token.Pos, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	if depth > opts.maxDepth {
		return nil, &Error{Err: ErrDepthExceeded, Pos: pos}
	}
	res := &ir.Node{Type: ir.MapType, Parent: p}
	trackPos(res, pos, opts)
	var (
		keyType  ir.Type
		valShape ir.Shape
		keysSeen = map[uint64][]int{}
	)
	for {
		if *pi >= len(toks) {
			return nil, &Error{Err: ErrUnexpectedEOF}
		}
		t := &toks[*pi]
		if t.Type == token.TRCurl {
			*pi++
			return res, nil
		}
		keyPos := t.Pos
		switch t.Type {
		case token.TString, token.TInteger, token.TFloat, token.TTrue, token.TFalse:
		default:
			return nil, &Error{
				Err:    ErrUnexpectedToken,
				Pos:    t.Pos,
				Detail: fmt.Sprintf("map key must be a constant, got %q", t.Bytes),
			}
		}
		key, err := parseConstant(toks, res, pi, opts)
		if err != nil {
			return nil, err
		}
		if len(res.Keys) == 0 {
			keyType = key.Type
		} else if key.Type != keyType {
			return nil, &Error{
				Err:   ErrHeterogeneousMapKey,
				Pos:   keyPos,
				Index: len(res.Keys),
				Want:  ir.ShapeOf(res.Keys[0]),
				Got:   ir.ShapeOf(key),
			}
		}
		h := key.Hash()
		for _, i := range keysSeen[h] {
			if ir.Compare(res.Keys[i], key) == 0 {
				return nil, &Error{
					Err:    ErrDuplicateKey,
					Pos:    keyPos,
					Detail: key.Path(),
				}
			}
		}
		if *pi >= len(toks) {
			return nil, &Error{Err: ErrUnexpectedEOF}
		}
		if toks[*pi].Type != token.TColon {
			return nil, &Error{
				Err:    ErrUnexpectedToken,
				Pos:    toks[*pi].Pos,
				Detail: fmt.Sprintf("expected ':', got %q", toks[*pi].Bytes),
			}
		}
		*pi++
		valPos := (*token.Pos)(nil)
		if *pi < len(toks) {
			valPos = toks[*pi].Pos
		}
		val, err := parseElement(toks, res, pi, depth, opts)
		if err != nil {
			return nil, err
		}
		got := ir.ShapeOf(val)
		if len(res.Values) == 0 {
			valShape = got
		} else if got != valShape {
			return nil, &Error{
				Err:   ErrHeterogeneousMapValue,
				Pos:   valPos,
				Index: len(res.Values),
				Want:  valShape,
				Got:   got,
			}
		}
		i := len(res.Keys)
		key.ParentIndex = i
		val.ParentIndex = i
		if key.Type == ir.StringType {
			key.ParentField = key.String
			val.ParentField = key.String
		}
		keysSeen[h] = append(keysSeen[h], i)
		res.Keys = append(res.Keys, key)
		res.Values = append(res.Values, val)
		if err := eltSep(toks, pi, token.TRCurl); err != nil {
			return nil, err
		}
		if toks[*pi-1].Type == token.TRCurl {
			return res, nil
		}
	}
}

// eltSep consumes the separator after an element: a comma, a closing
// bracket, or a comma followed by the closing bracket (trailing comma).
func eltSep(toks []token.Token, pi *int, close token.TokenType) error {
	if *pi >= len(toks) {
		return &Error{Err: ErrUnexpectedEOF}
	}
	switch toks[*pi].Type {
	case close:
		*pi++
		return nil
	case token.TComma:
		*pi++
		if *pi < len(toks) && toks[*pi].Type == close {
			*pi++
		}
		return nil
	default:
		return &Error{
			Err:    ErrUnexpectedToken,
			Pos:    toks[*pi].Pos,
			Detail: fmt.Sprintf("expected ',' or %q, got %q", closeByte(close), toks[*pi].Bytes),
		}
	}
}

func closeByte(t token.TokenType) string {
	switch t {
	case token.TRParen:
		return ")"
	case token.TRSquare:
		return "]"
	default:
		return "}"
	}
}
