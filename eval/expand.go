package eval

import (
	"fmt"
	"strings"

	"github.com/ron-format/go-ron/encode"
	"github.com/ron-format/go-ron/ir"
)

// Expand returns a copy of doc with $[expr] segments inside strings
// replaced by their evaluated results.  Map keys are left untouched so
// expansion cannot introduce duplicate keys.
func Expand(doc *ir.Node, env Env) (*ir.Node, error) {
	res := doc.Clone()
	res.Parent = nil
	res.ParentIndex = 0
	res.ParentField = ""
	err := res.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Type != ir.StringType {
			return true, nil
		}
		s, err := expandString(y.String, y, env)
		if err != nil {
			return false, err
		}
		y.String = s
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ExpandString expands $[expr] segments in v.  Inside an expression,
// \] keeps a literal ] and \\ a literal backslash.  A $[ with no
// closing ] is kept as literal text.
func ExpandString(v string, env Env) (string, error) {
	return expandString(v, nil, env)
}

func expandString(v string, doc *ir.Node, env Env) (string, error) {
	if !strings.Contains(v, "$[") {
		return v, nil
	}
	var out []byte
	i := 0
	for i < len(v) {
		j := strings.Index(v[i:], "$[")
		if j < 0 {
			out = append(out, v[i:]...)
			break
		}
		out = append(out, v[i:i+j]...)
		i += j + 2
		var key []byte
		closed := false
		for i < len(v) {
			c := v[i]
			if c == '\\' && i+1 < len(v) {
				key = append(key, v[i+1])
				i += 2
				continue
			}
			if c == ']' {
				closed = true
				i++
				break
			}
			key = append(key, c)
			i++
		}
		if !closed {
			out = append(out, "$["...)
			out = append(out, key...)
			break
		}
		x, err := eval(doc, strings.TrimSpace(string(key)), env)
		if err != nil {
			return "", err
		}
		s, err := anyString(x)
		if err != nil {
			return "", fmt.Errorf("cannot interpolate %q: %w", string(key), err)
		}
		out = append(out, s...)
	}
	return string(out), nil
}

func anyString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case *ir.Node:
		if x.Type == ir.StringType {
			return x.String, nil
		}
		return encode.String(x)
	default:
		node, err := ir.FromAny(v)
		if err != nil {
			return "", err
		}
		return encode.String(node)
	}
}
