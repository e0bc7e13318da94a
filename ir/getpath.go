package ir

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ron-format/go-ron/token"
)

var ErrPath = errors.New("bad path")

// GetPath resolves a $-rooted path of the form produced by Path against
// this node.  Steps are .field for named struct fields and string map
// keys, and [literal] for array indices, positional struct fields and
// constant map keys.
func (y *Node) GetPath(path string) (*Node, error) {
	if !strings.HasPrefix(path, "$") {
		return nil, fmt.Errorf("%w: %q must start with $", ErrPath, path)
	}
	cur := y
	i := 1
	for i < len(path) {
		switch path[i] {
		case '.':
			j := i + 1
			for j < len(path) && pathFieldChar(path[j]) {
				j++
			}
			if j == i+1 {
				return nil, fmt.Errorf("%w: empty field in %q", ErrPath, path)
			}
			field := path[i+1 : j]
			next := Get(cur, field)
			if next == nil {
				return nil, fmt.Errorf("%w: nothing under %q in %q", ErrPath, field, path)
			}
			cur = next
			i = j
		case '[':
			j, err := pathLitEnd(path, i+1)
			if err != nil {
				return nil, err
			}
			next, err := pathIndex(cur, path[i+1:j], path)
			if err != nil {
				return nil, err
			}
			cur = next
			i = j + 1
		default:
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrPath, path[i], path)
		}
	}
	return cur, nil
}

func pathFieldChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
	case c >= 'A' && c <= 'Z':
	case c >= '0' && c <= '9':
	case c == '_':
	default:
		return false
	}
	return true
}

// pathLitEnd finds the ] closing the literal starting at path[i],
// skipping over quoted string content.
func pathLitEnd(path string, i int) (int, error) {
	inStr := false
	for ; i < len(path); i++ {
		switch c := path[i]; {
		case inStr && c == '\\':
			i++
		case inStr && c == '"':
			inStr = false
		case inStr:
		case c == '"':
			inStr = true
		case c == ']':
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unterminated [ in %q", ErrPath, path)
}

func pathIndex(y *Node, lit, path string) (*Node, error) {
	switch y.Type {
	case ArrayType, StructType:
		if y.Type == StructType && y.Named {
			return nil, fmt.Errorf("%w: [%s] into named struct in %q", ErrPath, lit, path)
		}
		i, err := strconv.Atoi(lit)
		if err != nil {
			return nil, fmt.Errorf("%w: bad index %q in %q", ErrPath, lit, path)
		}
		if i < 0 || i >= len(y.Values) {
			return nil, fmt.Errorf("%w: index %d out of range in %q", ErrPath, i, path)
		}
		return y.Values[i], nil
	case MapType:
		key, err := pathKey(lit, path)
		if err != nil {
			return nil, err
		}
		v := y.Get(key)
		if v == nil {
			return nil, fmt.Errorf("%w: no key %s in %q", ErrPath, lit, path)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: cannot index %s in %q", ErrPath, y.Type, path)
	}
}

func pathKey(lit, path string) (*Node, error) {
	switch {
	case lit == "true":
		return FromBool(true), nil
	case lit == "false":
		return FromBool(false), nil
	case strings.HasPrefix(lit, `"`):
		s, err := token.Unquote(lit)
		if err != nil {
			return nil, fmt.Errorf("%w: %s in %q", ErrPath, err, path)
		}
		return FromString(s), nil
	case strings.ContainsAny(lit, ".eE"):
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad key %q in %q", ErrPath, lit, path)
		}
		return FromFloat(f), nil
	default:
		i, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad key %q in %q", ErrPath, lit, path)
		}
		return FromInt(i), nil
	}
}
