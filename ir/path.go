package ir

import (
	"strconv"
	"strings"

	"github.com/ron-format/go-ron/token"
)

// Path returns a $-rooted path describing this node's position in its
// tree.  Named struct fields and string-keyed map entries render as
// .field; array elements, positional struct fields and non-string map
// keys render in [...] form.
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case StructType:
		if y.Parent.Named {
			return y.Parent.Path() + "." + y.ParentField
		}
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	case MapType:
		key := y.Parent.Keys[y.ParentIndex]
		if key.Type == StringType && identLike(key.String) {
			return y.Parent.Path() + "." + key.String
		}
		return y.Parent.Path() + "[" + keyLiteral(key) + "]"
	default:
		panic("parent but not in container")
	}
}

func identLike(f string) bool {
	if f == "" {
		return false
	}
	return strings.IndexFunc(f, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return true
		}
		return false
	}) == -1
}

func keyLiteral(key *Node) string {
	switch key.Type {
	case BoolType:
		return strconv.FormatBool(key.Bool)
	case IntType:
		return strconv.FormatInt(key.Int64, 10)
	case FloatType:
		s := strconv.FormatFloat(key.Float64, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case StringType:
		return token.Quote(key.String)
	default:
		panic("non-constant map key")
	}
}
