package libdiff

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ron-format/go-ron/ir"
	"github.com/ron-format/go-ron/parse"
	"github.com/ron-format/go-ron/token"
)

var ErrBadPath = errors.New("bad path")

// step is one navigation step of a path: a .field or a [literal].
type step struct {
	field string
	lit   *ir.Node
}

func parsePath(p string) ([]step, error) {
	if !strings.HasPrefix(p, "$") {
		return nil, fmt.Errorf("%w: %q must start with $", ErrBadPath, p)
	}
	var steps []step
	i := 1
	for i < len(p) {
		switch p[i] {
		case '.':
			j := i + 1
			for j < len(p) && fieldChar(p[j]) {
				j++
			}
			if j == i+1 {
				return nil, fmt.Errorf("%w: empty field in %q", ErrBadPath, p)
			}
			steps = append(steps, step{field: p[i+1 : j]})
			i = j
		case '[':
			j, err := litEnd(p, i+1)
			if err != nil {
				return nil, err
			}
			lit, perr := parse.ParseString(p[i+1 : j])
			if perr != nil || !lit.Type.Constant() {
				return nil, fmt.Errorf("%w: bad literal %q in %q", ErrBadPath, p[i+1:j], p)
			}
			steps = append(steps, step{lit: lit})
			i = j + 1
		default:
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrBadPath, p[i], p)
		}
	}
	return steps, nil
}

// litEnd finds the ] closing the literal starting at p[i], skipping
// over quoted string content.
func litEnd(p string, i int) (int, error) {
	inStr := false
	for ; i < len(p); i++ {
		switch c := p[i]; {
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
	return 0, fmt.Errorf("%w: unterminated [ in %q", ErrBadPath, p)
}

// fieldLike mirrors the .field form of ir.Path: non-empty runs of
// letters, digits and underscores.
func fieldLike(f string) bool {
	if f == "" {
		return false
	}
	for i := 0; i < len(f); i++ {
		if !fieldChar(f[i]) {
			return false
		}
	}
	return true
}

func fieldChar(c byte) bool {
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

// keyLiteral renders a constant map key so that it parses back to an
// equal node.
func keyLiteral(key *ir.Node) string {
	switch key.Type {
	case ir.BoolType:
		return strconv.FormatBool(key.Bool)
	case ir.IntType:
		return strconv.FormatInt(key.Int64, 10)
	case ir.FloatType:
		v := strconv.FormatFloat(key.Float64, 'g', -1, 64)
		if !strings.ContainsAny(v, ".eE") {
			v += ".0"
		}
		return v
	default:
		return token.Quote(key.String)
	}
}

// loc addresses a slot under a container.  container == nil means the
// root itself.  index -1 marks an absent map key, index len(Values) an
// array append position; both are only valid targets for Insert.
type loc struct {
	container *ir.Node
	index     int
	key       *ir.Node
}

func (l *loc) get() *ir.Node {
	if l.container == nil || l.index < 0 || l.index >= len(l.container.Values) {
		return nil
	}
	return l.container.Values[l.index]
}

func navigate(root *ir.Node, steps []step, path string) (*loc, error) {
	if len(steps) == 0 {
		return &loc{}, nil
	}
	cur := root
	for _, s := range steps[:len(steps)-1] {
		l, err := slot(cur, s, path)
		if err != nil {
			return nil, err
		}
		next := l.get()
		if next == nil {
			return nil, fmt.Errorf("%w: %q has no such element", ErrBadPath, path)
		}
		cur = next
	}
	return slot(cur, steps[len(steps)-1], path)
}

func slot(cur *ir.Node, s step, path string) (*loc, error) {
	if s.field != "" {
		switch cur.Type {
		case ir.MapType:
			for i, k := range cur.Keys {
				if k.Type == ir.StringType && k.String == s.field {
					return &loc{container: cur, index: i, key: k}, nil
				}
			}
			return &loc{container: cur, index: -1, key: ir.FromString(s.field)}, nil
		case ir.StructType:
			if cur.Named {
				for i, name := range cur.FieldNames {
					if name == s.field {
						return &loc{container: cur, index: i}, nil
					}
				}
			}
			return nil, fmt.Errorf("%w: no field %q at %q", ErrBadPath, s.field, path)
		default:
			return nil, fmt.Errorf("%w: .%s into %s at %q", ErrBadPath, s.field, cur.Type, path)
		}
	}
	switch cur.Type {
	case ir.ArrayType:
		if s.lit.Type != ir.IntType {
			return nil, fmt.Errorf("%w: non-integer array index in %q", ErrBadPath, path)
		}
		i := int(s.lit.Int64)
		if i < 0 || i > len(cur.Values) {
			return nil, fmt.Errorf("%w: index %d out of range in %q", ErrBadPath, i, path)
		}
		return &loc{container: cur, index: i}, nil
	case ir.StructType:
		if cur.Named || s.lit.Type != ir.IntType {
			return nil, fmt.Errorf("%w: bad struct step in %q", ErrBadPath, path)
		}
		i := int(s.lit.Int64)
		if i < 0 || i >= len(cur.Values) {
			return nil, fmt.Errorf("%w: index %d out of range in %q", ErrBadPath, i, path)
		}
		return &loc{container: cur, index: i}, nil
	case ir.MapType:
		for i, k := range cur.Keys {
			if ir.Equal(k, s.lit) {
				return &loc{container: cur, index: i, key: k}, nil
			}
		}
		return &loc{container: cur, index: -1, key: s.lit}, nil
	default:
		return nil, fmt.Errorf("%w: cannot index %s at %q", ErrBadPath, cur.Type, path)
	}
}
