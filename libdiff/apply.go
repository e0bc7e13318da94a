package libdiff

import (
	"errors"
	"fmt"

	"github.com/ron-format/go-ron/debug"
	"github.com/ron-format/go-ron/ir"
)

var (
	ErrBadDiff = errors.New("malformed diff")
	ErrNoMatch = errors.New("diff does not match value")
)

// Apply applies an edit script produced by Diff to orig and returns the
// patched value.  orig is not modified.  Edits carry the values they
// expect to find, so applying a diff to a value it was not computed
// from fails with ErrNoMatch rather than corrupting data.
func Apply(orig, diff *ir.Node) (*ir.Node, error) {
	if diff.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: expected an array of edits, got %s", ErrBadDiff, ir.ShapeOf(diff))
	}
	res := orig.Clone()
	res.Parent = nil
	res.ParentIndex = 0
	res.ParentField = ""
	for _, e := range diff.Values {
		var err error
		res, err = applyEdit(res, e)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func applyEdit(root, e *ir.Node) (*ir.Node, error) {
	if e.Type != ir.StructType || e.Named || e.Name != AtName ||
		len(e.Values) != 2 || e.Values[0].Type != ir.StringType {
		return nil, fmt.Errorf("%w: expected At(path, edit), got %s", ErrBadDiff, ir.ShapeOf(e))
	}
	path := e.Values[0].String
	op := e.Values[1]
	if debug.Diff() {
		debug.Logf("apply %s at %s\n", op.Name, path)
	}
	if op.Type != ir.StructType || op.Named {
		return nil, fmt.Errorf("%w: bad edit at %q", ErrBadDiff, path)
	}
	steps, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	l, err := navigate(root, steps, path)
	if err != nil {
		return nil, err
	}
	switch op.Name {
	case ReplaceName:
		if len(op.Values) != 2 {
			return nil, fmt.Errorf("%w: Replace wants two values at %q", ErrBadDiff, path)
		}
		return applyReplace(root, l, op.Values[0], op.Values[1], path)
	case TextName:
		if len(op.Values) != 1 || op.Values[0].Type != ir.StringType {
			return nil, fmt.Errorf("%w: Text wants one string at %q", ErrBadDiff, path)
		}
		return applyText(root, l, op.Values[0].String, path)
	case InsertName:
		if len(op.Values) != 1 {
			return nil, fmt.Errorf("%w: Insert wants one value at %q", ErrBadDiff, path)
		}
		if err := applyInsert(l, op.Values[0], path); err != nil {
			return nil, err
		}
		return root, nil
	case DeleteName:
		if len(op.Values) != 1 {
			return nil, fmt.Errorf("%w: Delete wants one value at %q", ErrBadDiff, path)
		}
		if err := applyDelete(l, op.Values[0], path); err != nil {
			return nil, err
		}
		return root, nil
	default:
		return nil, fmt.Errorf("%w: unknown edit %s at %q", ErrBadDiff, op.Name, path)
	}
}

func applyReplace(root *ir.Node, l *loc, from, to *ir.Node, path string) (*ir.Node, error) {
	cur := root
	if l.container != nil {
		cur = l.get()
		if cur == nil {
			return nil, fmt.Errorf("%w: nothing at %q", ErrNoMatch, path)
		}
	}
	if !ir.Equal(cur, from) {
		return nil, fmt.Errorf("%w: value at %q differs from edit origin", ErrNoMatch, path)
	}
	repl := to.Clone()
	if l.container == nil {
		repl.Parent = nil
		repl.ParentIndex = 0
		repl.ParentField = ""
		return repl, nil
	}
	if err := checkShape(l, repl, path); err != nil {
		return nil, err
	}
	setSlot(l, repl)
	return root, nil
}

func applyText(root *ir.Node, l *loc, patchText, path string) (*ir.Node, error) {
	cur := root
	if l.container != nil {
		cur = l.get()
	}
	if cur == nil || cur.Type != ir.StringType {
		return nil, fmt.Errorf("%w: no string at %q", ErrNoMatch, path)
	}
	patched, err := patchString(cur.String, patchText)
	if err != nil {
		return nil, err
	}
	repl := ir.FromString(patched)
	if l.container == nil {
		return repl, nil
	}
	setSlot(l, repl)
	return root, nil
}

func applyInsert(l *loc, v *ir.Node, path string) error {
	c := l.container
	if c == nil {
		return fmt.Errorf("%w: cannot insert at the root", ErrBadDiff)
	}
	repl := v.Clone()
	switch c.Type {
	case ir.ArrayType:
		if err := checkShape(l, repl, path); err != nil {
			return err
		}
		i := l.index
		c.Values = append(c.Values, nil)
		copy(c.Values[i+1:], c.Values[i:])
		c.Values[i] = repl
		for j := i; j < len(c.Values); j++ {
			c.Values[j].Parent = c
			c.Values[j].ParentIndex = j
		}
		return nil
	case ir.MapType:
		if l.index >= 0 {
			return fmt.Errorf("%w: key already present at %q", ErrNoMatch, path)
		}
		if len(c.Keys) > 0 {
			if l.key.Type != c.Keys[0].Type {
				return fmt.Errorf("%w: insert at %q breaks key homogeneity", ErrBadDiff, path)
			}
			if ir.ShapeOf(repl) != ir.ShapeOf(c.Values[0]) {
				return fmt.Errorf("%w: insert at %q breaks homogeneity", ErrBadDiff, path)
			}
		}
		key := l.key.Clone()
		i := len(c.Keys)
		key.Parent = c
		key.ParentIndex = i
		repl.Parent = c
		repl.ParentIndex = i
		if key.Type == ir.StringType {
			key.ParentField = key.String
			repl.ParentField = key.String
		}
		c.Keys = append(c.Keys, key)
		c.Values = append(c.Values, repl)
		return nil
	default:
		return fmt.Errorf("%w: cannot insert into %s at %q", ErrBadDiff, c.Type, path)
	}
}

func applyDelete(l *loc, v *ir.Node, path string) error {
	c := l.container
	if c == nil {
		return fmt.Errorf("%w: cannot delete the root", ErrBadDiff)
	}
	cur := l.get()
	if cur == nil {
		return fmt.Errorf("%w: nothing at %q", ErrNoMatch, path)
	}
	if !ir.Equal(cur, v) {
		return fmt.Errorf("%w: value at %q differs from edit origin", ErrNoMatch, path)
	}
	i := l.index
	switch c.Type {
	case ir.ArrayType:
		c.Values = append(c.Values[:i], c.Values[i+1:]...)
		for j := i; j < len(c.Values); j++ {
			c.Values[j].ParentIndex = j
		}
		return nil
	case ir.MapType:
		c.Keys = append(c.Keys[:i], c.Keys[i+1:]...)
		c.Values = append(c.Values[:i], c.Values[i+1:]...)
		for j := i; j < len(c.Values); j++ {
			c.Keys[j].ParentIndex = j
			c.Values[j].ParentIndex = j
		}
		return nil
	default:
		return fmt.Errorf("%w: cannot delete from %s at %q", ErrBadDiff, c.Type, path)
	}
}

// checkShape rejects replacements and insertions that would make an
// array or map heterogeneous.
func checkShape(l *loc, v *ir.Node, path string) error {
	c := l.container
	if c.Type != ir.ArrayType && c.Type != ir.MapType {
		return nil
	}
	for i, other := range c.Values {
		if i == l.index {
			continue
		}
		if ir.ShapeOf(other) != ir.ShapeOf(v) {
			return fmt.Errorf("%w: edit at %q breaks homogeneity", ErrBadDiff, path)
		}
		break
	}
	return nil
}

func setSlot(l *loc, v *ir.Node) {
	c := l.container
	v.Parent = c
	v.ParentIndex = l.index
	v.ParentField = c.Values[l.index].ParentField
	c.Values[l.index] = v
}
