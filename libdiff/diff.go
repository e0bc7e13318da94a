package libdiff

import (
	"strconv"

	"github.com/ron-format/go-ron/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff computes an edit script turning from into to.  The result is an
// array of At(path, edit) structs, empty when the values are equal.
// Applying the edits in order with Apply reconstructs to.
func Diff(from, to *ir.Node) *ir.Node {
	var edits []*ir.Node
	diffNode("$", from, to, &edits)
	return ir.FromSlice(edits)
}

func diffNode(path string, from, to *ir.Node, edits *[]*ir.Node) {
	if ir.ShapeOf(from) != ir.ShapeOf(to) {
		*edits = append(*edits, replaceEdit(path, from, to))
		return
	}
	switch from.Type {
	case ir.BoolType, ir.IntType, ir.FloatType:
		if !ir.Equal(from, to) {
			*edits = append(*edits, replaceEdit(path, from, to))
		}
	case ir.StringType:
		if from.String != to.String {
			*edits = append(*edits, textEdit(path, from.String, to.String))
		}
	case ir.StructType:
		// equal shapes imply same name, style, arity and field names
		for i, fv := range from.Values {
			diffNode(structPath(path, from, i), fv, to.Values[i], edits)
		}
	case ir.ArrayType:
		diffArray(path, from, to, edits)
	case ir.MapType:
		diffMap(path, from, to, edits)
	}
}

// diffArray aligns the two element sequences by mapping element hashes
// to runes and running a rune-level diff over them.
func diffArray(path string, from, to *ir.Node, edits *[]*ir.Node) {
	hashes := map[uint64]rune{}
	fromRunes := mapEltsTo(hashes, from)
	toRunes := mapEltsTo(hashes, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	// ci tracks the element index in the array as the edits so far
	// transform it, which is what the emitted paths refer to.
	fi, ti, ci := 0, 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				*edits = append(*edits, deleteEdit(idxPath(path, ci), from.Values[fi]))
				fi++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				// equal hashes, but recurse in case of a collision
				diffNode(idxPath(path, ci), from.Values[fi], to.Values[ti], edits)
				fi++
				ti++
				ci++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				*edits = append(*edits, insertEdit(idxPath(path, ci), to.Values[ti]))
				ti++
				ci++
			}
		}
	}
}

func mapEltsTo(m map[uint64]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		h := v.Hash()
		r, ok := m[h]
		if !ok {
			r = rune(len(m))
			m[h] = r
		}
		rs[i] = r
	}
	return rs
}

func diffMap(path string, from, to *ir.Node, edits *[]*ir.Node) {
	if !mapOrderPreserved(from, to) {
		*edits = append(*edits, replaceEdit(path, from, to))
		return
	}
	for i, k := range from.Keys {
		if to.Get(k) == nil {
			*edits = append(*edits, deleteEdit(keyPath(path, k), from.Values[i]))
		}
	}
	for i, k := range to.Keys {
		fv := from.Get(k)
		if fv == nil {
			*edits = append(*edits, insertEdit(keyPath(path, k), to.Values[i]))
		} else {
			diffNode(keyPath(path, k), fv, to.Values[i], edits)
		}
	}
}

// mapOrderPreserved reports whether deleting the keys absent from to
// and appending the keys absent from from yields exactly to's key
// order.  When it does not, the whole map is replaced instead.
func mapOrderPreserved(from, to *ir.Node) bool {
	var sim []*ir.Node
	for _, k := range from.Keys {
		if to.Get(k) != nil {
			sim = append(sim, k)
		}
	}
	for _, k := range to.Keys {
		if from.Get(k) == nil {
			sim = append(sim, k)
		}
	}
	if len(sim) != len(to.Keys) {
		return false
	}
	for i, k := range to.Keys {
		if !ir.Equal(sim[i], k) {
			return false
		}
	}
	return true
}

func idxPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func structPath(path string, parent *ir.Node, i int) string {
	if parent.Named {
		return path + "." + parent.FieldNames[i]
	}
	return idxPath(path, i)
}

func keyPath(path string, key *ir.Node) string {
	if key.Type == ir.StringType && fieldLike(key.String) {
		return path + "." + key.String
	}
	return path + "[" + keyLiteral(key) + "]"
}
