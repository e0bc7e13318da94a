// Package libdiff provides diff computation for RON values.
//
// # Usage
//
//	// compute an edit script turning one value into another
//	diff := libdiff.Diff(oldNode, newNode)
//
//	// apply it
//	patched, err := libdiff.Apply(oldNode, diff)
//
// A diff is itself a RON value: an array of At(path, edit) structs
// where path addresses a node ("$.materials.metal[0]") and edit is one
// of Replace(from, to), Insert(v), Delete(v) or Text(patch).  Diffs can
// be encoded, stored, transmitted and parsed back like any other value.
//
// # Related Packages
//
//   - github.com/ron-format/go-ron/ir - value representation
//   - github.com/ron-format/go-ron/parse - parse text to ir
package libdiff
