package libdiff

import (
	"github.com/ron-format/go-ron/ir"
)

// Struct names used in the edit script representation.
const (
	AtName      = "At"
	ReplaceName = "Replace"
	InsertName  = "Insert"
	DeleteName  = "Delete"
	TextName    = "Text"
)

func atEdit(path string, edit *ir.Node) *ir.Node {
	return ir.Positional(AtName, ir.FromString(path), edit)
}

func replaceEdit(path string, from, to *ir.Node) *ir.Node {
	return atEdit(path, ir.Positional(ReplaceName, from.Clone(), to.Clone()))
}

func insertEdit(path string, v *ir.Node) *ir.Node {
	return atEdit(path, ir.Positional(InsertName, v.Clone()))
}

func deleteEdit(path string, v *ir.Node) *ir.Node {
	return atEdit(path, ir.Positional(DeleteName, v.Clone()))
}
