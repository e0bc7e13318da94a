package eval

import (
	"errors"
	"fmt"

	"github.com/ron-format/go-ron/debug"
	"github.com/ron-format/go-ron/ir"

	"github.com/expr-lang/expr"
)

// Env holds the variables visible to expressions.
type Env map[string]any

var (
	ErrCompile = errors.New("cannot compile expression")
	ErrEval    = errors.New("cannot evaluate expression")
)

// Eval compiles and runs src against doc.  Entries of env are exposed
// as variables, and the helper functions of exprOpts resolve paths in
// doc.  The result is converted to a RON value with ir.FromAny.
func Eval(doc *ir.Node, src string, env Env) (*ir.Node, error) {
	res, err := eval(doc, src, env)
	if err != nil {
		return nil, err
	}
	if node, ok := res.(*ir.Node); ok {
		return node.Clone(), nil
	}
	return ir.FromAny(res)
}

func eval(doc *ir.Node, src string, env Env) (any, error) {
	prg, err := expr.Compile(src, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %s", ErrCompile, src, err)
	}
	res, err := expr.Run(prg, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %s", ErrEval, src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", src, res)
	}
	return res, nil
}
