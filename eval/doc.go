// Package eval provides expression evaluation against RON values.
//
// Expressions use expr-lang syntax and can reach into the value under
// evaluation through getpath, so configuration can be computed from
// other configuration:
//
//	n, err := eval.Eval(doc, `getpath("$.width").Int64 * 2`, nil)
//
// Expand interpolates $[expr] segments inside the strings of a value.
//
// # Related Packages
//
//   - github.com/ron-format/go-ron/ir - value representation
package eval
