// Package token tokenizes RON format text.
//
// Tokenize turns a byte buffer into a flat slice of tokens, discarding
// whitespace and // line comments.  Every token carries a Pos which maps
// its byte offset back to a line and column in the source document.
//
// The lexer does not interpret structure: brackets, colons and commas
// come out as individual tokens and are given meaning by the parse
// package.
//
// # Related Packages
//
//   - github.com/ron-format/go-ron/parse - Parses tokens into ir nodes
//   - github.com/ron-format/go-ron/ir - Value representation
package token
