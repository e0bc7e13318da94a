package token

import (
	"errors"
	"fmt"
)

type TokenType int

const (
	TLParen TokenType = iota
	TRParen
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TIdent
	TString
	TInteger
	TFloat
	TTrue
	TFalse
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TComma:   "TComma",
		TIdent:   "TIdent",
		TString:  "TString",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the decoded text of the token.  For TString this is the
// unquoted, escape-decoded content; for everything else it is the raw
// spelling.
func (t *Token) String() string {
	if t.Type == TString {
		s, err := Unquote(string(t.Bytes))
		if err != nil {
			return string(t.Bytes)
		}
		return s
	}
	return string(t.Bytes)
}

var (
	ErrUnterminated = errors.New("unterminated string")
	ErrEscape       = errors.New("invalid escape")
	ErrNumber       = errors.New("invalid number")
	ErrChar         = errors.New("unexpected character")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
