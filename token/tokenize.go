package token

import "fmt"

// Tokenize appends the tokens of src to dst and returns the result.  It
// skips whitespace and // line comments and stops at the first invalid
// byte sequence, returning a *TokenizeErr.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := &PosDoc{d: src}
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch c {
		case ' ', '\t', '\r':
			i++

		case '\n':
			posDoc.nl(i)
			i++

		case '/':
			if i+1 < n && src[i+1] == '/' {
				for i < n && src[i] != '\n' {
					i++
				}
				continue
			}
			return nil, NewTokenizeErr(fmt.Errorf("%w %q", ErrChar, c), posDoc.Pos(i))

		case '(':
			dst = append(dst, single(TLParen, src, i, posDoc))
			i++
		case ')':
			dst = append(dst, single(TRParen, src, i, posDoc))
			i++
		case '{':
			dst = append(dst, single(TLCurl, src, i, posDoc))
			i++
		case '}':
			dst = append(dst, single(TRCurl, src, i, posDoc))
			i++
		case '[':
			dst = append(dst, single(TLSquare, src, i, posDoc))
			i++
		case ']':
			dst = append(dst, single(TRSquare, src, i, posDoc))
			i++
		case ':':
			dst = append(dst, single(TColon, src, i, posDoc))
			i++
		case ',':
			dst = append(dst, single(TComma, src, i, posDoc))
			i++

		case '"':
			j, err := bsEscQuoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			dst = append(dst, Token{
				Type:  TString,
				Pos:   posDoc.Pos(i),
				Bytes: src[i : i+j],
			})
			i += j

		case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			numLen, isFloat, err := number(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			tok := Token{
				Type:  TInteger,
				Pos:   posDoc.Pos(i),
				Bytes: src[i : i+numLen],
			}
			if isFloat {
				tok.Type = TFloat
			}
			dst = append(dst, tok)
			i += numLen

		default:
			if !identStart(c) {
				return nil, NewTokenizeErr(fmt.Errorf("%w %q", ErrChar, c), posDoc.Pos(i))
			}
			j := i + 1
			for j < n && identPart(src[j]) {
				j++
			}
			tok := Token{
				Type:  TIdent,
				Pos:   posDoc.Pos(i),
				Bytes: src[i:j],
			}
			// true/false are reserved
			switch string(tok.Bytes) {
			case "true":
				tok.Type = TTrue
			case "false":
				tok.Type = TFalse
			}
			dst = append(dst, tok)
			i = j
		}
	}
	return dst, nil
}

func single(t TokenType, src []byte, i int, d *PosDoc) Token {
	return Token{
		Type:  t,
		Pos:   d.Pos(i),
		Bytes: src[i : i+1],
	}
}

func identStart(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c == '_':
		return true
	default:
		return false
	}
}

func identPart(c byte) bool {
	return identStart(c) || asciiDigit(c)
}
