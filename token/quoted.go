package token

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// bsEscQuoted returns the length in bytes of the double-quoted string
// starting at d[0], including both quotes.  It validates escapes and
// rejects raw control characters but does not decode; see Unquote.
func bsEscQuoted(d []byte) (int, error) {
	i := 1
	for i < len(d) {
		c := d[i]
		switch {
		case c == '"':
			return i + 1, nil
		case c == '\\':
			j, err := escape(d[i:])
			if err != nil {
				return 0, err
			}
			i += j
		case c < 0x20:
			return 0, fmt.Errorf("%w: control character in string", ErrChar)
		default:
			i++
		}
	}
	return 0, ErrUnterminated
}

// escape returns the byte length of the escape sequence at d[0] == '\\'.
func escape(d []byte) (int, error) {
	if len(d) < 2 {
		return 0, ErrUnterminated
	}
	switch d[1] {
	case '"', '\\', 'n', 't', 'r':
		return 2, nil
	case 'u':
		if len(d) < 6 {
			return 0, fmt.Errorf("%w: \\u needs four hex digits", ErrEscape)
		}
		for _, c := range d[2:6] {
			if !hexDigit(c) {
				return 0, fmt.Errorf("%w: \\u needs four hex digits", ErrEscape)
			}
		}
		return 6, nil
	default:
		return 0, fmt.Errorf("%w \\%c", ErrEscape, d[1])
	}
}

func hexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}

func hexVal(c byte) rune {
	switch {
	case c >= '0' && c <= '9':
		return rune(c - '0')
	case c >= 'a' && c <= 'f':
		return rune(c-'a') + 10
	default:
		return rune(c-'A') + 10
	}
}

// Unquote decodes a double-quoted string literal, including both quotes.
func Unquote(v string) (string, error) {
	d := []byte(v)
	n, err := bsEscQuoted(d)
	if err != nil {
		return "", err
	}
	if n != len(d) {
		return "", fmt.Errorf("%w after string", ErrChar)
	}
	var sb strings.Builder
	sb.Grow(n - 2)
	i := 1
	for i < n-1 {
		c := d[i]
		if c != '\\' {
			sb.WriteByte(c)
			i++
			continue
		}
		switch d[i+1] {
		case '"':
			sb.WriteByte('"')
			i += 2
		case '\\':
			sb.WriteByte('\\')
			i += 2
		case 'n':
			sb.WriteByte('\n')
			i += 2
		case 't':
			sb.WriteByte('\t')
			i += 2
		case 'r':
			sb.WriteByte('\r')
			i += 2
		case 'u':
			r := hex4(d[i+2:])
			i += 6
			if utf16.IsSurrogate(r) {
				if i+6 <= n && d[i] == '\\' && d[i+1] == 'u' {
					r2 := hex4(d[i+2:])
					if dec := utf16.DecodeRune(r, r2); dec != unicode.ReplacementChar {
						r = dec
						i += 6
					} else {
						return "", fmt.Errorf("%w: lone surrogate", ErrEscape)
					}
				} else {
					return "", fmt.Errorf("%w: lone surrogate", ErrEscape)
				}
			}
			sb.WriteRune(r)
		default:
			return "", fmt.Errorf("%w \\%c", ErrEscape, d[i+1])
		}
	}
	return sb.String(), nil
}

func hex4(d []byte) rune {
	var r rune
	for i := 0; i < 4; i++ {
		r = r<<4 | hexVal(d[i])
	}
	return r
}

// Quote encodes v as a double-quoted string literal.  Control characters
// without a short escape are written as \uXXXX.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				d = append(d, '\\', 'u')
				for s := 12; s >= 0; s -= 4 {
					d = append(d, hexChar(byte(r>>s&0xf)))
				}
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

func hexChar(v byte) byte {
	if v < 10 {
		return '0' + v
	}
	return 'a' + v - 10
}
