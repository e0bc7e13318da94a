package token

import (
	"errors"
	"testing"
)

func TestQuoteUnquote(t *testing.T) {
	for _, v := range []string{
		"",
		"hello",
		"with \"quotes\"",
		"back\\slash",
		"tab\tnewline\ncr\r",
		"control \x01 char",
		"unicode é世\U0001f600",
	} {
		q := Quote(v)
		got, err := Unquote(q)
		if err != nil {
			t.Errorf("%q: %v", v, err)
			continue
		}
		if got != v {
			t.Errorf("round trip %q -> %q -> %q", v, q, got)
		}
	}
}

func TestUnquoteSurrogatePair(t *testing.T) {
	got, err := Unquote(`"\ud83d\ude00"`)
	if err != nil {
		t.Fatal(err)
	}
	if got != "\U0001f600" {
		t.Errorf("got %q", got)
	}
}

func TestUnquoteErrs(t *testing.T) {
	for _, tt := range []struct {
		in string
		e  error
	}{
		{in: `"\ud83d"`, e: ErrEscape},
		{in: `"\ud83d x"`, e: ErrEscape},
		{in: `"abc`, e: ErrUnterminated},
		{in: `"\x"`, e: ErrEscape},
	} {
		_, err := Unquote(tt.in)
		if !errors.Is(err, tt.e) {
			t.Errorf("%q: got %v, want %v", tt.in, err, tt.e)
		}
	}
}
