package ir

import "errors"

var ErrConvert = errors.New("cannot convert")
