package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Diff  bool
	Eval  bool
	Gomap bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("RON_DEBUG_PARSE")
	d.Diff = boolEnv("RON_DEBUG_DIFF")
	d.Eval = boolEnv("RON_DEBUG_EVAL")
	d.Gomap = boolEnv("RON_DEBUG_GOMAP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Diff() bool {
	return d.Diff
}
func Eval() bool {
	return d.Eval
}
func Gomap() bool {
	return d.Gomap
}
