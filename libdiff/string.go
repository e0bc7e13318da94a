package libdiff

import (
	"fmt"

	"github.com/ron-format/go-ron/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// textEdit records a string change as a context patch rather than a
// full replacement, so edits to long strings stay small.
func textEdit(path, from, to string) *ir.Node {
	diffCfg := diffpatch.New()
	patches := diffCfg.PatchMake(from, to)
	return atEdit(path, ir.Positional(TextName, ir.FromString(diffCfg.PatchToText(patches))))
}

func patchString(cur, patchText string) (string, error) {
	diffCfg := diffpatch.New()
	patches, err := diffCfg.PatchFromText(patchText)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrBadDiff, err)
	}
	res, applied := diffCfg.PatchApply(patches, cur)
	for _, ok := range applied {
		if !ok {
			return "", fmt.Errorf("%w: text patch did not apply", ErrNoMatch)
		}
	}
	return res, nil
}
