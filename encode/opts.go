package encode

type EncodeOption func(*EncState)

// EncodePretty selects the indented multi-line form.
func EncodePretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

// EncodeIndent sets the number of spaces per nesting level in pretty
// mode.  The default is 4.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeTrailingComma controls whether pretty output puts a comma after
// the last element of a struct, array or map.  Off by default, and only
// meaningful in pretty mode: the compact form never emits trailing
// commas.
func EncodeTrailingComma(v bool) EncodeOption {
	return func(es *EncState) { es.trailing = v }
}

// Depth sets the starting nesting level, for embedding pretty output in
// already-indented text.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.Color
		}
	}
}
