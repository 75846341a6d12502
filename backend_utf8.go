package dicomcharset

import (
	"strings"
	"unicode/utf8"
)

// decodeUtf8 implements the §4.5 UTF-8 backend decode direction: the whole
// input is returned as-is when already valid; otherwise invalid
// sub-sequences are replaced one at a time while valid runs are copied
// through verbatim.
func decodeUtf8(input []byte, cfg Config) string {
	if utf8.Valid(input) {
		return string(input)
	}
	replacement := cfg.replacementFn()
	var b strings.Builder
	b.Grow(len(input))
	i := 0
	for i < len(input) {
		r, size := utf8.DecodeRune(input[i:])
		if r == utf8.RuneError && size <= 1 {
			if size == 0 {
				size = 1
			}
			b.WriteString(replacement(input[i : i+size]))
			i += size
			continue
		}
		b.WriteRune(r)
		i += size
	}
	return b.String()
}

// encodeUtf8 implements the §4.5 encode direction: UTF-8 strings are
// already encoded, so the bytes are returned unchanged.
func encodeUtf8(s string) []byte {
	return []byte(s)
}
