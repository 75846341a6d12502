package dicomcharset

import (
	"strings"
	"unicode/utf8"
)

// decodeNonIso2022 implements the §4.6 Non-ISO-2022 backend decode
// direction: single- or multi-byte translator dispatch (GB18030, GBK,
// CP125x, KOI8-R, ...).
func decodeNonIso2022(t Term, input []byte, cfg Config) string {
	meta := t.Meta()
	if meta.IsAsciiCompatible && isASCIIOnly(input) {
		return string(input)
	}

	replacement := cfg.replacementFn()
	fwd := meta.Mode.Forward
	var b strings.Builder
	b.Grow(len(input))
	i := 0
	for i < len(input) {
		consumed, cp, ok := fwd(input[i:])
		if consumed <= 0 {
			consumed = 1
		}
		if !ok {
			b.WriteString(replacement(input[i : i+consumed]))
		} else if !utf8.ValidRune(cp) {
			b.WriteByte('?')
		} else {
			b.WriteRune(cp)
		}
		i += consumed
	}
	return b.String()
}

// encodeNonIso2022 implements the §4.6 encode direction: per character,
// call backward; on failure fall back to encoding '?'; if that also fails,
// drop the character silently.
func encodeNonIso2022(t Term, s string, cfg Config) []byte {
	meta := t.Meta()
	if meta.IsAsciiCompatible && isASCIIOnly([]byte(s)) {
		return []byte(s)
	}

	bwd := meta.Mode.Backward
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if enc, ok := bwd(r); ok {
			out = append(out, enc...)
			continue
		}
		if r != '?' {
			if enc, ok := bwd('?'); ok {
				out = append(out, enc...)
			}
		}
	}
	return out
}
