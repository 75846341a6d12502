package dicomcharset

import (
	"strings"
	"unicode/utf8"
)

// decodeIso2022Simple implements the §4.7 ISO-2022 Simple backend: a
// single-valued ISO-2022 term with a fixed G0/G1 designation and no
// ESC-sequence handling (an ESC byte is decoded through G0 like any other
// byte below 0x80).
func decodeIso2022Simple(t Term, input []byte, cfg Config) string {
	if t.Meta().IsAsciiCompatible && isASCIIOnly(input) {
		return string(input)
	}

	g0, g1 := getTables(t, cfg, true)
	replacement := cfg.replacementFn()
	var b strings.Builder
	b.Grow(len(input))
	i := 0
	for i < len(input) {
		c := input[i]
		var consumed int
		var cp rune
		var ok bool
		if c < 0x80 {
			consumed, cp, ok = g0.Forward(input[i:])
		} else {
			consumed, cp, ok = g1.Forward(input[i:])
		}
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

// encodeIso2022Simple implements the §4.7 encode direction: try G0, then
// G1; if both fail, encode '?' via either region.
func encodeIso2022Simple(t Term, s string, cfg Config) []byte {
	if t.Meta().IsAsciiCompatible && isASCIIOnly([]byte(s)) {
		return []byte(s)
	}

	g0, g1 := getTables(t, cfg, true)
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if enc, ok := g0.Backward(r); ok {
			out = append(out, enc...)
			continue
		}
		if enc, ok := g1.Backward(r); ok {
			out = append(out, enc...)
			continue
		}
		if r == '?' {
			continue
		}
		if enc, ok := g0.Backward('?'); ok {
			out = append(out, enc...)
		} else if enc, ok := g1.Backward('?'); ok {
			out = append(out, enc...)
		}
	}
	return out
}
