package dicomcharset

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// termTablePair is the (G0, G1) designation pair for one term of an extended
// term list, precomputed once per Decode/Encode call.
type termTablePair struct {
	g0, g1 *Table
}

func resolveTermTables(terms []Term, cfg Config) []termTablePair {
	tt := make([]termTablePair, len(terms))
	for i, t := range terms {
		g0, g1 := getTables(t, cfg, false)
		tt[i] = termTablePair{g0: g0, g1: g1}
	}
	return tt
}

// shouldReset implements §4.8's reset predicate: any C0 control other than
// ESC, or one of the context's extra delimiters. On decode ESC sequences are
// consumed before this check runs; on encode a literal U+001B does not reset.
func shouldReset(c byte, extraDelims []byte) bool {
	if c <= 0x1F && c != 0x1B {
		return true
	}
	return containsByte(extraDelims, c)
}

// findTableByEsc looks up a designatable table whose Esc field matches seq
// among the term list's G0/G1 tables, applying the modern-code-page
// substitution when configured. The term list is scanned in order, so the
// first term offering the table wins (§4.8 "Ordering of table lookups").
func findTableByEsc(tt []termTablePair, cfg Config, seq []byte) (*Table, bool) {
	for _, pair := range tt {
		for _, cand := range []*Table{pair.g0, pair.g1} {
			if cand.Esc != nil && bytes.Equal(cand.Esc, seq) {
				if cfg.UseModernCodePage && cand.Modern != nil {
					cand = cand.Modern
				}
				return cand, true
			}
		}
	}
	return nil, false
}

// decodeIso2022Extended implements the §4.8 state machine: ESC-sequence
// scanning and table designation switches interleaved with G0/G1 byte
// decoding, with delimiter/control-triggered resets to the initial
// designation.
func decodeIso2022Extended(terms []Term, input []byte, ctx Context, cfg Config) string {
	if terms[0].Meta().IsAsciiCompatible && isASCIIOnly(input) && !containsByteSlice(input, 0x1B) {
		return string(input)
	}

	tt := resolveTermTables(terms, cfg)
	initG0, initG1 := tt[0].g0, tt[0].g1
	g0, g1 := initG0, initG1
	extraDelims := ctx.extraDelimiters()
	replacement := cfg.replacementFn()

	var b strings.Builder
	b.Grow(len(input))
	i := 0
	for i < len(input) {
		c := input[i]

		if c == 0x1B {
			j := i + 1
			for j < len(input) && input[j] >= 0x20 && input[j] <= 0x2F {
				j++
			}
			valid := j > i+1 && j < len(input) && input[j] >= 0x30 && input[j] <= 0x7E
			if !valid {
				b.WriteString(replacement(input[i : i+1]))
				i++
				continue
			}
			esc := input[i+1 : j+1]
			tbl, ok := findTableByEsc(tt, cfg, esc)
			if !ok {
				b.WriteString(replacement(input[i : j+1]))
				i = j + 1
				continue
			}
			if tbl.Region == RegionG0 {
				g0 = tbl
			} else {
				g1 = tbl
			}
			i = j + 1
			continue
		}

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
		} else {
			if !utf8.ValidRune(cp) {
				b.WriteByte('?')
			} else {
				b.WriteRune(cp)
			}
			if cp < 0x7F && shouldReset(c, extraDelims) {
				g0, g1 = initG0, initG1
			}
		}
		i += consumed
	}
	return b.String()
}

// encodeIso2022Extended implements the §4.8 encode direction: reset-before-
// emit on delimiters, try-current then try-initial then scan-term-list table
// selection, '?' fallback, and a terminal G0 reset.
func encodeIso2022Extended(terms []Term, s string, ctx Context, cfg Config) []byte {
	if terms[0].Meta().IsAsciiCompatible && isASCIIOnly([]byte(s)) {
		return []byte(s)
	}

	tt := resolveTermTables(terms, cfg)
	initG0, initG1 := tt[0].g0, tt[0].g1
	g0, g1 := initG0, initG1
	extraDelims := ctx.extraDelimiters()

	out := make([]byte, 0, len(s))

	emitSwitch := func(tbl *Table) {
		if tbl.Esc != nil {
			out = append(out, 0x1B)
			out = append(out, tbl.Esc...)
		}
		if tbl.Region == RegionG0 {
			g0 = tbl
		} else {
			g1 = tbl
		}
	}

	var tryEncode func(r rune) bool
	tryEncode = func(r rune) bool {
		if enc, ok := g0.Backward(r); ok {
			out = append(out, enc...)
			return true
		}
		if enc, ok := g1.Backward(r); ok {
			out = append(out, enc...)
			return true
		}
		if g0 != initG0 {
			if enc, ok := initG0.Backward(r); ok {
				emitSwitch(initG0)
				out = append(out, enc...)
				return true
			}
		}
		if g1 != initG1 {
			if enc, ok := initG1.Backward(r); ok {
				emitSwitch(initG1)
				out = append(out, enc...)
				return true
			}
		}
		for _, pair := range tt {
			for _, cand := range []*Table{pair.g0, pair.g1} {
				if cand == g0 || cand == g1 || cand.Kind == TableUnassigned {
					continue
				}
				if enc, ok := cand.Backward(r); ok {
					emitSwitch(cand)
					out = append(out, enc...)
					return true
				}
			}
		}
		return false
	}

	for _, r := range s {
		if r >= 0 && r <= 0x7F && shouldReset(byte(r), extraDelims) {
			if g0 != initG0 {
				emitSwitch(initG0)
			}
			if g1 != initG1 {
				emitSwitch(initG1)
			}
		}
		if !tryEncode(r) && r != '?' {
			tryEncode('?')
		}
	}

	if g0 != initG0 {
		emitSwitch(initG0)
	}
	return out
}
