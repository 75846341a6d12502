package dicomcharset

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// ForwardFunc decodes a non-empty byte prefix into a single Unicode scalar,
// per the §4.1 translator contract. It returns the number of input bytes
// consumed (always >= 1) and ok=false when the prefix is unrepresentable in
// this table (the caller treats the consumed bytes as one replacement
// event).
type ForwardFunc func(input []byte) (consumed int, cp rune, ok bool)

// BackwardFunc encodes a single Unicode scalar, returning the encoded bytes
// or ok=false when the table cannot represent cp.
type BackwardFunc func(cp rune) (out []byte, ok bool)

// forwardInvalid and backwardInvalid are the universal "always fail" pseudo
// table functions (§4.1).
func forwardInvalid(input []byte) (int, rune, bool) { return 1, 0, false }
func backwardInvalid(cp rune) ([]byte, bool)        { return nil, false }

// forwardIdentity and backwardIdentity implement the bijection on bytes
// 0x00-0xFF <-> U+0000-U+00FF used by the synthetic identity table.
func forwardIdentity(input []byte) (int, rune, bool) {
	return 1, rune(input[0]), true
}

func backwardIdentity(cp rune) ([]byte, bool) {
	if cp < 0 || cp > 0xFF {
		return nil, false
	}
	return []byte{byte(cp)}, true
}

// decodeOneRune drives a fresh x/text Decoder over input and extracts
// exactly one decoded scalar and the number of source bytes it consumed.
//
// x/text decoders are lenient by design: unmappable input is silently
// substituted with utf8.RuneError rather than surfaced as an error. This
// adapter treats a decoded utf8.RuneError as "not ok", which lets the
// caller apply its own Config.ReplacementCharacterFn uniformly -- this
// matches the common case (default replacement is U+FFFD) and is the only
// signal x/text gives us to distinguish valid input from substituted input.
func decodeOneRune(dec *encoding.Decoder, input []byte) (consumed int, cp rune, ok bool) {
	var dst [4]byte
	// The output window grows one byte at a time, so the decoder stops after
	// the first scalar and nSrc counts only the bytes of that scalar.
	for k := 1; k <= len(dst); k++ {
		dec.Reset()
		nDst, nSrc, _ := dec.Transform(dst[:k], input, true)
		if nDst == 0 || nSrc == 0 {
			continue
		}
		r, _ := utf8.DecodeRune(dst[:nDst])
		if r == utf8.RuneError {
			return nSrc, 0, false
		}
		return nSrc, r, true
	}
	return 1, 0, false
}

// encodeOneRune drives a fresh x/text Encoder over a single scalar.
func encodeOneRune(enc *encoding.Encoder, cp rune) (out []byte, ok bool) {
	enc.Reset()
	var src [4]byte
	n := utf8.EncodeRune(src[:], cp)
	dst := make([]byte, 8)
	nDst, nSrc, err := enc.Transform(dst, src[:n], true)
	if err != nil || nSrc != n || nDst == 0 {
		return nil, false
	}
	return dst[:nDst], true
}

// forwardFromEncoding and backwardFromEncoding adapt a stateless x/text
// encoding.Encoding into the §4.1 translator contract. Used for every
// single-byte and multi-byte code page that x/text/encoding/* exports
// directly (§1b of SPEC_FULL.md).
func forwardFromEncoding(enc encoding.Encoding) ForwardFunc {
	dec := enc.NewDecoder()
	return func(input []byte) (int, rune, bool) {
		return decodeOneRune(dec, input)
	}
}

func backwardFromEncoding(enc encoding.Encoding) BackwardFunc {
	e := enc.NewEncoder()
	return func(cp rune) ([]byte, bool) {
		return encodeOneRune(e, cp)
	}
}

// --- GB18030 family (§4.1 "GB18030/GBK/GB2312") -----------------------

// forwardGb18030/backwardGb18030 forward directly to x/text's GB18030
// transformer, which already implements the WHATWG GB18030 algorithm
// (ASCII passthrough, the 0x80 -> EUR exception, 2- and 4-byte sequences,
// and the fixed 7457 <-> U+E7C7 exception pointer).
var (
	forwardGb18030  = forwardFromEncoding(simplifiedchinese.GB18030)
	backwardGb18030 = backwardFromEncoding(simplifiedchinese.GB18030)
)

// forwardGbk/backwardGbk forward to x/text's GBK transformer (2-byte forms
// only; no 4-byte GB18030 extension).
var (
	forwardGbk  = forwardFromEncoding(simplifiedchinese.GBK)
	backwardGbk = backwardFromEncoding(simplifiedchinese.GBK)
)

// The restricted GB 2312 GR-byte subset of GBK needed by ISO 2022 IR 58's
// G1 table lives in tables_multibyte.go (forwardGb2312AsG1/
// backwardGb2312AsG1); the Gbk term itself uses the full GBK tables above
// even though one of its keywords is the alias "GB2312".
