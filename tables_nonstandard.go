package dicomcharset

import "golang.org/x/text/encoding/charmap"

// Non-standard single-byte encodings, accepted only under
// Config.AllowNonStandardEncodings (§3 "NonDicom*" terms). These are the
// same charmap.Charmap values the teacher's dicomio/charset.go already
// reached for (ISO8859_5, KOI8R, KOI8U, Windows1251, Windows1250,
// CodePage866), generalized to the full cp125x family the Rust original
// enumerates.
var (
	forwardCp1250, backwardCp1250 = nonIso2022Pair(charmap.Windows1250)
	forwardCp1251, backwardCp1251 = nonIso2022Pair(charmap.Windows1251)
	forwardCp1252, backwardCp1252 = nonIso2022Pair(charmap.Windows1252)
	forwardCp1253, backwardCp1253 = nonIso2022Pair(charmap.Windows1253)
	forwardCp1254, backwardCp1254 = nonIso2022Pair(charmap.Windows1254)
	forwardCp1255, backwardCp1255 = nonIso2022Pair(charmap.Windows1255)
	forwardCp1256, backwardCp1256 = nonIso2022Pair(charmap.Windows1256)
	forwardCp1257, backwardCp1257 = nonIso2022Pair(charmap.Windows1257)
	forwardCp1258, backwardCp1258 = nonIso2022Pair(charmap.Windows1258)
	forwardCp866, backwardCp866   = nonIso2022Pair(charmap.CodePage866)
	forwardKoi8R, backwardKoi8R   = nonIso2022Pair(charmap.KOI8R)
)

// nonIso2022Pair adapts a full-byte-range charmap (ASCII-compatible,
// 0x00-0xFF all defined) directly into the §4.1 translator contract: unlike
// the ISO-2022 G1 tables, a Non-ISO-2022 term's single table must also
// cover the ASCII range itself, since there is no separate G0.
func nonIso2022Pair(cm *charmap.Charmap) (ForwardFunc, BackwardFunc) {
	return forwardFromEncoding(cm), backwardFromEncoding(cm)
}
