package dicomcharset

import (
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// JIS X 0208 (ISO 2022 IR 87, G0 94x94) and JIS X 0212 (ISO 2022 IR 159, G0
// 94x94) are bridged through golang.org/x/text/encoding/japanese.EUCJP,
// which already carries the JIS X 0208/0212 tables internally. EUC-JP
// represents a JIS X 0208 character as two GR bytes (each ISO-2022 GL byte
// OR'd with 0x80) and a JIS X 0212 character as SS3 (0x8F) followed by two
// GR bytes. This is the same OR-mask bridging trick
// GoogleCloudPlatform-go-dicom-parser's charactersets.go documents for
// EUC-KR, generalized to both Japanese multi-byte sets.
var eucJPDecoder = japanese.EUCJP.NewDecoder()
var eucJPEncoder = japanese.EUCJP.NewEncoder()

var tableG0IsoIr87 = &Table{
	Kind: TableMultiByte, Region: RegionG0, Esc: []byte{0x24, 0x42},
	Forward:  forwardJisX0208,
	Backward: backwardJisX0208,
}

func forwardJisX0208(input []byte) (int, rune, bool) {
	if len(input) < 2 {
		return 1, 0, false
	}
	gr := [2]byte{input[0] | 0x80, input[1] | 0x80}
	consumed, cp, ok := decodeOneRune(eucJPDecoder, gr[:])
	if consumed != 2 {
		return 1, 0, false
	}
	return 2, cp, ok
}

func backwardJisX0208(cp rune) ([]byte, bool) {
	out, ok := encodeOneRune(eucJPEncoder, cp)
	if !ok || len(out) != 2 || out[0] < 0xA1 || out[0] > 0xFE {
		return nil, false
	}
	return []byte{out[0] & 0x7F, out[1] & 0x7F}, true
}

var tableG0IsoIr159 = &Table{
	Kind: TableMultiByte, Region: RegionG0, Esc: []byte{0x24, 0x28, 0x44},
	Forward:  forwardJisX0212,
	Backward: backwardJisX0212,
}

func forwardJisX0212(input []byte) (int, rune, bool) {
	if len(input) < 2 {
		return 1, 0, false
	}
	seq := [3]byte{0x8F, input[0] | 0x80, input[1] | 0x80}
	consumed, cp, ok := decodeOneRune(eucJPDecoder, seq[:])
	if consumed != 3 {
		return 1, 0, false
	}
	return 2, cp, ok
}

func backwardJisX0212(cp rune) ([]byte, bool) {
	out, ok := encodeOneRune(eucJPEncoder, cp)
	if !ok || len(out) != 3 || out[0] != 0x8F {
		return nil, false
	}
	return []byte{out[1] & 0x7F, out[2] & 0x7F}, true
}

// KS X 1001 (ISO 2022 IR 149, G1 94x94) is backed directly by
// golang.org/x/text/encoding/korean.EUCKR: EUC-KR already represents this
// set using GR bytes (0xA1-0xFE), the same byte range an ISO-2022 G1
// designation occupies, so no OR-mask bridging is needed.
var eucKRDecoder = korean.EUCKR.NewDecoder()
var eucKREncoder = korean.EUCKR.NewEncoder()

var tableG1IsoIr149 = &Table{
	Kind: TableMultiByte, Region: RegionG1, Esc: []byte{0x24, 0x29, 0x43},
	Forward:  forwardKsX1001,
	Backward: backwardKsX1001,
}

func forwardKsX1001(input []byte) (int, rune, bool) {
	if len(input) < 2 || input[0] < 0xA1 || input[0] > 0xFE {
		return 1, 0, false
	}
	consumed, cp, ok := decodeOneRune(eucKRDecoder, input[:2])
	if consumed != 2 {
		return 1, 0, false
	}
	return 2, cp, ok
}

func backwardKsX1001(cp rune) ([]byte, bool) {
	out, ok := encodeOneRune(eucKREncoder, cp)
	if !ok || len(out) != 2 || out[0] < 0xA1 || out[0] > 0xFE {
		return nil, false
	}
	return out, true
}

// GB 2312-80 (ISO 2022 IR 58, G1 94x94) is a restricted view of
// golang.org/x/text/encoding/simplifiedchinese.GBK: GBK's GR-range
// assignments for lead/trail bytes 0xA1-0xFE are exactly the GB 2312
// repertoire, so no separate table is vendored.
var tableG1IsoIr58 = &Table{
	Kind: TableMultiByte, Region: RegionG1, Esc: []byte{0x24, 0x29, 0x41},
	Forward:  forwardGb2312AsG1,
	Backward: backwardGb2312AsG1,
}

var gbkDecoderForIr58 = simplifiedchinese.GBK.NewDecoder()
var gbkEncoderForIr58 = simplifiedchinese.GBK.NewEncoder()

func forwardGb2312AsG1(input []byte) (int, rune, bool) {
	if len(input) < 2 || input[0] < 0xA1 || input[0] > 0xFE || input[1] < 0xA1 || input[1] > 0xFE {
		return 1, 0, false
	}
	consumed, cp, ok := decodeOneRune(gbkDecoderForIr58, input[:2])
	if consumed != 2 {
		return 1, 0, false
	}
	return 2, cp, ok
}

func backwardGb2312AsG1(cp rune) ([]byte, bool) {
	out, ok := encodeOneRune(gbkEncoderForIr58, cp)
	if !ok || len(out) != 2 {
		return nil, false
	}
	if out[0] < 0xA1 || out[0] > 0xFE || out[1] < 0xA1 || out[1] > 0xFE {
		return nil, false
	}
	return out, true
}
