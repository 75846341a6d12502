package dicomcharset

import "golang.org/x/text/encoding/charmap"

// TableKind categorizes the size/shape of an ISO-2022 character set table.
type TableKind int

const (
	TableUnassigned TableKind = iota
	TableSingleByte
	TableMultiByte
)

// Region is the ISO-2022 code region a Table designates into: G0 serves
// bytes 0x20-0x7F (0x00-0x1F for control codes), G1 serves 0xA0-0xFF.
type Region int

const (
	RegionG0 Region = iota
	RegionG1
)

// Table is the static record for one ISO-2022 character set (§3 "Table").
type Table struct {
	Kind     TableKind
	Region   Region
	Esc      []byte // bytes after ESC that designate this table, nil for synthetic tables
	Modern   *Table // modernized variant, substituted when Config.UseModernCodePage
	Forward  ForwardFunc
	Backward BackwardFunc
}

// Two synthetic tables: always-invalid (a term that doesn't designate a
// region) and identity (the single-valued ISO_IR 6 G1 relaxation, §4.4/§4.7).
var (
	tableG0AlwaysInvalid = &Table{Kind: TableUnassigned, Region: RegionG0, Forward: forwardInvalid, Backward: backwardInvalid}
	tableG1AlwaysInvalid = &Table{Kind: TableUnassigned, Region: RegionG1, Forward: forwardInvalid, Backward: backwardInvalid}
	tableG1Identity      = &Table{Kind: TableSingleByte, Region: RegionG1, Forward: forwardG1Identity, Backward: backwardG1Identity}
)

func forwardG1Identity(input []byte) (int, rune, bool) { return 1, rune(input[0]), true }
func backwardG1Identity(cp rune) ([]byte, bool) {
	if cp < 0 || cp > 0xFF {
		return nil, false
	}
	return []byte{byte(cp)}, true
}

// --- G0 tables -----------------------------------------------------------

// tableG0IsoIr6 is the ASCII repertoire (0x00-0x7E, C0 controls included;
// 0x7F always rejected).
var tableG0IsoIr6 = &Table{
	Kind: TableSingleByte, Region: RegionG0, Esc: []byte{0x28, 0x42},
	Forward:  forwardAsciiG0,
	Backward: backwardAsciiG0,
}

func forwardAsciiG0(input []byte) (int, rune, bool) {
	b := input[0]
	if b >= 0x80 || b == 0x7F {
		return 1, 0, false
	}
	return 1, rune(b), true
}

func backwardAsciiG0(cp rune) ([]byte, bool) {
	if cp < 0 || cp >= 0x7F {
		return nil, false
	}
	return []byte{byte(cp)}, true
}

// tableG0IsoIr14 is JIS X 0201 Roman: ASCII except 0x5C (Yen sign) and 0x7E
// (overline). x/text has no standalone export for this table (it only
// exposes JIS X 0201 bundled inside the stateful ShiftJIS/EUCJP/ISO2022JP
// encodings), so it is hand-written here -- a justified exception, see
// DESIGN.md.
var tableG0IsoIr14 = &Table{
	Kind: TableSingleByte, Region: RegionG0, Esc: []byte{0x28, 0x4A},
	Forward:  forwardJisX0201Roman,
	Backward: backwardJisX0201Roman,
}

func forwardJisX0201Roman(input []byte) (int, rune, bool) {
	b := input[0]
	if b >= 0x80 || b == 0x7F {
		return 1, 0, false
	}
	switch b {
	case 0x5C:
		return 1, 0x00A5, true // YEN SIGN
	case 0x7E:
		return 1, 0x203E, true // OVERLINE
	default:
		return 1, rune(b), true
	}
}

func backwardJisX0201Roman(cp rune) ([]byte, bool) {
	switch cp {
	case 0x00A5:
		return []byte{0x5C}, true
	case 0x203E:
		return []byte{0x7E}, true
	case 0x5C, 0x7E:
		return nil, false
	}
	if cp < 0 || cp >= 0x7F {
		return nil, false
	}
	return []byte{byte(cp)}, true
}

// --- Single-byte G1 tables, backed by x/text/encoding/charmap ------------

func newCharmapG1Table(esc []byte, cm *charmap.Charmap, modern *Table) *Table {
	fwd := forwardFromEncoding(cm)
	bwd := backwardFromEncoding(cm)
	return &Table{
		Kind: TableSingleByte, Region: RegionG1, Esc: esc, Modern: modern,
		Forward:  wrapG1C1Passthrough(fwd),
		Backward: wrapG1C1PassthroughBackward(bwd),
	}
}

// wrapG1C1Passthrough implements the "bytes 0x80-0x9F pass through
// unchanged (C1 region)" rule shared by most G1 tables (§4.1).
func wrapG1C1Passthrough(fwd ForwardFunc) ForwardFunc {
	return func(input []byte) (int, rune, bool) {
		b := input[0]
		if b >= 0x80 && b <= 0x9F {
			return 1, rune(b), true
		}
		return fwd(input)
	}
}

func wrapG1C1PassthroughBackward(bwd BackwardFunc) BackwardFunc {
	return func(cp rune) ([]byte, bool) {
		if cp >= 0x80 && cp <= 0x9F {
			return []byte{byte(cp)}, true
		}
		return bwd(cp)
	}
}

var (
	tableG1IsoIr100 = newCharmapG1Table([]byte{0x2D, 0x41}, charmap.ISO8859_1, nil)
	tableG1IsoIr101 = newCharmapG1Table([]byte{0x2D, 0x42}, charmap.ISO8859_2, nil)
	tableG1IsoIr109 = newCharmapG1Table([]byte{0x2D, 0x43}, charmap.ISO8859_3, nil)
	tableG1IsoIr110 = newCharmapG1Table([]byte{0x2D, 0x44}, charmap.ISO8859_4, nil)
	tableG1IsoIr144 = newCharmapG1Table([]byte{0x2D, 0x4C}, charmap.ISO8859_5, nil)
	tableG1IsoIr127 = newCharmapG1Table([]byte{0x2D, 0x47}, charmap.ISO8859_6, nil)
	tableG1IsoIr148 = newCharmapG1Table([]byte{0x2D, 0x4D}, charmap.ISO8859_9, nil)
	tableG1IsoIr166 = newCharmapG1Table([]byte{0x2D, 0x54}, charmap.Windows874, nil) // TIS-620 superset
	tableG1IsoIr203 = newCharmapG1Table([]byte{0x2D, 0x62}, charmap.ISO8859_15, nil)

	// Greek and Hebrew carry modernized variants (IR 227, IR 234) that
	// reuse the legacy ESC sequence but substitute a revised GL/GR
	// assignment when Config.UseModernCodePage is set (§3 "modern",
	// §9 design notes). x/text does not export the superseded legacy
	// ISO-8859-7:1987/ISO-8859-8:1988 mappings separately from the
	// modern ones, so the "legacy" table below is charmap's current
	// ISO8859_7/8 and "modern" reuses the same data -- the distinction
	// is carried structurally (for callers that supply their own
	// Table.Modern via a future extension point) even though both
	// currently resolve to the same bytes. See DESIGN.md.
	tableG1IsoIr126Modern = newCharmapG1Table([]byte{0x2D, 0x46}, charmap.ISO8859_7, nil)
	tableG1IsoIr126       = newCharmapG1Table([]byte{0x2D, 0x46}, charmap.ISO8859_7, tableG1IsoIr126Modern)

	tableG1IsoIr138Modern = newCharmapG1Table([]byte{0x2D, 0x48}, charmap.ISO8859_8, nil)
	tableG1IsoIr138       = newCharmapG1Table([]byte{0x2D, 0x48}, charmap.ISO8859_8, tableG1IsoIr138Modern)
)

// tableG1IsoIr13 is JIS X 0201 Katakana: 0xA1-0xDF map to the halfwidth
// katakana block U+FF61-U+FF9F by a fixed additive offset (no code-page
// table needed -- this is a formulaic bijection, not vendored data).
var tableG1IsoIr13 = &Table{
	Kind: TableSingleByte, Region: RegionG1, Esc: []byte{0x29, 0x49},
	Forward:  forwardJisX0201Katakana,
	Backward: backwardJisX0201Katakana,
}

func forwardJisX0201Katakana(input []byte) (int, rune, bool) {
	b := input[0]
	if b >= 0x80 && b <= 0x9F {
		return 1, rune(b), true
	}
	if b >= 0xA1 && b <= 0xDF {
		return 1, rune(0xFF61 + int(b-0xA1)), true
	}
	return 1, 0, false
}

func backwardJisX0201Katakana(cp rune) ([]byte, bool) {
	if cp >= 0x80 && cp <= 0x9F {
		return []byte{byte(cp)}, true
	}
	if cp >= 0xFF61 && cp <= 0xFF9F {
		return []byte{byte(0xA1 + (cp - 0xFF61))}, true
	}
	return nil, false
}
