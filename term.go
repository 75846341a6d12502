package dicomcharset

import "strings"

// Term is a closed enumeration of every character-set encoding this package
// recognizes, mirroring the DICOM Standard's "Defined Terms" for the
// Specific Character Set attribute (PS3.3 Tables C.12-2 through C.12-5) plus
// a small vetted list of non-standard additions. Adding a term is a
// compile-time operation: it is always an index into allTerms.
type Term int

const (
	// Unknown is the sentinel term used when SCS parsing fails; it maps
	// bytes to code points identically (identity codec), preserving raw
	// bytes round-trippable through the pipeline.
	Unknown Term = iota
	IsoIr6

	// Table C.12-2: Single-Byte Character Sets Without Code Extensions.
	IsoIr100
	IsoIr101
	IsoIr109
	IsoIr110
	IsoIr144
	IsoIr127
	IsoIr126
	IsoIr138
	IsoIr148
	IsoIr203
	IsoIr13
	IsoIr166

	// Table C.12-3: Single-Byte Character Sets With Code Extensions.
	Iso2022Ir6
	Iso2022Ir100
	Iso2022Ir101
	Iso2022Ir109
	Iso2022Ir110
	Iso2022Ir144
	Iso2022Ir127
	Iso2022Ir126
	Iso2022Ir138
	Iso2022Ir148
	Iso2022Ir203
	Iso2022Ir13
	Iso2022Ir166

	// Table C.12-4: Multi-Byte Character Sets With Code Extensions.
	Iso2022Ir87
	Iso2022Ir159
	Iso2022Ir149
	Iso2022Ir58

	// Table C.12-5: Multi-Byte Character Sets Without Code Extensions.
	IsoIr192
	Gb18030
	Gbk

	// Non-standard additions accepted only when Config.AllowNonStandardEncodings.
	NonDicomCp1250
	NonDicomCp1251
	NonDicomCp1252
	NonDicomCp1253
	NonDicomCp1254
	NonDicomCp1255
	NonDicomCp1256
	NonDicomCp1257
	NonDicomCp1258
	NonDicomIbm866
	NonDicomKoi8R

	maxTerm = NonDicomKoi8R
)

// lastStandardDicom is the last term defined directly by the DICOM Standard;
// everything after it (the NonDicom* terms) requires
// Config.AllowNonStandardEncodings.
const lastStandardDicom = Gbk

// TermKind categorizes a term by its repertoire shape, independent of how it
// is reached (single-valued lookup vs. as a member of an ISO-2022 extended
// term list).
type TermKind int

const (
	SingleByteWithoutCodeExtensions TermKind = iota
	SingleByteWithCodeExtensions
	MultiByteWithCodeExtensions
	MultiByteWithoutCodeExtensions
	NonStandard
)

// ModeKind discriminates the Mode union (Term.mode in SPEC_FULL.md §3).
type ModeKind int

const (
	ModeIso2022NoExtensions ModeKind = iota
	ModeIso2022WithExtensions
	ModeNonIso2022
	ModeUtf8
)

// Mode is Go's rendering of the Rust CodecType discriminated union: a single
// struct carrying every possible payload, discriminated by Kind. Only the
// fields relevant to Kind are populated.
type Mode struct {
	Kind ModeKind

	// ModeIso2022NoExtensions: the sibling term that does allow code
	// extensions (e.g. IsoIr100 -> Iso2022Ir100).
	ExtendedVariant Term

	// ModeIso2022WithExtensions: the initial G0/G1 designation.
	G0, G1 *Table

	// ModeNonIso2022: the direct translator pair.
	Forward  ForwardFunc
	Backward BackwardFunc
}

func modeIso2022NoExtensions(extended Term) Mode {
	return Mode{Kind: ModeIso2022NoExtensions, ExtendedVariant: extended}
}

func modeIso2022WithExtensions(g0, g1 *Table) Mode {
	return Mode{Kind: ModeIso2022WithExtensions, G0: g0, G1: g1}
}

func modeNonIso2022(fwd ForwardFunc, bwd BackwardFunc) Mode {
	return Mode{Kind: ModeNonIso2022, Forward: fwd, Backward: bwd}
}

func modeUtf8() Mode {
	return Mode{Kind: ModeUtf8}
}

// TermMeta is the static metadata record for one Term.
type TermMeta struct {
	Term              Term
	Keywords          []string
	Description       string
	Kind              TermKind
	IsAsciiCompatible bool
	Mode              Mode
}

// allTerms is indexed by Term; it must list every term in definition order,
// matching the Rust original's ALL_TERMS array one-for-one.
var allTerms = [maxTerm + 1]TermMeta{
	Unknown: {
		Term: Unknown, Keywords: []string{""}, Description: "Unknown (identity passthrough)",
		Kind: NonStandard, IsAsciiCompatible: true,
		Mode: modeNonIso2022(forwardIdentity, backwardIdentity),
	},
	IsoIr6: {
		Term: IsoIr6, Keywords: []string{"ISO_IR 6"}, Description: "Default repertoire",
		Kind: SingleByteWithoutCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022NoExtensions(Iso2022Ir6),
	},

	IsoIr100: {
		Term: IsoIr100, Keywords: []string{"ISO_IR 100", "ISO-8859-1"}, Description: "Latin alphabet No. 1",
		Kind: SingleByteWithoutCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022NoExtensions(Iso2022Ir100),
	},
	IsoIr101: {
		Term: IsoIr101, Keywords: []string{"ISO_IR 101", "ISO-8859-2"}, Description: "Latin alphabet No. 2",
		Kind: SingleByteWithoutCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022NoExtensions(Iso2022Ir101),
	},
	IsoIr109: {
		Term: IsoIr109, Keywords: []string{"ISO_IR 109", "ISO-8859-3"}, Description: "Latin alphabet No. 3",
		Kind: SingleByteWithoutCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022NoExtensions(Iso2022Ir109),
	},
	IsoIr110: {
		Term: IsoIr110, Keywords: []string{"ISO_IR 110", "ISO-8859-4"}, Description: "Latin alphabet No. 4",
		Kind: SingleByteWithoutCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022NoExtensions(Iso2022Ir110),
	},
	IsoIr144: {
		Term: IsoIr144, Keywords: []string{"ISO_IR 144", "ISO-8859-5"}, Description: "Cyrillic",
		Kind: SingleByteWithoutCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022NoExtensions(Iso2022Ir144),
	},
	IsoIr127: {
		Term: IsoIr127, Keywords: []string{"ISO_IR 127", "ISO-8859-6"}, Description: "Arabic",
		Kind: SingleByteWithoutCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022NoExtensions(Iso2022Ir127),
	},
	IsoIr126: {
		Term: IsoIr126, Keywords: []string{"ISO_IR 126", "ISO-8859-7"}, Description: "Greek",
		Kind: SingleByteWithoutCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022NoExtensions(Iso2022Ir126),
	},
	IsoIr138: {
		Term: IsoIr138, Keywords: []string{"ISO_IR 138", "ISO-8859-8"}, Description: "Hebrew",
		Kind: SingleByteWithoutCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022NoExtensions(Iso2022Ir138),
	},
	IsoIr148: {
		Term: IsoIr148, Keywords: []string{"ISO_IR 148", "ISO-8859-9"}, Description: "Latin alphabet No. 5",
		Kind: SingleByteWithoutCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022NoExtensions(Iso2022Ir148),
	},
	IsoIr203: {
		Term: IsoIr203, Keywords: []string{"ISO_IR 203", "ISO-8859-15"}, Description: "Latin alphabet No. 9",
		Kind: SingleByteWithoutCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022NoExtensions(Iso2022Ir203),
	},
	IsoIr13: {
		Term: IsoIr13, Keywords: []string{"ISO_IR 13"}, Description: "Japanese Katakana",
		Kind: SingleByteWithoutCodeExtensions, IsAsciiCompatible: false,
		Mode: modeIso2022NoExtensions(Iso2022Ir13),
	},
	IsoIr166: {
		Term: IsoIr166, Keywords: []string{"ISO_IR 166", "TIS-620", "ISO-8859-11"}, Description: "Thai",
		Kind: SingleByteWithoutCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022NoExtensions(Iso2022Ir166),
	},

	Iso2022Ir6: {
		Term: Iso2022Ir6, Keywords: []string{"ISO 2022 IR 6"}, Description: "Default repertoire",
		Kind: SingleByteWithCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022WithExtensions(tableG0IsoIr6, tableG1AlwaysInvalid),
	},
	Iso2022Ir100: {
		Term: Iso2022Ir100, Keywords: []string{"ISO 2022 IR 100"}, Description: "Latin alphabet No. 1",
		Kind: SingleByteWithCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022WithExtensions(tableG0IsoIr6, tableG1IsoIr100),
	},
	Iso2022Ir101: {
		Term: Iso2022Ir101, Keywords: []string{"ISO 2022 IR 101"}, Description: "Latin alphabet No. 2",
		Kind: SingleByteWithCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022WithExtensions(tableG0IsoIr6, tableG1IsoIr101),
	},
	Iso2022Ir109: {
		Term: Iso2022Ir109, Keywords: []string{"ISO 2022 IR 109"}, Description: "Latin alphabet No. 3",
		Kind: SingleByteWithCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022WithExtensions(tableG0IsoIr6, tableG1IsoIr109),
	},
	Iso2022Ir110: {
		Term: Iso2022Ir110, Keywords: []string{"ISO 2022 IR 110"}, Description: "Latin alphabet No. 4",
		Kind: SingleByteWithCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022WithExtensions(tableG0IsoIr6, tableG1IsoIr110),
	},
	Iso2022Ir144: {
		Term: Iso2022Ir144, Keywords: []string{"ISO 2022 IR 144"}, Description: "Cyrillic",
		Kind: SingleByteWithCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022WithExtensions(tableG0IsoIr6, tableG1IsoIr144),
	},
	Iso2022Ir127: {
		Term: Iso2022Ir127, Keywords: []string{"ISO 2022 IR 127"}, Description: "Arabic",
		Kind: SingleByteWithCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022WithExtensions(tableG0IsoIr6, tableG1IsoIr127),
	},
	Iso2022Ir126: {
		Term: Iso2022Ir126, Keywords: []string{"ISO 2022 IR 126"}, Description: "Greek",
		Kind: SingleByteWithCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022WithExtensions(tableG0IsoIr6, tableG1IsoIr126),
	},
	Iso2022Ir138: {
		Term: Iso2022Ir138, Keywords: []string{"ISO 2022 IR 138"}, Description: "Hebrew",
		Kind: SingleByteWithCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022WithExtensions(tableG0IsoIr6, tableG1IsoIr138),
	},
	Iso2022Ir148: {
		Term: Iso2022Ir148, Keywords: []string{"ISO 2022 IR 148"}, Description: "Latin alphabet No. 5",
		Kind: SingleByteWithCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022WithExtensions(tableG0IsoIr6, tableG1IsoIr148),
	},
	Iso2022Ir203: {
		Term: Iso2022Ir203, Keywords: []string{"ISO 2022 IR 203"}, Description: "Latin alphabet No. 9",
		Kind: SingleByteWithCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022WithExtensions(tableG0IsoIr6, tableG1IsoIr203),
	},
	Iso2022Ir13: {
		Term: Iso2022Ir13, Keywords: []string{"ISO 2022 IR 13"}, Description: "Japanese Katakana",
		Kind: SingleByteWithCodeExtensions, IsAsciiCompatible: false,
		Mode: modeIso2022WithExtensions(tableG0IsoIr14, tableG1IsoIr13),
	},
	Iso2022Ir166: {
		Term: Iso2022Ir166, Keywords: []string{"ISO 2022 IR 166"}, Description: "Thai",
		Kind: SingleByteWithCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022WithExtensions(tableG0IsoIr6, tableG1IsoIr166),
	},

	Iso2022Ir87: {
		Term: Iso2022Ir87, Keywords: []string{"ISO 2022 IR 87"}, Description: "Japanese Kanji",
		Kind: MultiByteWithCodeExtensions, IsAsciiCompatible: false,
		Mode: modeIso2022WithExtensions(tableG0IsoIr87, tableG1AlwaysInvalid),
	},
	Iso2022Ir159: {
		Term: Iso2022Ir159, Keywords: []string{"ISO 2022 IR 159"}, Description: "Japanese Sup. Kanji",
		Kind: MultiByteWithCodeExtensions, IsAsciiCompatible: false,
		Mode: modeIso2022WithExtensions(tableG0IsoIr159, tableG1AlwaysInvalid),
	},
	Iso2022Ir149: {
		Term: Iso2022Ir149, Keywords: []string{"ISO 2022 IR 149"}, Description: "Korean",
		Kind: MultiByteWithCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022WithExtensions(tableG0AlwaysInvalid, tableG1IsoIr149),
	},
	Iso2022Ir58: {
		Term: Iso2022Ir58, Keywords: []string{"ISO 2022 IR 58"}, Description: "Simplified Chinese",
		Kind: MultiByteWithCodeExtensions, IsAsciiCompatible: true,
		Mode: modeIso2022WithExtensions(tableG0AlwaysInvalid, tableG1IsoIr58),
	},

	IsoIr192: {
		Term: IsoIr192, Keywords: []string{"ISO_IR 192", "UTF-8", "UTF8"}, Description: "Unicode in UTF-8",
		Kind: MultiByteWithoutCodeExtensions, IsAsciiCompatible: true,
		Mode: modeUtf8(),
	},
	Gb18030: {
		Term: Gb18030, Keywords: []string{"GB18030"}, Description: "GB18030",
		Kind: MultiByteWithoutCodeExtensions, IsAsciiCompatible: true,
		Mode: modeNonIso2022(forwardGb18030, backwardGb18030),
	},
	Gbk: {
		Term: Gbk, Keywords: []string{"GBK", "GB2312"}, Description: "GBK",
		Kind: MultiByteWithoutCodeExtensions, IsAsciiCompatible: true,
		Mode: modeNonIso2022(forwardGbk, backwardGbk),
	},

	NonDicomCp1250: {
		Term: NonDicomCp1250, Keywords: []string{"cp1250", "windows-1250"}, Description: "Non-standard MS Central European",
		Kind: NonStandard, IsAsciiCompatible: true,
		Mode: modeNonIso2022(forwardCp1250, backwardCp1250),
	},
	NonDicomCp1251: {
		Term: NonDicomCp1251, Keywords: []string{"cp1251", "windows-1251"}, Description: "Non-standard MS Cyrillic",
		Kind: NonStandard, IsAsciiCompatible: true,
		Mode: modeNonIso2022(forwardCp1251, backwardCp1251),
	},
	NonDicomCp1252: {
		Term: NonDicomCp1252, Keywords: []string{"cp1252", "windows-1252"}, Description: "Non-standard MS Western European",
		Kind: NonStandard, IsAsciiCompatible: true,
		Mode: modeNonIso2022(forwardCp1252, backwardCp1252),
	},
	NonDicomCp1253: {
		Term: NonDicomCp1253, Keywords: []string{"cp1253", "windows-1253"}, Description: "Non-standard MS Greek",
		Kind: NonStandard, IsAsciiCompatible: true,
		Mode: modeNonIso2022(forwardCp1253, backwardCp1253),
	},
	NonDicomCp1254: {
		Term: NonDicomCp1254, Keywords: []string{"cp1254", "windows-1254"}, Description: "Non-standard MS Turkish",
		Kind: NonStandard, IsAsciiCompatible: true,
		Mode: modeNonIso2022(forwardCp1254, backwardCp1254),
	},
	NonDicomCp1255: {
		Term: NonDicomCp1255, Keywords: []string{"cp1255", "windows-1255"}, Description: "Non-standard MS Hebrew",
		Kind: NonStandard, IsAsciiCompatible: true,
		Mode: modeNonIso2022(forwardCp1255, backwardCp1255),
	},
	NonDicomCp1256: {
		Term: NonDicomCp1256, Keywords: []string{"cp1256", "windows-1256"}, Description: "Non-standard MS Arabic",
		Kind: NonStandard, IsAsciiCompatible: true,
		Mode: modeNonIso2022(forwardCp1256, backwardCp1256),
	},
	NonDicomCp1257: {
		Term: NonDicomCp1257, Keywords: []string{"cp1257", "windows-1257"}, Description: "Non-standard MS Baltic",
		Kind: NonStandard, IsAsciiCompatible: true,
		Mode: modeNonIso2022(forwardCp1257, backwardCp1257),
	},
	NonDicomCp1258: {
		Term: NonDicomCp1258, Keywords: []string{"cp1258", "windows-1258"}, Description: "Non-standard MS Vietnamese",
		Kind: NonStandard, IsAsciiCompatible: true,
		Mode: modeNonIso2022(forwardCp1258, backwardCp1258),
	},
	NonDicomIbm866: {
		Term: NonDicomIbm866, Keywords: []string{"cp866", "ibm-866"}, Description: "Non-standard MS-DOS Cyrillic",
		Kind: NonStandard, IsAsciiCompatible: true,
		Mode: modeNonIso2022(forwardCp866, backwardCp866),
	},
	NonDicomKoi8R: {
		Term: NonDicomKoi8R, Keywords: []string{"KOI8-R", "KOI8"}, Description: "Non-standard Russian",
		Kind: NonStandard, IsAsciiCompatible: true,
		Mode: modeNonIso2022(forwardKoi8R, backwardKoi8R),
	},
}

// AllTerms returns the metadata for every known encoding term, in
// definition order.
func AllTerms() []TermMeta {
	return allTerms[:]
}

// Meta returns the static metadata for t.
func (t Term) Meta() *TermMeta {
	return &allTerms[t]
}

// Keywords returns t's keywords; element 0 is the canonical DICOM keyword.
func (t Term) Keywords() []string { return t.Meta().Keywords }

// Description returns a short human label for t.
func (t Term) Description() string { return t.Meta().Description }

// Kind returns t's repertoire shape.
func (t Term) Kind() TermKind { return t.Meta().Kind }

// IsStandardDicom reports whether t is defined by the DICOM Standard itself,
// as opposed to this library's non-standard extension list.
func (t Term) IsStandardDicom() bool {
	return t != Unknown && t <= lastStandardDicom
}

// FromU8 returns the Term for the given numeric code, or false if the code
// is out of range.
func FromU8(code uint8) (Term, bool) {
	if Term(code) <= maxTerm {
		return allTerms[code].Term, true
	}
	return Unknown, false
}

// FromKeyword returns the Term matching keyword exactly or
// case-insensitively on its primary keyword, or false if not found. See
// SearchByKeyword for alias/fuzzy matching.
func FromKeyword(keyword []byte) (Term, bool) {
	kw := string(keyword)
	for _, e := range allTerms {
		if strings.EqualFold(e.Keywords[0], kw) {
			return e.Term, true
		}
	}
	return Unknown, false
}

// TermMatchedWith describes how SearchByKeyword matched a keyword.
type TermMatchedWith int

const (
	// MatchPrimary: byte-exact match of the term's canonical keyword.
	MatchPrimary TermMatchedWith = iota
	// MatchPrimaryICase: case-insensitive match of the canonical keyword.
	MatchPrimaryICase
	// MatchAlias: case-insensitive match of a non-canonical keyword.
	MatchAlias
	// MatchFuzzy: match after stripping spaces, '_' and '-' from both sides.
	MatchFuzzy
)

// SearchByKeyword implements the §4.3 lookup order: primary exact, primary
// case-insensitive, alias (case-insensitive), then fuzzy (case- and
// separator-insensitive). It returns the first successful match.
func SearchByKeyword(keyword []byte) (Term, TermMatchedWith, bool) {
	kw := string(keyword)

	for _, e := range allTerms {
		if e.Keywords[0] == kw {
			return e.Term, MatchPrimary, true
		}
	}
	for _, e := range allTerms {
		if strings.EqualFold(e.Keywords[0], kw) {
			return e.Term, MatchPrimaryICase, true
		}
	}
	for _, e := range allTerms {
		for _, alias := range e.Keywords[1:] {
			if strings.EqualFold(alias, kw) {
				return e.Term, MatchAlias, true
			}
		}
	}

	fuzzyTarget := fuzzyFold(kw)
	for _, e := range allTerms {
		for _, alias := range e.Keywords {
			if fuzzyFold(alias) == fuzzyTarget {
				return e.Term, MatchFuzzy, true
			}
		}
	}
	return Unknown, MatchPrimary, false
}

// fuzzyFold lowercases s and strips spaces, '_' and '-', matching the
// "fuzzy" comparison rule of §4.3.
func fuzzyFold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range []byte(s) {
		switch c {
		case ' ', '_', '-':
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}
