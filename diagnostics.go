package dicomcharset

import "strings"

// DiagCode is a stable diagnostic identifier, split into failures (low 8
// bits) and warnings (high 8 bits), per §4.2. Every code's string form
// (ds_NNNN) is part of the public interface and must never change.
type DiagCode uint16

const (
	// Failures (low byte). At most one is ever set on a given Diagnostics.
	DiagEmpty                     DiagCode = 1 << 0 // ds_0001
	DiagUnknownEncoding           DiagCode = 1 << 1 // ds_0002
	DiagNonStandardDisallowed     DiagCode = 1 << 2 // ds_0003
	DiagFirstTermMultiByte        DiagCode = 1 << 4 // ds_0006
	DiagEmptyMultiValue           DiagCode = 1 << 5 // ds_0010
	DiagDuplicateMultiValue       DiagCode = 1 << 6 // ds_0011
	DiagNonIso2022InMultiValued   DiagCode = 1 << 3 // ds_0005

	// Warnings (high byte). Several may accumulate.
	DiagAcceptedNonStandard DiagCode = 1 << 8  // ds_0004
	DiagAcceptedAlias       DiagCode = 1 << 9  // ds_0007
	DiagIgnoredEmpty        DiagCode = 1 << 10 // ds_0008
	DiagIgnoredDuplicate    DiagCode = 1 << 11 // ds_0009
	DiagPromoted            DiagCode = 1 << 12 // ds_0012
)

const failureMask = DiagEmpty | DiagUnknownEncoding | DiagNonStandardDisallowed |
	DiagNonIso2022InMultiValued | DiagFirstTermMultiByte | DiagEmptyMultiValue | DiagDuplicateMultiValue

var diagIDs = map[DiagCode]string{
	DiagEmpty:                   "ds_0001",
	DiagUnknownEncoding:         "ds_0002",
	DiagNonStandardDisallowed:   "ds_0003",
	DiagAcceptedNonStandard:     "ds_0004",
	DiagNonIso2022InMultiValued: "ds_0005",
	DiagFirstTermMultiByte:      "ds_0006",
	DiagAcceptedAlias:           "ds_0007",
	DiagIgnoredEmpty:            "ds_0008",
	DiagIgnoredDuplicate:        "ds_0009",
	DiagEmptyMultiValue:         "ds_0010",
	DiagDuplicateMultiValue:     "ds_0011",
	DiagPromoted:                "ds_0012",
}

// orderedDiagCodes lists every code in ds_NNNN numeric order, for stable
// iteration (Diagnostics.Codes, Diagnostics.String).
var orderedDiagCodes = []DiagCode{
	DiagEmpty, DiagUnknownEncoding, DiagNonStandardDisallowed, DiagAcceptedNonStandard,
	DiagNonIso2022InMultiValued, DiagFirstTermMultiByte, DiagAcceptedAlias, DiagIgnoredEmpty,
	DiagIgnoredDuplicate, DiagEmptyMultiValue, DiagDuplicateMultiValue, DiagPromoted,
}

// Diagnostics is the bitset of DiagCode flags produced by Parse (§4.2).
type Diagnostics DiagCode

// HasFailure reports whether any failure bit is set.
func (d Diagnostics) HasFailure() bool {
	return DiagCode(d)&failureMask != 0
}

// Codes returns the set bits, in ds_NNNN numeric order.
func (d Diagnostics) Codes() []DiagCode {
	var out []DiagCode
	for _, c := range orderedDiagCodes {
		if DiagCode(d)&c != 0 {
			out = append(out, c)
		}
	}
	return out
}

// ID returns c's stable string identifier, e.g. "ds_0001".
func (c DiagCode) ID() string { return diagIDs[c] }

// String renders the set codes as a comma-joined list of ds_NNNN
// identifiers, e.g. "ds_0007, ds_0012".
func (d Diagnostics) String() string {
	codes := d.Codes()
	ids := make([]string, len(codes))
	for i, c := range codes {
		ids[i] = c.ID()
	}
	return strings.Join(ids, ", ")
}

func (d *Diagnostics) add(c DiagCode) { *d |= Diagnostics(c) }
func (d Diagnostics) has(c DiagCode) bool { return DiagCode(d)&c != 0 }
