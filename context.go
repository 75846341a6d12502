package dicomcharset

// Context carries the per-operation flags derived from an attribute's VR
// (§3 "Context"). Callers typically build one from the DICOM dictionary's
// VR for the element being decoded/encoded; see SPEC_FULL.md §6 "Context
// derivation" for the mapping from VR to these flags.
type Context struct {
	// IsMultiValued: '\' (0x5C) separates values. Set for most textual
	// VRs, cleared for LT/ST/UT/UR.
	IsMultiValued bool

	// IsPN: Person Name semantics. '^' (0x5E) and '=' (0x3D) are
	// additional component delimiters.
	IsPN bool
}

// extraDelimiters returns the ISO-2022 extended backend's reset-triggering
// delimiter set for this context (§4.8 "Extra delimiters").
func (c Context) extraDelimiters() []byte {
	switch {
	case c.IsMultiValued && c.IsPN:
		return []byte{'\\', '^', '='}
	case c.IsMultiValued:
		return []byte{'\\'}
	case c.IsPN:
		return []byte{'^', '='}
	default:
		return nil
	}
}

func containsByte(set []byte, b byte) bool {
	for _, s := range set {
		if s == b {
			return true
		}
	}
	return false
}
