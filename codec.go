package dicomcharset

// externalDescriptor holds the resolved external encoding for the External
// backend (§4.9).
type externalDescriptor struct {
	label  string
	decode func([]byte) string
	encode func(string) []byte
}

// Codec is the value object produced by Parse: an ordered term list (or an
// external descriptor), a Config, and a selected backend (§3 "Codec").
// Codec is cheap to copy and carries no I/O resources; concurrent use of
// independent Codec values is safe by construction (§5).
type Codec struct {
	terms    []Term
	cfg      Config
	backend  BackendKind
	external *externalDescriptor
}

// Terms returns the codec's ordered, deduplicated term list. It is empty
// only when the codec uses an external adapter.
func (c Codec) Terms() []Term {
	out := make([]Term, len(c.terms))
	copy(out, c.terms)
	return out
}

// Backend returns the codec's selected backend.
func (c Codec) Backend() BackendKind { return c.backend }

// CanonicalString regenerates the SCS string the codec was parsed from (or
// its normalized equivalent): the primary keywords of its terms joined by
// '\', or the external adapter's own label (§4.4).
func (c Codec) CanonicalString() string {
	if c.external != nil {
		return c.external.label
	}
	s := ""
	for i, t := range c.terms {
		if i > 0 {
			s += "\\"
		}
		s += t.Keywords()[0]
	}
	return s
}

// Decode converts raw DICOM attribute bytes to a UTF-8 string, dispatching
// to the selected backend (§4.5-§4.9). It never panics and never fails:
// unrecognized input is replaced per Config.ReplacementCharacterFn (§7).
func (c Codec) Decode(input []byte, ctx Context) string {
	switch c.backend {
	case BackendUtf8:
		return decodeUtf8(input, c.cfg)
	case BackendNonIso2022:
		return decodeNonIso2022(c.terms[0], input, c.cfg)
	case BackendIso2022Simple:
		return decodeIso2022Simple(c.terms[0], input, c.cfg)
	case BackendIso2022Extended:
		return decodeIso2022Extended(c.terms, input, ctx, c.cfg)
	case BackendExternal:
		return c.external.decode(input)
	default:
		return string(input)
	}
}

// Encode converts a UTF-8 string to raw DICOM attribute bytes, dispatching
// to the selected backend.
func (c Codec) Encode(s string, ctx Context) []byte {
	switch c.backend {
	case BackendUtf8:
		return encodeUtf8(s)
	case BackendNonIso2022:
		return encodeNonIso2022(c.terms[0], s, c.cfg)
	case BackendIso2022Simple:
		return encodeIso2022Simple(c.terms[0], s, c.cfg)
	case BackendIso2022Extended:
		return encodeIso2022Extended(c.terms, s, ctx, c.cfg)
	case BackendExternal:
		return c.external.encode(s)
	default:
		return []byte(s)
	}
}

// unknownCodec is the sentinel identity codec returned whenever SCS parsing
// fails (§4.2 step 7, §7 "fatal condition").
func unknownCodec(cfg Config) Codec {
	return Codec{terms: []Term{Unknown}, cfg: cfg, backend: BackendNonIso2022}
}

// isASCIIOnly reports whether b contains only bytes < 0x80.
func isASCIIOnly(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

func containsByteSlice(b []byte, needle byte) bool {
	for _, c := range b {
		if c == needle {
			return true
		}
	}
	return false
}

// getTables resolves the (G0, G1) designation pair for any term, including
// the single-valued "ISO_IR 6 / ISO 2022 IR 6" G1 relaxation shared by the
// Simple and Extended backends (§4.7), grounded on the Rust original's
// get_tables() helper (iso2022_simple_impl.rs).
//
// singleValued is true only when resolving the term list for the Iso2022
// Simple backend (a single-valued SCS); it gates the SetG1ForIsoIr6
// override, which §4.7 restricts to that case.
func getTables(t Term, cfg Config, singleValued bool) (g0, g1 *Table) {
	mode := t.Meta().Mode
	switch mode.Kind {
	case ModeIso2022WithExtensions:
		g0, g1 = mode.G0, mode.G1
	case ModeIso2022NoExtensions:
		g0, g1 = getTables(mode.ExtendedVariant, cfg, singleValued)
	default:
		g0, g1 = tableG0AlwaysInvalid, tableG1AlwaysInvalid
	}

	if singleValued && g1.Kind == TableUnassigned && (t == IsoIr6 || t == Iso2022Ir6) {
		g1 = resolveG1ForIsoIr6(cfg)
	}

	if cfg.UseModernCodePage {
		if g0.Modern != nil {
			g0 = g0.Modern
		}
		if g1.Modern != nil {
			g1 = g1.Modern
		}
	}
	return g0, g1
}

// resolveG1ForIsoIr6 implements §4.4's single-valued ISO_IR 6 relaxation:
// Config.SetG1ForIsoIr6 substitutes a caller-chosen G1 table, but only when
// that term is itself ISO-2022 compatible and actually defines a G1;
// otherwise the identity pseudo-table is used.
func resolveG1ForIsoIr6(cfg Config) *Table {
	if cfg.SetG1ForIsoIr6 != nil {
		override := *cfg.SetG1ForIsoIr6
		mode := override.Meta().Mode
		if mode.Kind == ModeIso2022WithExtensions && mode.G1.Kind != TableUnassigned {
			return mode.G1
		}
		if mode.Kind == ModeIso2022NoExtensions {
			extMode := mode.ExtendedVariant.Meta().Mode
			if extMode.Kind == ModeIso2022WithExtensions && extMode.G1.Kind != TableUnassigned {
				return extMode.G1
			}
		}
	}
	return tableG1Identity
}
