package dicomcharset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/msz-kp/go-dicom-charset/charsetlog"
)

// Parse implements §4.2: it turns the raw bytes of a Specific Character Set
// attribute (0008,0005) into a Codec. Parsing never panics and never
// returns an error value; on failure the returned Codec is the identity
// Unknown codec and the returned Diagnostics carries exactly one failure
// code.
func Parse(scs string, cfg Config) (Codec, Diagnostics) {
	var diag Diagnostics

	trimmed := strings.Trim(scs, " \t\r\n\f\v")
	if trimmed == "" {
		diag.add(DiagEmpty)
		return finishParse(scs, diag, cfg)
	}

	if !strings.Contains(trimmed, "\\") {
		codec, d, ok := parseSingleValued(trimmed, cfg)
		diag |= d
		if !ok {
			return finishParse(scs, diag, cfg)
		}
		return finishParse(scs, diag, cfg, withCodec(codec))
	}

	return parseMultiValued(scs, trimmed, cfg)
}

// ParseOrError is the Go-idiomatic wrapper over Parse: a failure diagnostic
// becomes an error; success is returned with its (possibly non-empty,
// non-fatal) warning diagnostics discarded into the error's absence.
func ParseOrError(scs string, cfg Config) (Codec, error) {
	codec, diag := Parse(scs, cfg)
	if diag.HasFailure() {
		return codec, errors.New(diag.String())
	}
	return codec, nil
}

// parseSingleValued implements §4.2 step 2.
func parseSingleValued(value string, cfg Config) (Codec, Diagnostics, bool) {
	var diag Diagnostics

	term, match, found := SearchByKeyword([]byte(value))
	if found {
		if !term.IsStandardDicom() && !cfg.AllowNonStandardEncodings {
			diag.add(DiagNonStandardDisallowed)
			return Codec{}, diag, false
		}
		if (match == MatchAlias || match == MatchFuzzy) && !cfg.AllowEncodingAliases {
			diag.add(DiagNonStandardDisallowed)
			return Codec{}, diag, false
		}
		if !term.IsStandardDicom() {
			diag.add(DiagAcceptedNonStandard)
		} else if match == MatchAlias || match == MatchFuzzy {
			diag.add(DiagAcceptedAlias)
		}
		codec := Codec{terms: []Term{term}, cfg: cfg, backend: chooseBackend([]Term{term})}
		return codec, diag, true
	}

	if cfg.ExternalResolver != nil {
		if ext, ok := resolveExternal(value, cfg); ok {
			if !cfg.AllowNonStandardEncodings {
				diag.add(DiagNonStandardDisallowed)
				return Codec{}, diag, false
			}
			diag.add(DiagAcceptedNonStandard)
			codec := Codec{cfg: cfg, backend: BackendExternal, external: ext}
			return codec, diag, true
		}
	}

	diag.add(DiagUnknownEncoding)
	return Codec{}, diag, false
}

func parseMultiValued(original, trimmed string, cfg Config) (Codec, Diagnostics) {
	var diag Diagnostics
	rawValues := strings.Split(trimmed, "\\")
	values := make([]string, len(rawValues))
	for i, v := range rawValues {
		if i == 0 {
			values[i] = strings.TrimRight(v, " \t\r\n\f\v")
		} else {
			values[i] = strings.Trim(v, " \t\r\n\f\v")
		}
	}

	var terms []Term
	seen := map[Term]bool{}

	first, d, ok := parseFirstValue(values[0], cfg)
	diag |= d
	if !ok {
		return finishParse(original, diag, cfg)
	}
	terms = append(terms, first)
	seen[first] = true

	for _, v := range values[1:] {
		term, d, skip, ok := parseSubsequentValue(v, cfg, seen)
		diag |= d
		if !ok {
			return finishParse(original, diag, cfg)
		}
		if skip {
			continue
		}
		terms = append(terms, term)
		seen[term] = true
	}

	// Step 6: collapse to failure if too few terms survived.
	if len(terms) < 2 {
		if diag.has(DiagIgnoredEmpty) {
			diag = (diag &^ Diagnostics(DiagIgnoredEmpty)) | Diagnostics(DiagEmptyMultiValue)
			return finishParse(original, diag, cfg)
		}
		if diag.has(DiagIgnoredDuplicate) {
			diag = (diag &^ Diagnostics(DiagIgnoredDuplicate)) | Diagnostics(DiagDuplicateMultiValue)
			return finishParse(original, diag, cfg)
		}
	}

	codec := Codec{terms: terms, cfg: cfg, backend: chooseBackend(terms)}
	return finishParse(original, diag, cfg, withCodec(codec))
}

// parseFirstValue implements §4.2 step 4.
func parseFirstValue(value string, cfg Config) (Term, Diagnostics, bool) {
	var diag Diagnostics

	if value == "" {
		return Iso2022Ir6, diag, true
	}

	term, match, found := SearchByKeyword([]byte(value))
	if !found {
		if cfg.ExternalResolver != nil {
			if _, ok := resolveExternal(value, cfg); ok {
				diag.add(DiagNonIso2022InMultiValued)
				return Unknown, diag, false
			}
		}
		diag.add(DiagUnknownEncoding)
		return Unknown, diag, false
	}

	meta := term.Meta()
	if meta.Kind == NonStandard || meta.Kind == MultiByteWithoutCodeExtensions {
		diag.add(DiagNonIso2022InMultiValued)
		return Unknown, diag, false
	}
	// The first term of a multi-valued SCS also seeds the initial G0/G1
	// designation; IR 87/159/149/58 have no usable G0 (their ASCII range
	// would be undecodable until the first ESC sequence), so they cannot
	// open a multi-valued term list.
	if meta.Kind == MultiByteWithCodeExtensions {
		diag.add(DiagFirstTermMultiByte)
		return Unknown, diag, false
	}

	warnedAlias := false
	if match == MatchAlias || match == MatchFuzzy {
		if !cfg.AllowEncodingAliases {
			diag.add(DiagNonStandardDisallowed)
			return Unknown, diag, false
		}
		diag.add(DiagAcceptedAlias)
		warnedAlias = true
	}

	if meta.Kind == SingleByteWithoutCodeExtensions {
		if !cfg.AllowIso2022NonExtensibleTermInMultiValuedCharset {
			diag.add(DiagNonIso2022InMultiValued)
			return Unknown, diag, false
		}
		term = meta.Mode.ExtendedVariant
		if !warnedAlias {
			diag.add(DiagPromoted)
		}
	}

	return term, diag, true
}

// parseSubsequentValue implements §4.2 step 5.
func parseSubsequentValue(value string, cfg Config, seen map[Term]bool) (Term, Diagnostics, bool, bool) {
	var diag Diagnostics

	if value == "" {
		if cfg.IgnoreMultiValueDuplicates {
			diag.add(DiagIgnoredEmpty)
			return Unknown, diag, true, true
		}
		diag.add(DiagEmptyMultiValue)
		return Unknown, diag, false, false
	}

	term, match, found := SearchByKeyword([]byte(value))
	if !found {
		if cfg.ExternalResolver != nil {
			if _, ok := resolveExternal(value, cfg); ok {
				diag.add(DiagNonIso2022InMultiValued)
				return Unknown, diag, false, false
			}
		}
		diag.add(DiagUnknownEncoding)
		return Unknown, diag, false, false
	}

	meta := term.Meta()
	if meta.Kind == NonStandard || meta.Kind == MultiByteWithoutCodeExtensions {
		diag.add(DiagNonIso2022InMultiValued)
		return Unknown, diag, false, false
	}

	warnedAlias := false
	if match == MatchAlias || match == MatchFuzzy {
		if !cfg.AllowEncodingAliases {
			diag.add(DiagNonStandardDisallowed)
			return Unknown, diag, false, false
		}
		diag.add(DiagAcceptedAlias)
		warnedAlias = true
	}

	if meta.Kind == SingleByteWithoutCodeExtensions {
		if !cfg.AllowIso2022NonExtensibleTermInMultiValuedCharset {
			diag.add(DiagNonIso2022InMultiValued)
			return Unknown, diag, false, false
		}
		term = meta.Mode.ExtendedVariant
		if !warnedAlias {
			diag.add(DiagPromoted)
		}
	}

	if seen[term] {
		if cfg.IgnoreMultiValueDuplicates {
			diag.add(DiagIgnoredDuplicate)
			return Unknown, diag, true, true
		}
		diag.add(DiagDuplicateMultiValue)
		return Unknown, diag, false, false
	}

	return term, diag, false, true
}

type finishOpt func(*Codec)

func withCodec(c Codec) finishOpt {
	return func(dst *Codec) { *dst = c }
}

// finishParse implements §4.2 step 7 (sentinel on failure) and the
// diagnostic emission rule. opts is empty on every failure path and
// exactly [withCodec(built)] on every success path.
func finishParse(original string, diag Diagnostics, cfg Config, opts ...finishOpt) (Codec, Diagnostics) {
	var codec Codec
	if diag.HasFailure() {
		codec = unknownCodec(cfg)
	} else {
		for _, o := range opts {
			o(&codec)
		}
	}

	if !cfg.DisableTracing {
		emitDiagnostic(original, codec, diag)
	}
	return codec, diag
}

func emitDiagnostic(original string, codec Codec, diag Diagnostics) {
	if diag == 0 {
		return
	}
	canonical := codec.CanonicalString()
	var msg string
	if canonical == original {
		msg = fmt.Sprintf("Accepted Specific Character Set %q (%s)", original, diag.String())
	} else {
		msg = fmt.Sprintf("Specific Character Set %q accepted as %q (%s)", original, canonical, diag.String())
	}
	charsetlog.Vprintf(-1, "%s", msg)
}
