package dicomcharset

import "golang.org/x/text/encoding/htmlindex"

// ReplacementFunc produces replacement text for a run of bytes that could
// not be decoded. Encoding does not use it: a character that no table can
// encode is written as '?' (or dropped when '?' cannot be encoded either).
// The default always yields U+FFFD, regardless of input, but callers may
// substitute byte-preserving diagnostics (e.g. hex escapes).
type ReplacementFunc func(offending []byte) string

// DefaultReplacementFunc always returns U+FFFD, independent of input.
func DefaultReplacementFunc(offending []byte) string {
	return "�"
}

// ExternalResolver turns a caller-supplied label into a decode/encode
// function pair, backing the External backend (§4.9). The zero Config has no
// resolver, so external labels are not recognized; DefaultConfig installs
// the htmlindex.Get-backed resolver. Resolved labels are accepted only when
// AllowNonStandardEncodings is set.
type ExternalResolver func(label string) (decode func([]byte) string, encode func(string) []byte, ok bool)

// htmlIndexResolver is the default ExternalResolver, wrapping
// golang.org/x/text/encoding/htmlindex (§1b, §4.9).
func htmlIndexResolver(label string) (func([]byte) string, func(string) []byte, bool) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, nil, false
	}
	dec := enc.NewDecoder()
	encEnc := enc.NewEncoder()
	decode := func(b []byte) string {
		s, err := dec.Bytes(b)
		if err != nil {
			return string(b)
		}
		return string(s)
	}
	encode := func(s string) []byte {
		b, err := encEnc.Bytes([]byte(s))
		if err != nil {
			return []byte(s)
		}
		return b
	}
	return decode, encode, true
}

// Config holds the user-tunable tolerance flags described in SPEC_FULL.md
// §3. The zero Config is the strict, standards-only configuration; use
// DefaultConfig for the library's recommended permissive defaults, or
// compose ConfigOption values over either.
type Config struct {
	// AllowEncodingAliases accepts non-primary keywords, e.g. "ISO-8859-1"
	// for IsoIr100.
	AllowEncodingAliases bool

	// AllowIso2022NonExtensibleTermInMultiValuedCharset promotes a
	// SingleByteWithoutCodeExtensions term to its
	// SingleByteWithCodeExtensions sibling when it appears inside a
	// multi-valued SCS, instead of failing.
	AllowIso2022NonExtensibleTermInMultiValuedCharset bool

	// AllowNonStandardEncodings accepts non-DICOM terms (CP125x, KOI8-R,
	// ...) and, when ExternalResolver is set, external labels.
	AllowNonStandardEncodings bool

	// IgnoreMultiValueDuplicates silently discards empty or duplicate
	// values in a multi-valued SCS, as long as >= 2 values remain.
	IgnoreMultiValueDuplicates bool

	// UseModernCodePage substitutes Table.Modern alternatives (Greek
	// IR-126 -> IR-227, Hebrew IR-138 -> IR-234) when present.
	UseModernCodePage bool

	// SetG1ForIsoIr6, if non-nil, names the term whose G1 designation
	// replaces the default identity mapping when the SCS is single-valued
	// "ISO_IR 6" or "ISO 2022 IR 6" (§4.7). It is only honored when the
	// named term is itself ISO-2022 compatible and defines a G1 table.
	SetG1ForIsoIr6 *Term

	// ReplacementCharacterFn produces replacement text for unrecognized
	// input. Defaults to DefaultReplacementFunc.
	ReplacementCharacterFn ReplacementFunc

	// DisableTracing silences diagnostic emission via charsetlog.
	DisableTracing bool

	// ExternalResolver backs the External backend (§4.9). Defaults to nil;
	// DefaultConfig populates it with the htmlindex-backed resolver.
	ExternalResolver ExternalResolver
}

// ConfigOption mutates a Config in place, following the functional-options
// idiom the teacher uses for WriteOption (writer.go).
type ConfigOption func(*Config)

// DefaultConfig returns the library's recommended permissive configuration:
// aliases, non-standard encodings, the external resolver, and multi-value
// duplicate tolerance are all enabled, matching real-world PACS traffic
// that rarely follows the Standard to the letter.
func DefaultConfig(opts ...ConfigOption) Config {
	cfg := Config{
		AllowEncodingAliases:       true,
		AllowNonStandardEncodings:  true,
		IgnoreMultiValueDuplicates: true,
		ReplacementCharacterFn:     DefaultReplacementFunc,
		ExternalResolver:           htmlIndexResolver,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// PermissiveConfig additionally allows promoting non-extensible ISO-2022
// terms inside a multi-valued SCS.
func PermissiveConfig(opts ...ConfigOption) Config {
	cfg := DefaultConfig(opts...)
	cfg.AllowIso2022NonExtensibleTermInMultiValuedCharset = true
	return cfg
}

// WithModernCodePages enables UseModernCodePage.
func WithModernCodePages() ConfigOption {
	return func(c *Config) { c.UseModernCodePage = true }
}

// WithReplacementFunc overrides ReplacementCharacterFn.
func WithReplacementFunc(fn ReplacementFunc) ConfigOption {
	return func(c *Config) { c.ReplacementCharacterFn = fn }
}

// WithoutTracing sets DisableTracing.
func WithoutTracing() ConfigOption {
	return func(c *Config) { c.DisableTracing = true }
}

// WithSetG1ForIsoIr6 sets SetG1ForIsoIr6.
func WithSetG1ForIsoIr6(t Term) ConfigOption {
	return func(c *Config) { c.SetG1ForIsoIr6 = &t }
}

// replacementFn returns cfg's replacement function, or the default if unset.
func (cfg Config) replacementFn() ReplacementFunc {
	if cfg.ReplacementCharacterFn != nil {
		return cfg.ReplacementCharacterFn
	}
	return DefaultReplacementFunc
}
