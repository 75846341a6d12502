package dicomcharset

// resolveExternal implements §4.9: a thin adapter over a third-party
// encoding identified by its own label, bypassing ISO-2022 semantics
// entirely. It is only reachable for a single-valued SCS whose value does
// not match any known Term.
func resolveExternal(label string, cfg Config) (*externalDescriptor, bool) {
	resolver := cfg.ExternalResolver
	if resolver == nil {
		resolver = htmlIndexResolver
	}
	decode, encode, ok := resolver(label)
	if !ok {
		return nil, false
	}
	return &externalDescriptor{label: label, decode: decode, encode: encode}, true
}
