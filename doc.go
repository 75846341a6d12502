// Package dicomcharset parses the DICOM Specific Character Set attribute
// (0008,0005) and decodes/encodes attribute values against it.
//
// Parse turns the raw attribute bytes into a Codec:
//
//	codec, diag := dicomcharset.Parse(scsValue, dicomcharset.DefaultConfig())
//	if diag.HasFailure() {
//	    // codec is the identity Unknown codec; diag.String() lists the ds_NNNN codes.
//	}
//	text := codec.Decode(rawValueBytes, dicomcharset.Context{IsMultiValued: true})
//
// A Codec picks one of five backends (UTF-8, Non-ISO-2022, ISO-2022 Simple,
// ISO-2022 Extended, External) based on the resolved Term list; callers
// never select a backend directly. Context carries the handful of per-VR
// flags (value-multiplicity, Person Name component delimiters) the ISO-2022
// Extended backend needs to know when to reset its active code-set
// designation.
package dicomcharset
