package dicomcharset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Universal invariant 1 & 2 (§8): pure-ASCII, no-ESC input/output round-trips
// byte-for-byte through every backend.
func TestUniversalInvariantAsciiFastPath(t *testing.T) {
	scsValues := []string{"ISO_IR 100", "ISO_IR 192", "GB18030", `ISO 2022 IR 6\ISO 2022 IR 144`}
	for _, scs := range scsValues {
		codec, diag := Parse(scs, DefaultConfig())
		require.False(t, diag.HasFailure(), scs)

		ascii := []byte("Hello, DICOM 123!")
		assert.Equal(t, string(ascii), codec.Decode(ascii, Context{}), scs)
		assert.Equal(t, ascii, codec.Encode(string(ascii), Context{}), scs)
	}
}

// Universal invariant 3 (§8): UTF-8 backend round-trips any valid UTF-8.
func TestUniversalInvariantUtf8RoundTrip(t *testing.T) {
	codec, diag := Parse("ISO_IR 192", DefaultConfig())
	require.False(t, diag.HasFailure())

	input := []byte("héllo wörld 你好 Ф")
	decoded := codec.Decode(input, Context{})
	assert.Equal(t, string(input), decoded)
	assert.Equal(t, input, codec.Encode(decoded, Context{}))
}

// Universal invariant 6 (§8): decode never panics, even on truncated
// multi-byte sequences or dangling ESC sequences.
func TestUniversalInvariantNeverPanics(t *testing.T) {
	scsValues := []string{"ISO_IR 100", "GB18030", "ISO 2022 IR 87", `ISO 2022 IR 6\ISO 2022 IR 58`}
	malformed := [][]byte{
		nil,
		{0x1B},
		{0x1B, 0x24},
		{0x1B, 0x28},
		{0xE3},
		{0xE3, 0x32},
		{0x81, 0x30, 0x81},
		{0xFF, 0xFF, 0xFF, 0xFF},
	}
	for _, scs := range scsValues {
		codec, diag := Parse(scs, DefaultConfig())
		require.False(t, diag.HasFailure(), scs)
		for _, m := range malformed {
			assert.NotPanics(t, func() {
				codec.Decode(m, Context{IsMultiValued: true})
			}, "scs=%s input=%v", scs, m)
		}
	}
}

// Malformed ESC sequences must only swallow the single ESC byte, not the
// scanned intermediates or a following ordinary byte: a bare ESC at the end
// of input decodes to just the replacement, but ESC followed by an
// intermediate decodes the intermediate separately on the next iteration.
func TestUniversalInvariantMalformedEscConsumesOnlyEscByte(t *testing.T) {
	codec, diag := Parse(`ISO 2022 IR 6\ISO 2022 IR 144`, DefaultConfig())
	require.False(t, diag.HasFailure())

	assert.Equal(t, "�", codec.Decode([]byte{0x1B}, Context{IsMultiValued: true}))
	assert.Equal(t, "�(", codec.Decode([]byte{0x1B, 0x28}, Context{IsMultiValued: true}))
	assert.Equal(t, "�A", codec.Decode([]byte{0x1B, 0x41}, Context{IsMultiValued: true}))
}

// Universal invariant 7 (§8): after an extra-delimiter character, the
// extended encoder's designation state is back at the initial one.
func TestUniversalInvariantEncodeResetsAtDelimiter(t *testing.T) {
	codec, diag := Parse(`ISO 2022 IR 6\ISO 2022 IR 144`, DefaultConfig())
	require.False(t, diag.HasFailure())

	out := codec.Encode("Ф\\A", Context{IsMultiValued: true})
	// "A" after the reset must be plain ASCII, with no trailing designation
	// switch required before it -- the reset already happened at '\\'.
	assert.Equal(t, byte('A'), out[len(out)-1])
	assert.NotContains(t, string(out[len(out)-2:]), "\x1B")
}
