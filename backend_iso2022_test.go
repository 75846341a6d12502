package dicomcharset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1 (§8): SCS = "ISO_IR 100", a single-valued ISO-2022 Simple
// codec with G1 = ISO-8859-1.
func TestScenarioIso2022SimpleLatin1(t *testing.T) {
	codec, diag := Parse("ISO_IR 100", DefaultConfig())
	require.False(t, diag.HasFailure())
	assert.Equal(t, BackendIso2022Simple, codec.Backend())

	ctx := Context{}
	assert.Equal(t, "Àá", codec.Decode([]byte{0xC0, 0xE1}, ctx))
	assert.Equal(t, []byte{0xC0, 0xE1}, codec.Encode("Àá", ctx))
}

// Scenario 2 (§8): leading empty value defaults to ISO 2022 IR 6, second
// term designates ISO 2022 IR 58 (GB 2312) into G1.
func TestScenarioIso2022ExtendedGb2312(t *testing.T) {
	codec, diag := Parse(`\ISO 2022 IR 58`, DefaultConfig())
	require.False(t, diag.HasFailure())
	assert.Equal(t, BackendIso2022Extended, codec.Backend())

	input := []byte{0x1B, 0x24, 0x29, 0x41, 0xC4, 0xE3, 0xBA, 0xC3}
	assert.Equal(t, "你好", codec.Decode(input, Context{IsMultiValued: true}))
}

// Scenario 4 (§8): ESC-triggered G1 designation and backslash-triggered
// reset in a multi-valued extended term list.
func TestScenarioIso2022ExtendedResetOnDecode(t *testing.T) {
	codec, diag := Parse(`ISO 2022 IR 6\ISO 2022 IR 144`, DefaultConfig())
	require.False(t, diag.HasFailure())

	input := []byte{
		0xC4,
		0x1B, 0x2D, 0x4C, 0xC4,
		'\\',
		0xC4,
		'\\',
		0x1B, 0x2D, 0x4C, 0xC4,
		'\n',
		0xC4,
	}
	got := codec.Decode(input, Context{IsMultiValued: true})
	want := "�" + "Ф" + "\\" + "�" + "\\" + "Ф" + "\n" + "�"
	assert.Equal(t, want, got)
}

// Scenario 5 (§8): PN-delimiter-triggered reset on encode.
func TestScenarioIso2022ExtendedResetOnEncode(t *testing.T) {
	codec, diag := Parse(`ISO 2022 IR 6\ISO 2022 IR 144`, DefaultConfig())
	require.False(t, diag.HasFailure())

	ctx := Context{IsMultiValued: true, IsPN: true}
	got := codec.Encode("Ф ^ Ф = Ф", ctx)
	want := []byte{
		0x1B, 0x2D, 0x4C, 0xC4, ' ', '^', ' ',
		0x1B, 0x2D, 0x4C, 0xC4, ' ', '=', ' ',
		0x1B, 0x2D, 0x4C, 0xC4,
	}
	assert.Equal(t, want, got)
}

func TestIso2022SimpleCyrillicRoundTrip(t *testing.T) {
	codec, diag := Parse("ISO_IR 144", DefaultConfig())
	require.False(t, diag.HasFailure())
	assert.Equal(t, BackendIso2022Simple, codec.Backend())

	ctx := Context{}
	decoded := codec.Decode([]byte{0xC4}, ctx) // Ф in ISO-8859-5
	assert.Equal(t, "Ф", decoded)
	assert.Equal(t, []byte{0xC4}, codec.Encode(decoded, ctx))
}

func TestIso2022SimpleRoundTripsAllG0AndG1CodePoints(t *testing.T) {
	for _, term := range []Term{Iso2022Ir100, Iso2022Ir144, Iso2022Ir127} {
		g0, g1 := getTables(term, DefaultConfig(), true)
		for b := 0; b < 256; b++ {
			_, cp, ok := pickTable(g0, g1, byte(b)).Forward([]byte{byte(b)})
			if !ok {
				continue
			}
			enc, ok := g0.Backward(cp)
			if !ok {
				enc, ok = g1.Backward(cp)
			}
			require.True(t, ok, "term %v: cp %U round-trip-encode failed", term, cp)
			assert.Equal(t, byte(b), enc[0], "term %v: byte 0x%02X round-trip mismatch", term, b)
		}
	}
}

// Malformed and unrecognized ESC sequences consume only as much as the
// ISO-2022 syntax itself demands, reprocessing any leftover bytes normally
// on the next iteration. Ground truth: the original implementation's
// invalid_esc_code_handled_properly test.
func TestDecodeExtendedInvalidEscSequences(t *testing.T) {
	cfg := DefaultConfig()
	terms := []Term{IsoIr6}

	assert.Equal(t, "�", decodeIso2022Extended(terms, []byte{0x1B}, Context{}, cfg))
	assert.Equal(t, "�(", decodeIso2022Extended(terms, []byte{0x1B, 0x28}, Context{}, cfg))
	assert.Equal(t, "�", decodeIso2022Extended(terms, []byte{0x1B, 0x28, 0x49}, Context{}, cfg))
	assert.Equal(t, "�", decodeIso2022Extended(terms, []byte{0x1B, 0x20, 0x21, 0x22, 0x2E, 0x7E}, Context{}, cfg))
	assert.Equal(t, "", decodeIso2022Extended(terms, []byte{0x1B, 0x28, 0x42}, Context{}, cfg))
}

func pickTable(g0, g1 *Table, b byte) *Table {
	if b < 0x80 {
		return g0
	}
	return g1
}
