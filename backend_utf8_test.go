package dicomcharset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 3 (§8): UTF-8 backend is a pure passthrough in both directions.
func TestScenarioUtf8Passthrough(t *testing.T) {
	codec, diag := Parse("ISO_IR 192", DefaultConfig())
	require.False(t, diag.HasFailure())
	assert.Equal(t, BackendUtf8, codec.Backend())

	want := []byte{0xD4, 0xB2, 0xD5, 0xA1, 0xD6, 0x80, 0xD5, 0xA5, 0xD6, 0x82}
	assert.Equal(t, want, codec.Encode("Բարեւ", Context{}))
	assert.Equal(t, "Բարեւ", codec.Decode(want, Context{}))
}

func TestUtf8DecodeReplacesInvalidBytes(t *testing.T) {
	codec, diag := Parse("ISO_IR 192", DefaultConfig())
	require.False(t, diag.HasFailure())

	got := codec.Decode([]byte{'a', 0xFF, 'b'}, Context{})
	assert.Equal(t, "a�b", got)
}
