package dicomcharset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 6 (§8): GB18030's 4-byte extension range, including the
// documented non-round-tripping exception at U+E5E5.
func TestScenarioGb18030(t *testing.T) {
	codec, diag := Parse("GB18030", DefaultConfig())
	require.False(t, diag.HasFailure())
	assert.Equal(t, BackendNonIso2022, codec.Backend())

	ctx := Context{}
	assert.Equal(t, "", codec.Decode([]byte{0x81, 0x30, 0x81, 0x30}, ctx))
	assert.Equal(t, "\U0010FFFF", codec.Decode([]byte{0xE3, 0x32, 0x9A, 0x35}, ctx))
	assert.Equal(t, []byte("?"), codec.Encode("", ctx))
}

func TestNonStandardKoi8RRoundTrip(t *testing.T) {
	codec, diag := Parse("KOI8-R", DefaultConfig())
	require.False(t, diag.HasFailure())

	ctx := Context{}
	decoded := codec.Decode([]byte{0xD0}, ctx)
	reencoded := codec.Encode(decoded, ctx)
	assert.Equal(t, []byte{0xD0}, reencoded)
}
