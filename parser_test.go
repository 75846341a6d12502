package dicomcharset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmptyFails(t *testing.T) {
	codec, diag := Parse("", DefaultConfig())
	assert.True(t, diag.HasFailure())
	assert.Contains(t, diag.String(), "ds_0001")
	assert.Equal(t, []Term{Unknown}, codec.Terms())
}

func TestParseUnknownSingleTokenFails(t *testing.T) {
	_, diag := Parse("NOT_A_REAL_CHARSET", DefaultConfig())
	assert.True(t, diag.HasFailure())
	assert.Contains(t, diag.String(), "ds_0002")
}

func TestParseKnownSingleTokenSucceeds(t *testing.T) {
	codec, diag := Parse("ISO_IR 100", DefaultConfig())
	require.False(t, diag.HasFailure())
	assert.Equal(t, "ISO_IR 100", codec.CanonicalString())
	assert.Equal(t, BackendIso2022Simple, codec.Backend())
}

func TestParsePromotesNonExtensibleTermInMultiValue(t *testing.T) {
	codec, diag := Parse(`ISO_IR 6\ISO 2022 IR 100`, PermissiveConfig())
	require.False(t, diag.HasFailure())
	assert.Contains(t, diag.String(), "ds_0012")
	assert.Equal(t, []Term{Iso2022Ir6, Iso2022Ir100}, codec.Terms())
}

func TestParseDuplicateValueFailsAfterDedup(t *testing.T) {
	_, diag := Parse(`ISO 2022 IR 100\ISO 2022 IR 100`, DefaultConfig())
	assert.True(t, diag.HasFailure())
	assert.Contains(t, diag.String(), "ds_0011")
}

func TestParseDoubleBackslashWarnsIgnoredEmpty(t *testing.T) {
	codec, diag := Parse(`ISO 2022 IR 6\\ISO 2022 IR 100`, DefaultConfig())
	require.False(t, diag.HasFailure())
	assert.Contains(t, diag.String(), "ds_0008")
	assert.Equal(t, []Term{Iso2022Ir6, Iso2022Ir100}, codec.Terms())
}

func TestParseLeadingEmptyDefaultsToIso2022Ir6(t *testing.T) {
	codec, diag := Parse(`\ISO 2022 IR 58`, DefaultConfig())
	require.False(t, diag.HasFailure())
	assert.Equal(t, []Term{Iso2022Ir6, Iso2022Ir58}, codec.Terms())
}

func TestParseFirstTermMultiByteFails(t *testing.T) {
	_, diag := Parse(`ISO 2022 IR 58\ISO 2022 IR 6`, DefaultConfig())
	assert.True(t, diag.HasFailure())
	assert.Contains(t, diag.String(), "ds_0006")
}

func TestParseNonIso2022TermInMultiValuedFails(t *testing.T) {
	_, diag := Parse(`ISO 2022 IR 6\GB18030`, DefaultConfig())
	assert.True(t, diag.HasFailure())
	assert.Contains(t, diag.String(), "ds_0005")
}

func TestParseNonStandardDisallowedByDefault(t *testing.T) {
	_, diag := Parse("KOI8-R", Config{})
	assert.True(t, diag.HasFailure())
	assert.Contains(t, diag.String(), "ds_0003")
}

func TestParseNonStandardAcceptedWhenAllowed(t *testing.T) {
	codec, diag := Parse("KOI8-R", DefaultConfig())
	require.False(t, diag.HasFailure())
	assert.Contains(t, diag.String(), "ds_0004")
	assert.Equal(t, []Term{NonDicomKoi8R}, codec.Terms())
}

func TestParseOrErrorWrapsFailure(t *testing.T) {
	_, err := ParseOrError("", DefaultConfig())
	require.Error(t, err)

	codec, err := ParseOrError("ISO_IR 100", DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []Term{IsoIr100}, codec.Terms())
}
