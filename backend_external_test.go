package dicomcharset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// "shift_jis" is not one of this package's Term keywords or aliases, so it
// can only be reached through the External backend's htmlindex resolver.
func TestExternalBackendResolvesHtmlIndexLabel(t *testing.T) {
	codec, diag := Parse("shift_jis", DefaultConfig())
	require.False(t, diag.HasFailure())
	assert.Equal(t, BackendExternal, codec.Backend())
	assert.Equal(t, "shift_jis", codec.CanonicalString())

	ctx := Context{}
	assert.Equal(t, "ABC", codec.Decode([]byte("ABC"), ctx))
	assert.Equal(t, []byte("ABC"), codec.Encode("ABC", ctx))
}

func TestExternalBackendRejectedWithoutNonStandardEncodings(t *testing.T) {
	_, diag := Parse("shift_jis", Config{})
	assert.True(t, diag.HasFailure())
}

func TestExternalBackendUnavailableInMultiValuedSCS(t *testing.T) {
	_, diag := Parse(`ISO 2022 IR 6\shift_jis`, DefaultConfig())
	assert.True(t, diag.HasFailure())
}
