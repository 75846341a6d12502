package dicomcharset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticsStringOrdering(t *testing.T) {
	var d Diagnostics
	d.add(DiagPromoted)
	d.add(DiagAcceptedAlias)
	assert.Equal(t, "ds_0007, ds_0012", d.String())
}

func TestDiagnosticsHasFailure(t *testing.T) {
	var warningsOnly Diagnostics
	warningsOnly.add(DiagAcceptedNonStandard)
	assert.False(t, warningsOnly.HasFailure())

	var withFailure Diagnostics
	withFailure.add(DiagUnknownEncoding)
	assert.True(t, withFailure.HasFailure())
}

func TestDiagCodeID(t *testing.T) {
	assert.Equal(t, "ds_0001", DiagEmpty.ID())
	assert.Equal(t, "ds_0012", DiagPromoted.ID())
}
