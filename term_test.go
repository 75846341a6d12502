package dicomcharset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllTermsListedInOrder(t *testing.T) {
	for i, meta := range AllTerms() {
		assert.Equal(t, Term(i), meta.Term, "allTerms[%d] has Term %v, want %v", i, meta.Term, i)
		require.NotEmpty(t, meta.Keywords, "term %v has no keywords", meta.Term)
	}
}

func TestFromU8(t *testing.T) {
	term, ok := FromU8(uint8(Iso2022Ir100))
	require.True(t, ok)
	assert.Equal(t, Iso2022Ir100, term)

	_, ok = FromU8(255)
	assert.False(t, ok)
}

func TestFromKeywordPrimaryOnly(t *testing.T) {
	term, ok := FromKeyword([]byte("ISO_IR 100"))
	require.True(t, ok)
	assert.Equal(t, IsoIr100, term)

	term, ok = FromKeyword([]byte("iso_ir 100"))
	require.True(t, ok)
	assert.Equal(t, IsoIr100, term)

	// "ISO-8859-1" is an alias, not the primary keyword -- FromKeyword must
	// not find it (SearchByKeyword is the entry point for alias matching).
	_, ok = FromKeyword([]byte("ISO-8859-1"))
	assert.False(t, ok)
}

func TestSearchByKeywordMatchOrder(t *testing.T) {
	term, kind, ok := SearchByKeyword([]byte("ISO_IR 100"))
	require.True(t, ok)
	assert.Equal(t, IsoIr100, term)
	assert.Equal(t, MatchPrimary, kind)

	term, kind, ok = SearchByKeyword([]byte("iso_ir 100"))
	require.True(t, ok)
	assert.Equal(t, IsoIr100, term)
	assert.Equal(t, MatchPrimaryICase, kind)

	term, kind, ok = SearchByKeyword([]byte("ISO-8859-1"))
	require.True(t, ok)
	assert.Equal(t, IsoIr100, term)
	assert.Equal(t, MatchAlias, kind)

	term, kind, ok = SearchByKeyword([]byte("iso-ir-100"))
	require.True(t, ok)
	assert.Equal(t, IsoIr100, term)
	assert.Equal(t, MatchFuzzy, kind)

	_, _, ok = SearchByKeyword([]byte("not a real encoding"))
	assert.False(t, ok)
}

func TestIsStandardDicom(t *testing.T) {
	assert.True(t, IsoIr100.IsStandardDicom())
	assert.True(t, Gbk.IsStandardDicom())
	assert.False(t, NonDicomKoi8R.IsStandardDicom())
	assert.False(t, Unknown.IsStandardDicom())
}
