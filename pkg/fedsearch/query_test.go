package fedsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRequiresATerm(t *testing.T) {
	_, err := Normalize(Params{Location: "Boston, USA", Page: 2})
	assert.ErrorIs(t, err, ErrInvalidQuery)

	_, err = Normalize(Params{Condition: "   "})
	assert.ErrorIs(t, err, ErrInvalidQuery)

	q, err := Normalize(Params{Search: "Vasquez"})
	require.NoError(t, err)
	assert.Equal(t, "Vasquez", q.NameFilter)
	assert.Empty(t, q.Term)
}

func TestNormalizeDefaults(t *testing.T) {
	q, err := Normalize(Params{Condition: "diabetes"})
	require.NoError(t, err)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.Limit)
	assert.Equal(t, 0, q.Offset)
	assert.Equal(t, SelectorAll, q.Source)
	assert.Equal(t, TrialPhase(""), q.Phase)
	assert.Equal(t, TrialStatus(""), q.Status)
}

func TestNormalizeConditionWinsOverKeyword(t *testing.T) {
	q, err := Normalize(Params{Condition: "diabetes", Keyword: "insulin"})
	require.NoError(t, err)
	assert.Equal(t, "diabetes", q.Term)
}

func TestNormalizeOffset(t *testing.T) {
	q, err := Normalize(Params{Condition: "cancer", Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 20, q.Offset)
}

func TestNormalizeFilterVocabulary(t *testing.T) {
	q, err := Normalize(Params{Condition: "cancer", Phase: "Phase 2", Status: "recruiting"})
	require.NoError(t, err)
	assert.Equal(t, Phase2, q.Phase)
	assert.Equal(t, StatusRecruiting, q.Status)
}

func TestSplitTerms(t *testing.T) {
	assert.Equal(t, []string{"diabetes", "obesity"}, SplitTerms("diabetes, obesity"))
	assert.Equal(t, []string{"Diabetes"}, SplitTerms("Diabetes, diabetes"))
	assert.Nil(t, SplitTerms("  ,  ,"))
}

func TestNormalizeLocation(t *testing.T) {
	assert.Equal(t, "USA", NormalizeLocation("Boston, USA"))
	assert.Equal(t, "Germany", NormalizeLocation("Berlin, Brandenburg, Germany"))
	assert.Equal(t, "Toronto", NormalizeLocation("Toronto"))
	assert.Equal(t, "", NormalizeLocation("   "))
}

func TestSourceSelectors(t *testing.T) {
	all, err := Normalize(Params{Condition: "x"})
	require.NoError(t, err)
	assert.True(t, all.WantsInternal())
	assert.True(t, all.WantsSource(SourcePubMed))
	assert.False(t, all.InternalOnly())

	internal, err := Normalize(Params{Condition: "x", Source: SelectorInternal})
	require.NoError(t, err)
	assert.True(t, internal.WantsInternal())
	assert.False(t, internal.WantsSource(SourcePubMed))
	assert.True(t, internal.InternalOnly())

	pubmed, err := Normalize(Params{Condition: "x", Source: SourcePubMed})
	require.NoError(t, err)
	assert.False(t, pubmed.WantsInternal())
	assert.True(t, pubmed.WantsSource(SourcePubMed))
	assert.False(t, pubmed.WantsSource(SourceArxiv))
}

func TestCacheKeyIncludesEveryFilter(t *testing.T) {
	base, err := Normalize(Params{Condition: "diabetes", Location: "Boston, USA"})
	require.NoError(t, err)

	variants := []Params{
		{Condition: "diabetes"},
		{Condition: "diabetes", Location: "Boston, USA", Status: "recruiting"},
		{Condition: "diabetes", Location: "Boston, USA", Phase: "phase 1"},
		{Condition: "diabetes", Location: "Boston, USA", Source: SourcePubMed},
		{Condition: "diabetes", Location: "Boston, USA", Page: 2},
		{Condition: "diabetes", Location: "Boston, USA", Limit: 5},
	}
	for _, p := range variants {
		q, err := Normalize(p)
		require.NoError(t, err)
		assert.NotEqual(t, base.CacheKey(KindTrials), q.CacheKey(KindTrials))
	}

	// Kind separates record types under identical filters.
	assert.NotEqual(t, base.CacheKey(KindTrials), base.CacheKey(KindPublications))
}
