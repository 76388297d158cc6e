package fedsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeTrialsInternalWins(t *testing.T) {
	trials := []Trial{
		{ID: "NCT01234567", Title: "registry copy", SourceName: SourceClinicalTrials},
		{ID: "nct01234567", Title: "local copy", SourceName: SourceInternal, IsInternal: true},
		{ID: "NCT99999999", Title: "unrelated", SourceName: SourceClinicalTrials},
	}

	out := DedupeTrials(trials)

	require.Len(t, out, 2)
	assert.Equal(t, "local copy", out[0].Title)
	assert.True(t, out[0].IsInternal)
}

func TestDedupeTrialsKeepsNonRegistryIDs(t *testing.T) {
	trials := []Trial{
		{ID: "3f2a", SourceName: SourceInternal, IsInternal: true},
		{ID: "3f2a", SourceName: SourceInternal, IsInternal: true},
	}
	// UUID-style ids carry no cross-source identity and never merge.
	assert.Len(t, DedupeTrials(trials), 2)
}

func TestDedupePublicationsByAnyKey(t *testing.T) {
	pubs := []Publication{
		{ID: "p1", PMID: "123", DOI: "10.1/abc", SourceName: SourcePubMed},
		{ID: "p2", DOI: "10.1/ABC", ArxivID: "2401.0001", SourceName: SourceArxiv},
		{ID: "p3", ArxivID: "2401.0001", SourceName: SourceArxiv},
	}

	// p2 collapses into p1 via DOI (case-insensitive); p3 then matches
	// through the arXiv alias p2 registered.
	out := DedupePublications(pubs)
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ID)
}

func TestDedupePublicationsInternalWins(t *testing.T) {
	pubs := []Publication{
		{ID: "ext", PMID: "42", SourceName: SourcePubMed},
		{ID: "int", PMID: "42", SourceName: SourceInternal, IsInternal: true},
	}

	out := DedupePublications(pubs)
	require.Len(t, out, 1)
	assert.Equal(t, "int", out[0].ID)
}

func TestDedupeResearchersByNormalizedName(t *testing.T) {
	researchers := []Researcher{
		{ID: "a", Name: "Elena  Vasquez", SourceName: SourceOpenAlex},
		{ID: "b", Name: "elena vasquez", SourceName: SourceInternal, IsInternal: true},
		{ID: "c", Name: "Elena Vasquez", SourceName: SourceSemanticScholar},
	}

	out := DedupeResearchers(researchers)
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID)
}

func TestDedupeResearchersExternalFirstSeenWins(t *testing.T) {
	researchers := []Researcher{
		{ID: "a", Name: "Samuel Okafor", SourceName: SourceOpenAlex},
		{ID: "b", Name: "Samuel Okafor", SourceName: SourceSemanticScholar},
	}

	out := DedupeResearchers(researchers)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}
