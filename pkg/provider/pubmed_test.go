package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"medisearch-be/pkg/fedsearch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pubmedSearchFixture = `{"esearchresult": {"idlist": ["39812345"]}}`

const pubmedSummaryFixture = `{
  "result": {
    "uids": ["39812345"],
    "39812345": {
      "uid": "39812345",
      "title": "Long-term Outcomes of SGLT2 Inhibitors in Heart Failure",
      "fulljournalname": "Journal of Cardiovascular Medicine",
      "pubdate": "2025 Jan 12",
      "authors": [{"name": "Vasquez E"}, {"name": "Raman P"}],
      "articleids": [
        {"idtype": "pubmed", "value": "39812345"},
        {"idtype": "doi", "value": "10.1001/jcm.2025.0112"}
      ]
    }
  }
}`

func TestPubMedFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/esearch", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pubmed", r.URL.Query().Get("db"))
		assert.Equal(t, "heart failure", r.URL.Query().Get("term"))
		w.Write([]byte(pubmedSearchFixture))
	})
	mux.HandleFunc("/esummary", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "39812345", r.URL.Query().Get("id"))
		w.Write([]byte(pubmedSummaryFixture))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	origSearch, origSummary := pubmedSearchBase, pubmedSummaryBase
	pubmedSearchBase = srv.URL + "/esearch"
	pubmedSummaryBase = srv.URL + "/esummary"
	defer func() { pubmedSearchBase, pubmedSummaryBase = origSearch, origSummary }()

	src := NewPubMedSource(srv.Client(), "")
	q, err := fedsearch.Normalize(fedsearch.Params{Condition: "heart failure"})
	require.NoError(t, err)

	pubs, err := src.Fetch(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, pubs, 1)

	pub := pubs[0]
	assert.Equal(t, "39812345", pub.PMID)
	assert.Equal(t, "10.1001/jcm.2025.0112", pub.DOI)
	assert.Equal(t, []string{"Vasquez E", "Raman P"}, pub.Authors)
	assert.Equal(t, "https://pubmed.ncbi.nlm.nih.gov/39812345/", pub.URL)
	assert.Contains(t, pub.Abstract, "Published in Journal of Cardiovascular Medicine.")
	assert.Equal(t, fedsearch.SourcePubMed, pub.SourceName)
	require.NotNil(t, pub.PublishedDate)
	assert.Equal(t, 2025, pub.PublishedDate.Year())
}

func TestPubMedFetchNoHits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"esearchresult": {"idlist": []}}`))
	}))
	defer srv.Close()

	orig := pubmedSearchBase
	pubmedSearchBase = srv.URL
	defer func() { pubmedSearchBase = orig }()

	src := NewPubMedSource(srv.Client(), "")
	q, err := fedsearch.Normalize(fedsearch.Params{Condition: "zzzz"})
	require.NoError(t, err)

	pubs, err := src.Fetch(context.Background(), q)
	require.NoError(t, err)
	assert.Empty(t, pubs)
}
