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

const arxivFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/2401.00123v2</id>
    <title>Transformer Models for
      Clinical Trial Matching</title>
    <summary>We study automated
      patient-trial matching.</summary>
    <published>2024-01-05T12:00:00Z</published>
    <author><name>Priya Raman</name></author>
    <author><name>Thomas Lindgren</name></author>
    <category term="cs.LG"/>
    <category term="cs.CL"/>
    <category term="stat.ML"/>
    <category term="q-bio.QM"/>
  </entry>
</feed>`

func TestArxivFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("search_query"), "all:")
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(arxivFixture))
	}))
	defer srv.Close()

	orig := arxivBase
	arxivBase = srv.URL
	defer func() { arxivBase = orig }()

	src := NewArxivSource(srv.Client())
	q, err := fedsearch.Normalize(fedsearch.Params{Keyword: "trial matching"})
	require.NoError(t, err)

	pubs, err := src.Fetch(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, pubs, 1)

	pub := pubs[0]
	assert.Equal(t, "2401.00123", pub.ArxivID) // version suffix stripped
	assert.Equal(t, "Transformer Models for Clinical Trial Matching", pub.Title)
	assert.Equal(t, "We study automated patient-trial matching.", pub.Abstract)
	assert.Equal(t, "arXiv preprint", pub.Journal)
	assert.Equal(t, "https://arxiv.org/abs/2401.00123", pub.URL)
	assert.Equal(t, []string{"Priya Raman", "Thomas Lindgren"}, pub.Authors)
	assert.Len(t, pub.Categories, maxArxivCategories)
	require.NotNil(t, pub.PublishedDate)
	assert.Equal(t, 2024, pub.PublishedDate.Year())
}

func TestExtractArxivID(t *testing.T) {
	assert.Equal(t, "2401.00123", extractArxivID("http://arxiv.org/abs/2401.00123v2"))
	assert.Equal(t, "2401.00123", extractArxivID("http://arxiv.org/abs/2401.00123"))
	assert.Equal(t, "", extractArxivID("http://arxiv.org/nothing"))
}
