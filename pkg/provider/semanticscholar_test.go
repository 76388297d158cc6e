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

const semanticScholarFixture = `{
  "data": [
    {
      "authorId": "2061296",
      "name": "Thomas Lindgren",
      "affiliations": ["Karolinska Institute", "Uppsala University"],
      "paperCount": 87
    },
    {"authorId": "", "name": "dropped"}
  ]
}`

func TestSemanticScholarFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "lindgren", r.URL.Query().Get("query"))
		assert.Equal(t, semanticScholarFields, r.URL.Query().Get("fields"))
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		w.Write([]byte(semanticScholarFixture))
	}))
	defer srv.Close()

	orig := semanticScholarBase
	semanticScholarBase = srv.URL
	defer func() { semanticScholarBase = orig }()

	src := NewSemanticScholarSource(srv.Client(), "test-key")
	q, err := fedsearch.Normalize(fedsearch.Params{Condition: "oncology", Search: "lindgren"})
	require.NoError(t, err)

	researchers, err := src.Fetch(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, researchers, 1)

	r := researchers[0]
	assert.Equal(t, "2061296", r.ID)
	assert.Equal(t, "Thomas Lindgren", r.Name)
	assert.Equal(t, "Karolinska Institute; Uppsala University", r.Affiliation)
	assert.Equal(t, fedsearch.NotSpecified, r.Location)
	assert.Equal(t, 87, r.PublicationCount)
	assert.Equal(t, fedsearch.SourceSemanticScholar, r.SourceName)
}

func TestSemanticScholarFetchWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("x-api-key"))
		w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	orig := semanticScholarBase
	semanticScholarBase = srv.URL
	defer func() { semanticScholarBase = orig }()

	src := NewSemanticScholarSource(srv.Client(), "")
	q, err := fedsearch.Normalize(fedsearch.Params{Condition: "oncology"})
	require.NoError(t, err)

	researchers, err := src.Fetch(context.Background(), q)
	require.NoError(t, err)
	assert.Empty(t, researchers)
}
