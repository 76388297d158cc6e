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

const openAlexFixture = `{
  "results": [
    {
      "id": "https://openalex.org/A5012345678",
      "display_name": "Elena Vasquez",
      "works_count": 142,
      "last_known_institutions": [
        {"display_name": "Harborview Medical Center", "country_code": "us"}
      ]
    },
    {
      "id": "https://openalex.org/A5099999999",
      "display_name": "Priya Raman",
      "works_count": 18,
      "last_known_institutions": []
    },
    {"id": "", "display_name": "anonymous"}
  ]
}`

func TestOpenAlexFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "vasquez", r.URL.Query().Get("search"))
		assert.Equal(t, "10", r.URL.Query().Get("per-page"))
		assert.Equal(t, "dev@medisearch.example", r.URL.Query().Get("mailto"))
		w.Write([]byte(openAlexFixture))
	}))
	defer srv.Close()

	orig := openAlexBase
	openAlexBase = srv.URL
	defer func() { openAlexBase = orig }()

	src := NewOpenAlexSource(srv.Client(), "dev@medisearch.example")
	q, err := fedsearch.Normalize(fedsearch.Params{Condition: "cardiology", Search: "vasquez"})
	require.NoError(t, err)

	researchers, err := src.Fetch(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, researchers, 2) // the id-less author is dropped

	first := researchers[0]
	assert.Equal(t, "A5012345678", first.ID)
	assert.Equal(t, "Elena Vasquez", first.Name)
	assert.Equal(t, "Harborview Medical Center", first.Affiliation)
	assert.Equal(t, "US", first.Location)
	assert.Equal(t, 142, first.PublicationCount)
	assert.Equal(t, fedsearch.SourceOpenAlex, first.SourceName)
	assert.False(t, first.IsInternal)

	// No institution on record means no location claim.
	assert.Equal(t, fedsearch.NotSpecified, researchers[1].Location)
	assert.Empty(t, researchers[1].Affiliation)
}
