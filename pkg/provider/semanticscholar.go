package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"medisearch-be/internal/pkg/httputil"
	"medisearch-be/pkg/fedsearch"
)

var semanticScholarBase = "https://api.semanticscholar.org/graph/v1/author/search"

const semanticScholarFields = "name,affiliations,paperCount,hIndex,url"

// SemanticScholarSource queries the Semantic Scholar author-search API,
// the scholarly-citation engine. paperCount maps to PublicationCount and
// the first affiliation to Affiliation.
type SemanticScholarSource struct {
	Client *http.Client
	APIKey string
}

func NewSemanticScholarSource(client *http.Client, apiKey string) *SemanticScholarSource {
	return &SemanticScholarSource{Client: client, APIKey: apiKey}
}

func (s *SemanticScholarSource) Name() string { return fedsearch.SourceSemanticScholar }

func (s *SemanticScholarSource) Fetch(ctx context.Context, q fedsearch.Query) ([]fedsearch.Researcher, error) {
	term := q.NameFilter
	if term == "" {
		term = q.Term
	}

	params := url.Values{}
	params.Set("query", term)
	params.Set("limit", fmt.Sprintf("%d", externalResearcherLimit))
	params.Set("fields", semanticScholarFields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, semanticScholarBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if s.APIKey != "" {
		req.Header.Set("x-api-key", s.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("Semantic Scholar request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Semantic Scholar returned HTTP %d", resp.StatusCode)
	}

	var payload struct {
		Data []struct {
			AuthorID     string   `json:"authorId"`
			Name         string   `json:"name"`
			Affiliations []string `json:"affiliations"`
			PaperCount   int      `json:"paperCount"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parsing Semantic Scholar response: %w", err)
	}

	var researchers []fedsearch.Researcher
	for _, author := range payload.Data {
		if author.AuthorID == "" || author.Name == "" {
			continue
		}
		researchers = append(researchers, fedsearch.Researcher{
			ID:               author.AuthorID,
			Name:             author.Name,
			Affiliation:      strings.Join(author.Affiliations, "; "),
			Location:         fedsearch.NotSpecified,
			PublicationCount: author.PaperCount,
			SourceName:       fedsearch.SourceSemanticScholar,
			IsInternal:       false,
		})
	}
	return researchers, nil
}
