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

var openAlexBase = "https://api.openalex.org/authors"

const externalResearcherLimit = 10

// OpenAlexSource queries the OpenAlex authors API, the researcher-identity
// registry. works_count maps to PublicationCount and the last known
// institution to Affiliation.
type OpenAlexSource struct {
	Client *http.Client
	// Mailto joins the polite pool; optional.
	Mailto string
}

func NewOpenAlexSource(client *http.Client, mailto string) *OpenAlexSource {
	return &OpenAlexSource{Client: client, Mailto: mailto}
}

func (s *OpenAlexSource) Name() string { return fedsearch.SourceOpenAlex }

type openAlexAuthor struct {
	ID                    string `json:"id"`
	DisplayName           string `json:"display_name"`
	WorksCount            int    `json:"works_count"`
	LastKnownInstitutions []struct {
		DisplayName string `json:"display_name"`
		CountryCode string `json:"country_code"`
	} `json:"last_known_institutions"`
}

func (s *OpenAlexSource) Fetch(ctx context.Context, q fedsearch.Query) ([]fedsearch.Researcher, error) {
	term := q.NameFilter
	if term == "" {
		term = q.Term
	}

	params := url.Values{}
	params.Set("search", term)
	params.Set("per-page", fmt.Sprintf("%d", externalResearcherLimit))
	if s.Mailto != "" {
		params.Set("mailto", s.Mailto)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, openAlexBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("OpenAlex request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenAlex returned HTTP %d", resp.StatusCode)
	}

	var payload struct {
		Results []openAlexAuthor `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parsing OpenAlex response: %w", err)
	}

	var researchers []fedsearch.Researcher
	for _, author := range payload.Results {
		if author.ID == "" || author.DisplayName == "" {
			continue
		}

		affiliation := ""
		location := fedsearch.NotSpecified
		if len(author.LastKnownInstitutions) > 0 {
			inst := author.LastKnownInstitutions[0]
			affiliation = inst.DisplayName
			if inst.CountryCode != "" {
				location = strings.ToUpper(inst.CountryCode)
			}
		}

		researchers = append(researchers, fedsearch.Researcher{
			ID:               strings.TrimPrefix(author.ID, "https://openalex.org/"),
			Name:             author.DisplayName,
			Affiliation:      affiliation,
			Location:         location,
			PublicationCount: author.WorksCount,
			SourceName:       fedsearch.SourceOpenAlex,
			IsInternal:       false,
		})
	}
	return researchers, nil
}
