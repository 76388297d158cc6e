package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"medisearch-be/internal/pkg/httputil"
	"medisearch-be/pkg/fedsearch"
)

var (
	pubmedSearchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	pubmedSummaryBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esummary.fcgi"
)

const externalPublicationLimit = 10

// PubMedSource queries the NCBI eutils pipeline: esearch for PMIDs, then
// esummary for metadata. Summaries carry no abstract, so a short one is
// derived from the article metadata.
type PubMedSource struct {
	Client *http.Client
	APIKey string
}

func NewPubMedSource(client *http.Client, apiKey string) *PubMedSource {
	return &PubMedSource{Client: client, APIKey: apiKey}
}

func (s *PubMedSource) Name() string { return fedsearch.SourcePubMed }

func (s *PubMedSource) Fetch(ctx context.Context, q fedsearch.Query) ([]fedsearch.Publication, error) {
	ids, err := s.searchIDs(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return s.fetchSummaries(ctx, ids)
}

func (s *PubMedSource) searchIDs(ctx context.Context, q fedsearch.Query) ([]string, error) {
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("term", strings.Join(q.Terms, " OR "))
	params.Set("retmode", "json")
	params.Set("retmax", fmt.Sprintf("%d", externalPublicationLimit))
	params.Set("sort", "relevance")
	if s.APIKey != "" {
		params.Set("api_key", s.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pubmedSearchBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("PubMed esearch request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("PubMed esearch returned HTTP %d", resp.StatusCode)
	}

	var payload struct {
		ESearchResult struct {
			IDList []string `json:"idlist"`
		} `json:"esearchresult"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parsing PubMed esearch response: %w", err)
	}
	return payload.ESearchResult.IDList, nil
}

type pubmedSummary struct {
	UID             string `json:"uid"`
	Title           string `json:"title"`
	FullJournalName string `json:"fulljournalname"`
	PubDate         string `json:"pubdate"`
	Authors         []struct {
		Name string `json:"name"`
	} `json:"authors"`
	ArticleIDs []struct {
		IDType string `json:"idtype"`
		Value  string `json:"value"`
	} `json:"articleids"`
}

func (s *PubMedSource) fetchSummaries(ctx context.Context, ids []string) ([]fedsearch.Publication, error) {
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("id", strings.Join(ids, ","))
	params.Set("retmode", "json")
	if s.APIKey != "" {
		params.Set("api_key", s.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pubmedSummaryBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("PubMed esummary request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("PubMed esummary returned HTTP %d", resp.StatusCode)
	}

	var payload struct {
		Result map[string]json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parsing PubMed esummary response: %w", err)
	}

	var pubs []fedsearch.Publication
	for _, id := range ids {
		raw, ok := payload.Result[id]
		if !ok {
			continue
		}
		var sum pubmedSummary
		if err := json.Unmarshal(raw, &sum); err != nil || sum.UID == "" {
			// Malformed single record: drop it, not the source.
			continue
		}
		pubs = append(pubs, mapPubmedSummary(sum))
	}
	return pubs, nil
}

func mapPubmedSummary(sum pubmedSummary) fedsearch.Publication {
	p := fedsearch.Publication{
		ID:            sum.UID,
		Title:         sum.Title,
		Abstract:      derivePubmedAbstract(sum),
		Journal:       sum.FullJournalName,
		PublishedDate: parsePubmedDate(sum.PubDate),
		PMID:          sum.UID,
		URL:           "https://pubmed.ncbi.nlm.nih.gov/" + sum.UID + "/",
		SourceName:    fedsearch.SourcePubMed,
		IsInternal:    false,
	}
	for _, a := range sum.Authors {
		p.Authors = append(p.Authors, a.Name)
	}
	for _, aid := range sum.ArticleIDs {
		if aid.IDType == "doi" {
			p.DOI = aid.Value
		}
	}
	return p
}

// derivePubmedAbstract builds a one-line summary because esummary never
// returns the abstract body.
func derivePubmedAbstract(sum pubmedSummary) string {
	title := sum.Title
	if len(title) > 200 {
		title = title[:197] + "..."
	}
	if sum.FullJournalName != "" {
		return fmt.Sprintf("%s Published in %s.", title, sum.FullJournalName)
	}
	return title
}

// parsePubmedDate handles "2024 Jan 15", "2024 Jan" and "2024".
func parsePubmedDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006 Jan 2", "2006 Jan", "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
