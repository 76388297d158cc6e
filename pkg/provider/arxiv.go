package provider

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"medisearch-be/internal/pkg/httputil"
	"medisearch-be/pkg/fedsearch"
)

var arxivBase = "https://export.arxiv.org/api/query"

// maxArxivCategories bounds the category list carried on a preprint.
const maxArxivCategories = 3

// ArxivSource queries the arXiv Atom API for preprints. Preprints have no
// journal, phase or status concept; status defaults to COMPLETED like any
// published literature.
type ArxivSource struct {
	Client *http.Client
}

func NewArxivSource(client *http.Client) *ArxivSource {
	return &ArxivSource{Client: client}
}

func (s *ArxivSource) Name() string { return fedsearch.SourceArxiv }

type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID        string `xml:"id"`
	Title     string `xml:"title"`
	Summary   string `xml:"summary"`
	Published string `xml:"published"`
	Authors   []struct {
		Name string `xml:"name"`
	} `xml:"author"`
	Categories []struct {
		Term string `xml:"term,attr"`
	} `xml:"category"`
	DOI string `xml:"doi"`
}

func (s *ArxivSource) Fetch(ctx context.Context, q fedsearch.Query) ([]fedsearch.Publication, error) {
	searchQuery := "all:" + strings.Join(strings.Fields(strings.Join(q.Terms, " ")), "+")

	params := url.Values{}
	params.Set("search_query", searchQuery)
	params.Set("start", "0")
	params.Set("max_results", fmt.Sprintf("%d", externalPublicationLimit))
	params.Set("sortBy", "relevance")
	params.Set("sortOrder", "descending")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, arxivBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("arXiv request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	var pubs []fedsearch.Publication
	for _, entry := range feed.Entries {
		arxivID := extractArxivID(entry.ID)
		if arxivID == "" {
			continue
		}

		var categories []string
		for _, c := range entry.Categories {
			categories = append(categories, c.Term)
		}

		p := fedsearch.Publication{
			ID:            arxivID,
			Title:         collapseWhitespace(entry.Title),
			Abstract:      collapseWhitespace(entry.Summary),
			Journal:       "arXiv preprint",
			DOI:           entry.DOI,
			ArxivID:       arxivID,
			Categories:    splitCategories(strings.Join(categories, " ")),
			URL:           "https://arxiv.org/abs/" + arxivID,
			SourceName:    fedsearch.SourceArxiv,
			IsInternal:    false,
		}
		for _, a := range entry.Authors {
			p.Authors = append(p.Authors, strings.TrimSpace(a.Name))
		}
		if t, parseErr := time.Parse(time.RFC3339, entry.Published); parseErr == nil {
			p.PublishedDate = &t
		}
		pubs = append(pubs, p)
	}
	return pubs, nil
}

// extractArxivID pulls the bare ID out of an entry URL like
// "http://arxiv.org/abs/2301.07041v2".
func extractArxivID(entryID string) string {
	idx := strings.LastIndex(entryID, "/abs/")
	if idx < 0 {
		return ""
	}
	id := entryID[idx+len("/abs/"):]
	// Strip the version suffix.
	if v := strings.LastIndex(id, "v"); v > 0 {
		if _, err := fmt.Sscanf(id[v+1:], "%d", new(int)); err == nil {
			id = id[:v]
		}
	}
	return id
}

// splitCategories splits a comma/space-delimited category string and keeps
// the first three.
func splitCategories(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(fields) > maxArxivCategories {
		fields = fields[:maxArxivCategories]
	}
	return fields
}

// arXiv titles and summaries wrap with embedded newlines.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
