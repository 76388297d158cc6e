package dto

import (
	"medisearch-be/pkg/fedsearch"
)

// SearchRequest is the query-string contract shared by the three search
// endpoints. Researchers use search+location, trials and publications use
// condition/keyword plus the trial filters; unused fields are ignored.
type SearchRequest struct {
	Condition string `query:"condition"`
	Keyword   string `query:"keyword"`
	Search    string `query:"search"`
	Location  string `query:"location"`
	Phase     string `query:"phase"`
	Status    string `query:"status"`
	Source    string `query:"source"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (r *SearchRequest) ToParams() fedsearch.Params {
	return fedsearch.Params{
		Condition: r.Condition,
		Keyword:   r.Keyword,
		Search:    r.Search,
		Location:  r.Location,
		Phase:     r.Phase,
		Status:    r.Status,
		Source:    r.Source,
		Page:      r.Page,
		Limit:     r.Limit,
	}
}

// TrialSearchResponse is the assembled trial search envelope. Internal and
// external counts describe the full merged list, not just the current page.
type TrialSearchResponse struct {
	Items      []fedsearch.Trial    `json:"trials"`
	Pagination fedsearch.Pagination `json:"pagination"`
	Internal   int                  `json:"internal"`
	External   int                  `json:"external"`
	Source     string               `json:"source"`
	Cached     bool                 `json:"cached"`
	Message    string               `json:"message,omitempty"`
	Warnings   []string             `json:"warnings,omitempty"`
}

type PublicationSearchResponse struct {
	Items      []fedsearch.Publication `json:"publications"`
	Pagination fedsearch.Pagination    `json:"pagination"`
	Internal   int                     `json:"internal"`
	External   int                     `json:"external"`
	Source     string                  `json:"source"`
	Cached     bool                    `json:"cached"`
	Message    string                  `json:"message,omitempty"`
	Warnings   []string                `json:"warnings,omitempty"`
}

type ResearcherSearchResponse struct {
	Items      []fedsearch.Researcher `json:"researchers"`
	Pagination fedsearch.Pagination   `json:"pagination"`
	Internal   int                    `json:"internal"`
	External   int                    `json:"external"`
	Source     string                 `json:"source"`
	Cached     bool                   `json:"cached"`
	Message    string                 `json:"message,omitempty"`
	Warnings   []string               `json:"warnings,omitempty"`
}

// PublishSearchLogMessage is the async payload handed to the consumer that
// persists search analytics.
type PublishSearchLogMessage struct {
	Kind        string `json:"kind"`
	Term        string `json:"term"`
	Location    string `json:"location"`
	Source      string `json:"source"`
	ResultCount int    `json:"resultCount"`
	Cached      bool   `json:"cached"`
	DurationMs  int64  `json:"durationMs"`
}
