package fedsearch

import (
	"fmt"
	"strings"
)

// Kind selects which canonical record type a search targets. It is part
// of the cache key so trial and publication results never collide.
type Kind string

const (
	KindTrials       Kind = "trials"
	KindPublications Kind = "publications"
	KindResearchers  Kind = "researchers"
)

// Source selector values beyond the concrete source names.
const (
	SelectorAll      = "all"
	SelectorInternal = "internal"
)

// Params carries the raw request parameters before normalization.
type Params struct {
	Condition string
	Keyword   string
	Search    string // researcher name filter, distinct from condition
	Location  string
	Phase     string
	Status    string
	Source    string
	Page      int
	Limit     int
}

// Query is the canonical, normalized form every adapter receives and the
// cache key is derived from.
type Query struct {
	Term       string   // condition or keyword, as supplied
	Terms      []string // comma-split, ordered, duplicates collapsed
	NameFilter string   // researcher name filter
	Location   string   // reduced to the last comma segment
	Phase      TrialPhase
	Status     TrialStatus
	Source     string // "all", "internal", or one concrete source name
	Page       int
	Limit      int
	Offset     int
}

// Normalize parses raw parameters into a canonical Query. It fails with
// ErrInvalidQuery when no searchable term is present; that is the only
// validation error the pipeline ever surfaces.
func Normalize(p Params) (Query, error) {
	term := strings.TrimSpace(p.Condition)
	if term == "" {
		term = strings.TrimSpace(p.Keyword)
	}
	name := strings.TrimSpace(p.Search)

	if term == "" && name == "" {
		return Query{}, ErrInvalidQuery
	}

	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	source := strings.TrimSpace(p.Source)
	if source == "" {
		source = SelectorAll
	}

	q := Query{
		Term:       term,
		Terms:      SplitTerms(term),
		NameFilter: name,
		Location:   NormalizeLocation(p.Location),
		Source:     source,
		Page:       page,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}
	if strings.TrimSpace(p.Phase) != "" {
		q.Phase = NormalizePhase(p.Phase)
	}
	if strings.TrimSpace(p.Status) != "" {
		q.Status = NormalizeStatus(p.Status)
	}
	return q, nil
}

// SplitTerms comma-splits a condition list into an ordered set. Order is
// preserved; duplicates collapse case-insensitively.
func SplitTerms(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	seen := make(map[string]bool)
	var terms []string
	for _, part := range strings.Split(s, ",") {
		t := strings.TrimSpace(part)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		terms = append(terms, t)
	}
	return terms
}

// NormalizeLocation reduces "City, Country" to its last comma segment:
// "Boston, USA" becomes "USA". Deliberately lossy; downstream proximity
// scoring depends on this exact behavior.
func NormalizeLocation(loc string) string {
	loc = strings.TrimSpace(loc)
	if loc == "" {
		return ""
	}
	if idx := strings.LastIndex(loc, ","); idx >= 0 {
		return strings.TrimSpace(loc[idx+1:])
	}
	return loc
}

// WantsInternal reports whether the local store participates in the
// fan-out for this query's source selector.
func (q Query) WantsInternal() bool {
	return q.Source == SelectorAll || q.Source == SelectorInternal
}

// WantsSource reports whether the named external source participates.
func (q Query) WantsSource(name string) bool {
	return q.Source == SelectorAll || q.Source == name
}

// InternalOnly reports whether the selector is exactly "internal". The
// local adapter then ignores the condition match and raises its cap:
// "internal only" means "show me everything we have".
func (q Query) InternalOnly() bool {
	return q.Source == SelectorInternal
}

// CacheKey builds the cache key for this query. Every filter that affects
// the result set is included; omitting one would serve stale or
// cross-contaminated entries.
func (q Query) CacheKey(kind Kind) string {
	return fmt.Sprintf("search:%s:t=%s:n=%s:l=%s:p=%s:s=%s:src=%s:pg=%d:lim=%d",
		kind,
		strings.ToLower(strings.Join(q.Terms, "|")),
		strings.ToLower(q.NameFilter),
		strings.ToLower(q.Location),
		q.Phase,
		q.Status,
		q.Source,
		q.Page,
		q.Limit,
	)
}
