package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"medisearch-be/pkg/fedsearch"
)

// AACTSource is the secondary aggregate-database adapter for trial data.
// AACT mirrors the registry into a public Postgres database, so this
// adapter reads it through a dedicated read-only gorm handle rather than
// HTTP. It only runs when the primary registry adapter errors; both
// answer the identical query, so the orchestrator wires this behind a
// sequential failover, never into the parallel fan-out.
type AACTSource struct {
	db *gorm.DB
}

func NewAACTSource(db *gorm.DB) *AACTSource {
	return &AACTSource{db: db}
}

func (s *AACTSource) Name() string { return fedsearch.SourceAACT }

// aactStudyRow is the flattened projection of ctgov.studies joined with
// its first condition and facility.
type aactStudyRow struct {
	NctID          string
	BriefTitle     string
	OfficialTitle  string
	OverallStatus  string
	Phase          string
	StartDate      *time.Time
	CompletionDate *time.Time
	SourceName     string
	City           string
	Country        string
	Conditions     string
}

func (s *AACTSource) Fetch(ctx context.Context, q fedsearch.Query) ([]fedsearch.Trial, error) {
	if s.db == nil {
		return nil, fmt.Errorf("AACT mirror not configured: %w", fedsearch.ErrSourceUnavailable)
	}

	termClause, termArgs := aactTermClause(q.Terms)

	query := `
		SELECT s.nct_id, s.brief_title, s.official_title, s.overall_status, s.phase,
		       s.start_date, s.completion_date, s.source AS source_name,
		       MIN(f.city) AS city, MIN(f.country) AS country,
		       STRING_AGG(DISTINCT c.name, ',') AS conditions
		FROM ctgov.studies s
		LEFT JOIN ctgov.conditions c ON c.nct_id = s.nct_id
		LEFT JOIN ctgov.facilities f ON f.nct_id = s.nct_id
		WHERE ` + termClause
	args := termArgs

	if q.Location != "" {
		query += ` AND (f.country ILIKE ? OR f.city ILIKE ?)`
		loc := "%" + q.Location + "%"
		args = append(args, loc, loc)
	}
	query += `
		GROUP BY s.nct_id, s.brief_title, s.official_title, s.overall_status,
		         s.phase, s.start_date, s.completion_date, s.source
		LIMIT ?`
	args = append(args, externalTrialLimit)

	var rows []aactStudyRow
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("AACT query: %w", err)
	}

	var trials []fedsearch.Trial
	for _, row := range rows {
		if row.NctID == "" {
			continue
		}
		t := fedsearch.Trial{
			ID:             row.NctID,
			Title:          row.BriefTitle,
			Description:    row.OfficialTitle,
			Status:         fedsearch.NormalizeStatus(row.OverallStatus),
			Phase:          fedsearch.NormalizePhase(row.Phase),
			Location:       aactLocation(row.City, row.Country),
			Conditions:     fedsearch.SplitTerms(row.Conditions),
			StartDate:      row.StartDate,
			CompletionDate: row.CompletionDate,
			Sponsor:        row.SourceName,
			SourceName:     fedsearch.SourceAACT,
			IsInternal:     false,
		}
		// Status/phase filters are applied post-normalization so the
		// mirror's vocabulary drift cannot leak mismatches through.
		if q.Status != "" && t.Status != q.Status {
			continue
		}
		if q.Phase != "" && t.Phase != q.Phase {
			continue
		}
		trials = append(trials, t)
	}
	return trials, nil
}

// aactTermClause builds one ILIKE group per term, OR-joined, matching a
// study when any single term hits its title or a condition.
func aactTermClause(terms []string) (string, []interface{}) {
	if len(terms) == 0 {
		return "TRUE", nil
	}
	groups := make([]string, 0, len(terms))
	args := make([]interface{}, 0, 2*len(terms))
	for _, term := range terms {
		groups = append(groups, "(s.brief_title ILIKE ? OR c.name ILIKE ?)")
		pattern := "%" + term + "%"
		args = append(args, pattern, pattern)
	}
	return "(" + strings.Join(groups, " OR ") + ")", args
}

func aactLocation(city, country string) string {
	switch {
	case city != "" && country != "":
		return city + ", " + country
	case country != "":
		return country
	case city != "":
		return city
	default:
		return fedsearch.NotSpecified
	}
}
