// Package provider implements the external source adapters. Each adapter
// fetches from exactly one upstream API, maps its native payload into the
// canonical fedsearch record type for its domain, and fails independently:
// an adapter error is the orchestrator's problem, never the caller's.
//
// API base URLs are vars so tests can substitute httptest servers.
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

var clinicalTrialsBase = "https://clinicaltrials.gov/api/v2/studies"

const externalTrialLimit = 10

// ClinicalTrialsSource queries the ClinicalTrials.gov v2 studies API, the
// primary trial registry.
type ClinicalTrialsSource struct {
	Client *http.Client
}

func NewClinicalTrialsSource(client *http.Client) *ClinicalTrialsSource {
	return &ClinicalTrialsSource{Client: client}
}

func (s *ClinicalTrialsSource) Name() string { return fedsearch.SourceClinicalTrials }

func (s *ClinicalTrialsSource) Fetch(ctx context.Context, q fedsearch.Query) ([]fedsearch.Trial, error) {
	params := url.Values{}
	params.Set("query.cond", strings.Join(q.Terms, " OR "))
	params.Set("pageSize", fmt.Sprintf("%d", externalTrialLimit))
	params.Set("format", "json")
	if q.Location != "" {
		params.Set("query.locn", q.Location)
	}
	if q.Status != "" {
		// The registry's status vocabulary is the canonical one.
		params.Set("filter.overallStatus", string(q.Status))
	}
	if q.Phase != "" {
		params.Set("aggFilters", "phase:"+phaseAggFilter(q.Phase))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, clinicalTrialsBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("ClinicalTrials.gov request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ClinicalTrials.gov returned HTTP %d", resp.StatusCode)
	}

	var payload ctgovResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parsing ClinicalTrials.gov response: %w", err)
	}

	var trials []fedsearch.Trial
	for _, study := range payload.Studies {
		t, ok := mapCtgovStudy(study)
		if !ok {
			// Structurally malformed study: drop the record, keep the source.
			continue
		}
		trials = append(trials, t)
	}
	return trials, nil
}

// phaseAggFilter maps the canonical phase onto the registry's aggregation
// filter token ("PHASE_2" → "2", "EARLY_PHASE_1" → "0").
func phaseAggFilter(p fedsearch.TrialPhase) string {
	switch p {
	case fedsearch.PhaseEarly1:
		return "0"
	case fedsearch.Phase1:
		return "1"
	case fedsearch.Phase2:
		return "2"
	case fedsearch.Phase3:
		return "3"
	case fedsearch.Phase4:
		return "4"
	default:
		return "na"
	}
}

type ctgovResponse struct {
	Studies []ctgovStudy `json:"studies"`
}

type ctgovStudy struct {
	ProtocolSection struct {
		IdentificationModule struct {
			NctID      string `json:"nctId"`
			BriefTitle string `json:"briefTitle"`
		} `json:"identificationModule"`
		StatusModule struct {
			OverallStatus   string `json:"overallStatus"`
			StartDateStruct struct {
				Date string `json:"date"`
			} `json:"startDateStruct"`
			CompletionDateStruct struct {
				Date string `json:"date"`
			} `json:"completionDateStruct"`
		} `json:"statusModule"`
		DescriptionModule struct {
			BriefSummary string `json:"briefSummary"`
		} `json:"descriptionModule"`
		DesignModule struct {
			Phases []string `json:"phases"`
		} `json:"designModule"`
		ConditionsModule struct {
			Conditions []string `json:"conditions"`
		} `json:"conditionsModule"`
		ContactsLocationsModule struct {
			Locations []struct {
				City    string `json:"city"`
				Country string `json:"country"`
			} `json:"locations"`
			OverallOfficials []struct {
				Name string `json:"name"`
				Role string `json:"role"`
			} `json:"overallOfficials"`
		} `json:"contactsLocationsModule"`
		SponsorCollaboratorsModule struct {
			LeadSponsor struct {
				Name string `json:"name"`
			} `json:"leadSponsor"`
		} `json:"sponsorCollaboratorsModule"`
	} `json:"protocolSection"`
}

func mapCtgovStudy(study ctgovStudy) (fedsearch.Trial, bool) {
	ps := study.ProtocolSection
	if ps.IdentificationModule.NctID == "" {
		return fedsearch.Trial{}, false
	}

	phase := ""
	if len(ps.DesignModule.Phases) > 0 {
		phase = ps.DesignModule.Phases[0]
	}

	location := fedsearch.NotSpecified
	if len(ps.ContactsLocationsModule.Locations) > 0 {
		loc := ps.ContactsLocationsModule.Locations[0]
		switch {
		case loc.City != "" && loc.Country != "":
			location = loc.City + ", " + loc.Country
		case loc.Country != "":
			location = loc.Country
		}
	}

	pi := ""
	for _, official := range ps.ContactsLocationsModule.OverallOfficials {
		if strings.Contains(strings.ToUpper(official.Role), "PRINCIPAL_INVESTIGATOR") || pi == "" {
			pi = official.Name
		}
	}

	return fedsearch.Trial{
		ID:                    ps.IdentificationModule.NctID,
		Title:                 ps.IdentificationModule.BriefTitle,
		Description:           ps.DescriptionModule.BriefSummary,
		Status:                fedsearch.NormalizeStatus(ps.StatusModule.OverallStatus),
		Phase:                 fedsearch.NormalizePhase(phase),
		Location:              location,
		Conditions:            ps.ConditionsModule.Conditions,
		StartDate:             parseRegistryDate(ps.StatusModule.StartDateStruct.Date),
		CompletionDate:        parseRegistryDate(ps.StatusModule.CompletionDateStruct.Date),
		Sponsor:               ps.SponsorCollaboratorsModule.LeadSponsor.Name,
		PrincipalInvestigator: pi,
		SourceName:            fedsearch.SourceClinicalTrials,
		IsInternal:            false,
	}, true
}

// parseRegistryDate accepts the registry's "2006-01-02" and "2006-01"
// forms; anything else yields nil rather than a mapping failure.
func parseRegistryDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", "2006-01"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
