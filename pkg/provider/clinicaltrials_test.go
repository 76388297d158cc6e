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

const ctgovFixture = `{
  "studies": [
    {
      "protocolSection": {
        "identificationModule": {"nctId": "NCT05512345", "briefTitle": "Metformin and Exercise"},
        "statusModule": {
          "overallStatus": "RECRUITING",
          "startDateStruct": {"date": "2025-03-01"},
          "completionDateStruct": {"date": "2027-06"}
        },
        "descriptionModule": {"briefSummary": "A randomized controlled trial."},
        "designModule": {"phases": ["PHASE3"]},
        "conditionsModule": {"conditions": ["Type 2 Diabetes", "Obesity"]},
        "contactsLocationsModule": {
          "locations": [{"city": "Boston", "country": "United States"}],
          "overallOfficials": [{"name": "Elena Vasquez", "role": "PRINCIPAL_INVESTIGATOR"}]
        },
        "sponsorCollaboratorsModule": {"leadSponsor": {"name": "Harborview"}}
      }
    },
    {
      "protocolSection": {
        "identificationModule": {"briefTitle": "record without registry id"}
      }
    }
  ]
}`

func TestClinicalTrialsFetch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(ctgovFixture))
	}))
	defer srv.Close()

	orig := clinicalTrialsBase
	clinicalTrialsBase = srv.URL
	defer func() { clinicalTrialsBase = orig }()

	src := NewClinicalTrialsSource(srv.Client())
	q, err := fedsearch.Normalize(fedsearch.Params{
		Condition: "diabetes, obesity",
		Location:  "Boston, USA",
		Status:    "recruiting",
		Phase:     "phase 3",
	})
	require.NoError(t, err)

	trials, err := src.Fetch(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, trials, 1) // the id-less study is dropped

	trial := trials[0]
	assert.Equal(t, "NCT05512345", trial.ID)
	assert.Equal(t, fedsearch.StatusRecruiting, trial.Status)
	assert.Equal(t, fedsearch.Phase3, trial.Phase)
	assert.Equal(t, "Boston, United States", trial.Location)
	assert.Equal(t, []string{"Type 2 Diabetes", "Obesity"}, trial.Conditions)
	assert.Equal(t, "Elena Vasquez", trial.PrincipalInvestigator)
	assert.Equal(t, fedsearch.SourceClinicalTrials, trial.SourceName)
	assert.False(t, trial.IsInternal)
	require.NotNil(t, trial.StartDate)
	assert.Equal(t, 2025, trial.StartDate.Year())
	require.NotNil(t, trial.CompletionDate) // month-only date still parses

	assert.Contains(t, gotQuery, "query.cond=diabetes+OR+obesity")
	assert.Contains(t, gotQuery, "query.locn=USA")
	assert.Contains(t, gotQuery, "filter.overallStatus=RECRUITING")
	assert.Contains(t, gotQuery, "aggFilters=phase%3A3")
}

func TestClinicalTrialsFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	orig := clinicalTrialsBase
	clinicalTrialsBase = srv.URL
	defer func() { clinicalTrialsBase = orig }()

	src := NewClinicalTrialsSource(srv.Client())
	q, err := fedsearch.Normalize(fedsearch.Params{Condition: "diabetes"})
	require.NoError(t, err)

	_, err = src.Fetch(context.Background(), q)
	assert.ErrorContains(t, err, "HTTP 500")
}
