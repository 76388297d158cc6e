// Package fedsearch implements the federated search aggregation engine:
// canonical record types, query normalization, concurrent source fan-out,
// deduplication, ranking and pagination. Providers and the local store are
// plugged in as Source implementations; the package itself performs no I/O.
package fedsearch

import "time"

// Source names form a closed set. Every canonical record carries exactly
// one of these, and IsInternal is true iff the source is the app itself.
const (
	SourceInternal        = "APP"
	SourceClinicalTrials  = "ClinicalTrials.gov"
	SourceAACT            = "AACT"
	SourcePubMed          = "PubMed"
	SourceArxiv           = "arXiv"
	SourceOpenAlex        = "OpenAlex"
	SourceSemanticScholar = "Semantic Scholar"
)

// TrialStatus is the canonical recruitment status vocabulary.
type TrialStatus string

const (
	StatusRecruiting            TrialStatus = "RECRUITING"
	StatusActive                TrialStatus = "ACTIVE"
	StatusActiveNotRecruiting   TrialStatus = "ACTIVE_NOT_RECRUITING"
	StatusCompleted             TrialStatus = "COMPLETED"
	StatusTerminated            TrialStatus = "TERMINATED"
	StatusSuspended             TrialStatus = "SUSPENDED"
	StatusWithdrawn             TrialStatus = "WITHDRAWN"
	StatusEnrollingByInvitation TrialStatus = "ENROLLING_BY_INVITATION"
	StatusNotYetRecruiting      TrialStatus = "NOT_YET_RECRUITING"
	StatusUnknown               TrialStatus = "UNKNOWN"
)

// TrialPhase is the canonical phase vocabulary. Records without a phase
// concept (publications, preprints) map to PhaseNotApplicable.
type TrialPhase string

const (
	PhaseEarly1        TrialPhase = "EARLY_PHASE_1"
	Phase1             TrialPhase = "PHASE_1"
	Phase2             TrialPhase = "PHASE_2"
	Phase3             TrialPhase = "PHASE_3"
	Phase4             TrialPhase = "PHASE_4"
	PhaseNotApplicable TrialPhase = "NOT_APPLICABLE"
)

// NotSpecified is the placeholder location carried by records whose source
// reported no location. It always scores 0 in proximity ranking.
const NotSpecified = "Not specified"

// Trial is the canonical clinical trial record. Records are constructed
// fresh per request and never mutated after an adapter returns them.
type Trial struct {
	ID                    string      `json:"id"`
	Title                 string      `json:"title"`
	Description           string      `json:"description"`
	Status                TrialStatus `json:"status"`
	Phase                 TrialPhase  `json:"phase"`
	Location              string      `json:"location"`
	Conditions            []string    `json:"conditions"`
	StartDate             *time.Time  `json:"startDate"`
	CompletionDate        *time.Time  `json:"completionDate"`
	Sponsor               string      `json:"sponsor"`
	PrincipalInvestigator string      `json:"principalInvestigator"`
	SourceName            string      `json:"sourceName"`
	IsInternal            bool        `json:"isInternal"`
}

// Publication is the canonical publication record. DOI, PMID and ArxivID
// are source specific; any of them may be empty.
type Publication struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Abstract      string     `json:"abstract"`
	Authors       []string   `json:"authors"`
	Journal       string     `json:"journal"`
	PublishedDate *time.Time `json:"publishedDate"`
	DOI           string     `json:"doi,omitempty"`
	PMID          string     `json:"pmid,omitempty"`
	ArxivID       string     `json:"arxivId,omitempty"`
	Categories    []string   `json:"categories,omitempty"`
	URL           string     `json:"url"`
	SourceName    string     `json:"sourceName"`
	IsInternal    bool       `json:"isInternal"`
}

// Researcher is the canonical researcher record. LocationScore is derived
// per request by the ranker and never persisted. ConnectionStatus is only
// populated for internal records, by the surrounding application.
type Researcher struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Affiliation      string `json:"affiliation"`
	Specialty        string `json:"specialty"`
	Location         string `json:"location"`
	PublicationCount int    `json:"publicationCount"`
	TrialCount       int    `json:"trialCount"`
	Bio              string `json:"bio"`
	IsInternal       bool   `json:"isInternal"`
	SourceName       string `json:"sourceName"`
	LocationScore    int    `json:"locationScore"`
	ConnectionStatus string `json:"connectionStatus,omitempty"`
}
