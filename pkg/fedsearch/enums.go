package fedsearch

import "strings"

// Upstream status vocabularies drift (title case, spaces, commas, legacy
// wordings). All ingestion and filter matching goes through these two
// tables so a new alias is fixed in exactly one place.

var statusAliases = map[string]TrialStatus{
	"RECRUITING":              StatusRecruiting,
	"ACTIVE":                  StatusActive,
	"ACTIVE_NOT_RECRUITING":   StatusActiveNotRecruiting,
	"COMPLETED":               StatusCompleted,
	"TERMINATED":              StatusTerminated,
	"SUSPENDED":               StatusSuspended,
	"WITHDRAWN":               StatusWithdrawn,
	"ENROLLING_BY_INVITATION": StatusEnrollingByInvitation,
	"NOT_YET_RECRUITING":      StatusNotYetRecruiting,
	"UNKNOWN":                 StatusUnknown,
	"UNKNOWN_STATUS":          StatusUnknown,
	"AVAILABLE":               StatusRecruiting,
	"NO_LONGER_AVAILABLE":     StatusCompleted,
	"APPROVED_FOR_MARKETING":  StatusCompleted,
	"TEMPORARILY_NOT_AVAILABLE": StatusSuspended,
}

var phaseAliases = map[string]TrialPhase{
	"EARLY_PHASE_1":  PhaseEarly1,
	"EARLY_PHASE1":   PhaseEarly1,
	"PHASE_1":        Phase1,
	"PHASE1":         Phase1,
	"PHASE_2":        Phase2,
	"PHASE2":         Phase2,
	"PHASE_3":        Phase3,
	"PHASE3":         Phase3,
	"PHASE_4":        Phase4,
	"PHASE4":         Phase4,
	"PHASE_1_2":      Phase1,
	"PHASE1_PHASE2":  Phase1,
	"PHASE_2_3":      Phase2,
	"PHASE2_PHASE3":  Phase2,
	"NOT_APPLICABLE": PhaseNotApplicable,
	"NA":             PhaseNotApplicable,
	"N_A":            PhaseNotApplicable,
}

// canonicalKey uppercases and collapses separators so "Active, not
// recruiting", "ACTIVE_NOT_RECRUITING" and "active not recruiting" all
// hit the same table row.
func canonicalKey(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.ReplaceAll(s, "/", " ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.Join(strings.Fields(s), "_")
	return s
}

// NormalizeStatus maps an upstream status string onto the canonical enum.
// Unrecognized non-empty values map to UNKNOWN; empty maps to UNKNOWN too,
// except published literature which defaults to COMPLETED at the adapter.
func NormalizeStatus(raw string) TrialStatus {
	if raw == "" {
		return StatusUnknown
	}
	if st, ok := statusAliases[canonicalKey(raw)]; ok {
		return st
	}
	return StatusUnknown
}

// NormalizePhase maps an upstream phase string onto the canonical enum.
// Sources without a phase concept pass "" and get NOT_APPLICABLE.
func NormalizePhase(raw string) TrialPhase {
	if raw == "" {
		return PhaseNotApplicable
	}
	if ph, ok := phaseAliases[canonicalKey(raw)]; ok {
		return ph
	}
	return PhaseNotApplicable
}
