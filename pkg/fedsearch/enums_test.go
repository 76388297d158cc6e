package fedsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, StatusRecruiting, NormalizeStatus("recruiting"))
	assert.Equal(t, StatusRecruiting, NormalizeStatus("RECRUITING"))
	assert.Equal(t, StatusActiveNotRecruiting, NormalizeStatus("Active, not recruiting"))
	assert.Equal(t, StatusEnrollingByInvitation, NormalizeStatus("enrolling by invitation"))
	assert.Equal(t, StatusUnknown, NormalizeStatus("some new status"))
	assert.Equal(t, StatusUnknown, NormalizeStatus(""))
}

func TestNormalizePhase(t *testing.T) {
	assert.Equal(t, Phase1, NormalizePhase("Phase 1"))
	assert.Equal(t, Phase1, NormalizePhase("PHASE1"))
	assert.Equal(t, PhaseEarly1, NormalizePhase("Early Phase 1"))
	assert.Equal(t, PhaseNotApplicable, NormalizePhase("N/A"))
	assert.Equal(t, PhaseNotApplicable, NormalizePhase(""))
	assert.Equal(t, PhaseNotApplicable, NormalizePhase("something else"))
}
