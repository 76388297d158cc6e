package fedsearch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	name    string
	records []Trial
	err     error
	delay   time.Duration
	calls   int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context, q Query) ([]Trial, error) {
	s.calls++
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.records, s.err
}

func TestFanOutMergesAllSources(t *testing.T) {
	q := Query{Term: "diabetes"}
	sources := []Source[Trial]{
		&stubSource{name: SourceInternal, records: []Trial{{ID: "a"}}},
		&stubSource{name: SourceClinicalTrials, records: []Trial{{ID: "NCT1"}, {ID: "NCT2"}}},
	}

	result := FanOut(context.Background(), q, sources, time.Second)

	assert.Len(t, result.Records, 3)
	assert.Empty(t, result.Warnings)
}

func TestFanOutSurvivesPartialFailure(t *testing.T) {
	q := Query{Term: "diabetes"}
	sources := []Source[Trial]{
		&stubSource{name: SourceInternal, records: []Trial{{ID: "a"}}},
		&stubSource{name: SourceClinicalTrials, err: errors.New("upstream 503")},
	}

	result := FanOut(context.Background(), q, sources, time.Second)

	assert.Len(t, result.Records, 1)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], SourceClinicalTrials)
	assert.Contains(t, result.Warnings[0], "upstream 503")
}

func TestFanOutTimeoutTurnsIntoWarning(t *testing.T) {
	q := Query{Term: "diabetes"}
	sources := []Source[Trial]{
		&stubSource{name: SourceInternal, records: []Trial{{ID: "a"}}},
		&stubSource{name: SourceClinicalTrials, delay: 500 * time.Millisecond, records: []Trial{{ID: "NCT1"}}},
	}

	result := FanOut(context.Background(), q, sources, 50*time.Millisecond)

	assert.Len(t, result.Records, 1)
	assert.Len(t, result.Warnings, 1)
}

func TestFailoverSourceFallsBack(t *testing.T) {
	primary := &stubSource{name: SourceClinicalTrials, err: errors.New("down")}
	secondary := &stubSource{name: SourceAACT, records: []Trial{{ID: "NCT1"}}}

	src := NewFailoverSource[Trial](primary, secondary)

	records, err := src.Fetch(context.Background(), Query{Term: "x"})
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, SourceClinicalTrials, src.Name())
}

func TestFailoverSourcePrefersPrimary(t *testing.T) {
	primary := &stubSource{name: SourceClinicalTrials, records: []Trial{{ID: "NCT1"}}}
	secondary := &stubSource{name: SourceAACT, records: []Trial{{ID: "NCT2"}}}

	src := NewFailoverSource[Trial](primary, secondary)

	records, err := src.Fetch(context.Background(), Query{Term: "x"})
	require.NoError(t, err)
	assert.Equal(t, "NCT1", records[0].ID)
	assert.Zero(t, secondary.calls)
}

func TestFailoverSourceReportsBothFailures(t *testing.T) {
	primary := &stubSource{name: SourceClinicalTrials, err: errors.New("down")}
	secondary := &stubSource{name: SourceAACT, err: errors.New("also down")}

	src := NewFailoverSource[Trial](primary, secondary)

	_, err := src.Fetch(context.Background(), Query{Term: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "down")
	assert.Contains(t, err.Error(), SourceAACT)
}
