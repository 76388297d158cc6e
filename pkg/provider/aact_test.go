package provider

import (
	"context"
	"testing"

	"medisearch-be/pkg/fedsearch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAACTTermClausePerTermOr(t *testing.T) {
	clause, args := aactTermClause([]string{"diabetes", "obesity"})

	assert.Equal(t,
		"((s.brief_title ILIKE ? OR c.name ILIKE ?) OR (s.brief_title ILIKE ? OR c.name ILIKE ?))",
		clause)
	// Each term binds its own title and condition patterns.
	require.Len(t, args, 4)
	assert.Equal(t, []interface{}{"%diabetes%", "%diabetes%", "%obesity%", "%obesity%"}, args)
}

func TestAACTTermClauseNoTerms(t *testing.T) {
	clause, args := aactTermClause(nil)

	assert.Equal(t, "TRUE", clause)
	assert.Empty(t, args)
}

func TestAACTLocation(t *testing.T) {
	assert.Equal(t, "Boston, United States", aactLocation("Boston", "United States"))
	assert.Equal(t, "United States", aactLocation("", "United States"))
	assert.Equal(t, "Boston", aactLocation("Boston", ""))
	assert.Equal(t, fedsearch.NotSpecified, aactLocation("", ""))
}

func TestAACTFetchWithoutHandle(t *testing.T) {
	src := NewAACTSource(nil)

	_, err := src.Fetch(context.Background(), fedsearch.Query{Term: "x"})
	assert.ErrorIs(t, err, fedsearch.ErrSourceUnavailable)
}
