package evaluation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
)

type stubSearch struct {
	results map[string][]entities.SearchResult
	fail    map[string]bool
}

func (s *stubSearch) Search(ctx context.Context, query string, limit int) ([]entities.SearchResult, error) {
	if s.fail[query] {
		return nil, errors.New("search unavailable")
	}
	return s.results[query], nil
}

func TestRunner_Run(t *testing.T) {
	widal := entities.ProfileResult{Profile: entities.LabTestProfile{Name: "Widal Test"}}
	widalFlat := entities.TestResult{Test: entities.LabTestParameter{Name: "Widal Test"}}
	hb := entities.TestResult{Test: entities.LabTestParameter{Name: "Haemoglobin"}}

	search := &stubSearch{
		results: map[string][]entities.SearchResult{
			"widal":       {widal, widalFlat},
			"haemoglobin": {entities.TestResult{Test: entities.LabTestParameter{Name: "Haemoglobin (Female)"}}, hb},
		},
		fail: map[string]bool{"broken": true},
	}

	queries := []GoldenQuery{
		{ID: "q1", Query: "widal", Intent: IntentProfile, ExpectedResults: []string{"Widal Test"}, ExpectedKind: "profile"},
		{ID: "q2", Query: "haemoglobin", Intent: IntentParameter, ExpectedResults: []string{"Haemoglobin"}, ExpectedKind: "test"},
		{ID: "q3", Query: "hemoglobin", Intent: IntentSpelling, ExpectedResults: []string{"Haemoglobin"}},
		{ID: "q4", Query: "broken", Intent: IntentParameter, ExpectedResults: []string{"ESR"}},
	}

	summary, results, err := NewRunner(search).Run(context.Background(), queries)

	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, 4, summary.TotalQueries)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 2, summary.QueriesWithHits)
	assert.InDelta(t, 0.5, summary.AvgRecallAt10, 1e-9)
	assert.InDelta(t, (1.0+0.5)/4, summary.AvgMRRAt10, 1e-9)
	assert.Equal(t, []string{"q3", "q4"}, summary.Misses)

	assert.True(t, results[0].TopKindMatched)
	assert.True(t, results[1].TopKindMatched)
	assert.Equal(t, []string{"Widal Test", "Widal Test"}, results[0].Retrieved)

	require.Contains(t, summary.ByIntent, IntentParameter)
	assert.Equal(t, 2, summary.ByIntent[IntentParameter].Count)
	assert.InDelta(t, 0.5, summary.ByIntent[IntentParameter].AvgRecallAt10, 1e-9)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewRunner(&stubSearch{}).Run(ctx, []GoldenQuery{{ID: "q1", Query: "cbc"}})

	assert.ErrorIs(t, err, context.Canceled)
}
