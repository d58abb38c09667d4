package evaluation

import (
	"context"
	"time"

	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
	"github.com/wellness-hospital/laboratory/backend/internal/infrastructure/observability"
)

const evalDepth = 10

// SearchResultProvider is the catalog search under evaluation.
type SearchResultProvider interface {
	Search(ctx context.Context, query string, limit int) ([]entities.SearchResult, error)
}

// Runner runs evaluation across a set of golden queries.
type Runner struct {
	searchService SearchResultProvider
}

func NewRunner(svc SearchResultProvider) *Runner {
	return &Runner{searchService: svc}
}

// Run evaluates every golden query. Queries whose search fails are counted in
// Failed and score zero.
func (r *Runner) Run(ctx context.Context, queries []GoldenQuery) (*EvalSummary, []EvalResult, error) {
	summary := &EvalSummary{
		TotalQueries: len(queries),
		ByIntent:     make(map[Intent]*IntentSummary),
	}
	results := make([]EvalResult, 0, len(queries))
	logger := observability.LoggerFromContext(ctx)

	for _, gq := range queries {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		start := time.Now()
		found, err := r.searchService.Search(ctx, gq.Query, 0)
		duration := time.Since(start)

		if err != nil {
			logger.Warn().Err(err).Str("query_id", gq.ID).Msg("golden query failed")
			summary.Failed++
			found = nil
		}

		names := make([]string, len(found))
		for i, res := range found {
			names[i] = res.Name()
		}

		result := EvalResult{
			QueryID:     gq.ID,
			Query:       gq.Query,
			Intent:      gq.Intent,
			RecallAt10:  RecallAtK(gq.ExpectedResults, names, evalDepth),
			MRRAt10:     MRRAtK(gq.ExpectedResults, names, evalDepth),
			ResultCount: len(found),
			Retrieved:   names,
			Latency:     duration,
		}
		if len(found) > 0 {
			result.TopKindMatched = gq.ExpectedKind == "" || string(found[0].Kind()) == gq.ExpectedKind
		}

		r.updateSummary(summary, result)
		results = append(results, result)
	}

	r.finalizeSummary(summary)
	return summary, results, nil
}

func (r *Runner) updateSummary(s *EvalSummary, res EvalResult) {
	s.AvgRecallAt10 += res.RecallAt10
	s.AvgMRRAt10 += res.MRRAt10
	s.AvgLatency += res.Latency
	if res.ResultCount > 0 {
		s.QueriesWithHits++
	}
	if res.RecallAt10 == 0 {
		s.Misses = append(s.Misses, res.QueryID)
	}

	if _, ok := s.ByIntent[res.Intent]; !ok {
		s.ByIntent[res.Intent] = &IntentSummary{}
	}
	is := s.ByIntent[res.Intent]
	is.Count++
	is.AvgRecallAt10 += res.RecallAt10
	is.AvgMRRAt10 += res.MRRAt10
}

func (r *Runner) finalizeSummary(s *EvalSummary) {
	if s.TotalQueries > 0 {
		n := float64(s.TotalQueries)
		s.AvgRecallAt10 /= n
		s.AvgMRRAt10 /= n
		s.AvgLatency /= time.Duration(s.TotalQueries)
	}

	for _, is := range s.ByIntent {
		if is.Count > 0 {
			n := float64(is.Count)
			is.AvgRecallAt10 /= n
			is.AvgMRRAt10 /= n
		}
	}
}
