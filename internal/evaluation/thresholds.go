package evaluation

import "fmt"

// Thresholds are the minimum aggregate scores a catalog must reach.
type Thresholds struct {
	MinAvgRecallAt10 float64
	MinAvgMRRAt10    float64
	MaxFailed        int
}

// Check returns an error describing the first threshold the summary misses.
func (t Thresholds) Check(s *EvalSummary) error {
	if s.Failed > t.MaxFailed {
		return fmt.Errorf("%d golden queries failed (max %d)", s.Failed, t.MaxFailed)
	}
	if s.AvgRecallAt10 < t.MinAvgRecallAt10 {
		return fmt.Errorf("avg recall@10 %.3f below %.3f", s.AvgRecallAt10, t.MinAvgRecallAt10)
	}
	if s.AvgMRRAt10 < t.MinAvgMRRAt10 {
		return fmt.Errorf("avg mrr@10 %.3f below %.3f", s.AvgMRRAt10, t.MinAvgMRRAt10)
	}
	return nil
}
