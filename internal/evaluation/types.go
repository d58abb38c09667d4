package evaluation

import "time"

// Intent is what a golden query is trying to reach in the catalog.
type Intent string

const (
	IntentProfile   Intent = "profile"   // e.g., "cbc", "lipid"
	IntentParameter Intent = "parameter" // e.g., "haemoglobin", "esr"
	IntentSynonym   Intent = "synonym"   // e.g., "typhoid" for the Widal panel
	IntentSpelling  Intent = "spelling"  // e.g., "hemoglobin" vs "haemoglobin"
)

// ValidIntents returns all valid intent values.
func ValidIntents() []Intent {
	return []Intent{IntentProfile, IntentParameter, IntentSynonym, IntentSpelling}
}

// IsValid checks if the intent value is one of the defined constants.
func (i Intent) IsValid() bool {
	switch i {
	case IntentProfile, IntentParameter, IntentSynonym, IntentSpelling:
		return true
	}
	return false
}

// GoldenQuery is a labeled catalog query with the entries it should surface.
type GoldenQuery struct {
	ID              string   `json:"id"`
	Query           string   `json:"query"`
	Intent          Intent   `json:"intent"`
	ExpectedResults []string `json:"expected_results"`
	ExpectedKind    string   `json:"expected_kind,omitempty"`
	Difficulty      string   `json:"difficulty"` // easy, medium, hard
}

// EvalResult holds the evaluation outcome for a single query.
type EvalResult struct {
	QueryID        string        `json:"query_id"`
	Query          string        `json:"query"`
	Intent         Intent        `json:"intent"`
	RecallAt10     float64       `json:"recall_at_10"`
	MRRAt10        float64       `json:"mrr_at_10"`
	TopKindMatched bool          `json:"top_kind_matched"`
	ResultCount    int           `json:"result_count"`
	Retrieved      []string      `json:"retrieved"`
	Latency        time.Duration `json:"latency"`
}

// EvalSummary holds aggregate metrics across all golden queries.
type EvalSummary struct {
	TotalQueries    int                       `json:"total_queries"`
	Failed          int                       `json:"failed"`
	AvgRecallAt10   float64                   `json:"avg_recall_at_10"`
	AvgMRRAt10      float64                   `json:"avg_mrr_at_10"`
	AvgLatency      time.Duration             `json:"avg_latency"`
	QueriesWithHits int                       `json:"queries_with_hits"`
	ByIntent        map[Intent]*IntentSummary `json:"by_intent"`
	Misses          []string                  `json:"misses,omitempty"`
}

// IntentSummary holds metrics grouped by intent type.
type IntentSummary struct {
	Count         int     `json:"count"`
	AvgRecallAt10 float64 `json:"avg_recall_at_10"`
	AvgMRRAt10    float64 `json:"avg_mrr_at_10"`
}
