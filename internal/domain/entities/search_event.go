package entities

import (
	"time"
)

// SearchEvent represents a single catalog search for analytics.
type SearchEvent struct {
	ID              string    `json:"id" db:"id"`
	Query           string    `json:"query" db:"query"`
	NormalizedQuery string    `json:"normalized_query" db:"normalized_query"`
	ResultCount     int       `json:"result_count" db:"result_count"`
	ProfileCount    int       `json:"profile_count" db:"profile_count"`
	TestCount       int       `json:"test_count" db:"test_count"`
	LatencyMs       int       `json:"latency_ms" db:"latency_ms"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
