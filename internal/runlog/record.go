// Package runlog persists a local history of quality gate runs.
package runlog

import "time"

const (
	OutcomePass = "pass"
	OutcomeFail = "fail"
)

// Entry represents one persisted check run.
type Entry struct {
	ID           int64     `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	File         string    `json:"file"`
	TotalSamples int       `json:"total_samples"`
	ErrorRate    float64   `json:"error_rate"`
	AvgResponse  float64   `json:"avg_response_time"`
	P95Response  int64     `json:"p95_response_time"`
	P99Response  int64     `json:"p99_response_time"`
	Throughput   float64   `json:"throughput"`
	Outcome      string    `json:"outcome"`
	FailedGates  string    `json:"failed_gates,omitempty"`
	DurationMs   int64     `json:"duration_ms"`
}
