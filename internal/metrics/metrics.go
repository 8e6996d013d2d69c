// Package metrics derives aggregate performance statistics from a set
// of test samples.
package metrics

import (
	"math"
	"slices"

	"perfgate/internal/jtl"
)

// Summary holds the metrics derived from one test run. It is produced
// once by Aggregate and never mutated afterwards.
type Summary struct {
	TotalSamples int     `json:"total_samples"`
	ErrorCount   int     `json:"error_count"`
	ErrorRate    float64 `json:"error_rate"`
	AvgResponse  float64 `json:"avg_response_time"`
	P95Response  int64   `json:"p95_response_time"`
	P99Response  int64   `json:"p99_response_time"`
	Throughput   float64 `json:"throughput"`
}

// Aggregate computes a Summary from the given samples. It is a pure
// function: no state survives between calls and the input slice is not
// modified. An empty input yields the zero Summary.
func Aggregate(samples []jtl.Sample) Summary {
	total := len(samples)
	if total == 0 {
		return Summary{}
	}

	latencies := make([]int64, 0, total)
	errorCount := 0
	minTS := samples[0].Timestamp
	maxTS := samples[0].Timestamp
	var sum int64

	for _, s := range samples {
		if !s.Success {
			errorCount++
		}
		latencies = append(latencies, s.Elapsed)
		sum += s.Elapsed
		if s.Timestamp < minTS {
			minTS = s.Timestamp
		}
		if s.Timestamp > maxTS {
			maxTS = s.Timestamp
		}
	}

	slices.Sort(latencies)

	// Throughput is measured across the wall-clock span between the
	// first and last sample. A zero or negative span (single sample,
	// identical or absent timestamps) falls back to one second so the
	// division stays defined.
	duration := float64(maxTS-minTS) / 1000.0
	if duration <= 0 {
		duration = 1
	}

	return Summary{
		TotalSamples: total,
		ErrorCount:   errorCount,
		ErrorRate:    round2(float64(errorCount) / float64(total) * 100),
		AvgResponse:  round2(float64(sum) / float64(total)),
		P95Response:  percentile(latencies, 0.95),
		P99Response:  percentile(latencies, 0.99),
		Throughput:   round2(float64(total) / duration),
	}
}

// percentile returns the nearest-rank percentile of an ascending-sorted
// list: the value at index floor(n*p), clamped to the last index. This
// indexing is deliberately not interpolated; prior runs of the tool were
// scored with it and results must stay comparable.
func percentile(sorted []int64, p float64) int64 {
	idx := int(float64(len(sorted)) * p)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
