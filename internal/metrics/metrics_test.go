package metrics

import (
	"testing"

	"perfgate/internal/jtl"

	"github.com/google/go-cmp/cmp"
)

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(nil)
	if diff := cmp.Diff(Summary{}, got); diff != "" {
		t.Errorf("expected zero summary (-want +got):\n%s", diff)
	}
}

func TestAggregate_ThreeSamples(t *testing.T) {
	samples := []jtl.Sample{
		{Timestamp: 0, Elapsed: 100, Success: true},
		{Timestamp: 500, Elapsed: 200, Success: true},
		{Timestamp: 1000, Elapsed: 300, Success: true},
	}

	want := Summary{
		TotalSamples: 3,
		ErrorCount:   0,
		ErrorRate:    0.0,
		AvgResponse:  200.0,
		P95Response:  300,
		P99Response:  300,
		Throughput:   3.0, // 3 samples in a 1s window
	}
	if diff := cmp.Diff(want, Aggregate(samples)); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregate_PercentileIndexing(t *testing.T) {
	// n=10: p95 index = floor(10*0.95) = 9, p99 index = floor(10*0.99) = 9.
	// Both land on the last value.
	var samples []jtl.Sample
	for _, e := range []int64{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000} {
		samples = append(samples, jtl.Sample{Elapsed: e, Success: true})
	}

	got := Aggregate(samples)
	if got.P95Response != 1000 {
		t.Errorf("p95 = %d, want 1000", got.P95Response)
	}
	if got.P99Response != 1000 {
		t.Errorf("p99 = %d, want 1000", got.P99Response)
	}
}

func TestAggregate_PercentileNearestRank(t *testing.T) {
	// n=100: p95 index = 95, p99 index = 99. Values are 1..100 so the
	// percentiles are the 96th and 100th smallest.
	var samples []jtl.Sample
	for i := int64(1); i <= 100; i++ {
		samples = append(samples, jtl.Sample{Elapsed: i, Success: true})
	}

	got := Aggregate(samples)
	if got.P95Response != 96 {
		t.Errorf("p95 = %d, want 96", got.P95Response)
	}
	if got.P99Response != 100 {
		t.Errorf("p99 = %d, want 100", got.P99Response)
	}
}

func TestAggregate_PercentilesMonotonicAndBounded(t *testing.T) {
	cases := [][]int64{
		{5},
		{1, 2},
		{100, 100, 100},
		{900, 10, 450, 30, 2000, 75, 75},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 5000},
	}

	for _, latencies := range cases {
		var samples []jtl.Sample
		minL, maxL := latencies[0], latencies[0]
		for _, e := range latencies {
			samples = append(samples, jtl.Sample{Elapsed: e, Success: true})
			if e < minL {
				minL = e
			}
			if e > maxL {
				maxL = e
			}
		}

		got := Aggregate(samples)
		if got.P99Response < got.P95Response {
			t.Errorf("latencies %v: p99 %d < p95 %d", latencies, got.P99Response, got.P95Response)
		}
		if got.P95Response < minL || got.P99Response > maxL {
			t.Errorf("latencies %v: percentiles (%d, %d) outside [%d, %d]",
				latencies, got.P95Response, got.P99Response, minL, maxL)
		}
	}
}

func TestAggregate_ErrorRate(t *testing.T) {
	var samples []jtl.Sample
	for i := range 10 {
		samples = append(samples, jtl.Sample{Elapsed: 100, Success: i != 0})
	}

	got := Aggregate(samples)
	if got.ErrorCount != 1 {
		t.Errorf("error count = %d, want 1", got.ErrorCount)
	}
	if got.ErrorRate != 10.0 {
		t.Errorf("error rate = %v, want 10.0", got.ErrorRate)
	}
}

func TestAggregate_ErrorRateMonotonic(t *testing.T) {
	// More failures with the same total never lowers the error rate.
	prev := -1.0
	for failures := 0; failures <= 10; failures++ {
		var samples []jtl.Sample
		for i := range 10 {
			samples = append(samples, jtl.Sample{Elapsed: 100, Success: i >= failures})
		}
		rate := Aggregate(samples).ErrorRate
		if rate < prev {
			t.Fatalf("error rate decreased: %v -> %v at %d failures", prev, rate, failures)
		}
		prev = rate
	}
}

func TestAggregate_Rounding(t *testing.T) {
	samples := []jtl.Sample{
		{Elapsed: 100, Success: true},
		{Elapsed: 100, Success: true},
		{Elapsed: 101, Success: false},
	}

	got := Aggregate(samples)
	if got.AvgResponse != 100.33 {
		t.Errorf("avg = %v, want 100.33", got.AvgResponse)
	}
	if got.ErrorRate != 33.33 {
		t.Errorf("error rate = %v, want 33.33", got.ErrorRate)
	}
}

func TestAggregate_DurationFallback(t *testing.T) {
	// Identical (or absent) timestamps give a zero span, which falls
	// back to a one second window instead of dividing by zero.
	cases := map[string]int64{
		"zero timestamps":      0,
		"identical timestamps": 1700000000000,
	}

	for name, ts := range cases {
		t.Run(name, func(t *testing.T) {
			samples := []jtl.Sample{
				{Timestamp: ts, Elapsed: 10, Success: true},
				{Timestamp: ts, Elapsed: 20, Success: true},
			}
			got := Aggregate(samples)
			if got.Throughput != 2.0 {
				t.Errorf("throughput = %v, want 2.0", got.Throughput)
			}
		})
	}
}

func TestAggregate_UnsortedInput(t *testing.T) {
	// Timestamp order in the file does not matter.
	samples := []jtl.Sample{
		{Timestamp: 2000, Elapsed: 300, Success: true},
		{Timestamp: 0, Elapsed: 100, Success: true},
		{Timestamp: 1000, Elapsed: 200, Success: true},
	}

	got := Aggregate(samples)
	if got.Throughput != 1.5 {
		t.Errorf("throughput = %v, want 1.5 (3 samples over 2s)", got.Throughput)
	}
	if got.P95Response != 300 {
		t.Errorf("p95 = %d, want 300", got.P95Response)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	samples := []jtl.Sample{
		{Timestamp: 100, Elapsed: 40, Success: true},
		{Timestamp: 900, Elapsed: 75, Success: false},
		{Timestamp: 500, Elapsed: 12, Success: true},
	}
	original := make([]jtl.Sample, len(samples))
	copy(original, samples)

	first := Aggregate(samples)
	second := Aggregate(samples)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated aggregation differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(original, samples); diff != "" {
		t.Errorf("input slice was modified (-want +got):\n%s", diff)
	}
}
