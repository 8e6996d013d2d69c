// Package gates evaluates a metrics summary against quality gate
// thresholds and reports a structured verdict.
package gates

import (
	"perfgate/internal/metrics"
)

// Gate names, used in verdicts, run history and config keys.
const (
	GateErrorRate   = "error_rate"
	GateAvgResponse = "avg_response_time"
	GateP95         = "p95_response_time"
	GateP99         = "p99_response_time"
	GateThroughput  = "throughput"
)

// Direction is the comparison a gate applies between measured value and
// threshold. Boundaries are inclusive in both directions.
type Direction string

const (
	// AtMost passes when measured <= threshold (latency and error gates).
	AtMost Direction = "<="
	// AtLeast passes when measured >= threshold (throughput gate).
	AtLeast Direction = ">="
)

// Thresholds is the full set of gate limits for one evaluation. It is
// passed by value; nothing global or ambient feeds the evaluator.
type Thresholds struct {
	// ErrorRate is the maximum acceptable error percentage.
	ErrorRate float64 `json:"error_rate_threshold"`

	// AvgResponse is the maximum acceptable mean latency in ms.
	AvgResponse float64 `json:"avg_response_threshold"`

	// P95 is the maximum acceptable 95th percentile latency in ms.
	P95 float64 `json:"p95_threshold"`

	// P99 is the maximum acceptable 99th percentile latency in ms.
	P99 float64 `json:"p99_threshold"`

	// Throughput is the minimum acceptable rate in samples per second.
	Throughput float64 `json:"throughput_threshold"`
}

// Defaults returns the standard thresholds applied when neither config
// nor flags override them.
func Defaults() Thresholds {
	return Thresholds{
		ErrorRate:   2.0,
		AvgResponse: 500,
		P95:         800,
		P99:         1200,
		Throughput:  10.0,
	}
}

// Result is the outcome of a single gate.
type Result struct {
	Name      string    `json:"name"`
	Measured  float64   `json:"measured"`
	Threshold float64   `json:"threshold"`
	Direction Direction `json:"direction"`
	Unit      string    `json:"unit"`
	Passed    bool      `json:"passed"`
}

// Verdict is the outcome of a full evaluation: one Result per gate, in
// a fixed order, plus the overall conjunction.
type Verdict struct {
	Gates  []Result `json:"gates"`
	Passed bool     `json:"passed"`
}

// FailedGates returns the names of all failing gates in report order.
func (v Verdict) FailedGates() []string {
	var failed []string
	for _, g := range v.Gates {
		if !g.Passed {
			failed = append(failed, g.Name)
		}
	}
	return failed
}

// Evaluate checks the summary against every gate. All five gates are
// always evaluated; there is no short-circuit, so a report can show the
// full picture even when the first gate already failed. It never errors:
// the inputs are plain numbers and every comparison is defined.
func Evaluate(s metrics.Summary, t Thresholds) Verdict {
	results := []Result{
		gate(GateErrorRate, s.ErrorRate, t.ErrorRate, AtMost, "%"),
		gate(GateAvgResponse, s.AvgResponse, t.AvgResponse, AtMost, "ms"),
		gate(GateP95, float64(s.P95Response), t.P95, AtMost, "ms"),
		gate(GateP99, float64(s.P99Response), t.P99, AtMost, "ms"),
		gate(GateThroughput, s.Throughput, t.Throughput, AtLeast, "TPS"),
	}

	passed := true
	for _, r := range results {
		if !r.Passed {
			passed = false
		}
	}

	return Verdict{Gates: results, Passed: passed}
}

func gate(name string, measured, threshold float64, dir Direction, unit string) Result {
	var passed bool
	switch dir {
	case AtLeast:
		passed = measured >= threshold
	default:
		passed = measured <= threshold
	}
	return Result{
		Name:      name,
		Measured:  measured,
		Threshold: threshold,
		Direction: dir,
		Unit:      unit,
		Passed:    passed,
	}
}
