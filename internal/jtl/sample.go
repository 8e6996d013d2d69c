// Package jtl reads JMeter JTL result files into sample records.
//
// A JTL file is a CSV with a header row. Only the timeStamp, elapsed and
// success columns are consumed; every other column is ignored. Missing
// columns or empty cells fall back to the values JMeter's own tooling
// assumes (0 / 0 / true), but cells that are present and unparseable are
// rejected so a corrupted file cannot silently skew the metrics.
package jtl

// Sample is one observed request from a performance test run.
type Sample struct {
	// Timestamp is the sample start time in milliseconds since epoch.
	Timestamp int64 `json:"timestamp"`

	// Elapsed is the request latency in milliseconds.
	Elapsed int64 `json:"elapsed"`

	// Success reports whether the request completed without error.
	Success bool `json:"success"`
}
