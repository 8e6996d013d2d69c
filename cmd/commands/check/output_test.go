package check

import (
	"bytes"
	"strings"
	"testing"

	"perfgate/internal/gates"
	"perfgate/internal/metrics"

	"github.com/spf13/cobra"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{200, "200"},
		{200.5, "200.5"},
		{0.25, "0.25"},
		{33.33, "33.33"},
		{0, "0"},
	}
	for _, tc := range cases {
		if got := formatNumber(tc.v); got != tc.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestPrintReport_ShowsEveryGate(t *testing.T) {
	summary := metrics.Summary{
		TotalSamples: 10,
		ErrorCount:   1,
		ErrorRate:    10.0,
		AvgResponse:  150,
		P95Response:  300,
		P99Response:  450,
		Throughput:   12.5,
	}
	verdict := gates.Evaluate(summary, gates.Defaults())

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	printReport(cmd, "results.jtl", summary, verdict)
	out := buf.String()

	for _, label := range gateLabels {
		if !strings.Contains(out, label) {
			t.Errorf("expected report to contain gate label %q:\n%s", label, out)
		}
	}
	if !strings.Contains(out, "results.jtl") {
		t.Errorf("expected report to name the input file:\n%s", out)
	}
	if !strings.Contains(out, "4/5 gates passed") {
		t.Errorf("expected gate tally in report:\n%s", out)
	}
}

func TestPrintReport_ThresholdDirections(t *testing.T) {
	verdict := gates.Evaluate(metrics.Summary{}, gates.Defaults())

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	printReport(cmd, "results.jtl", metrics.Summary{}, verdict)
	out := buf.String()

	if !strings.Contains(out, "<= 2%") {
		t.Errorf("expected error rate limit rendering:\n%s", out)
	}
	if !strings.Contains(out, ">= 10 TPS") {
		t.Errorf("expected throughput limit rendering:\n%s", out)
	}
}
