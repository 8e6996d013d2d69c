package check

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"perfgate/internal/gates"
	"perfgate/internal/metrics"
	"perfgate/internal/styles"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// report is the machine-readable shape emitted by -o json. It carries
// everything a downstream consumer needs to reproduce the table report
// without recomputation.
type report struct {
	File    string          `json:"file"`
	Metrics metrics.Summary `json:"metrics"`
	Gates   []gates.Result  `json:"gates"`
	Passed  bool            `json:"passed"`
}

// gateLabels maps gate names to the labels used in the table report.
var gateLabels = map[string]string{
	gates.GateErrorRate:   "Error Rate",
	gates.GateAvgResponse: "Avg Response Time",
	gates.GateP95:         "P95 Response Time",
	gates.GateP99:         "P99 Response Time",
	gates.GateThroughput:  "Throughput",
}

// printReportJSON encodes the full report as indented JSON to stdout.
func printReportJSON(cmd *cobra.Command, file string, s metrics.Summary, v gates.Verdict) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report{File: file, Metrics: s, Gates: v.Gates, Passed: v.Passed})
}

// printReport prints the metrics summary and per-gate results as text.
// PASS/FAIL markers are colored only when stdout is a terminal, so CI
// logs and piped output stay clean.
func printReport(cmd *cobra.Command, file string, s metrics.Summary, v gates.Verdict) {
	out := cmd.OutOrStdout()
	styled := term.IsTerminal(int(os.Stdout.Fd()))

	title := fmt.Sprintf("Quality gate report for %s", file)
	if styled {
		title = styles.Title.Render(title)
	}
	fmt.Fprintln(out, title)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Performance Metrics:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Total Samples:\t%d\n", s.TotalSamples)
	fmt.Fprintf(w, "  Error Count:\t%d\n", s.ErrorCount)
	fmt.Fprintf(w, "  Error Rate:\t%s%%\n", formatNumber(s.ErrorRate))
	fmt.Fprintf(w, "  Avg Response Time:\t%s ms\n", formatNumber(s.AvgResponse))
	fmt.Fprintf(w, "  P95 Response Time:\t%d ms\n", s.P95Response)
	fmt.Fprintf(w, "  P99 Response Time:\t%d ms\n", s.P99Response)
	fmt.Fprintf(w, "  Throughput:\t%s TPS\n", formatNumber(s.Throughput))
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Quality Gates:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  GATE\tMEASURED\tLIMIT\tRESULT")
	fmt.Fprintln(w, "  ----\t--------\t-----\t------")
	for _, g := range v.Gates {
		fmt.Fprintf(w, "  %s\t%s\t%s %s\t%s\n",
			gateLabels[g.Name],
			formatMeasured(g),
			g.Direction,
			formatMeasuredValue(g.Threshold, g.Unit),
			resultMarker(g.Passed, styled),
		)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Overall: %s (%d/%d gates passed)\n",
		resultMarker(v.Passed, styled),
		len(v.Gates)-len(v.FailedGates()),
		len(v.Gates),
	)
}

func resultMarker(passed, styled bool) string {
	if styled {
		return styles.ResultIndicator(passed)
	}
	if passed {
		return "PASS"
	}
	return "FAIL"
}

func formatMeasured(g gates.Result) string {
	return formatMeasuredValue(g.Measured, g.Unit)
}

func formatMeasuredValue(v float64, unit string) string {
	if unit == "%" {
		return formatNumber(v) + "%"
	}
	return formatNumber(v) + " " + unit
}

// formatNumber renders a float without trailing zeros (200 rather than
// 200.00, but 0.25 stays 0.25). Metrics are pre-rounded to 2 decimals.
func formatNumber(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
