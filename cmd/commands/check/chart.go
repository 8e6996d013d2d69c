package check

import (
	"fmt"

	"perfgate/internal/jtl"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

// chartHeight is the fixed height of the latency chart.
const chartHeight = 8

// chartWidth caps the plot so reports stay readable in CI logs.
const chartWidth = 72

// printLatencyChart renders an ASCII plot of elapsed times in sample
// order below the table report. Skipped silently for empty inputs.
func printLatencyChart(cmd *cobra.Command, samples []jtl.Sample) {
	if len(samples) == 0 {
		return
	}

	data := make([]float64, len(samples))
	for i, s := range samples {
		data[i] = float64(s.Elapsed)
	}

	chart := asciigraph.Plot(data,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("response time (ms) across %d samples", len(samples))),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, chart)
}
