package check

import (
	"fmt"
	"strings"
	"time"

	"perfgate/internal/config"
	"perfgate/internal/gates"
	"perfgate/internal/jtl"
	"perfgate/internal/metrics"
	"perfgate/internal/runlog"

	"github.com/spf13/cobra"
)

// NewCommand returns the "check" command, the core perfgate flow:
// read samples, aggregate metrics, evaluate gates, report, exit code.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a JTL result file against quality gates",
		Long: `Validate a JMeter JTL result file against quality gates.

Reads the result file, computes aggregate metrics (sample count, error
rate, average/p95/p99 response times, throughput) and checks each of
the five gates independently. The command fails (exit code 1) when any
gate fails, making it suitable for pipeline gating.

Thresholds resolve in order: built-in defaults, then values persisted
with 'perfgate config set', then command-line flags.

Examples:
  perfgate check --jtl-file results.jtl
  perfgate check --jtl-file results.jtl --error-rate-threshold 1.0 --p95-threshold 600
  perfgate check --jtl-file results.jtl -o json     # machine-readable report
  perfgate check --jtl-file results.jtl --chart     # append a latency chart`,
		RunE:         runCheck,
		SilenceUsage: true,
	}

	defaults := gates.Defaults()

	cmd.Flags().String("jtl-file", "", "Path to the JMeter JTL result file (required)")
	cmd.MarkFlagRequired("jtl-file")
	cmd.Flags().Float64("error-rate-threshold", defaults.ErrorRate, "Maximum acceptable error rate percentage")
	cmd.Flags().Float64("avg-response-threshold", defaults.AvgResponse, "Maximum acceptable average response time in ms")
	cmd.Flags().Float64("p95-threshold", defaults.P95, "Maximum acceptable p95 response time in ms")
	cmd.Flags().Float64("p99-threshold", defaults.P99, "Maximum acceptable p99 response time in ms")
	cmd.Flags().Float64("throughput-threshold", defaults.Throughput, "Minimum acceptable throughput in TPS")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")
	cmd.Flags().Bool("chart", false, "Append an ASCII latency chart to the table report")
	cmd.Flags().Bool("no-record", false, "Skip recording this run in the local history")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("jtl-file")
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	start := time.Now()

	samples, err := jtl.Read(path)
	if err != nil {
		return err
	}

	thresholds, err := resolveThresholds(cmd)
	if err != nil {
		return err
	}

	summary := metrics.Aggregate(samples)
	verdict := gates.Evaluate(summary, thresholds)

	if output == "json" {
		if err := printReportJSON(cmd, path, summary, verdict); err != nil {
			return err
		}
	} else {
		printReport(cmd, path, summary, verdict)
		if chart, _ := cmd.Flags().GetBool("chart"); chart {
			printLatencyChart(cmd, samples)
		}
	}

	if noRecord, _ := cmd.Flags().GetBool("no-record"); !noRecord {
		recordRun(cmd, path, summary, verdict, time.Since(start))
	}

	if !verdict.Passed {
		return fmt.Errorf("%d of %d quality gates failed", len(verdict.FailedGates()), len(verdict.Gates))
	}
	return nil
}

// resolveThresholds layers the persisted config over the built-in
// defaults, then applies any flags the user set explicitly. The result
// is the immutable set the evaluator receives; nothing downstream reads
// flags or config.
func resolveThresholds(cmd *cobra.Command) (gates.Thresholds, error) {
	cfg, err := config.Load()
	if err != nil {
		return gates.Thresholds{}, err
	}
	t := cfg.Thresholds(gates.Defaults())

	flagTargets := map[string]*float64{
		"error-rate-threshold":   &t.ErrorRate,
		"avg-response-threshold": &t.AvgResponse,
		"p95-threshold":          &t.P95,
		"p99-threshold":          &t.P99,
		"throughput-threshold":   &t.Throughput,
	}
	for name, target := range flagTargets {
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetFloat64(name)
			if v < 0 {
				return gates.Thresholds{}, fmt.Errorf("--%s must be non-negative, got %v", name, v)
			}
			*target = v
		}
	}

	return t, nil
}

// recordRun persists the run in the local history. Recording is
// bookkeeping: failures are warned about on stderr but never change the
// gate verdict or exit code.
func recordRun(cmd *cobra.Command, file string, s metrics.Summary, v gates.Verdict, elapsed time.Duration) {
	repo, err := runlog.Open()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open run history: %v\n", err)
		return
	}
	defer repo.Close()

	outcome := runlog.OutcomePass
	if !v.Passed {
		outcome = runlog.OutcomeFail
	}

	entry := &runlog.Entry{
		File:         file,
		TotalSamples: s.TotalSamples,
		ErrorRate:    s.ErrorRate,
		AvgResponse:  s.AvgResponse,
		P95Response:  s.P95Response,
		P99Response:  s.P99Response,
		Throughput:   s.Throughput,
		Outcome:      outcome,
		FailedGates:  strings.Join(v.FailedGates(), ","),
		DurationMs:   elapsed.Milliseconds(),
	}
	if err := repo.Save(entry); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not record run: %v\n", err)
	}
}
