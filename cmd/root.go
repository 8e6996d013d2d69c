package cmd

import (
	"os"

	"perfgate/cmd/commands/check"
	cfgcmd "perfgate/cmd/commands/config"
	"perfgate/cmd/commands/history"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "perfgate",
		Short: "Validate performance test results against quality gates",
		Long: `perfgate analyzes JMeter JTL result files, derives aggregate
performance metrics (error rate, average and percentile latencies,
throughput), and validates them against configurable pass/fail
thresholds. It is built for CI/CD pipeline gating: the process exits
0 when every gate passes and 1 otherwise.

Quick start:
  perfgate check --jtl-file results.jtl           # validate with defaults
  perfgate check --jtl-file results.jtl --p95-threshold 600
  perfgate config set p95-threshold 600           # persist a default
  perfgate history list                           # inspect past runs`,
	}

	cmd.AddCommand(check.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(history.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
