package history

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"perfgate/internal/runlog"

	"github.com/spf13/cobra"
)

// ListCommand returns the "history list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent quality gate runs",
		Long: `List recent quality gate runs stored locally.

Examples:
  perfgate history list
  perfgate history list --limit 50
  perfgate history list --failed
  perfgate history list -o json`,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 25, "Number of entries to display")
	cmd.Flags().Bool("failed", false, "Show only runs where gates failed")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}

	failedOnly, _ := cmd.Flags().GetBool("failed")
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}

	repo, err := runlog.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	var entries []runlog.Entry
	if failedOnly {
		entries, err = repo.ListByOutcome(runlog.OutcomeFail, limit)
	} else {
		entries, err = repo.List(limit)
	}
	if err != nil {
		return err
	}

	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tFILE\tSAMPLES\tERR%\tP95\tTPS\tRESULT\tFAILED GATES")
	fmt.Fprintln(w, "----\t----\t-------\t----\t---\t---\t------\t------------")
	for _, entry := range entries {
		timeStr := entry.Timestamp.Local().Format("2006-01-02 15:04:05")
		failed := entry.FailedGates
		if failed == "" {
			failed = "-"
		}

		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%dms\t%.2f\t%s\t%s\n",
			timeStr,
			entry.File,
			entry.TotalSamples,
			entry.ErrorRate,
			entry.P95Response,
			entry.Throughput,
			entry.Outcome,
			failed,
		)
	}
	w.Flush()
	return nil
}
