package history

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "history" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect past quality gate runs",
		Long: `Inspect the local history of quality gate runs.

Every 'perfgate check' run is recorded locally unless --no-record is
passed. History is bookkeeping only: runs are listed as they happened,
no trend analysis is performed.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(PruneCommand())

	return cmd
}
