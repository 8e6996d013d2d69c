package config

import (
	"perfgate/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage persisted threshold defaults",
		Long: "View and modify persistent perfgate threshold defaults.\n\n" +
			"Configuration is stored at ~/.config/perfgate/config.json. Persisted\n" +
			"values override the built-in defaults; command-line flags on\n" +
			"'perfgate check' override both.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(GetCommand())
	cmd.AddCommand(SetCommand())
	cmd.AddCommand(UnsetCommand())
	cmd.AddCommand(EditCommand())

	return cmd
}
