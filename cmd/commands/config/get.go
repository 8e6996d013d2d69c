package config

import (
	"fmt"
	"strings"

	"perfgate/internal/config"

	"github.com/spf13/cobra"
)

// GetCommand returns the "config get" command.
func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a threshold default",
		Long: "Get a persisted threshold default.\n\n" +
			"If no key is provided, all keys are listed with their effective\n" +
			"values; keys without a persisted override show the built-in default.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  perfgate config get                        # list all values\n" +
			"  perfgate config get --key p95-threshold    # print a single value",
		Args:         cobra.ExactArgs(0),
		RunE:         runGet,
		SilenceUsage: true,
	}

	cmd.Flags().String("key", "", "Configuration key to fetch (prints a single value)")

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	keyFlag, _ := cmd.Flags().GetString("key")
	keyFlag = strings.TrimSpace(keyFlag)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// No key flag: list all values.
	if keyFlag == "" {
		for _, spec := range config.Keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", spec.Name, describeValue(&spec, cfg))
		}
		return nil
	}

	spec := config.Lookup(keyFlag)
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", keyFlag, strings.Join(config.KeyNames(), ", "))
	}

	fmt.Fprintln(cmd.OutOrStdout(), describeValue(spec, cfg))
	return nil
}

// describeValue renders the effective value for a key, noting whether
// the built-in default is in force.
func describeValue(spec *config.KeySpec, cfg *config.Config) string {
	if v := spec.Get(cfg); v != nil {
		return config.FormatValue(*v, spec.Unit)
	}
	return config.FormatValue(spec.Default, spec.Unit) + " (default)"
}
