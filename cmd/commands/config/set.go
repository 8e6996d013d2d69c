package config

import (
	"fmt"
	"strconv"
	"strings"

	"perfgate/internal/config"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a threshold default",
		Long: "Set a persisted threshold default.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  perfgate config set p95-threshold 600\n" +
			"  perfgate config set error-rate-threshold 1.5",
		Args:         cobra.ExactArgs(2),
		RunE:         runSet,
		SilenceUsage: true,
	}

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	spec := config.Lookup(args[0])
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
	}

	value, err := parseThreshold(args[1])
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", spec.Name, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	spec.Set(cfg, value)
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", spec.Name, config.FormatValue(value, spec.Unit))
	return nil
}

// UnsetCommand returns the "config unset" command, which removes a
// persisted override so the built-in default applies again.
func UnsetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a threshold default",
		Long: "Remove a persisted threshold default, reverting to the built-in value.\n\n" +
			config.KeysHelp(),
		Args:         cobra.ExactArgs(1),
		RunE:         runUnset,
		SilenceUsage: true,
	}

	return cmd
}

func runUnset(cmd *cobra.Command, args []string) error {
	spec := config.Lookup(args[0])
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	spec.Clear(cfg)
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s reset to default (%s)\n", spec.Name, config.FormatValue(spec.Default, spec.Unit))
	return nil
}

// parseThreshold parses a non-negative numeric threshold value.
func parseThreshold(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("must be non-negative, got %v", v)
	}
	return v, nil
}
