package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"perfgate/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// EditCommand returns the "config edit" command, an interactive form
// for all threshold defaults.
func EditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit threshold defaults interactively",
		Long: `Edit all persisted threshold defaults in an interactive form.

Each field is pre-filled with the current effective value. Clearing a
field removes the persisted override so the built-in default applies
again. Requires a terminal; in scripts use 'perfgate config set'.`,
		Args:         cobra.ExactArgs(0),
		RunE:         runEdit,
		SilenceUsage: true,
	}

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("config edit requires an interactive terminal; use 'perfgate config set' instead")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// One string per key, pre-filled with the effective value.
	values := make([]string, len(config.Keys))
	fields := make([]huh.Field, 0, len(config.Keys))
	for i := range config.Keys {
		spec := &config.Keys[i]
		if v := spec.Get(cfg); v != nil {
			values[i] = formatFloat(*v)
		} else {
			values[i] = formatFloat(spec.Default)
		}

		fields = append(fields, huh.NewInput().
			Title(spec.Name).
			Description(spec.Description+" ("+spec.Unit+")").
			Value(&values[i]).
			Validate(validateThresholdInput))
	}

	var save bool
	confirm := huh.NewConfirm().
		Title("Save thresholds?").
		Affirmative("Save").
		Negative("Discard").
		Value(&save)

	accessible := os.Getenv("ACCESSIBLE") != ""
	form := huh.NewForm(
		huh.NewGroup(fields...),
		huh.NewGroup(confirm),
	).WithAccessible(accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted; nothing saved.")
			return nil
		}
		return fmt.Errorf("config edit failed: %w", err)
	}

	if !save {
		fmt.Fprintln(cmd.OutOrStdout(), "Discarded; nothing saved.")
		return nil
	}

	for i := range config.Keys {
		spec := &config.Keys[i]
		raw := strings.TrimSpace(values[i])
		if raw == "" {
			spec.Clear(cfg)
			continue
		}
		v, err := parseThreshold(raw)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", spec.Name, err)
		}
		spec.Set(cfg, v)
	}

	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Thresholds saved.")
	return nil
}

// validateThresholdInput accepts blank (revert to default) or any
// non-negative number.
func validateThresholdInput(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := parseThreshold(s)
	return err
}

func formatFloat(v float64) string {
	s := strings.TrimRight(fmt.Sprintf("%.2f", v), "0")
	return strings.TrimRight(s, ".")
}
