// Package styles provides the color palette and style definitions for
// perfgate's terminal output. All visual constants live here so command
// code can reference a single source of truth.
package styles

import "github.com/charmbracelet/lipgloss"

// --- Color palette ---

var (
	White = lipgloss.Color("#E2E2E2")
	Gray  = lipgloss.Color("#888888")
	Muted = lipgloss.Color("#555555")

	Green  = lipgloss.Color("#5FD787")
	Yellow = lipgloss.Color("#FFD787")
	Red    = lipgloss.Color("#FF8787")
)

// --- Typography ---

var (
	// Title is the report header style.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	// Label is used for field names in the metrics summary.
	Label = lipgloss.NewStyle().
		Foreground(Gray).
		Bold(true)

	// MutedText is for hints and less important info.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// PassText marks a passing gate or overall verdict.
	PassText = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// FailText marks a failing gate or overall verdict.
	FailText = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// WarnText is for non-fatal warnings (e.g. history recording issues).
	WarnText = lipgloss.NewStyle().
			Foreground(Yellow)
)

// ResultIndicator returns a colored checkmark/cross plus PASS/FAIL text.
func ResultIndicator(passed bool) string {
	if passed {
		return PassText.Render("✓ PASS")
	}
	return FailText.Render("✗ FAIL")
}
