package config

import (
	"fmt"
	"strings"
)

// KeySpec describes a single configuration key. All perfgate keys are
// numeric thresholds, so values are typed float64 here and parsed at the
// command layer.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "p95-threshold").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Unit labels the value in help and viewer output ("%", "ms", "TPS").
	Unit string

	// Get returns the current override for this key, or nil when unset.
	Get func(cfg *Config) *float64

	// Set applies a value for this key to the given Config (in memory
	// only; the caller is responsible for calling Save).
	Set func(cfg *Config, value float64)

	// Clear removes the override, reverting to the built-in default.
	Clear func(cfg *Config)

	// Default is the built-in value used when the key is unset.
	Default float64
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "error-rate-threshold",
		Description: "Maximum acceptable error rate percentage",
		Unit:        "%",
		Get:         func(cfg *Config) *float64 { return cfg.ErrorRateThreshold },
		Set:         func(cfg *Config, v float64) { cfg.ErrorRateThreshold = &v },
		Clear:       func(cfg *Config) { cfg.ErrorRateThreshold = nil },
		Default:     2.0,
	},
	{
		Name:        "avg-response-threshold",
		Description: "Maximum acceptable average response time in ms",
		Unit:        "ms",
		Get:         func(cfg *Config) *float64 { return cfg.AvgResponseThreshold },
		Set:         func(cfg *Config, v float64) { cfg.AvgResponseThreshold = &v },
		Clear:       func(cfg *Config) { cfg.AvgResponseThreshold = nil },
		Default:     500,
	},
	{
		Name:        "p95-threshold",
		Description: "Maximum acceptable p95 response time in ms",
		Unit:        "ms",
		Get:         func(cfg *Config) *float64 { return cfg.P95Threshold },
		Set:         func(cfg *Config, v float64) { cfg.P95Threshold = &v },
		Clear:       func(cfg *Config) { cfg.P95Threshold = nil },
		Default:     800,
	},
	{
		Name:        "p99-threshold",
		Description: "Maximum acceptable p99 response time in ms",
		Unit:        "ms",
		Get:         func(cfg *Config) *float64 { return cfg.P99Threshold },
		Set:         func(cfg *Config, v float64) { cfg.P99Threshold = &v },
		Clear:       func(cfg *Config) { cfg.P99Threshold = nil },
		Default:     1200,
	},
	{
		Name:        "throughput-threshold",
		Description: "Minimum acceptable throughput in TPS",
		Unit:        "TPS",
		Get:         func(cfg *Config) *float64 { return cfg.ThroughputThreshold },
		Set:         func(cfg *Config, v float64) { cfg.ThroughputThreshold = &v },
		Clear:       func(cfg *Config) { cfg.ThroughputThreshold = nil },
		Default:     10.0,
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys, their
// defaults and descriptions, suitable for inclusion in Cobra Long help
// text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s (default %s)\n", maxLen, k.Name, k.Description, FormatValue(k.Default, k.Unit))
	}
	return b.String()
}

// FormatValue renders a threshold value with its unit for display.
func FormatValue(v float64, unit string) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	if unit == "%" {
		return s + unit
	}
	return s + " " + unit
}
