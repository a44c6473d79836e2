// Package config defines the linter configuration, level presets, and
// config-file loading. The core receives a validated Config value and
// never mutates it; all defaulting happens here.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"academiclint/internal/lerr"
)

// Level selects how strict the analysis is.
type Level string

const (
	LevelRelaxed  Level = "relaxed"
	LevelStandard Level = "standard"
	LevelStrict   Level = "strict"
	LevelAcademic Level = "academic"
)

// levelMinDensity maps each level to its default density threshold.
var levelMinDensity = map[Level]float64{
	LevelRelaxed:  0.30,
	LevelStandard: 0.50,
	LevelStrict:   0.65,
	LevelAcademic: 0.75,
}

// OutputConfig holds rendering preferences consumed by the formatters.
type OutputConfig struct {
	Format          string `json:"format" mapstructure:"format"` // terminal, json, markdown, github
	Color           string `json:"color" mapstructure:"color"`   // auto, always, never
	ShowSuggestions bool   `json:"showSuggestions" mapstructure:"showSuggestions"`
	ShowExamples    bool   `json:"showExamples" mapstructure:"showExamples"`
}

// Config is the complete linter configuration. It is treated as an
// immutable value once built.
type Config struct {
	Level      Level   `json:"level" mapstructure:"level"`
	MinDensity float64 `json:"minDensity" mapstructure:"minDensity"`

	// Domain customization.
	Domain      string   `json:"domain,omitempty" mapstructure:"domain"`
	DomainFile  string   `json:"domainFile,omitempty" mapstructure:"domainFile"`
	DomainTerms []string `json:"domainTerms,omitempty" mapstructure:"domainTerms"`

	// AdditionalWeasels are extra attribution phrases treated as weasel
	// terms. They are matched literally, never as raw regex.
	AdditionalWeasels []string `json:"additionalWeasels,omitempty" mapstructure:"additionalWeasels"`

	// FailUnder makes the CLI exit non-zero when overall density falls
	// below this value. Zero disables the gate.
	FailUnder float64 `json:"failUnder,omitempty" mapstructure:"failUnder"`

	// HistoryEnabled records run summaries in the local history store.
	HistoryEnabled bool `json:"historyEnabled,omitempty" mapstructure:"historyEnabled"`

	Output OutputConfig `json:"output" mapstructure:"output"`
}

// Default returns the standard-level configuration.
func Default() Config {
	return Config{
		Level:      LevelStandard,
		MinDensity: levelMinDensity[LevelStandard],
		Output: OutputConfig{
			Format:          "terminal",
			Color:           "auto",
			ShowSuggestions: true,
			ShowExamples:    true,
		},
	}
}

// ForLevel returns the default configuration for a named level.
func ForLevel(level Level) (Config, error) {
	cfg := Default()
	min, ok := levelMinDensity[level]
	if !ok {
		return cfg, lerr.New(lerr.ConfigInvalid,
			fmt.Sprintf("unknown level %q (use: relaxed, standard, strict, academic)", level))
	}
	cfg.Level = level
	cfg.MinDensity = min
	return cfg, nil
}

// ParseLevel normalizes a level string.
func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := levelMinDensity[level]; !ok {
		return "", lerr.New(lerr.ConfigInvalid, fmt.Sprintf("unknown level %q", s))
	}
	return level, nil
}

// Load reads a config file (yaml, toml, or json) and returns a validated
// Config. Values absent from the file keep their level defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, lerr.Wrap(lerr.ConfigInvalid, "failed to read config file", err)
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, lerr.Wrap(lerr.ConfigInvalid, "failed to parse config file", err)
	}

	// Re-derive the threshold when the file sets a level but no explicit
	// minDensity.
	if v.IsSet("level") && !v.IsSet("minDensity") {
		level, err := ParseLevel(string(cfg.Level))
		if err != nil {
			return Config{}, err
		}
		cfg.Level = level
		cfg.MinDensity = levelMinDensity[level]
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks configuration invariants.
func (c Config) Validate() error {
	if _, ok := levelMinDensity[c.Level]; !ok {
		return lerr.New(lerr.ConfigInvalid, fmt.Sprintf("unknown level %q", c.Level))
	}
	if c.MinDensity < 0 || c.MinDensity > 1 {
		return lerr.New(lerr.ConfigInvalid,
			fmt.Sprintf("minDensity must be in [0,1], got %.2f", c.MinDensity))
	}
	if c.FailUnder < 0 || c.FailUnder > 1 {
		return lerr.New(lerr.ConfigInvalid,
			fmt.Sprintf("failUnder must be in [0,1], got %.2f", c.FailUnder))
	}
	switch c.Output.Format {
	case "", "terminal", "json", "markdown", "github":
	default:
		return lerr.New(lerr.ConfigInvalid,
			fmt.Sprintf("unknown output format %q", c.Output.Format))
	}
	return nil
}

// HasDomainTerm reports whether term is in the configured domain
// vocabulary, case-insensitively.
func (c Config) HasDomainTerm(term string) bool {
	for _, t := range c.DomainTerms {
		if strings.EqualFold(t, term) {
			return true
		}
	}
	return false
}
