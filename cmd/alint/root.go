package main

import (
	"errors"
	"log/slog"

	"academiclint/internal/config"
	"academiclint/internal/logging"
	"academiclint/internal/version"

	"github.com/spf13/cobra"
)

var (
	// configFlag is the CLI --config flag value
	configFlag   string
	logLevelFlag string
	logJSONFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "alint",
	Short: "alint - semantic density linter for academic prose",
	Long: `alint detects low-information academic writing: vague terms, unsupported
causal claims, circular definitions, weasel attributions, hedge stacking,
unexplained jargon, missing citations, and filler phrases. Each paragraph
is scored for semantic density and graded from vapor to crystalline.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("alint version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"Path to config file (yaml, toml, or json)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info",
		"Log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().BoolVar(&logJSONFlag, "log-json", false,
		"Emit logs as JSON instead of text")
}

// newLogger builds the logger configured by the persistent flags.
func newLogger() *slog.Logger {
	format := logging.FormatHuman
	if logJSONFlag {
		format = logging.FormatJSON
	}
	return logging.New(logging.Options{
		Format: format,
		Level:  logging.ParseLevel(logLevelFlag),
	})
}

// loadBaseConfig resolves the config file flag into a validated Config.
func loadBaseConfig() (config.Config, error) {
	if configFlag != "" {
		return config.Load(configFlag)
	}
	return config.Default(), nil
}

// gateError marks a density gate failure so main can exit with the
// documented code without logging a spurious internal error.
type gateError struct{ msg string }

func (e *gateError) Error() string { return e.msg }

func exitCode(err error) int {
	var ge *gateError
	if errors.As(err, &ge) {
		return 2
	}
	return 1
}
