package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"academiclint/internal/config"
	"academiclint/internal/domains"
	"academiclint/internal/export"
	"academiclint/internal/history"
	"academiclint/internal/lint"
	"academiclint/internal/output"
	"academiclint/internal/parser"
	"academiclint/internal/result"

	"github.com/spf13/cobra"
)

var (
	checkLevel       string
	checkFormat      string
	checkMinDensity  float64
	checkFailUnder   float64
	checkDomain      string
	checkDomainFile  string
	checkDomainTerms []string
	checkAddWeasels  []string
	checkNoColor     bool
	checkQuiet       bool
	checkVerbose     bool
	checkOutputPath  string
	checkHistory     bool
)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Analyze text for semantic clarity issues",
	Long: `Analyze one or more files (or stdin when no files are given) for
semantic clarity issues. Supported inputs are plain text, markdown, and
LaTeX. The exit code is 2 when --fail-under is set and the lowest
document density falls below it.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkLevel, "level", "",
		"Strictness level: relaxed, standard, strict, or academic")
	checkCmd.Flags().StringVar(&checkFormat, "format", "",
		"Output format: terminal, json, markdown, or github")
	checkCmd.Flags().Float64Var(&checkMinDensity, "min-density", 0,
		"Minimum acceptable density (overrides level default)")
	checkCmd.Flags().Float64Var(&checkFailUnder, "fail-under", 0,
		"Exit with code 2 if density falls below this threshold")
	checkCmd.Flags().StringVar(&checkDomain, "domain", "",
		"Use a built-in domain vocabulary")
	checkCmd.Flags().StringVar(&checkDomainFile, "domain-file", "",
		"Use a custom domain vocabulary file (yaml or toml)")
	checkCmd.Flags().StringSliceVar(&checkDomainTerms, "domain-term", nil,
		"Extra domain term exempt from vagueness flags (repeatable)")
	checkCmd.Flags().StringSliceVar(&checkAddWeasels, "add-weasel", nil,
		"Extra weasel phrase to flag (repeatable)")
	checkCmd.Flags().BoolVar(&checkNoColor, "no-color", false,
		"Disable colored output")
	checkCmd.Flags().BoolVar(&checkQuiet, "quiet", false,
		"Only show the summary, without suggestions")
	checkCmd.Flags().BoolVar(&checkVerbose, "verbose", false,
		"Show example revisions alongside suggestions")
	checkCmd.Flags().StringVarP(&checkOutputPath, "output", "o", "",
		"Write a JSON report to this path (.gz compresses)")
	checkCmd.Flags().BoolVar(&checkHistory, "history", false,
		"Record this run in the local history store")
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := buildCheckConfig(cmd)
	if err != nil {
		return err
	}

	linter := lint.New(cfg, logger)

	var results []fileResult

	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		res, err := linter.Check(string(text))
		if err != nil {
			return err
		}
		results = append(results, fileResult{path: "", res: res})
	} else {
		for _, path := range args {
			text, err := parser.ParseFile(path)
			if err != nil {
				return err
			}
			res, err := linter.Check(text)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results = append(results, fileResult{path: path, res: res})
		}
	}

	if isReportPath(checkOutputPath) {
		if len(results) > 1 {
			return fmt.Errorf("JSON report export supports a single input, got %d files", len(results))
		}
		if err := export.WriteReport(checkOutputPath, results[0].res); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", checkOutputPath)
	} else {
		var out io.Writer = os.Stdout
		if checkOutputPath != "" {
			f, err := os.Create(checkOutputPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		for i, fr := range results {
			formatter, err := output.New(cfg.Output.Format, output.Options{
				Path:   fr.path,
				Output: cfg.Output,
			})
			if err != nil {
				return err
			}
			if i > 0 {
				fmt.Fprintln(out)
			}
			if err := formatter.Format(out, fr.res); err != nil {
				return err
			}
		}
		if checkOutputPath != "" {
			fmt.Printf("Output written to %s\n", checkOutputPath)
		}
	}

	if checkHistory || cfg.HistoryEnabled {
		if err := recordRuns(logger, results); err != nil {
			logger.Warn("failed to record history", "error", err.Error())
		}
	}

	if cfg.FailUnder > 0 {
		lowest := 1.0
		for _, fr := range results {
			if fr.res.Summary.Density < lowest {
				lowest = fr.res.Summary.Density
			}
		}
		if lowest < cfg.FailUnder {
			return &gateError{msg: fmt.Sprintf(
				"density %.4f below threshold %.4f", lowest, cfg.FailUnder)}
		}
	}
	return nil
}

// buildCheckConfig layers CLI flags over the config file and resolves
// the domain vocabulary. Flags the user did not set leave the file
// values untouched.
func buildCheckConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := loadBaseConfig()
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("level") {
		level, err := config.ParseLevel(checkLevel)
		if err != nil {
			return cfg, err
		}
		leveled, err := config.ForLevel(level)
		if err != nil {
			return cfg, err
		}
		cfg.Level = leveled.Level
		cfg.MinDensity = leveled.MinDensity
	}
	if cmd.Flags().Changed("min-density") {
		cfg.MinDensity = checkMinDensity
	}
	if cmd.Flags().Changed("fail-under") {
		cfg.FailUnder = checkFailUnder
	}
	if checkDomain != "" {
		cfg.Domain = checkDomain
	}
	if checkDomainFile != "" {
		cfg.DomainFile = checkDomainFile
	}
	cfg.DomainTerms = append(cfg.DomainTerms, checkDomainTerms...)
	cfg.AdditionalWeasels = append(cfg.AdditionalWeasels, checkAddWeasels...)

	if cmd.Flags().Changed("format") {
		cfg.Output.Format = checkFormat
	}
	if checkNoColor {
		cfg.Output.Color = "never"
	}
	if checkQuiet {
		cfg.Output.ShowSuggestions = false
	}
	if checkVerbose {
		cfg.Output.ShowExamples = true
	}

	if err := resolveDomainTerms(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// resolveDomainTerms folds the named builtin domain and the custom
// domain file into cfg.DomainTerms.
func resolveDomainTerms(cfg *config.Config) error {
	if cfg.Domain != "" {
		terms, err := domains.NewManager().GetTerms(cfg.Domain)
		if err != nil {
			return err
		}
		cfg.DomainTerms = append(cfg.DomainTerms, terms...)
	}
	if cfg.DomainFile != "" {
		d, err := domains.LoadFile(cfg.DomainFile)
		if err != nil {
			return err
		}
		cfg.DomainTerms = append(cfg.DomainTerms, d.TechnicalTerms...)
		cfg.AdditionalWeasels = append(cfg.AdditionalWeasels, d.DomainWeasels...)
	}
	return nil
}

// isReportPath reports whether the output path should receive the raw
// JSON report instead of formatted output.
func isReportPath(path string) bool {
	return strings.HasSuffix(path, ".json") || strings.HasSuffix(path, ".gz")
}

type fileResult struct {
	path string
	res  *result.AnalysisResult
}

func recordRuns(logger *slog.Logger, results []fileResult) error {
	path, err := history.DefaultPath()
	if err != nil {
		return err
	}
	store, err := history.Open(path, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, fr := range results {
		source := fr.path
		if source == "" {
			source = "stdin"
		}
		if err := store.Record(fr.res, source); err != nil {
			return err
		}
	}
	return nil
}
