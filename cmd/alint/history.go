package main

import (
	"fmt"
	"time"

	"academiclint/internal/history"

	"github.com/spf13/cobra"
)

var (
	historyLimit     int
	historyPruneDays int
	historyDBPath    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent analysis runs",
	Long: `Show recent analysis runs recorded by check --history. Runs are
stored in a local SQLite database under the user's home directory.`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum runs to show")
	historyCmd.Flags().IntVar(&historyPruneDays, "prune-days", 0,
		"Delete runs older than this many days instead of listing")
	historyCmd.Flags().StringVar(&historyDBPath, "db", "",
		"Path to the history database (default: ~/.alint/history.db)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	path := historyDBPath
	if path == "" {
		var err error
		path, err = history.DefaultPath()
		if err != nil {
			return err
		}
	}

	store, err := history.Open(path, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if historyPruneDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -historyPruneDays)
		deleted, err := store.PruneBefore(cutoff)
		if err != nil {
			return err
		}
		fmt.Printf("Pruned %d runs older than %d days\n", deleted, historyPruneDays)
		return nil
	}

	runs, err := store.Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	fmt.Printf("%-25s %-20s %8s %-12s %6s\n",
		"CREATED", "SOURCE", "DENSITY", "GRADE", "FLAGS")
	for _, run := range runs {
		fmt.Printf("%-25s %-20s %8.4f %-12s %6d\n",
			run.CreatedAt, truncate(run.Source, 20),
			run.Density, run.DensityGrade, run.FlagCount)
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
