package main

import (
	"os"

	"academiclint/internal/logging"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger := logging.New(logging.Options{
			Format: logging.FormatHuman,
			Level:  logging.ParseLevel("error"),
		})
		logger.Error("command failed", "error", err.Error())
		os.Exit(exitCode(err))
	}
}
