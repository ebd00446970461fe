// Package main provides the entry point for the wage_report CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/wage-report/internal/ingestion"
)

var rootCmd = newRootCmd()

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, diagnostic(err))
		os.Exit(1)
	}
}

// diagnostic returns the message printed before a non-zero exit
func diagnostic(err error) string {
	if errors.Is(err, ingestion.ErrUnexpectedHeader) {
		return "Unexpected values in header row for CSV file."
	}
	return fmt.Sprintf("Error: %v", err)
}
