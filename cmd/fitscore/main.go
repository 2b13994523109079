// Package main provides the entry point for the fitscore CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fitscore",
	Short: "Evidence extraction and deterministic job fit scoring",
	Long:  "fitscore extracts structured work-history claims from career text, pulls requirements out of job postings, and scores job fit with fully deterministic rules.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
