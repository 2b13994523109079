package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmartin/fitscore/internal/dedup"
	"github.com/dmartin/fitscore/internal/extraction"
	"github.com/dmartin/fitscore/internal/ingestion"
	"github.com/dmartin/fitscore/internal/lexicon"
	"github.com/dmartin/fitscore/internal/observability"
	"github.com/dmartin/fitscore/internal/schemas"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured claims from career-history text",
	Long:  "Extract structured work-history claims from a free-form career text file, dedupe them, flag conflicts against existing claims, and emit a claim set JSON that validates against the claim_set schema.",
	RunE:  runExtract,
}

var (
	extractInputFile  string
	extractOutputFile string
	extractClaimsFile string
	extractDraft      string
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to career-history text file (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output claim set JSON (default: stdout)")
	extractCmd.Flags().StringVar(&extractClaimsFile, "claims", "", "Existing claim set to merge and check conflicts against")
	extractCmd.Flags().StringVar(&extractDraft, "draft", "", "Label for this import batch (default: input filename)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print extracted claims")
	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	draft := extractDraft
	if draft == "" {
		draft = extractInputFile
	}

	lex := lexicon.Default()
	claims := extraction.ExtractClaims(ingestion.CleanText(string(raw)), draft, lex)

	if extractClaimsFile != "" {
		existing, err := loadClaims(extractClaimsFile)
		if err != nil {
			return err
		}
		claims = append(existing, claims...)
	}

	claims = dedup.Dedupe(claims)
	claims = dedup.DetectConflicts(claims, lex)

	if extractVerbose {
		observability.NewPrinter(os.Stderr).PrintClaims(claims)
	}

	if err := writeArtifact(claimSet{Claims: claims}, schemas.ClaimSetSchema, extractOutputFile); err != nil {
		return err
	}
	if extractOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Extracted %d claims\n", len(claims))
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", extractOutputFile)
	}
	return nil
}
