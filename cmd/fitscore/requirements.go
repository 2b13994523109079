package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmartin/fitscore/internal/ingestion"
	"github.com/dmartin/fitscore/internal/lexicon"
	"github.com/dmartin/fitscore/internal/matching"
	"github.com/dmartin/fitscore/internal/observability"
	"github.com/dmartin/fitscore/internal/requirements"
	"github.com/dmartin/fitscore/internal/types"
)

var requirementsCmd = &cobra.Command{
	Use:   "requirements",
	Short: "Extract structured requirements from a job posting",
	Long:  "Extract typed, prioritized requirements from a job posting text file. With --claims, each requirement is also matched against the claim set and annotated with its verdict and evidence.",
	RunE:  runRequirements,
}

var (
	reqInputFile  string
	reqOutputFile string
	reqClaimsFile string
	reqVerbose    bool
)

func init() {
	requirementsCmd.Flags().StringVarP(&reqInputFile, "in", "i", "", "Path to job posting text file (required)")
	requirementsCmd.Flags().StringVarP(&reqOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	requirementsCmd.Flags().StringVar(&reqClaimsFile, "claims", "", "Claim set to match requirements against")
	requirementsCmd.Flags().BoolVarP(&reqVerbose, "verbose", "v", false, "Print extracted requirements")
	_ = requirementsCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(requirementsCmd)
}

func runRequirements(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(reqInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	reqs := requirements.Extract(ingestion.CleanText(string(raw)), lexicon.Default())

	if reqClaimsFile != "" {
		claims, err := loadClaims(reqClaimsFile)
		if err != nil {
			return err
		}
		reqs = matching.MatchRequirements(reqs, claims)
	}

	if reqVerbose {
		observability.NewPrinter(os.Stderr).PrintRequirements(reqs)
	}

	out := struct {
		Requirements []types.Requirement `json:"requirements"`
	}{Requirements: reqs}

	if err := writeArtifact(out, "", reqOutputFile); err != nil {
		return err
	}
	if reqOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Extracted %d requirements\n", len(reqs))
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", reqOutputFile)
	}
	return nil
}
