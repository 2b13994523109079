package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmartin/fitscore/internal/config"
	"github.com/dmartin/fitscore/internal/ingestion"
	"github.com/dmartin/fitscore/internal/lexicon"
	"github.com/dmartin/fitscore/internal/observability"
	"github.com/dmartin/fitscore/internal/schemas"
	"github.com/dmartin/fitscore/internal/scoring"
	"github.com/dmartin/fitscore/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one or many job postings against a profile and claim set",
	Long: `Score job postings against the candidate profile and extracted claims. --job scores a single posting; --jobs-dir scores every posting in a directory concurrently and emits a summary sorted by fit score.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runScore,
}

var (
	scoreConfigPath  string
	scoreJobFile     string
	scoreJobsDir     string
	scoreProfileFile string
	scoreClaimsFile  string
	scoreOutputFile  string
	scoreWorkers     int
	scoreVerbose     bool
)

func init() {
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	scoreCmd.Flags().StringVar(&scoreJobFile, "job", "", "Path to a single job posting file (JSON or plain text)")
	scoreCmd.Flags().StringVar(&scoreJobsDir, "jobs-dir", "", "Directory of job posting files for batch scoring")
	scoreCmd.Flags().StringVarP(&scoreProfileFile, "profile", "p", "", "Path to candidate profile JSON")
	scoreCmd.Flags().StringVar(&scoreClaimsFile, "claims", "", "Path to claim set JSON")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	scoreCmd.Flags().IntVar(&scoreWorkers, "workers", 4, "Concurrent scoring workers in batch mode")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print scoring details")

	rootCmd.AddCommand(scoreCmd)
}

// batchEntry pairs one scored job with its source file for the summary
type batchEntry struct {
	File     string               `json:"file"`
	Title    string               `json:"title,omitempty"`
	Company  string               `json:"company,omitempty"`
	FitScore int                  `json:"fit_score"`
	FitLabel string               `json:"fit_label"`
	Result   *types.ScoringResult `json:"result"`
}

func runScore(cmd *cobra.Command, _ []string) error {
	// Load config file if provided, with explicit flags taking priority
	var cfg config.Config
	if scoreConfigPath != "" {
		loadedCfg, err := config.LoadConfig(scoreConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = scoreJobFile
	}
	if cmd.Flags().Changed("jobs-dir") {
		cfg.JobsDir = scoreJobsDir
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = scoreProfileFile
	}
	if cmd.Flags().Changed("claims") {
		cfg.Claims = scoreClaimsFile
	}
	if cmd.Flags().Changed("out") {
		cfg.Out = scoreOutputFile
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = scoreVerbose
	}
	scoreJobFile = cfg.Job
	scoreJobsDir = cfg.JobsDir
	scoreProfileFile = cfg.Profile
	scoreClaimsFile = cfg.Claims
	scoreOutputFile = cfg.Out
	scoreVerbose = cfg.Verbose

	if (scoreJobFile == "") == (scoreJobsDir == "") {
		return fmt.Errorf("exactly one of --job or --jobs-dir is required (via flag or config)")
	}

	profile, err := loadProfile(scoreProfileFile)
	if err != nil {
		return err
	}

	var claims []types.Claim
	if scoreClaimsFile != "" {
		if claims, err = loadClaims(scoreClaimsFile); err != nil {
			return err
		}
	}

	lex := lexicon.Default()

	if scoreJobFile != "" {
		job, err := loadJob(scoreJobFile)
		if err != nil {
			return err
		}
		result := scoring.ScoreJob(job, profile, claims, lex)
		if scoreVerbose {
			observability.NewPrinter(os.Stderr).PrintScoringResult(result)
		}
		return writeArtifact(result, schemas.ScoringResultSchema, scoreOutputFile)
	}

	return runScoreBatch(profile, claims, lex)
}

// runScoreBatch scores every posting in the directory concurrently. Scoring
// is pure so entries only need a lock around the shared slice; output order
// comes from sorting, not completion order.
func runScoreBatch(profile *types.Profile, claims []types.Claim, lex *lexicon.Lexicon) error {
	files, err := listJobFiles(scoreJobsDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no job files found in %s", scoreJobsDir)
	}

	var (
		mu      sync.Mutex
		entries []batchEntry
	)
	var g errgroup.Group
	g.SetLimit(scoreWorkers)

	for _, file := range files {
		file := file
		g.Go(func() error {
			job, err := loadJob(file)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			result := scoring.ScoreJob(job, profile, claims, lex)
			mu.Lock()
			entries = append(entries, batchEntry{
				File:     file,
				Title:    job.Title,
				Company:  job.Company,
				FitScore: result.FitScore,
				FitLabel: result.FitLabel,
				Result:   result,
			})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].FitScore != entries[j].FitScore {
			return entries[i].FitScore > entries[j].FitScore
		}
		return entries[i].File < entries[j].File
	})

	if scoreVerbose {
		printer := observability.NewPrinter(os.Stderr)
		for _, e := range entries {
			_, _ = fmt.Fprintf(os.Stderr, "%s\n", e.File)
			printer.PrintScoringResult(e.Result)
		}
	}

	out := struct {
		Jobs []batchEntry `json:"jobs"`
	}{Jobs: entries}
	if err := writeArtifact(out, "", scoreOutputFile); err != nil {
		return err
	}
	if scoreOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Scored %d jobs\n", len(entries))
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", scoreOutputFile)
	}
	return nil
}

// loadJob reads a job posting from disk. JSON files unmarshal into the full
// job record; anything else is treated as the posting text.
func loadJob(path string) (*types.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	var job types.Job
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &job); err != nil {
			return nil, fmt.Errorf("failed to parse job JSON: %w", err)
		}
	} else {
		job.Description = string(data)
	}
	job.Description = ingestion.CleanText(job.Description)

	if err := types.ValidateJob(&job); err != nil {
		return nil, fmt.Errorf("invalid job: %w", err)
	}
	return &job, nil
}

func listJobFiles(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs directory: %w", err)
	}
	var files []string
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".json", ".txt", ".md":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
