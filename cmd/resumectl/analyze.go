package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resume-insights/internal/bootstrap"
	"resume-insights/internal/events"
	"resume-insights/internal/jobroles"
	"resume-insights/internal/matching"
	"resume-insights/internal/questions"
	"resume-insights/internal/resumes"
	"resume-insights/internal/skills"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a PDF or Word resume and print the result as JSON",
	Long:  "Runs extraction, skill classification, scoring, job matching and question generation in memory. Nothing is persisted.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

// analyzeUserName owns the throwaway in-memory records.
const analyzeUserName = "resumectl"

var (
	analyzeMime    string
	analyzeNoModel bool
	analyzeCompact bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeMime, "mime", "", "Mime type of the file (default: inferred from the extension)")
	analyzeCmd.Flags().BoolVar(&analyzeNoModel, "no-model", false, "Skip the language model and use keyword classification")
	analyzeCmd.Flags().BoolVar(&analyzeCompact, "compact", false, "Print compact JSON")
	rootCmd.AddCommand(analyzeCmd)
}

type analysisOutput struct {
	Resume     resumes.Resume       `json:"resume"`
	JobMatches []matching.JobMatch  `json:"jobMatches"`
	Questions  []questions.Question `json:"interviewQuestions"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	ctx := cmd.Context()

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	var (
		primary   skills.Classifier
		generator questions.Generator
	)
	if !analyzeNoModel {
		client, err := bootstrap.NewLLMClient(ctx, cfg)
		if err != nil {
			return fmt.Errorf("language model: %w", err)
		}
		if client != nil {
			primary = skills.ModelClassifier{Client: client}
			generator = questions.ModelGenerator{Client: client}
		}
	}

	matchSvc := matching.NewService(matching.NewMemoryRepo(), jobroles.NewMemoryRepo(catalog))
	questionSvc := questions.NewService(questions.NewMemoryRepo(), generator, cfg.LLMTimeout)
	svc := &resumes.Service{
		Repo:       resumes.NewMemoryRepo(),
		Classifier: skills.NewFallbackClassifier(primary, cfg.LLMTimeout, nil),
		Matcher:    matchSvc,
		Questions:  questionSvc,
		Events:     events.NopPublisher{},
	}

	res, err := svc.Upload(ctx, analyzeUserName, filepath.Base(path), analyzeMime, data)
	if err != nil {
		return err
	}
	out := analysisOutput{Resume: res}
	if out.JobMatches, err = matchSvc.List(ctx, analyzeUserName); err != nil {
		return err
	}
	if out.Questions, err = questionSvc.List(ctx, analyzeUserName); err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if !analyzeCompact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

func loadCatalog() ([]jobroles.JobRole, error) {
	if cfg.JobRolesFile != "" {
		return jobroles.LoadCatalog(cfg.JobRolesFile)
	}
	return jobroles.DefaultCatalog()
}
