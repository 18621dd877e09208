package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmorgan/resume-generator/internal/ingestion"
	"github.com/jmorgan/resume-generator/internal/keywords"
	"github.com/jmorgan/resume-generator/internal/observability"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Extract keywords from a job description without generating a resume",
	RunE:  runAnalyze,
}

var (
	analyzeJob    string
	analyzeJobURL string
)

func init() {
	analyzeCommand.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	analyzeCommand.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job description from (mutually exclusive with --job)")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	var jobText string
	var err error
	switch {
	case analyzeJob != "" && analyzeJobURL != "":
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	case analyzeJob != "":
		jobText, err = ingestion.FromFile(analyzeJob)
	case analyzeJobURL != "":
		jobText, err = ingestion.FromURL(ctx, analyzeJobURL)
	default:
		return fmt.Errorf("either --job or --job-url is required")
	}
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintKeywords(keywords.Extract(jobText))
	return nil
}
