package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jmorgan/resume-generator/internal/compile"
	"github.com/jmorgan/resume-generator/internal/config"
	"github.com/jmorgan/resume-generator/internal/ingestion"
	"github.com/jmorgan/resume-generator/internal/knowledge"
	"github.com/jmorgan/resume-generator/internal/logger"
	"github.com/jmorgan/resume-generator/internal/observability"
	"github.com/jmorgan/resume-generator/internal/pipeline"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tailored resume for a job description",
	Long: `Generates a one-page LaTeX resume tailored to a job description: keyword extraction -> relevance scoring -> content selection -> template splicing.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runGenerate,
}

var (
	genConfigPath    string
	genKnowledgeBase string
	genJob           string
	genJobURL        string
	genJobTitle      string
	genOutput        string
	genMaxProjects   int
	genCompile       bool
	genVerbose       bool
	genJSONLogs      bool
)

func init() {
	generateCommand.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCommand.Flags().StringVarP(&genKnowledgeBase, "knowledge-base", "k", "", "Knowledge-base directory (default \"knowledge_base\")")
	generateCommand.Flags().StringVarP(&genJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	generateCommand.Flags().StringVar(&genJobURL, "job-url", "", "URL to fetch job description from (mutually exclusive with --job)")
	generateCommand.Flags().StringVar(&genJobTitle, "job-title", "", "Target job title for the summary paragraph")
	generateCommand.Flags().StringVarP(&genOutput, "output", "o", "", "Output .tex path (default \"resume.tex\")")
	generateCommand.Flags().IntVar(&genMaxProjects, "max-projects", 0, "Lower the project entry cap for this run")
	generateCommand.Flags().BoolVar(&genCompile, "compile", false, "Compile the generated document with pdflatex")
	generateCommand.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed generation information")
	generateCommand.Flags().BoolVar(&genJSONLogs, "json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(generateCommand)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergedConfig(genConfigPath, config.Config{
		KnowledgeBase: genKnowledgeBase,
		Job:           genJob,
		JobURL:        genJobURL,
		JobTitle:      genJobTitle,
		Output:        genOutput,
		MaxProjects:   genMaxProjects,
		Compile:       genCompile,
		Verbose:       genVerbose,
		JSONLogs:      genJSONLogs,
	})
	if err != nil {
		return err
	}
	if cfg.KnowledgeBase == "" {
		cfg.KnowledgeBase = "knowledge_base"
	}
	if cfg.Output == "" {
		cfg.Output = "resume.tex"
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	jobText, err := loadJobText(ctx, cfg)
	if err != nil {
		return err
	}

	store := knowledge.NewStore(cfg.KnowledgeBase)
	result, err := pipeline.Generate(ctx, store, pipeline.Request{
		JobDescription: jobText,
		JobTitle:       cfg.JobTitle,
		MaxProjects:    cfg.MaxProjects,
	}, log)
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.Output, []byte(result.DocumentText), 0o644); err != nil {
		return fmt.Errorf("failed to write output %s: %w", cfg.Output, err)
	}
	log.Info("document written", zap.String("path", cfg.Output))

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintKeywords(result.Metadata.Keywords)
		printer.PrintMetadata(&result.Metadata)
	}

	if cfg.Compile {
		pdfPath, err := compile.PDF(ctx, result.DocumentText, "")
		if err != nil {
			return err
		}
		log.Info("pdf compiled", zap.String("path", pdfPath))
	}

	return nil
}

// mergedConfig loads the optional config file, validates it, and layers the
// CLI flag values on top.
func mergedConfig(path string, flags config.Config) (config.Config, error) {
	cfg := flags
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = flags.MergeWithDefaults(*loaded)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadJobText resolves the job description from a file or URL.
func loadJobText(ctx context.Context, cfg config.Config) (string, error) {
	switch {
	case cfg.Job != "":
		return ingestion.FromFile(cfg.Job)
	case cfg.JobURL != "":
		return ingestion.FromURL(ctx, cfg.JobURL)
	default:
		return "", fmt.Errorf("either --job or --job-url is required")
	}
}
