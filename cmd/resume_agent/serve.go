package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmorgan/resume-generator/internal/config"
	"github.com/jmorgan/resume-generator/internal/logger"
	"github.com/jmorgan/resume-generator/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Run the resume generator HTTP API server",
	RunE:  runServe,
}

var (
	serveConfigPath    string
	serveKnowledgeBase string
	servePort          int
	serveJSONLogs      bool
	serveVerbose       bool
)

func init() {
	serveCommand.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCommand.Flags().StringVarP(&serveKnowledgeBase, "knowledge-base", "k", "", "Knowledge-base directory (default \"knowledge_base\")")
	serveCommand.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default 8000)")
	serveCommand.Flags().BoolVar(&serveJSONLogs, "json-logs", false, "Emit logs as JSON")
	serveCommand.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(serveCommand)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(serveConfigPath, config.Config{
		KnowledgeBase: serveKnowledgeBase,
		Port:          servePort,
		JSONLogs:      serveJSONLogs,
		Verbose:       serveVerbose,
	})
	if err != nil {
		return err
	}
	if cfg.KnowledgeBase == "" {
		cfg.KnowledgeBase = "knowledge_base"
	}
	if cfg.Port == 0 {
		cfg.Port = 8000
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	srv := server.New(server.Config{
		Port:             cfg.Port,
		KnowledgeBaseDir: cfg.KnowledgeBase,
	}, log)

	return srv.Start()
}
