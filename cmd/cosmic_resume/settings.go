package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/IMPERIALX7/cosmic-resume/internal/config"
	"github.com/IMPERIALX7/cosmic-resume/internal/enhance"
	"github.com/IMPERIALX7/cosmic-resume/internal/export"
	"github.com/IMPERIALX7/cosmic-resume/internal/llm"
	"github.com/IMPERIALX7/cosmic-resume/internal/logging"
	"github.com/IMPERIALX7/cosmic-resume/internal/seed"
	"github.com/IMPERIALX7/cosmic-resume/internal/session"
	"github.com/IMPERIALX7/cosmic-resume/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath  string
	seedPath    string
	apiKeyFlag  string
	modelFlag   string
	outputDir   string
	logLevel    string
	previewAddr string
	verbose     bool

	settings config.Config
)

func init() {
	rootCmd.PersistentPreRunE = setup
	rootCmd.RunE = runWizard

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Path to a JSON or YAML config file")
	flags.StringVarP(&seedPath, "seed", "s", "", "Path to a resume JSON document to start from")
	flags.StringVar(&apiKeyFlag, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	flags.StringVar(&modelFlag, "model", "", "Gemini model used for enhancements")
	flags.StringVarP(&outputDir, "out-dir", "o", "", "Directory exports are written to")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.Flags().StringVar(&previewAddr, "preview-addr", "", "Serve a live browser preview on this address, e.g. 127.0.0.1:8080")
}

// setup resolves settings and builds the logger before any command runs
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	settings = cfg

	opts := logging.Options{Level: cfg.LogLevel, Verbose: cfg.Verbose, File: cfg.LogFile}
	// The wizard owns the terminal, so its logs always go to a file
	if !cmd.HasParent() && opts.File == "" {
		opts.File = filepath.Join(os.TempDir(), "cosmic-resume.log")
	}
	l, err := logging.New(opts)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// loadSettings merges, in order of precedence, flags, the config file, the
// environment and the built-in defaults
func loadSettings() (config.Config, error) {
	var file config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		file = *loaded
	}

	flags := config.Config{
		APIKey:      apiKeyFlag,
		Model:       modelFlag,
		Seed:        seedPath,
		OutputDir:   outputDir,
		LogLevel:    logLevel,
		PreviewAddr: previewAddr,
	}
	merged := flags.MergeWithDefaults(file)
	merged.ApplyEnv()
	merged = merged.MergeWithDefaults(config.Defaults())
	merged.Verbose = verbose || file.Verbose

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// openSession starts a session from the seed document, or empty
func openSession(cfg config.Config) (*session.Session, error) {
	if cfg.Seed == "" {
		return session.New(types.NewDocument()), nil
	}
	doc, err := seed.LoadDocument(cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed document: %w", err)
	}
	return session.New(doc), nil
}

// newEnhanceService builds the enhancement collaborator. Without an API key
// the service is disabled and hands every text back unchanged.
func newEnhanceService(ctx context.Context, cfg config.Config) (*enhance.Service, func(), error) {
	if cfg.APIKey == "" {
		logger.Info("no API key configured, AI enhancement disabled")
		return enhance.NewService(nil, logger), func() {}, nil
	}

	llmConfig := llm.DefaultConfig().WithModel(llm.TierStandard, cfg.Model)
	client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close LLM client", zap.Error(err))
		}
	}
	return enhance.NewService(client, logger), closeFn, nil
}

// newExporter picks the renderer for format
func newExporter(cfg config.Config, format string) (*export.Exporter, error) {
	if format == "" {
		format = cfg.ExportFormat
	}
	switch format {
	case "pdf":
		return export.NewExporter(export.NewChromeRenderer(cfg.ChromePath, cfg.ExportTimeoutDuration()), logger), nil
	case "html":
		return export.NewExporter(export.HTMLRenderer{}, logger), nil
	}
	return nil, fmt.Errorf("unsupported export format %q (use pdf or html)", format)
}
