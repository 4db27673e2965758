package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ithute/ithute/internal/pipeline"
	"github.com/ithute/ithute/internal/server"
)

var (
	serveHost string
	servePort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bias-correction HTTP service",
	Long: `Serve exposes the detection pipeline over HTTP:
  GET  /health         liveness probe
  GET  /               interactive demo page
  POST /correct        single-sentence correction
  POST /batch-correct  batch correction (JSON body or file upload)

Example:
  ithute serve
  ithute serve --port 9090
  ithute serve --llm --llm-provider anthropic`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (default from config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default from config)")
	serveCmd.Flags().StringVar(&lexiconPath, "lexicon", "", "YAML lexicon override file")
	serveCmd.Flags().StringVar(&corpusPath, "corpus", "", "ground-truth exemplar JSON file")

	// LLM flags
	serveCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM correction refinement")
	serveCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	serveCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	p, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize pipeline: %w", err)
	}

	srv := server.New(cfg, p, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("signal received", zap.String("signal", sig.String()))
		return srv.Stop(context.Background())
	}
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
