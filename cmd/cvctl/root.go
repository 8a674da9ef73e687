package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thanhdanh14/CV-Analyzer/internal/config"
	"github.com/thanhdanh14/CV-Analyzer/internal/i18n"
	"github.com/thanhdanh14/CV-Analyzer/internal/models"
	"github.com/thanhdanh14/CV-Analyzer/internal/services"
)

var version = "dev"

// BackendError marks failures reported by the analysis backend so main can
// pick a distinct exit code.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// globalOptions carries the persistent flags into every subcommand.
type globalOptions struct {
	apiURL  string
	lang    string
	timeout time.Duration
	debug   bool

	cfg *config.Config
}

// language resolves --lang, falling back to the configured default.
func (o *globalOptions) language() (i18n.Language, error) {
	if o.lang == "" {
		return o.cfg.UI.DefaultLanguage, nil
	}
	lang, ok := i18n.Parse(o.lang)
	if !ok {
		return "", fmt.Errorf("unsupported language %q (supported: vi, ko)", o.lang)
	}
	return lang, nil
}

func (o *globalOptions) viewConfig(modelID, jobDescription string) (models.ViewConfig, error) {
	lang, err := o.language()
	if err != nil {
		return models.ViewConfig{}, err
	}
	return models.ViewConfig{Language: lang, ModelID: modelID, JobDescription: jobDescription}, nil
}

func (o *globalOptions) backend() services.AnalysisBackend {
	return newBackend(o.apiURL, o.timeout)
}

// newBackend is a test hook for replacing the backend client.
var newBackend = services.NewBackendClient

func newRootCommand() *cobra.Command {
	cfg := config.Load()
	opts := &globalOptions{cfg: cfg}

	cmd := &cobra.Command{
		Use:   "cvctl",
		Short: "cvctl - terminal client for the CV analysis backend",
		Long: `cvctl sends CVs to the analysis backend and prints the scorecards.

It offers the same single and batch analysis as the web front, with table,
JSON or YAML output and spreadsheet export for batches.`,
		Version:      version,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.apiURL, "api-url", cfg.Backend.URL, "Base URL of the analysis backend")
	flags.StringVar(&opts.lang, "lang", "", "Output language: vi or ko (default from DEFAULT_LANGUAGE)")
	flags.DurationVar(&opts.timeout, "timeout", cfg.Backend.Timeout, "Backend request timeout")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		config.InitLogger(cmd.ErrOrStderr(), opts.debug)
		if opts.apiURL == "" {
			return fmt.Errorf("--api-url must not be empty")
		}
		_, err := opts.language()
		return err
	}

	cmd.AddCommand(newModelsCommand(opts))
	cmd.AddCommand(newAnalyzeCommand(opts))
	cmd.AddCommand(newBatchCommand(opts))

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
