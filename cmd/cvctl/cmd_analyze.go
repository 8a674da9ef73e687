package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thanhdanh14/CV-Analyzer/internal/i18n"
	"github.com/thanhdanh14/CV-Analyzer/internal/services"
)

type analyzeFlags struct {
	model  string
	jd     string
	jdFile string
	output string
}

func newAnalyzeCommand(opts *globalOptions) *cobra.Command {
	flags := &analyzeFlags{}

	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Analyze one CV and print its scorecard",
		Long: `Analyze sends one CV (PDF, DOCX or TXT) to the backend and prints the
scorecard. With a job description the job-matching scores are included.

Without --model on an interactive terminal, the available models are offered
in a picker. Otherwise DEFAULT_MODEL is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts, flags, args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.model, "model", "m", "", "Model ID to analyze with")
	cmd.Flags().StringVar(&flags.jd, "jd", "", "Job description text")
	cmd.Flags().StringVar(&flags.jdFile, "jd-file", "", "Read the job description from a file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", formatTable, "Output format: table, json or yaml")

	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *globalOptions, flags *analyzeFlags, path string) error {
	if err := validateFormat(flags.output); err != nil {
		return err
	}
	if !services.IsAccepted(path) {
		return fmt.Errorf("%s: %w (accepted: %s)", path, services.ErrUnsupportedFile, services.AcceptAttribute)
	}

	jobDescription, err := readJobDescription(flags.jd, flags.jdFile)
	if err != nil {
		return err
	}

	backend := opts.backend()
	modelID, err := resolveModel(cmd, opts, backend, flags.model)
	if err != nil {
		return err
	}

	cfg, err := opts.viewConfig(modelID, jobDescription)
	if err != nil {
		return err
	}

	upload, err := readUpload(path, opts.cfg.Upload.MaxFileSize)
	if err != nil {
		return err
	}

	slog.Debug("analyzing CV", "file", upload.Filename, "model", modelID, "jd", cfg.HasJobDescription())
	result, err := backend.AnalyzeCV(cmd.Context(), upload, jobDescription, modelID)
	if err != nil {
		return &BackendError{Op: "analyze " + upload.Filename, Err: err}
	}

	if flags.output != formatTable {
		return writeStructured(cmd.OutOrStdout(), flags.output, result)
	}
	printScorecard(cmd.OutOrStdout(), i18n.Translator{Lang: cfg.Language}, services.BuildScorecard(cfg, result))
	return nil
}

// resolveModel returns the explicit --model, the picker's choice on an
// interactive terminal, or the configured default.
func resolveModel(cmd *cobra.Command, opts *globalOptions, backend services.AnalysisBackend, explicit string) (string, error) {
	if m := strings.TrimSpace(explicit); m != "" {
		return m, nil
	}

	fallback := opts.cfg.UI.DefaultModel
	if !isTerminal(cmd.InOrStdin()) {
		return fallback, nil
	}

	list, err := backend.ListModels(cmd.Context())
	if err != nil || len(list) == 0 {
		slog.Warn("model list unavailable, using default", "model", fallback, "error", err)
		return fallback, nil
	}

	lang, err := opts.language()
	if err != nil {
		return "", err
	}
	return pickModel(cmd.InOrStdin(), cmd.ErrOrStderr(), i18n.T(lang, i18n.KeySelectModel, nil), list, fallback)
}

func printScorecard(w io.Writer, tr i18n.Translator, card *services.Scorecard) {
	p := func(format string, a ...any) {
		fmt.Fprintf(w, format, a...) //nolint:errcheck
	}

	p("%s %s\n", card.Initial, card.DisplayName)
	if contact := joinNonEmpty(" · ", card.Email, card.Phone); contact != "" {
		p("  %s\n", contact)
	}
	if card.Summary != "" {
		p("\n%s\n", card.Summary)
	}

	if card.HasJobMatching {
		p("\n%s\n", tr.T(i18n.KeyScoringTitle))
		p("  %s %s\n", padRight(tr.T(i18n.KeyOverallScore), 24), scoreCell(card.Overall, ""))
		p("  %s %s\n", padRight(tr.T(i18n.KeyMatchWithJD), 24), scoreCell(card.Match, "%"))
		for _, row := range card.Breakdown {
			p("  %s %s\n", padRight(row.Label, 24), scoreCell(row.Score, ""))
		}
		printList(w, tr.T(i18n.KeyMatchingSkills), card.MatchingSkills, "✓")
		printList(w, tr.T(i18n.KeyMissingSkills), card.MissingSkills, "✗")
		printList(w, tr.T(i18n.KeyRedFlags), card.RedFlags, "⚠️")
	}

	if len(card.Skills) > 0 {
		badges := make([]string, len(card.Skills))
		for i, b := range card.Skills {
			badges[i] = b.Icon + " " + b.Skill
		}
		p("\n%s\n  %s\n", tr.T(i18n.KeySkills), strings.Join(badges, ", "))
	}

	p("\n%s\n  %s\n", tr.T(i18n.KeyExperience), card.Experience)
	p("\n%s\n  %s\n", tr.T(i18n.KeyEducation), card.Education)
	printList(w, tr.T(i18n.KeyStrengths), card.Strengths, "•")
	printList(w, tr.T(i18n.KeyRecommendations), card.Recommendations, "•")

	p("\n%s\n", tr.T(i18n.KeyAISuggestions))
	if len(card.InterviewQuestions) > 0 {
		p("  %s\n", tr.T(i18n.KeyInterviewQuestions))
		for i, q := range card.InterviewQuestions {
			p("    Q%d. %s\n", i+1, q)
		}
	}
	p("  %s: %s\n", tr.T(i18n.KeySalaryRecommendation), card.SalaryRange)
	if len(card.CareerPath) > 0 {
		p("  %s: %s\n", tr.T(i18n.KeyCareerPath), strings.Join(card.CareerPath, " → "))
	}
}

func printList(w io.Writer, title string, items []string, bullet string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", title) //nolint:errcheck
	for _, item := range items {
		fmt.Fprintf(w, "  %s %s\n", bullet, item) //nolint:errcheck
	}
}

// scoreCell renders "85 ████████░░ high". The bar is clamped, the band is not.
func scoreCell(s services.ScoreView, suffix string) string {
	filled := s.Width / 10
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	return fmt.Sprintf("%s %s %s", padRight(fmt.Sprintf("%d%s", s.Value, suffix), 4), bar, s.Band)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
