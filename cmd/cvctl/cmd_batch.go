package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thanhdanh14/CV-Analyzer/internal/i18n"
	"github.com/thanhdanh14/CV-Analyzer/internal/services"
)

type batchFlags struct {
	model  string
	jd     string
	jdFile string
	output string
	export string
}

func newBatchCommand(opts *globalOptions) *cobra.Command {
	flags := &batchFlags{}

	cmd := &cobra.Command{
		Use:   "batch FILES...",
		Short: "Analyze several CVs and rank them by overall score",
		Long: `Batch sends up to MAX_BATCH_FILES CVs in one request and prints them
ranked by overall score. Extra files are ignored with a warning.

With --export the backend's spreadsheet is written to PATH. The spreadsheet
lists the results in the order the files were given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, opts, flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.model, "model", "m", "", "Model ID to analyze with (default DEFAULT_MODEL)")
	cmd.Flags().StringVar(&flags.jd, "jd", "", "Job description text")
	cmd.Flags().StringVar(&flags.jdFile, "jd-file", "", "Read the job description from a file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", formatTable, "Output format: table, json or yaml")
	cmd.Flags().StringVar(&flags.export, "export", "", "Write the results spreadsheet to `PATH`")

	return cmd
}

func runBatch(cmd *cobra.Command, opts *globalOptions, flags *batchFlags, paths []string) error {
	if err := validateFormat(flags.output); err != nil {
		return err
	}

	jobDescription, err := readJobDescription(flags.jd, flags.jdFile)
	if err != nil {
		return err
	}

	modelID := strings.TrimSpace(flags.model)
	if modelID == "" {
		modelID = opts.cfg.UI.DefaultModel
	}
	cfg, err := opts.viewConfig(modelID, jobDescription)
	if err != nil {
		return err
	}

	limit := opts.cfg.Upload.MaxBatchFiles
	if len(paths) > limit {
		slog.Warn("too many files, extra files ignored", "given", len(paths), "limit", limit)
		paths = services.TruncateUploads(paths, limit)
	}

	uploads, err := readUploads(cmd.Context(), paths, opts.cfg.Upload.MaxFileSize)
	if err != nil {
		return err
	}

	backend := opts.backend()
	slog.Debug("analyzing batch", "files", len(uploads), "model", modelID, "jd", cfg.HasJobDescription())
	items, err := backend.BatchAnalyze(cmd.Context(), uploads, jobDescription, modelID)
	if err != nil {
		return &BackendError{Op: "batch analyze", Err: err}
	}

	out := cmd.OutOrStdout()
	if flags.output != formatTable {
		if err := writeStructured(out, flags.output, items); err != nil {
			return err
		}
	} else {
		tr := i18n.Translator{Lang: cfg.Language}
		fmt.Fprintln(out, tr.Count(i18n.KeyResults, len(items))) //nolint:errcheck

		t := newTable(
			tr.T(i18n.KeyRank),
			tr.T(i18n.KeyName),
			tr.T(i18n.KeyScore),
			tr.T(i18n.KeyMatch),
			tr.T(i18n.KeySkillsLabel),
			tr.T(i18n.KeyRedFlagsLabel),
		)
		for _, row := range services.BuildBatchRows(cfg, items) {
			t.add(
				strconv.Itoa(row.Rank),
				batchName(row),
				fmt.Sprintf("%d (%s)", row.Score.Value, row.Score.Band),
				fmt.Sprintf("%d%%", row.Match),
				batchSkills(row),
				row.RedFlagsLabel,
			)
		}
		t.write(out)
	}

	if flags.export == "" {
		return nil
	}

	data, err := backend.ExportExcel(cmd.Context(), items)
	if err != nil {
		return &BackendError{Op: "export", Err: err}
	}
	if err := os.WriteFile(flags.export, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	slog.Info("📥 Exported results", "path", flags.export, "bytes", len(data))
	return nil
}

func batchName(row services.BatchRow) string {
	if row.Error != "" {
		return fmt.Sprintf("%s ✗ %s", row.Filename, row.Error)
	}
	return fmt.Sprintf("%s (%s)", row.Name, row.Filename)
}

func batchSkills(row services.BatchRow) string {
	s := strings.Join(row.TopSkills, ", ")
	if row.ExtraSkills > 0 {
		s += fmt.Sprintf(" +%d", row.ExtraSkills)
	}
	return s
}
