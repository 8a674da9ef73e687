package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/thanhdanh14/CV-Analyzer/internal/models"
	"github.com/thanhdanh14/CV-Analyzer/internal/services"
)

// readUploads reads every path concurrently. The result keeps the order of
// paths; the first failure cancels the remaining reads.
func readUploads(ctx context.Context, paths []string, maxFileSize int64) ([]models.Upload, error) {
	uploads := make([]models.Upload, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			upload, err := readUpload(path, maxFileSize)
			if err != nil {
				return err
			}
			uploads[i] = upload
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return uploads, nil
}

func readUpload(path string, maxFileSize int64) (models.Upload, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.Upload{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if info.IsDir() {
		return models.Upload{}, fmt.Errorf("%s is a directory", path)
	}
	if maxFileSize > 0 && info.Size() > maxFileSize {
		return models.Upload{}, fmt.Errorf("%s exceeds the %d byte limit", path, maxFileSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return models.Upload{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return services.NewUpload(path, content), nil
}

// readJobDescription resolves --jd and --jd-file, which are mutually
// exclusive. Surrounding whitespace is dropped as in the web settings form.
func readJobDescription(jd, jdFile string) (string, error) {
	if jd != "" && jdFile != "" {
		return "", fmt.Errorf("--jd and --jd-file cannot be used together")
	}
	if jdFile == "" {
		return strings.TrimSpace(jd), nil
	}
	data, err := os.ReadFile(jdFile)
	if err != nil {
		return "", fmt.Errorf("failed to read job description: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
