package models

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/thanhdanh14/CV-Analyzer/internal/i18n"
)

// ViewConfig is the read-only configuration every render and handler
// receives explicitly.
type ViewConfig struct {
	Language       i18n.Language
	ModelID        string
	JobDescription string
}

func (c ViewConfig) HasJobDescription() bool {
	return c.JobDescription != ""
}

// Session is the per-browser UI state of both views. It lives in memory only.
type Session struct {
	ID             uuid.UUID
	Language       i18n.Language
	SelectedModel  string
	JobDescription string

	// Single view
	Result      *AnalysisResult
	Analyzing   bool
	Generation  uint64
	ShowSuccess bool

	// Batch view
	BatchResults    []BatchItem
	SelectedFiles   []FileInfo
	BatchAnalyzing  bool
	BatchGeneration uint64

	// Flash is a localized one-shot alert shown on the next render.
	Flash string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Session) ViewConfig() ViewConfig {
	return ViewConfig{
		Language:       s.Language,
		ModelID:        s.SelectedModel,
		JobDescription: s.JobDescription,
	}
}

// Clone returns a deep copy of s, nested results included.
func (s *Session) Clone() *Session {
	c := *s
	c.Result = s.Result.Clone()
	if s.BatchResults != nil {
		c.BatchResults = make([]BatchItem, len(s.BatchResults))
		for i, item := range s.BatchResults {
			c.BatchResults[i] = item.Clone()
		}
	}
	c.SelectedFiles = slices.Clone(s.SelectedFiles)
	return &c
}

// ResetSingle discards the single-view result and invalidates any request
// still in flight for it.
func (s *Session) ResetSingle() {
	s.Result = nil
	s.Analyzing = false
	s.ShowSuccess = false
	s.Generation++
}

// ResetBatch does the same for the batch view.
func (s *Session) ResetBatch() {
	s.BatchResults = nil
	s.SelectedFiles = nil
	s.BatchAnalyzing = false
	s.BatchGeneration++
}
