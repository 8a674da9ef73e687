package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/thanhdanh14/CV-Analyzer/internal/i18n"
	"github.com/thanhdanh14/CV-Analyzer/internal/models"
	"github.com/thanhdanh14/CV-Analyzer/internal/repositories"
)

var (
	ErrAnalysisInProgress = errors.New("analysis already in progress")
	ErrNoFiles            = errors.New("no files selected")
	ErrNoResults          = errors.New("no results to export")
	ErrStaleResponse      = errors.New("response arrived after its view was reset")
)

// AnalysisService runs the single and batch flows against the backend and
// records their outcome in the session. Failures are logged and surfaced to
// the user as a localized flash; the returned error is for the caller's
// control flow only.
type AnalysisService interface {
	Models(ctx context.Context) ([]models.Model, error)
	AnalyzeSingle(ctx context.Context, sessionID uuid.UUID, upload models.Upload) (*models.Session, error)
	AnalyzeBatch(ctx context.Context, sessionID uuid.UUID, uploads []models.Upload) (*models.Session, error)
	ExportBatch(ctx context.Context, sessionID uuid.UUID) ([]byte, error)
	Reset(sessionID uuid.UUID) (*models.Session, error)
	RejectUpload(sessionID uuid.UUID, view View, cause error) (*models.Session, error)
}

type analysisService struct {
	sessionRepo   repositories.SessionRepository
	backend       AnalysisBackend
	inspector     DocumentInspector
	maxBatchFiles int
}

func NewAnalysisService(
	sessionRepo repositories.SessionRepository,
	backend AnalysisBackend,
	inspector DocumentInspector,
	maxBatchFiles int,
) AnalysisService {
	return &analysisService{
		sessionRepo:   sessionRepo,
		backend:       backend,
		inspector:     inspector,
		maxBatchFiles: maxBatchFiles,
	}
}

// Models implements AnalysisService. A failed fetch leaves the picker empty.
func (s *analysisService) Models(ctx context.Context) ([]models.Model, error) {
	list, err := s.backend.ListModels(ctx)
	if err != nil {
		log.Printf("❌ Failed to load models: %v", err)
		return nil, fmt.Errorf("failed to load models: %w", err)
	}
	return list, nil
}

// AnalyzeSingle implements AnalysisService.
func (s *analysisService) AnalyzeSingle(ctx context.Context, sessionID uuid.UUID, upload models.Upload) (*models.Session, error) {
	if !IsAccepted(upload.Filename) {
		err := fmt.Errorf("%w: %q", ErrUnsupportedFile, filepath.Ext(upload.Filename))
		log.Printf("⚠️  Rejected upload %s: %v", upload.Filename, err)
		return s.flash(sessionID, i18n.KeyUnsupportedFile, err)
	}

	var (
		cfg        models.ViewConfig
		generation uint64
	)
	_, err := s.sessionRepo.Update(sessionID, func(session *models.Session) error {
		if session.Analyzing {
			return ErrAnalysisInProgress
		}
		session.Analyzing = true
		session.ShowSuccess = false
		cfg = session.ViewConfig()
		generation = session.Generation
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("📄 Analyzing %s with model %s (jd=%t)", upload.Filename, cfg.ModelID, cfg.HasJobDescription())
	result, callErr := s.backend.AnalyzeCV(ctx, upload, cfg.JobDescription, cfg.ModelID)
	if callErr != nil {
		log.Printf("❌ Analysis of %s failed: %v", upload.Filename, callErr)
	}

	session, err := s.sessionRepo.Update(sessionID, func(session *models.Session) error {
		if session.Generation != generation {
			return ErrStaleResponse
		}
		session.Analyzing = false
		if callErr != nil {
			session.Result = nil
			session.Flash = i18n.T(session.Language, i18n.KeyErrorMessage, nil)
			return nil
		}
		session.Result = result
		session.ShowSuccess = true
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrStaleResponse) {
			log.Printf("⚠️  Discarding analysis of %s: %v", upload.Filename, err)
		}
		return nil, err
	}
	if callErr != nil {
		return session, fmt.Errorf("failed to analyze CV: %w", callErr)
	}

	log.Printf("✅ Analyzed %s: overall score %d", upload.Filename, result.OverallScore)
	return session, nil
}

// AnalyzeBatch implements AnalysisService. Files past the batch limit are
// dropped in selection order.
func (s *analysisService) AnalyzeBatch(ctx context.Context, sessionID uuid.UUID, uploads []models.Upload) (*models.Session, error) {
	if len(uploads) == 0 {
		return s.flash(sessionID, i18n.KeySelectAtLeastOne, ErrNoFiles)
	}
	uploads = TruncateUploads(uploads, s.maxBatchFiles)

	var (
		cfg        models.ViewConfig
		generation uint64
	)
	_, err := s.sessionRepo.Update(sessionID, func(session *models.Session) error {
		if session.BatchAnalyzing {
			return ErrAnalysisInProgress
		}
		session.BatchAnalyzing = true
		session.SelectedFiles = s.inspector.InspectAll(uploads)
		cfg = session.ViewConfig()
		generation = session.BatchGeneration
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("📚 Batch analyzing %d files with model %s (jd=%t)", len(uploads), cfg.ModelID, cfg.HasJobDescription())
	items, callErr := s.backend.BatchAnalyze(ctx, uploads, cfg.JobDescription, cfg.ModelID)
	if callErr != nil {
		log.Printf("❌ Batch analysis failed: %v", callErr)
	}

	session, err := s.sessionRepo.Update(sessionID, func(session *models.Session) error {
		if session.BatchGeneration != generation {
			return ErrStaleResponse
		}
		session.BatchAnalyzing = false
		if callErr != nil {
			session.BatchResults = nil
			session.Flash = i18n.T(session.Language, i18n.KeyBatchError, nil)
			return nil
		}
		session.BatchResults = items
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrStaleResponse) {
			log.Printf("⚠️  Discarding batch results: %v", err)
		}
		return nil, err
	}
	if callErr != nil {
		return session, fmt.Errorf("failed to analyze batch: %w", callErr)
	}

	failed := 0
	for _, item := range items {
		if item.Failed() {
			log.Printf("⚠️  Backend could not analyze %s: %s", item.Filename, item.Error)
			failed++
		}
	}
	log.Printf("✅ Batch analysis complete: %d results, %d failed", len(items), failed)
	return session, nil
}

// ExportBatch implements AnalysisService. The backend receives the results
// in the order it returned them, never the ranked order.
func (s *analysisService) ExportBatch(ctx context.Context, sessionID uuid.UUID) ([]byte, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.BatchResults) == 0 {
		return nil, ErrNoResults
	}

	data, err := s.backend.ExportExcel(ctx, session.BatchResults)
	if err != nil {
		log.Printf("❌ Export failed: %v", err)
		if _, flashErr := s.flash(sessionID, i18n.KeyExportError, nil); flashErr != nil {
			return nil, flashErr
		}
		return nil, fmt.Errorf("failed to export results: %w", err)
	}

	log.Printf("📊 Exported %d results (%d bytes)", len(session.BatchResults), len(data))
	return data, nil
}

// Reset implements AnalysisService.
func (s *analysisService) Reset(sessionID uuid.UUID) (*models.Session, error) {
	return s.sessionRepo.Update(sessionID, func(session *models.Session) error {
		session.ResetSingle()
		return nil
	})
}

// RejectUpload implements AnalysisService. An upload that could not be read
// is flashed like any other failure of the view it was sent to.
func (s *analysisService) RejectUpload(sessionID uuid.UUID, view View, cause error) (*models.Session, error) {
	log.Printf("⚠️  Rejected %s upload: %v", view, cause)

	key := i18n.KeyErrorMessage
	switch {
	case errors.Is(cause, ErrFileTooLarge):
		key = i18n.KeyFileTooLarge
	case view == ViewBatch:
		key = i18n.KeyBatchError
	}
	return s.flash(sessionID, key, cause)
}

// flash stores the localized message for key and returns cause, or the
// repository error when the session is gone.
func (s *analysisService) flash(sessionID uuid.UUID, key i18n.Key, cause error) (*models.Session, error) {
	session, err := s.sessionRepo.Update(sessionID, func(session *models.Session) error {
		session.Flash = i18n.T(session.Language, key, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, cause
}
