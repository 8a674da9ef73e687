package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/thanhdanh14/CV-Analyzer/internal/i18n"
	"github.com/thanhdanh14/CV-Analyzer/internal/models"
	"github.com/thanhdanh14/CV-Analyzer/internal/repositories"
)

// View identifies one of the two pages.
type View int

const (
	ViewSingle View = iota
	ViewBatch
)

func (v View) String() string {
	if v == ViewBatch {
		return "batch"
	}
	return "single"
}

type SessionService interface {
	Start(lang i18n.Language) (*models.Session, error)
	Get(id uuid.UUID) (*models.Session, error)
	Enter(id uuid.UUID, view View) (*models.Session, error)
	SetLanguage(id uuid.UUID, lang i18n.Language) (*models.Session, error)
	SetModel(id uuid.UUID, modelID string) (*models.Session, error)
	SetJobDescription(id uuid.UUID, jobDescription string) (*models.Session, error)
}

type sessionService struct {
	sessionRepo  repositories.SessionRepository
	defaultModel string
}

func NewSessionService(sessionRepo repositories.SessionRepository, defaultModel string) SessionService {
	return &sessionService{
		sessionRepo:  sessionRepo,
		defaultModel: defaultModel,
	}
}

// Start implements SessionService.
func (s *sessionService) Start(lang i18n.Language) (*models.Session, error) {
	session, err := s.sessionRepo.Create(lang, s.defaultModel)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return session, nil
}

// Get implements SessionService.
func (s *sessionService) Get(id uuid.UUID) (*models.Session, error) {
	return s.sessionRepo.FindByID(id)
}

// Enter prepares a session for rendering view. The other view's state is
// discarded, and the returned snapshot still carries the one-shot flash and
// success toast, which are cleared in the stored session.
func (s *sessionService) Enter(id uuid.UUID, view View) (*models.Session, error) {
	var snapshot *models.Session
	_, err := s.sessionRepo.Update(id, func(session *models.Session) error {
		switch view {
		case ViewSingle:
			if session.BatchResults != nil || session.SelectedFiles != nil || session.BatchAnalyzing {
				session.ResetBatch()
			}
		case ViewBatch:
			if session.Result != nil || session.Analyzing {
				session.ResetSingle()
			}
		}
		snapshot = session.Clone()
		session.Flash = ""
		session.ShowSuccess = false
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// SetLanguage implements SessionService.
func (s *sessionService) SetLanguage(id uuid.UUID, lang i18n.Language) (*models.Session, error) {
	if !lang.Valid() {
		return nil, fmt.Errorf("failed to set language: unsupported language %q", lang)
	}
	return s.sessionRepo.Update(id, func(session *models.Session) error {
		session.Language = lang
		return nil
	})
}

// SetModel implements SessionService.
func (s *sessionService) SetModel(id uuid.UUID, modelID string) (*models.Session, error) {
	modelID = strings.TrimSpace(modelID)
	if modelID == "" {
		return nil, fmt.Errorf("failed to set model: empty model id")
	}
	return s.sessionRepo.Update(id, func(session *models.Session) error {
		session.SelectedModel = modelID
		return nil
	})
}

// SetJobDescription stores the JD; a blank value deletes it.
func (s *sessionService) SetJobDescription(id uuid.UUID, jobDescription string) (*models.Session, error) {
	jobDescription = strings.TrimSpace(jobDescription)
	return s.sessionRepo.Update(id, func(session *models.Session) error {
		session.JobDescription = jobDescription
		return nil
	})
}
