package repositories

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thanhdanh14/CV-Analyzer/internal/i18n"
	"github.com/thanhdanh14/CV-Analyzer/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps UI sessions in memory. Callers always receive
// copies; mutations go through Update so they are applied atomically.
type SessionRepository interface {
	Create(lang i18n.Language, modelID string) (*models.Session, error)
	FindByID(id uuid.UUID) (*models.Session, error)
	Update(id uuid.UUID, fn func(s *models.Session) error) (*models.Session, error)
	Delete(id uuid.UUID) error
	DeleteIdle(before time.Time) int
	Count() int
}

type sessionRepository struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*models.Session
	now      func() time.Time
}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{
		sessions: make(map[uuid.UUID]*models.Session),
		now:      time.Now,
	}
}

func (r *sessionRepository) Create(lang i18n.Language, modelID string) (*models.Session, error) {
	if !lang.Valid() {
		return nil, fmt.Errorf("failed to create session: unsupported language %q", lang)
	}

	now := r.now()
	session := &models.Session{
		ID:            uuid.New(),
		Language:      lang,
		SelectedModel: modelID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session

	return session.Clone(), nil
}

func (r *sessionRepository) FindByID(id uuid.UUID) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("failed to find session %s: %w", id, ErrSessionNotFound)
	}

	return session.Clone(), nil
}

// Update applies fn to the stored session under the repository lock. If fn
// returns an error the session is left unchanged and the error is returned
// as is.
func (r *sessionRepository) Update(id uuid.UUID, fn func(s *models.Session) error) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("failed to update session %s: %w", id, ErrSessionNotFound)
	}

	draft := session.Clone()
	if err := fn(draft); err != nil {
		return nil, err
	}

	draft.ID = session.ID
	draft.UpdatedAt = r.now()
	r.sessions[id] = draft

	return draft.Clone(), nil
}

func (r *sessionRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("failed to delete session %s: %w", id, ErrSessionNotFound)
	}
	delete(r.sessions, id)

	return nil
}

// DeleteIdle removes sessions not updated since before and returns how many
// were removed.
func (r *sessionRepository) DeleteIdle(before time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, session := range r.sessions {
		if session.UpdatedAt.Before(before) {
			delete(r.sessions, id)
			removed++
		}
	}

	return removed
}

func (r *sessionRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
