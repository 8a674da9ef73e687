package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanhdanh14/CV-Analyzer/internal/i18n"
	"github.com/thanhdanh14/CV-Analyzer/internal/models"
	"github.com/thanhdanh14/CV-Analyzer/internal/repositories"
)

func TestSessionSettings(t *testing.T) {
	svc := NewSessionService(repositories.NewSessionRepository(), "gemini-2.0-flash")
	session, err := svc.Start(i18n.Korean)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", session.SelectedModel)

	session, err = svc.SetLanguage(session.ID, i18n.Vietnamese)
	require.NoError(t, err)
	assert.Equal(t, i18n.Vietnamese, session.Language)

	_, err = svc.SetLanguage(session.ID, i18n.Language("fr"))
	assert.Error(t, err)

	session, err = svc.SetModel(session.ID, "gpt-4o")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", session.SelectedModel)

	_, err = svc.SetModel(session.ID, " ")
	assert.Error(t, err)

	session, err = svc.SetJobDescription(session.ID, "Backend developer")
	require.NoError(t, err)
	assert.True(t, session.ViewConfig().HasJobDescription())

	session, err = svc.SetJobDescription(session.ID, "   ")
	require.NoError(t, err)
	assert.False(t, session.ViewConfig().HasJobDescription())
}

func TestEnterConsumesFlash(t *testing.T) {
	repo := repositories.NewSessionRepository()
	svc := NewSessionService(repo, "m")
	session, err := svc.Start(i18n.Vietnamese)
	require.NoError(t, err)

	_, err = repo.Update(session.ID, func(s *models.Session) error {
		s.Flash = "oops"
		s.ShowSuccess = true
		return nil
	})
	require.NoError(t, err)

	shown, err := svc.Enter(session.ID, ViewSingle)
	require.NoError(t, err)
	assert.Equal(t, "oops", shown.Flash)
	assert.True(t, shown.ShowSuccess)

	again, err := svc.Enter(session.ID, ViewSingle)
	require.NoError(t, err)
	assert.Empty(t, again.Flash)
	assert.False(t, again.ShowSuccess)
}

func TestEnterDiscardsOtherView(t *testing.T) {
	repo := repositories.NewSessionRepository()
	svc := NewSessionService(repo, "m")
	session, err := svc.Start(i18n.Vietnamese)
	require.NoError(t, err)

	_, err = repo.Update(session.ID, func(s *models.Session) error {
		s.Result = &models.AnalysisResult{OverallScore: 90}
		s.BatchResults = []models.BatchItem{{Filename: "a.pdf"}}
		return nil
	})
	require.NoError(t, err)

	onBatch, err := svc.Enter(session.ID, ViewBatch)
	require.NoError(t, err)
	assert.Nil(t, onBatch.Result)
	assert.Len(t, onBatch.BatchResults, 1)
	assert.Equal(t, uint64(1), onBatch.Generation)

	onSingle, err := svc.Enter(session.ID, ViewSingle)
	require.NoError(t, err)
	assert.Nil(t, onSingle.BatchResults)
	assert.Equal(t, uint64(1), onSingle.BatchGeneration)

	settled, err := svc.Enter(session.ID, ViewSingle)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), settled.BatchGeneration, "an empty view is not reset again")
}

func TestViewString(t *testing.T) {
	assert.Equal(t, "single", ViewSingle.String())
	assert.Equal(t, "batch", ViewBatch.String())
}
