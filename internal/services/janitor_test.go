package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanhdanh14/CV-Analyzer/internal/i18n"
	"github.com/thanhdanh14/CV-Analyzer/internal/repositories"
)

func TestJanitorSweep(t *testing.T) {
	repo := repositories.NewSessionRepository()
	_, err := repo.Create(i18n.Vietnamese, "m")
	require.NoError(t, err)

	j := NewJanitor(repo, time.Hour, time.Minute).(*janitor)

	assert.Equal(t, 0, j.Sweep())
	assert.Equal(t, 1, repo.Count())

	j.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	assert.Equal(t, 1, j.Sweep())
	assert.Equal(t, 0, repo.Count())
}

func TestJanitorStartStop(t *testing.T) {
	repo := repositories.NewSessionRepository()
	_, err := repo.Create(i18n.Korean, "m")
	require.NoError(t, err)

	j := NewJanitor(repo, time.Nanosecond, 5*time.Millisecond)
	j.Start(context.Background())

	assert.Eventually(t, func() bool { return repo.Count() == 0 }, time.Second, 5*time.Millisecond)

	j.Stop()
	j.Stop()
}
