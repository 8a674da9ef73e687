package views

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanhdanh14/CV-Analyzer/internal/i18n"
	"github.com/thanhdanh14/CV-Analyzer/internal/models"
	"github.com/thanhdanh14/CV-Analyzer/internal/services"
)

func TestFuncs(t *testing.T) {
	funcs := Funcs()

	tr := funcs["t"].(func(i18n.Language, string) string)
	assert.Equal(t, "no.such.key", tr(i18n.Vietnamese, "no.such.key"))

	tc := funcs["tc"].(func(i18n.Language, string, int) string)
	assert.Equal(t, "Đã chọn 3 file(s):", tc(i18n.Vietnamese, "filesSelected", 3))

	assert.Equal(t, "1.5 KB", kilobytes(1536))
}

func render(t *testing.T, name string, data map[string]any) string {
	t.Helper()
	engine, err := Engine()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, engine.Render(&out, name, data, Layout))
	return out.String()
}

func TestRenderBatchTable(t *testing.T) {
	cfg := models.ViewConfig{Language: i18n.Korean, ModelID: "gemini-2.0-flash"}
	rows := services.BuildBatchRows(cfg, []models.BatchItem{
		{Filename: "a.pdf", Analysis: &models.AnalysisResult{Name: "Kim", OverallScore: 91}},
		{Filename: "b.pdf", Analysis: &models.AnalysisResult{OverallScore: 40, RedFlags: []string{"gap"}}},
	})

	html := render(t, "batch", map[string]any{
		"Lang":      cfg.Language,
		"Languages": i18n.Supported,
		"Path":      "/batch",
		"Session":   &models.Session{Language: cfg.Language, Flash: "경고"},
		"Config":    cfg,
		"Rows":      rows,
		"Accept":    services.AcceptAttribute,
	})

	assert.Contains(t, html, `lang="ko"`)
	assert.Contains(t, html, "결과 (2개 이력서)")
	assert.Contains(t, html, "Kim")
	assert.Contains(t, html, "⚠️ 1개 주의사항")
	assert.Contains(t, html, "경고")
	assert.Contains(t, html, `href="/batch/export"`)
}

func TestRenderScorecard(t *testing.T) {
	cfg := models.ViewConfig{Language: i18n.Vietnamese}
	card := services.BuildScorecard(cfg, &models.AnalysisResult{
		Name:               "Lan",
		OverallScore:       85,
		MatchPercentage:    40,
		InterviewQuestions: []string{"Why Go?"},
	})

	html := render(t, "index", map[string]any{
		"Lang":      cfg.Language,
		"Languages": i18n.Supported,
		"Path":      "/",
		"Session":   &models.Session{Language: cfg.Language},
		"Config":    cfg,
		"Scorecard": card,
		"Accept":    services.AcceptAttribute,
	})

	assert.Contains(t, html, `id="job-matching"`)
	assert.Contains(t, html, `data-band="high">85`)
	assert.Contains(t, html, `data-band="low">40%`)
	assert.Contains(t, html, "Q1.")
	assert.Contains(t, html, `action="/reset"`)
}

func TestRenderWithoutResult(t *testing.T) {
	cfg := models.ViewConfig{Language: i18n.Vietnamese}
	html := render(t, "index", map[string]any{
		"Lang":      cfg.Language,
		"Languages": i18n.Supported,
		"Path":      "/",
		"Session":   &models.Session{Language: cfg.Language},
		"Config":    cfg,
		"Accept":    services.AcceptAttribute,
	})

	assert.NotContains(t, html, `id="job-matching"`)
	assert.Contains(t, html, `accept=".pdf,.docx,.txt"`)
}
