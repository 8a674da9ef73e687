package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanhdanh14/CV-Analyzer/internal/models"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc) AnalysisBackend {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewBackendClient(server.URL, 5*time.Second)
}

func TestAnalyzeCVSendsMultipart(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/analyze-cv", r.URL.Path)
		assert.Equal(t, "gemini-2.0-flash", r.URL.Query().Get("model"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Go backend engineer", r.FormValue("job_description"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "lan.pdf", header.Filename)
		assert.Equal(t, "%PDF-1.4", string(content))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "Lan",
			"overall_score": 85,
			"match_percentage": "40",
			"skills": ["Go", "SQL"],
			"red_flags": null
		}`))
	})

	result, err := backend.AnalyzeCV(context.Background(), NewUpload("lan.pdf", []byte("%PDF-1.4")), "Go backend engineer", "gemini-2.0-flash")
	require.NoError(t, err)

	assert.Equal(t, "Lan", result.Name)
	assert.Equal(t, 85, result.OverallScore)
	assert.Equal(t, 40, result.MatchPercentage)
	assert.Equal(t, []string{"Go", "SQL"}, result.Skills)
	assert.Empty(t, result.RedFlags)
	assert.Zero(t, result.SkillsScore)
}

func TestAnalyzeCVSendsEmptyJobDescription(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, present := r.MultipartForm.Value["job_description"]
		assert.True(t, present)
		assert.Empty(t, r.FormValue("job_description"))
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := backend.AnalyzeCV(context.Background(), NewUpload("cv.txt", []byte("hi")), "", "m")
	assert.NoError(t, err)
}

func TestAnalyzeCVNonSuccessStatus(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"boom"}`, http.StatusInternalServerError)
	})

	_, err := backend.AnalyzeCV(context.Background(), NewUpload("cv.pdf", nil), "", "m")
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestAnalyzeCVTransportError(t *testing.T) {
	backend := NewBackendClient("http://127.0.0.1:1", time.Second)

	_, err := backend.AnalyzeCV(context.Background(), NewUpload("cv.pdf", nil), "", "m")
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestAnalyzeCVCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBackendClient("http://127.0.0.1:1", time.Second).AnalyzeCV(ctx, models.Upload{}, "", "m")
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatchAnalyze(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/batch-analyze", r.URL.Path)
		assert.Equal(t, "gpt 4o", r.URL.Query().Get("model"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		files := r.MultipartForm.File["files"]
		require.Len(t, files, 2)
		assert.Equal(t, "a.pdf", files[0].Filename)
		assert.Equal(t, "b.docx", files[1].Filename)
		assert.Equal(t, "Data analyst", r.FormValue("job_description"))

		_, _ = w.Write([]byte(`{
			"results": [
				{"filename": "a.pdf", "analysis": {"overall_score": 72, "skills": "SQL"}},
				{"filename": "b.docx", "error": "could not parse document"}
			],
			"total": 2
		}`))
	})

	uploads := []models.Upload{
		NewUpload("a.pdf", []byte("a")),
		NewUpload("b.docx", []byte("b")),
	}
	items, err := backend.BatchAnalyze(context.Background(), uploads, "Data analyst", "gpt 4o")
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, 72, items[0].OverallScore())
	assert.Equal(t, []string{"SQL"}, items[0].Analysis.Skills)
	assert.True(t, items[1].Failed())
	assert.Nil(t, items[1].Analysis)
	assert.Zero(t, items[1].OverallScore())
}

func TestListModels(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/models", r.URL.Path)
		_, _ = w.Write([]byte(`{"models": [
			{"id": "gemini-2.0-flash", "name": "Gemini 2.0 Flash", "provider": "Google", "icon": "⚡"},
			{"id": "gpt-4o", "name": "GPT-4o", "provider": "OpenAI"}
		]}`))
	})

	list, err := backend.ListModels(context.Background())
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, "Google", list[0].Provider)
	assert.Equal(t, "GPT-4o", models.FindModel(list, "gpt-4o").Name)
}

func TestListModelsMalformedBody(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := backend.ListModels(context.Background())
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestExportExcel(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/export-excel", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var req struct {
			Results []models.BatchItem `json:"results"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Results, 2)
		assert.Equal(t, "low.pdf", req.Results[0].Filename)
		assert.Equal(t, 90, req.Results[1].OverallScore())

		_, _ = w.Write([]byte("PK\x03\x04xlsx"))
	})

	items := []models.BatchItem{
		{Filename: "low.pdf", Analysis: &models.AnalysisResult{OverallScore: 10}},
		{Filename: "high.pdf", Analysis: &models.AnalysisResult{OverallScore: 90}},
	}
	data, err := backend.ExportExcel(context.Background(), items)
	require.NoError(t, err)
	assert.Equal(t, []byte("PK\x03\x04xlsx"), data)
}

func TestExportSendsBackendItemsUnchanged(t *testing.T) {
	partial := `{"filename":"an.pdf","analysis":{"name":"An","overall_score":72.6,"extra":"x"}}`
	failed := `{"filename":"b.docx","error":"could not parse document"}`

	var exported models.ExportRequest
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/batch-analyze":
			_, _ = w.Write([]byte(`{"results": [` + partial + `, ` + failed + `], "total": 2}`))
		case "/export-excel":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&exported))
			_, _ = w.Write([]byte("xlsx"))
		}
	})

	items, err := backend.BatchAnalyze(context.Background(), []models.Upload{NewUpload("an.pdf", nil)}, "", "m")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 72, items[0].OverallScore())

	_, err = backend.ExportExcel(context.Background(), items)
	require.NoError(t, err)

	require.Len(t, exported.Results, 2)
	assert.Equal(t, partial, string(exported.Results[0]))
	assert.Equal(t, failed, string(exported.Results[1]))
	assert.NotContains(t, string(exported.Results[0]), "null")
}

func TestExportExcelFailure(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := backend.ExportExcel(context.Background(), []models.BatchItem{{Filename: "a.pdf"}})
	assert.ErrorIs(t, err, ErrRequestFailed)
}
