package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/thanhdanh14/CV-Analyzer/internal/models"
)

// ErrRequestFailed covers every failed backend call: transport errors and
// any non-2xx status alike.
var ErrRequestFailed = errors.New("request failed")

// AnalysisBackend is the external service that parses, scores and exports.
type AnalysisBackend interface {
	AnalyzeCV(ctx context.Context, upload models.Upload, jobDescription, modelID string) (*models.AnalysisResult, error)
	BatchAnalyze(ctx context.Context, uploads []models.Upload, jobDescription, modelID string) ([]models.BatchItem, error)
	ListModels(ctx context.Context) ([]models.Model, error)
	ExportExcel(ctx context.Context, items []models.BatchItem) ([]byte, error)
}

type backendClient struct {
	baseURL string
	timeout time.Duration
}

func NewBackendClient(baseURL string, timeout time.Duration) AnalysisBackend {
	return &backendClient{
		baseURL: baseURL,
		timeout: timeout,
	}
}

// AnalyzeCV implements AnalysisBackend.
func (b *backendClient) AnalyzeCV(ctx context.Context, upload models.Upload, jobDescription, modelID string) (*models.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	agent := fiber.Post(b.endpoint("/analyze-cv", modelID))
	agent.FileData(&fiber.FormFile{
		Fieldname: "file",
		Name:      upload.Filename,
		Content:   upload.Content,
	})

	body, err := b.sendMultipart(agent, "/analyze-cv", jobDescription)
	if err != nil {
		return nil, err
	}

	var result models.AnalysisResult
	if err := decodeLoose(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	return &result, nil
}

// BatchAnalyze implements AnalysisBackend.
func (b *backendClient) BatchAnalyze(ctx context.Context, uploads []models.Upload, jobDescription, modelID string) ([]models.BatchItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	agent := fiber.Post(b.endpoint("/batch-analyze", modelID))
	files := make([]*fiber.FormFile, 0, len(uploads))
	for _, upload := range uploads {
		files = append(files, &fiber.FormFile{
			Fieldname: "files",
			Name:      upload.Filename,
			Content:   upload.Content,
		})
	}
	agent.FileData(files...)

	body, err := b.sendMultipart(agent, "/batch-analyze", jobDescription)
	if err != nil {
		return nil, err
	}

	var resp models.BatchResponse
	if err := decodeLoose(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	attachRaw(body, resp.Results)

	return resp.Results, nil
}

// ListModels implements AnalysisBackend.
func (b *backendClient) ListModels(ctx context.Context) ([]models.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	agent := fiber.Get(b.baseURL + "/models")
	body, err := b.send(agent, "/models")
	if err != nil {
		return nil, err
	}

	var resp models.ModelsResponse
	if err := decodeLoose(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	return resp.Models, nil
}

// ExportExcel implements AnalysisBackend.
func (b *backendClient) ExportExcel(ctx context.Context, items []models.BatchItem) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	req := models.ExportRequest{Results: make([]json.RawMessage, 0, len(items))}
	for _, item := range items {
		raw, err := item.WireJSON()
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s for export: %w", item.Filename, err)
		}
		req.Results = append(req.Results, raw)
	}

	agent := fiber.Post(b.baseURL + "/export-excel")
	agent.JSON(req)

	return b.send(agent, "/export-excel")
}

// attachRaw keeps each batch item's original JSON next to its decoded view.
// When the results are not a plain array the items keep no raw form.
func attachRaw(body []byte, items []models.BatchItem) {
	var raw struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(body, &raw); err != nil || len(raw.Results) != len(items) {
		return
	}
	for i := range items {
		items[i].Raw = raw.Results[i]
	}
}

func (b *backendClient) endpoint(path, modelID string) string {
	return b.baseURL + path + "?model=" + url.QueryEscape(modelID)
}

func (b *backendClient) sendMultipart(agent *fiber.Agent, path, jobDescription string) ([]byte, error) {
	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)
	args.Set("job_description", jobDescription)
	agent.MultipartForm(args)

	return b.send(agent, path)
}

func (b *backendClient) send(agent *fiber.Agent, path string) ([]byte, error) {
	if b.timeout > 0 {
		agent.Timeout(b.timeout)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		err := errors.Join(errs...)
		log.Printf("❌ Backend call %s failed: %v", path, err)
		return nil, fmt.Errorf("%w: %s: %w", ErrRequestFailed, path, err)
	}

	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		log.Printf("❌ Backend call %s returned status %d", path, code)
		return nil, fmt.Errorf("%w: %s returned status %d", ErrRequestFailed, path, code)
	}

	return body, nil
}
