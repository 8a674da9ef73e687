package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/thanhdanh14/CV-Analyzer/internal/services"
)

type AnalyzeHandler struct {
	analysis services.AnalysisService
	uploads  services.UploadService
}

func NewAnalyzeHandler(analysis services.AnalysisService, uploads services.UploadService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysis: analysis,
		uploads:  uploads,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	upload, err := h.uploads.ReadFile(file)
	if err != nil {
		return h.reject(c, services.ViewSingle, err)
	}

	// Backend and file-type failures are already flashed on the session.
	// A stale response was discarded; the page shows the current state.
	_, err = h.analysis.AnalyzeSingle(c.UserContext(), sessionID(c), upload)
	if err != nil &&
		!errors.Is(err, services.ErrRequestFailed) &&
		!errors.Is(err, services.ErrUnsupportedFile) &&
		!errors.Is(err, services.ErrStaleResponse) {
		return sessionError(err)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleBatchAnalyze handles POST /batch/analyze
func (h *AnalyzeHandler) HandleBatchAnalyze(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	uploads, err := h.uploads.ReadBatch(form.File["files"])
	if err != nil {
		return h.reject(c, services.ViewBatch, err)
	}

	_, err = h.analysis.AnalyzeBatch(c.UserContext(), sessionID(c), uploads)
	if err != nil &&
		!errors.Is(err, services.ErrRequestFailed) &&
		!errors.Is(err, services.ErrNoFiles) &&
		!errors.Is(err, services.ErrStaleResponse) {
		return sessionError(err)
	}

	return c.Redirect("/batch", fiber.StatusSeeOther)
}

// reject flashes an upload that could not be read and sends the browser back
// to the view it came from.
func (h *AnalyzeHandler) reject(c *fiber.Ctx, view services.View, cause error) error {
	if _, err := h.analysis.RejectUpload(sessionID(c), view, cause); !errors.Is(err, cause) {
		return sessionError(err)
	}
	if view == services.ViewBatch {
		return c.Redirect("/batch", fiber.StatusSeeOther)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleExport handles GET /batch/export
func (h *AnalyzeHandler) HandleExport(c *fiber.Ctx) error {
	data, err := h.analysis.ExportBatch(c.UserContext(), sessionID(c))
	switch {
	case errors.Is(err, services.ErrNoResults), errors.Is(err, services.ErrRequestFailed):
		return c.Redirect("/batch", fiber.StatusSeeOther)
	case err != nil:
		return sessionError(err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, services.ExportFilename))
	return c.Send(data)
}

// HandleReset handles POST /reset
func (h *AnalyzeHandler) HandleReset(c *fiber.Ctx) error {
	if _, err := h.analysis.Reset(sessionID(c)); err != nil {
		return sessionError(err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
