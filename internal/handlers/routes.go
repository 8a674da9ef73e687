package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Pages    *PageHandler
	Analyze  *AnalyzeHandler
	Settings *SettingsHandler
	Session  fiber.Handler
}

func RegisterRoutes(app *fiber.App, h Handlers) {
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	web := app.Group("/", h.Session)
	web.Get("/", h.Pages.HandleSingle)
	web.Get("/batch", h.Pages.HandleBatch)
	web.Post("/analyze", h.Analyze.HandleAnalyze)
	web.Post("/reset", h.Analyze.HandleReset)
	web.Post("/batch/analyze", h.Analyze.HandleBatchAnalyze)
	web.Get("/batch/export", h.Analyze.HandleExport)
	web.Post("/settings/language", h.Settings.HandleLanguage)
	web.Post("/settings/model", h.Settings.HandleModel)
	web.Post("/settings/job-description", h.Settings.HandleJobDescription)
}

// ErrorHandler renders every unhandled error as {error, code}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
