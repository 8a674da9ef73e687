package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/thanhdanh14/CV-Analyzer/internal/i18n"
	"github.com/thanhdanh14/CV-Analyzer/internal/services"
)

type SettingsHandler struct {
	sessions services.SessionService
}

func NewSettingsHandler(sessions services.SessionService) *SettingsHandler {
	return &SettingsHandler{
		sessions: sessions,
	}
}

// HandleLanguage handles POST /settings/language
func (h *SettingsHandler) HandleLanguage(c *fiber.Ctx) error {
	lang, ok := i18n.Parse(c.FormValue("language"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "language must be one of vi, ko",
		})
	}

	if _, err := h.sessions.SetLanguage(sessionID(c), lang); err != nil {
		return sessionError(err)
	}
	return c.Redirect(redirectTarget(c), fiber.StatusSeeOther)
}

// HandleModel handles POST /settings/model
func (h *SettingsHandler) HandleModel(c *fiber.Ctx) error {
	modelID := strings.TrimSpace(c.FormValue("model"))
	if modelID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "model is required",
		})
	}

	if _, err := h.sessions.SetModel(sessionID(c), modelID); err != nil {
		return sessionError(err)
	}
	return c.Redirect(redirectTarget(c), fiber.StatusSeeOther)
}

// HandleJobDescription handles POST /settings/job-description. An empty
// value or the delete button removes the JD.
func (h *SettingsHandler) HandleJobDescription(c *fiber.Ctx) error {
	jd := c.FormValue("job_description")
	if c.FormValue("delete") != "" {
		jd = ""
	}

	if _, err := h.sessions.SetJobDescription(sessionID(c), jd); err != nil {
		return sessionError(err)
	}
	return c.Redirect(redirectTarget(c), fiber.StatusSeeOther)
}
