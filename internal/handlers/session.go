package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/thanhdanh14/CV-Analyzer/internal/i18n"
	"github.com/thanhdanh14/CV-Analyzer/internal/repositories"
	"github.com/thanhdanh14/CV-Analyzer/internal/services"
)

const (
	SessionCookie = "cv_session"
	sessionKey    = "session_id"
)

// SessionMiddleware resolves the session cookie, starting a new session when
// it is missing, malformed or expired. New sessions take their language from
// Accept-Language.
func SessionMiddleware(sessions services.SessionService, defaultLang i18n.Language, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, err := uuid.Parse(c.Cookies(SessionCookie)); err == nil {
			if _, err := sessions.Get(id); err == nil {
				c.Locals(sessionKey, id)
				return c.Next()
			} else if !errors.Is(err, repositories.ErrSessionNotFound) {
				return err
			}
		}

		lang := i18n.Match(c.Get(fiber.HeaderAcceptLanguage), defaultLang)
		session, err := sessions.Start(lang)
		if err != nil {
			log.Printf("❌ Failed to start session: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "failed to start session")
		}

		c.Cookie(&fiber.Cookie{
			Name:     SessionCookie,
			Value:    session.ID.String(),
			Path:     "/",
			MaxAge:   int(ttl.Seconds()),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		c.Locals(sessionKey, session.ID)

		return c.Next()
	}
}

func sessionID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(sessionKey).(uuid.UUID)
	return id
}

// sessionError maps errors shared by every session-scoped handler.
func sessionError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrSessionNotFound):
		return fiber.NewError(fiber.StatusGone, "session expired, reload the page")
	case errors.Is(err, services.ErrAnalysisInProgress):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return err
	}
}

// redirectTarget returns the page a settings form came from, limited to the
// two views.
func redirectTarget(c *fiber.Ctx) string {
	if c.FormValue("redirect") == "/batch" {
		return "/batch"
	}
	return "/"
}
