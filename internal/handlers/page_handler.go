package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thanhdanh14/CV-Analyzer/internal/i18n"
	"github.com/thanhdanh14/CV-Analyzer/internal/models"
	"github.com/thanhdanh14/CV-Analyzer/internal/services"
	"github.com/thanhdanh14/CV-Analyzer/internal/views"
)

type PageHandler struct {
	sessions services.SessionService
	analysis services.AnalysisService
}

func NewPageHandler(sessions services.SessionService, analysis services.AnalysisService) *PageHandler {
	return &PageHandler{
		sessions: sessions,
		analysis: analysis,
	}
}

// pageData is the binding of both page templates.
type pageData struct {
	Lang      i18n.Language
	Languages []i18n.Language
	Path      string
	Accept    string

	Session      *models.Session
	Config       models.ViewConfig
	Models       []models.Model
	CurrentModel *models.Model

	Scorecard *services.Scorecard
	Rows      []services.BatchRow
}

// HandleSingle handles GET /
func (h *PageHandler) HandleSingle(c *fiber.Ctx) error {
	data, err := h.load(c, services.ViewSingle)
	if err != nil {
		return err
	}

	data.Scorecard = services.BuildScorecard(data.Config, data.Session.Result)
	return c.Render("index", data, views.Layout)
}

// HandleBatch handles GET /batch
func (h *PageHandler) HandleBatch(c *fiber.Ctx) error {
	data, err := h.load(c, services.ViewBatch)
	if err != nil {
		return err
	}

	if len(data.Session.BatchResults) > 0 {
		data.Rows = services.BuildBatchRows(data.Config, data.Session.BatchResults)
	}
	return c.Render("batch", data, views.Layout)
}

func (h *PageHandler) load(c *fiber.Ctx, view services.View) (*pageData, error) {
	session, err := h.sessions.Enter(sessionID(c), view)
	if err != nil {
		return nil, sessionError(err)
	}

	// The model list is best effort; an empty picker still renders.
	list, _ := h.analysis.Models(c.UserContext())

	cfg := session.ViewConfig()
	return &pageData{
		Lang:         cfg.Language,
		Languages:    i18n.Supported,
		Path:         c.Path(),
		Accept:       services.AcceptAttribute,
		Session:      session,
		Config:       cfg,
		Models:       list,
		CurrentModel: models.FindModel(list, cfg.ModelID),
	}, nil
}
