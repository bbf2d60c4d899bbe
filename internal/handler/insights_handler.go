package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/domain"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/parser"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/service"
)

// InsightsHandler exposes the AI spend-insights endpoint.
type InsightsHandler struct {
	svc         service.InsightsService
	defaultLang domain.Language
}

// NewInsightsHandler creates an InsightsHandler.
func NewInsightsHandler(svc service.InsightsService, defaultLang domain.Language) *InsightsHandler {
	return &InsightsHandler{svc: svc, defaultLang: defaultLang}
}

// Generate handles POST /api/v1/ledger/insights.
func (h *InsightsHandler) Generate(c *gin.Context) {
	var body struct {
		Lang string `json:"lang"`
	}
	// An empty body is fine; the default language applies.
	_ = c.ShouldBindJSON(&body)
	lang := parseLanguage(body.Lang, h.defaultLang)

	text, err := h.svc.Generate(c.Request.Context(), lang)
	if err != nil {
		var rateLimited *parser.RateLimitError
		var transport *parser.TransportError
		switch {
		case errors.As(err, &rateLimited):
			RespondError(c, http.StatusTooManyRequests, "MODEL_RATE_LIMITED", "the model is rate limited; try again later")
		case errors.As(err, &transport):
			RespondError(c, http.StatusBadGateway, "MODEL_UNAVAILABLE", "the model call failed")
		default:
			HandleError(c, err)
		}
		return
	}
	RespondOK(c, gin.H{"insights": text})
}
