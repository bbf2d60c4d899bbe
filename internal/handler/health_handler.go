package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/ledger"
)

// HealthHandler serves liveness checks.
type HealthHandler struct {
	store *ledger.Store
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(store *ledger.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Liveness handles GET /healthz.
func (h *HealthHandler) Liveness(c *gin.Context) {
	RespondOK(c, gin.H{"status": "ok", "records": h.store.Len()})
}
