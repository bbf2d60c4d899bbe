package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/domain"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/ledger"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/service"
)

// LedgerHandler exposes the review table: listing, bulk edits, row
// operations, reset, and the summary view.
type LedgerHandler struct {
	store *ledger.Store
	stats service.StatsService
}

// NewLedgerHandler creates a LedgerHandler.
func NewLedgerHandler(store *ledger.Store, stats service.StatsService) *LedgerHandler {
	return &LedgerHandler{store: store, stats: stats}
}

// List handles GET /api/v1/ledger.
func (h *LedgerHandler) List(c *gin.Context) {
	records := h.store.Records()
	RespondOK(c, gin.H{"records": records, "count": len(records)})
}

// columnEdit is the bulk column replacement payload. Values are positional
// and must align with the current ledger rows.
type columnEdit struct {
	Column string   `json:"column" binding:"required"`
	Values []string `json:"values" binding:"required"`
}

// ReplaceColumn handles PUT /api/v1/ledger/columns.
func (h *LedgerHandler) ReplaceColumn(c *gin.Context) {
	var edit columnEdit
	if err := c.ShouldBindJSON(&edit); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "expected {\"column\": ..., \"values\": [...]}")
		return
	}
	if err := h.store.ReplaceColumn(edit.Column, edit.Values); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"records": h.store.Records()})
}

// rowEdit is the manual row add/edit payload. Amounts accept numbers or
// strings; they are coerced at the ledger boundary.
type rowEdit struct {
	Date        string `json:"date"`
	Vendor      string `json:"vendor"`
	Category    string `json:"category"`
	Currency    string `json:"currency"`
	NetAmount   any    `json:"net_amount"`
	TaxAmount   any    `json:"tax_amount"`
	GrossAmount any    `json:"gross_amount"`
	Type        string `json:"type"`
}

func (e *rowEdit) toRecord() domain.Record {
	return domain.Record{
		Date:        e.Date,
		Vendor:      e.Vendor,
		Category:    e.Category,
		Currency:    e.Currency,
		NetAmount:   domain.CoerceAmount(e.NetAmount),
		TaxAmount:   domain.CoerceAmount(e.TaxAmount),
		GrossAmount: domain.CoerceAmount(e.GrossAmount),
		Type:        e.Type,
	}
}

// AddRow handles POST /api/v1/ledger/rows. Manual rows carry no source
// blob; the export bundle skips them while the spreadsheet keeps them.
func (h *LedgerHandler) AddRow(c *gin.Context) {
	var edit rowEdit
	if err := c.ShouldBindJSON(&edit); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid row payload")
		return
	}
	rec := h.store.Append(edit.toRecord(), nil)
	RespondCreated(c, rec)
}

// UpdateRow handles PUT /api/v1/ledger/rows/:id.
func (h *LedgerHandler) UpdateRow(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "row id must be a UUID")
		return
	}
	var edit rowEdit
	if err := c.ShouldBindJSON(&edit); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid row payload")
		return
	}
	rec, err := h.store.UpdateRow(id, edit.toRecord())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rec)
}

// DeleteRow handles DELETE /api/v1/ledger/rows/:id. The source blob is
// released together with the record.
func (h *LedgerHandler) DeleteRow(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "row id must be a UUID")
		return
	}
	if err := h.store.RemoveRow(id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}

// Reset handles POST /api/v1/ledger/reset. Records and blobs are cleared
// atomically.
func (h *LedgerHandler) Reset(c *gin.Context) {
	h.store.Reset()
	RespondOK(c, gin.H{"reset": true})
}

// Summary handles GET /api/v1/ledger/summary.
func (h *LedgerHandler) Summary(c *gin.Context) {
	RespondOK(c, h.stats.GetStats())
}
