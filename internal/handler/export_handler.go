package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/export"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/ledger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the export package and the bare spreadsheet.
type ExportHandler struct {
	store         *ledger.Store
	defaultLocale string
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(store *ledger.Store, defaultLocale string) *ExportHandler {
	return &ExportHandler{store: store, defaultLocale: defaultLocale}
}

// Package handles GET /api/v1/export. The locale query parameter selects
// the decimal separator rendering ("pl" for commas, "en" for dots).
func (h *ExportHandler) Package(c *gin.Context) {
	asm := export.NewAssembler(c.DefaultQuery("locale", h.defaultLocale))
	data, err := asm.Bundle(h.store.Records(), h.store)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.PackageName+`"`)
	c.Data(http.StatusOK, "application/zip", data)
}

// Spreadsheet handles GET /api/v1/export/spreadsheet.
func (h *ExportHandler) Spreadsheet(c *gin.Context) {
	asm := export.NewAssembler(c.DefaultQuery("locale", h.defaultLocale))
	data, err := asm.Workbook(h.store.Records())
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.WorkbookName+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
