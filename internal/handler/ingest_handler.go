package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/domain"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/service"
)

// IngestHandler accepts document batches for ingestion.
type IngestHandler struct {
	svc         service.IngestService
	defaultLang domain.Language
}

// NewIngestHandler creates an IngestHandler.
func NewIngestHandler(svc service.IngestService, defaultLang domain.Language) *IngestHandler {
	return &IngestHandler{svc: svc, defaultLang: defaultLang}
}

// Ingest handles POST /api/v1/documents. It accepts a multipart form with
// one or more "files" parts plus an optional "lang" field, runs the batch
// through the ingestion pipeline, and returns one outcome per document.
// The response is 200 even when individual documents fail: per-document
// outcomes carry their own status.
func (h *IngestHandler) Ingest(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_MULTIPART", "request is not valid multipart form data")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		RespondError(c, http.StatusBadRequest, "NO_FILES", "no files in request; use the \"files\" field")
		return
	}

	lang := parseLanguage(c.PostForm("lang"), h.defaultLang)

	inputs := make([]service.IngestInput, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not open uploaded file "+fh.Filename)
			return
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file "+fh.Filename)
			return
		}
		inputs = append(inputs, service.IngestInput{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	outcomes := h.svc.ProcessBatch(c.Request.Context(), lang, inputs)
	RespondOK(c, gin.H{"outcomes": outcomes})
}

func parseLanguage(raw string, fallback domain.Language) domain.Language {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PL":
		return domain.LangPL
	case "EN":
		return domain.LangEN
	default:
		return fallback
	}
}
