package service

import (
	"context"
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/config"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/domain"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/fingerprint"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/ledger"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/normalize"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/parser"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/port"
)

// IngestInput is one uploaded document.
type IngestInput struct {
	FileName    string
	ContentType string
	Data        []byte
}

// DocumentOutcome is the terminal per-document result of a batch.
type DocumentOutcome struct {
	FileName string              `json:"file_name"`
	Status   domain.IngestStatus `json:"status"`
	Record   *domain.Record      `json:"record,omitempty"`
	Notice   string              `json:"notice,omitempty"`
	Error    string              `json:"error,omitempty"`
	// RawText carries the unparseable model response on format failures,
	// so the offending text is available for inspection.
	RawText string `json:"raw_text,omitempty"`
}

// IngestService runs uploaded documents through fingerprinting, extraction,
// sanitization, normalization, duplicate classification, and ledger append.
type IngestService interface {
	ProcessBatch(ctx context.Context, lang domain.Language, inputs []IngestInput) []DocumentOutcome
}

type ingestService struct {
	classifier *ledger.Classifier
	extractor  port.DocumentParser
	cfg        *config.IngestConfig
}

// NewIngestService creates an IngestService bound to one ledger.
func NewIngestService(classifier *ledger.Classifier, extractor port.DocumentParser, cfg *config.IngestConfig) IngestService {
	return &ingestService{
		classifier: classifier,
		extractor:  extractor,
		cfg:        cfg,
	}
}

// ProcessBatch processes documents sequentially in upload order. One
// document's failure at any step is recorded against that document only;
// siblings always continue.
func (s *ingestService) ProcessBatch(ctx context.Context, lang domain.Language, inputs []IngestInput) []DocumentOutcome {
	outcomes := make([]DocumentOutcome, 0, len(inputs))
	for _, in := range inputs {
		outcome := s.processOne(ctx, lang, in)
		log.Printf("ingestService.ProcessBatch: %s -> %s", in.FileName, outcome.Status)
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func (s *ingestService) processOne(ctx context.Context, lang domain.Language, in IngestInput) DocumentOutcome {
	out := DocumentOutcome{FileName: in.FileName}

	contentType, err := s.validate(in)
	if err != nil {
		out.Status = domain.IngestFailed
		out.Error = err.Error()
		return out
	}

	// Stage 1: byte-identity check before spending an extraction call.
	hash := fingerprint.Sum(in.Data)
	if conflict, ok := s.classifier.FindPhysical(hash); ok {
		out.Status = domain.IngestDuplicateFile
		out.Notice = (&domain.DuplicateError{Kind: domain.DuplicatePhysical, Conflict: conflict}).Error()
		return out
	}

	parsed, err := s.extractor.Parse(ctx, port.ParseInput{
		FileBytes:   in.Data,
		ContentType: contentType,
		Language:    lang,
	})
	if err != nil {
		out.Status = domain.IngestFailed
		out.Error = err.Error()
		return out
	}

	fields, err := parser.ExtractObject(parsed.RawText)
	if err != nil {
		out.Status = domain.IngestFailed
		out.Error = err.Error()
		var formatErr *parser.FormatError
		if errors.As(err, &formatErr) {
			out.RawText = formatErr.Raw
		}
		return out
	}

	rec := buildRecord(fields, hash)

	// Stage 2: logical check on extracted data, re-done with the append
	// under one lock inside Commit.
	stored, err := s.classifier.Commit(rec, &domain.SourceBlob{Data: in.Data, Name: in.FileName})
	if err != nil {
		var dup *domain.DuplicateError
		if errors.As(err, &dup) {
			if dup.Kind == domain.DuplicatePhysical {
				out.Status = domain.IngestDuplicateFile
			} else {
				out.Status = domain.IngestDuplicateContent
			}
			out.Notice = dup.Error()
			return out
		}
		out.Status = domain.IngestFailed
		out.Error = err.Error()
		return out
	}

	out.Status = domain.IngestAccepted
	out.Record = &stored
	return out
}

// validate checks type and size and returns the MIME type to send to the
// extraction model. Magic bytes win over the client-declared content type.
func (s *ingestService) validate(in IngestInput) (string, error) {
	if int64(len(in.Data)) > s.cfg.MaxFileSizeMB*1024*1024 {
		return "", domain.ErrFileTooLarge
	}

	head := in.Data
	if len(head) > 512 {
		head = head[:512]
	}
	detected := http.DetectContentType(head)
	if _, ok := domain.AllowedContentTypes[detected]; ok {
		return detected, nil
	}

	// PDF detection can miss on scanner output with leading junk; fall back
	// to the declared type, then the extension.
	if _, ok := domain.AllowedContentTypes[in.ContentType]; ok {
		return in.ContentType, nil
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(in.FileName), "."))
	if ft, ok := domain.AllowedExtensions[ext]; ok {
		return domain.AllowedFileTypes[ft], nil
	}
	return "", domain.ErrUnsupportedFileType
}

// buildRecord converts sanitized extraction fields into a candidate record.
// The vendor is normalized here; remaining defaulting happens at the
// store's append boundary.
func buildRecord(fields map[string]any, hash string) domain.Record {
	return domain.Record{
		Date:        stringField(fields, "date"),
		Vendor:      normalize.Entity(stringField(fields, "vendor")),
		Category:    stringField(fields, "category"),
		Currency:    stringField(fields, "currency"),
		NetAmount:   domain.CoerceAmount(fields["net_amount"]),
		TaxAmount:   domain.CoerceAmount(fields["tax_amount"]),
		GrossAmount: domain.CoerceAmount(fields["gross_amount"]),
		ContentHash: hash,
		Type:        stringField(fields, "type"),
	}
}

func stringField(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
