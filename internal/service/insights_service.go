package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/domain"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/ledger"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/parser"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/port"
)

// InsightsService asks the text model for business insights over the
// current spend distribution.
type InsightsService interface {
	Generate(ctx context.Context, lang domain.Language) (string, error)
}

type insightsService struct {
	store *ledger.Store
	model port.TextModel
}

// NewInsightsService creates an InsightsService reading from one ledger store.
func NewInsightsService(store *ledger.Store, model port.TextModel) InsightsService {
	return &insightsService{store: store, model: model}
}

func (s *insightsService) Generate(ctx context.Context, lang domain.Language) (string, error) {
	records := s.store.Records()
	if len(records) == 0 {
		return "", domain.ErrEmptyLedger
	}

	prompt := parser.BuildInsightsPrompt(lang, vendorSummary(records))
	text, err := s.model.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generating insights: %w", err)
	}
	return text, nil
}

// vendorSummary renders per-vendor gross spend as plain text lines,
// largest first.
func vendorSummary(records []domain.Record) string {
	sums := make(map[string]float64)
	for i := range records {
		sums[records[i].Vendor] += domain.CoerceAmount(records[i].GrossAmount)
	}

	vendors := make([]string, 0, len(sums))
	for vendor := range sums {
		vendors = append(vendors, vendor)
	}
	sort.Slice(vendors, func(i, j int) bool {
		if sums[vendors[i]] != sums[vendors[j]] {
			return sums[vendors[i]] > sums[vendors[j]]
		}
		return vendors[i] < vendors[j]
	})

	var b strings.Builder
	for _, vendor := range vendors {
		fmt.Fprintf(&b, "%s  %.2f\n", vendor, sums[vendor])
	}
	return b.String()
}
