package service

import (
	"sort"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/domain"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/ledger"
)

const topVendorLimit = 10

// StatsService provides aggregate statistics over the current ledger.
type StatsService interface {
	GetStats() *domain.Stats
}

type statsService struct {
	store *ledger.Store
}

// NewStatsService creates a StatsService reading from one ledger store.
func NewStatsService(store *ledger.Store) StatsService {
	return &statsService{store: store}
}

func (s *statsService) GetStats() *domain.Stats {
	records := s.store.Records()

	stats := &domain.Stats{
		MainCurrency:  "PLN",
		DocumentCount: len(records),
		ByCategory:    make(map[string]float64),
	}

	currencyCounts := make(map[string]int)
	vendorGross := make(map[string]float64)

	for i := range records {
		rec := &records[i]
		gross := domain.CoerceAmount(rec.GrossAmount)
		stats.TotalGross += gross
		stats.TotalTax += domain.CoerceAmount(rec.TaxAmount)
		stats.ByCategory[rec.Category] += gross
		vendorGross[rec.Vendor] += gross
		currencyCounts[rec.Currency]++
	}
	stats.TotalGross = domain.RoundAmount(stats.TotalGross)
	stats.TotalTax = domain.RoundAmount(stats.TotalTax)
	for cat, sum := range stats.ByCategory {
		stats.ByCategory[cat] = domain.RoundAmount(sum)
	}
	stats.EntityCount = len(vendorGross)

	if len(currencyCounts) > 0 {
		stats.MainCurrency = modeCurrency(currencyCounts)
	}
	stats.TopVendors = topVendors(vendorGross, topVendorLimit)

	return stats
}

// modeCurrency returns the most frequent currency; ties break
// lexicographically so the result is deterministic.
func modeCurrency(counts map[string]int) string {
	best, bestCount := "", -1
	for curr, count := range counts {
		if count > bestCount || (count == bestCount && curr < best) {
			best, bestCount = curr, count
		}
	}
	return best
}

// topVendors returns vendor gross sums sorted descending, capped at limit.
func topVendors(vendorGross map[string]float64, limit int) []domain.VendorSpend {
	out := make([]domain.VendorSpend, 0, len(vendorGross))
	for vendor, gross := range vendorGross {
		out = append(out, domain.VendorSpend{Vendor: vendor, Gross: domain.RoundAmount(gross)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Gross != out[j].Gross {
			return out[i].Gross > out[j].Gross
		}
		return out[i].Vendor < out[j].Vendor
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
