package domain

import (
	"github.com/google/uuid"
)

// Record represents one accepted financial document in the ledger.
type Record struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Vendor      string    `json:"vendor"`
	Category    string    `json:"category"`
	Currency    string    `json:"currency"`
	NetAmount   float64   `json:"net_amount"`
	TaxAmount   float64   `json:"tax_amount"`
	GrossAmount float64   `json:"gross_amount"`
	ContentHash string    `json:"-"`
	Type        string    `json:"type"`
}

// SourceBlob holds the original uploaded bytes and filename for a record.
// Blobs are owned by the ledger store for the lifetime of the session and
// are released only on reset or row removal.
type SourceBlob struct {
	Data []byte
	Name string
}

// Stats holds the aggregate view of the current ledger.
type Stats struct {
	TotalGross    float64            `json:"total_gross"`
	TotalTax      float64            `json:"total_tax"`
	MainCurrency  string             `json:"main_currency"`
	EntityCount   int                `json:"entity_count"`
	DocumentCount int                `json:"document_count"`
	ByCategory    map[string]float64 `json:"by_category"`
	TopVendors    []VendorSpend      `json:"top_vendors"`
}

// VendorSpend is one vendor's total gross spend.
type VendorSpend struct {
	Vendor string  `json:"vendor"`
	Gross  float64 `json:"gross"`
}
