// Package ledger holds the authoritative in-memory table of accepted
// document records and their source blobs, plus the duplicate classifier
// that guards admission into it.
package ledger

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/domain"
)

// EditableColumns lists the ledger columns that accept bulk edits,
// in display order.
var EditableColumns = []string{
	"date", "vendor", "category", "currency",
	"net_amount", "tax_amount", "gross_amount", "type",
}

// Store is the process-wide ledger: an ordered collection of accepted
// records plus a side table of original document bytes keyed by record ID.
// It is owned by one session; the mutex makes concurrent handler access
// and the classifier's check-then-act commits safe.
type Store struct {
	mu      sync.RWMutex
	records []domain.Record
	blobs   map[uuid.UUID]domain.SourceBlob
}

// NewStore creates an empty ledger store.
func NewStore() *Store {
	return &Store{
		blobs: make(map[uuid.UUID]domain.SourceBlob),
	}
}

// Append assigns a fresh ID, defaults missing fields, and stores the record
// together with its source blob. Append never fails; callers are responsible
// for running the duplicate classifier first (or using Classifier.Commit,
// which does both under one lock). A nil blob stores the record only, which
// is how manually added review rows enter the ledger.
func (s *Store) Append(rec domain.Record, blob *domain.SourceBlob) domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendLocked(rec, blob)
}

func (s *Store) appendLocked(rec domain.Record, blob *domain.SourceBlob) domain.Record {
	rec.ID = uuid.New()
	applyDefaults(&rec)
	s.records = append(s.records, rec)
	if blob != nil {
		s.blobs[rec.ID] = *blob
	}
	return rec
}

// applyDefaults fills absent optional fields with the sentinel and rounds
// amounts, so downstream aggregation never special-cases missing columns.
func applyDefaults(rec *domain.Record) {
	if rec.Date == "" {
		rec.Date = domain.FieldMissing
	}
	if rec.Vendor == "" {
		rec.Vendor = domain.UnknownEntity
	}
	if rec.Category == "" {
		rec.Category = domain.FieldMissing
	}
	if rec.Currency == "" {
		rec.Currency = domain.FieldMissing
	}
	if rec.Type == "" {
		rec.Type = domain.FieldMissing
	}
	rec.NetAmount = domain.RoundAmount(rec.NetAmount)
	rec.TaxAmount = domain.RoundAmount(rec.TaxAmount)
	rec.GrossAmount = domain.RoundAmount(rec.GrossAmount)
}

// Records returns a copy of all records in ingestion order.
func (s *Store) Records() []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records in the ledger.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Blob returns the source blob for a record ID.
func (s *Store) Blob(id uuid.UUID) (domain.SourceBlob, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[id]
	return blob, ok
}

// ReplaceColumn mirrors a human-edited table column back into canonical
// storage. Values are positional: values[i] belongs to the i-th ledger row,
// so row-to-ID correspondence is preserved. Amount columns go through the
// shared coercion boundary; other columns are stored verbatim.
func (s *Store) ReplaceColumn(column string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !isEditableColumn(column) {
		return domain.ErrUnknownColumn
	}
	if len(values) != len(s.records) {
		return domain.ErrColumnMismatch
	}

	for i, val := range values {
		rec := &s.records[i]
		switch column {
		case "date":
			rec.Date = val
		case "vendor":
			rec.Vendor = val
		case "category":
			rec.Category = val
		case "currency":
			rec.Currency = val
		case "net_amount":
			rec.NetAmount = domain.CoerceAmount(val)
		case "tax_amount":
			rec.TaxAmount = domain.CoerceAmount(val)
		case "gross_amount":
			rec.GrossAmount = domain.CoerceAmount(val)
		case "type":
			rec.Type = val
		}
	}
	return nil
}

func isEditableColumn(column string) bool {
	for _, c := range EditableColumns {
		if c == column {
			return true
		}
	}
	return false
}

// UpdateRow replaces the editable fields of one record. The ID and the
// content hash are immutable and survive the edit.
func (s *Store) UpdateRow(id uuid.UUID, edit domain.Record) (domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		edit.ID = id
		edit.ContentHash = s.records[i].ContentHash
		applyDefaults(&edit)
		s.records[i] = edit
		return edit, nil
	}
	return domain.Record{}, domain.ErrRecordNotFound
}

// RemoveRow deletes a record and releases its source blob.
func (s *Store) RemoveRow(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		s.records = append(s.records[:i], s.records[i+1:]...)
		delete(s.blobs, id)
		return nil
	}
	return domain.ErrRecordNotFound
}

// Reset clears records and blobs together under one lock, so no caller can
// observe one collection cleared and the other not.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.blobs = make(map[uuid.UUID]domain.SourceBlob)
}
