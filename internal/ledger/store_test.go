package ledger_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/domain"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/ledger"
)

func record(date, vendor string, gross float64, hash string) domain.Record {
	return domain.Record{
		Date:        date,
		Vendor:      vendor,
		Category:    "OPEX",
		Currency:    "PLN",
		GrossAmount: gross,
		ContentHash: hash,
	}
}

func TestStore_AppendAssignsIDAndDefaults(t *testing.T) {
	store := ledger.NewStore()

	rec := store.Append(domain.Record{GrossAmount: 10.999}, &domain.SourceBlob{Data: []byte("x"), Name: "a.pdf"})

	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, domain.FieldMissing, rec.Date)
	assert.Equal(t, domain.UnknownEntity, rec.Vendor)
	assert.Equal(t, domain.FieldMissing, rec.Category)
	assert.Equal(t, domain.FieldMissing, rec.Currency)
	assert.Equal(t, domain.FieldMissing, rec.Type)
	assert.InDelta(t, 11.0, rec.GrossAmount, 1e-9)

	blob, ok := store.Blob(rec.ID)
	require.True(t, ok)
	assert.Equal(t, "a.pdf", blob.Name)
}

func TestStore_AppendUniqueIDs(t *testing.T) {
	store := ledger.NewStore()
	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 50; i++ {
		rec := store.Append(record("2024-01-01", "ACME", float64(i), ""), nil)
		assert.False(t, seen[rec.ID])
		seen[rec.ID] = true
	}
	assert.Equal(t, 50, store.Len())
}

func TestStore_AppendWithoutBlob(t *testing.T) {
	store := ledger.NewStore()
	rec := store.Append(record("2024-01-01", "ACME", 5, ""), nil)
	_, ok := store.Blob(rec.ID)
	assert.False(t, ok)
}

func TestStore_RecordsReturnsCopyInOrder(t *testing.T) {
	store := ledger.NewStore()
	store.Append(record("2024-01-01", "FIRST", 1, ""), nil)
	store.Append(record("2024-01-02", "SECOND", 2, ""), nil)

	records := store.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "FIRST", records[0].Vendor)
	assert.Equal(t, "SECOND", records[1].Vendor)

	// Mutating the snapshot must not touch canonical storage.
	records[0].Vendor = "HACKED"
	assert.Equal(t, "FIRST", store.Records()[0].Vendor)
}

func TestStore_ReplaceColumn(t *testing.T) {
	store := ledger.NewStore()
	a := store.Append(record("2024-01-01", "ACME", 10, ""), nil)
	b := store.Append(record("2024-01-02", "ORLEN", 20, ""), nil)

	err := store.ReplaceColumn("gross_amount", []string{"11,50", "not a number"})
	require.NoError(t, err)

	records := store.Records()
	assert.InDelta(t, 11.50, records[0].GrossAmount, 1e-9)
	assert.InDelta(t, 0, records[1].GrossAmount, 1e-9)

	// Row-to-ID correspondence is positional and preserved.
	assert.Equal(t, a.ID, records[0].ID)
	assert.Equal(t, b.ID, records[1].ID)
}

func TestStore_ReplaceColumnVerbatimText(t *testing.T) {
	store := ledger.NewStore()
	store.Append(record("2024-01-01", "ACME", 10, ""), nil)

	require.NoError(t, store.ReplaceColumn("vendor", []string{"acme renamed"}))
	assert.Equal(t, "acme renamed", store.Records()[0].Vendor)
}

func TestStore_ReplaceColumnValidation(t *testing.T) {
	store := ledger.NewStore()
	store.Append(record("2024-01-01", "ACME", 10, ""), nil)

	assert.ErrorIs(t, store.ReplaceColumn("id", []string{"x"}), domain.ErrUnknownColumn)
	assert.ErrorIs(t, store.ReplaceColumn("vendor", []string{"a", "b"}), domain.ErrColumnMismatch)
}

func TestStore_UpdateRowKeepsIDAndHash(t *testing.T) {
	store := ledger.NewStore()
	orig := store.Append(record("2024-01-01", "ACME", 10, "hash-1"), nil)

	updated, err := store.UpdateRow(orig.ID, record("2024-02-02", "ORLEN", 99, "ignored"))
	require.NoError(t, err)
	assert.Equal(t, orig.ID, updated.ID)
	assert.Equal(t, "hash-1", updated.ContentHash)
	assert.Equal(t, "ORLEN", updated.Vendor)

	_, err = store.UpdateRow(uuid.New(), record("2024-02-02", "X", 1, ""))
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestStore_RemoveRowReleasesBlob(t *testing.T) {
	store := ledger.NewStore()
	rec := store.Append(record("2024-01-01", "ACME", 10, ""), &domain.SourceBlob{Data: []byte("x"), Name: "a.pdf"})

	require.NoError(t, store.RemoveRow(rec.ID))
	assert.Equal(t, 0, store.Len())
	_, ok := store.Blob(rec.ID)
	assert.False(t, ok)

	assert.ErrorIs(t, store.RemoveRow(rec.ID), domain.ErrRecordNotFound)
}

func TestStore_ResetClearsRecordsAndBlobs(t *testing.T) {
	store := ledger.NewStore()
	classifier := ledger.NewClassifier(store, false)
	rec := store.Append(record("2024-01-01", "ACME", 10, "hash-1"), &domain.SourceBlob{Data: []byte("x"), Name: "a.pdf"})

	store.Reset()

	assert.Equal(t, 0, store.Len())
	_, ok := store.Blob(rec.ID)
	assert.False(t, ok)

	// A duplicate check against previously appended data never fires.
	_, dup := classifier.FindPhysical("hash-1")
	assert.False(t, dup)
	_, dup = classifier.FindLogical(record("2024-01-01", "ACME", 10, ""))
	assert.False(t, dup)
}
