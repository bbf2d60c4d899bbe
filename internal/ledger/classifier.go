package ledger

import (
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/domain"
)

// Classifier decides whether a candidate document is new, a byte-identical
// resubmission, or a logical duplicate of previously recorded data. The
// check is two-stage: the fingerprint lookup is cheap and runs before the
// extraction model is invoked; the logical check runs on extracted data and
// catches the same invoice re-scanned with different bytes.
type Classifier struct {
	store *Store
	// matchVendor widens the logical key from (date, gross amount) to
	// (date, gross amount, normalized vendor).
	matchVendor bool
}

// NewClassifier creates a classifier bound to one ledger store.
func NewClassifier(store *Store, matchVendor bool) *Classifier {
	return &Classifier{store: store, matchVendor: matchVendor}
}

// FindPhysical reports whether the fingerprint already belongs to an
// accepted record.
func (c *Classifier) FindPhysical(hash string) (domain.Record, bool) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	return c.findPhysicalLocked(hash)
}

func (c *Classifier) findPhysicalLocked(hash string) (domain.Record, bool) {
	if hash == "" {
		return domain.Record{}, false
	}
	for i := range c.store.records {
		if c.store.records[i].ContentHash == hash {
			return c.store.records[i], true
		}
	}
	return domain.Record{}, false
}

// FindLogical reports whether an accepted record matches the candidate on
// the logical-duplicate key. Amounts are compared in cents after coercion,
// so string-typed cells left by human edits cannot produce false negatives.
// A record with an unknown date never matches: without a date there is no
// basis to claim the same underlying transaction.
func (c *Classifier) FindLogical(cand domain.Record) (domain.Record, bool) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	return c.findLogicalLocked(cand)
}

func (c *Classifier) findLogicalLocked(cand domain.Record) (domain.Record, bool) {
	if cand.Date == "" || cand.Date == domain.FieldMissing {
		return domain.Record{}, false
	}
	candCents := domain.AmountCents(domain.CoerceAmount(cand.GrossAmount))
	for i := range c.store.records {
		rec := &c.store.records[i]
		if rec.Date != cand.Date {
			continue
		}
		if domain.AmountCents(domain.CoerceAmount(rec.GrossAmount)) != candCents {
			continue
		}
		if c.matchVendor && rec.Vendor != cand.Vendor {
			continue
		}
		return *rec, true
	}
	return domain.Record{}, false
}

// Commit re-runs both duplicate checks and appends under a single store
// lock. The extraction round trip happens between the cheap pre-check and
// this call, so the re-check is what keeps two concurrent batches from
// accepting the same duplicate. On rejection it returns a
// *domain.DuplicateError naming the conflicting record.
func (c *Classifier) Commit(rec domain.Record, blob *domain.SourceBlob) (domain.Record, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if conflict, ok := c.findPhysicalLocked(rec.ContentHash); ok {
		return domain.Record{}, &domain.DuplicateError{Kind: domain.DuplicatePhysical, Conflict: conflict}
	}
	if conflict, ok := c.findLogicalLocked(rec); ok {
		return domain.Record{}, &domain.DuplicateError{Kind: domain.DuplicateLogical, Conflict: conflict}
	}
	return c.store.appendLocked(rec, blob), nil
}
