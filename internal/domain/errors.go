package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound      = errors.New("ledger record not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUnknownColumn       = errors.New("unknown ledger column")
	ErrColumnMismatch      = errors.New("column values do not align with ledger rows")
	ErrEmptyLedger         = errors.New("ledger is empty")
)

// DuplicateKind distinguishes the two classifier rejection modes.
type DuplicateKind string

const (
	// DuplicatePhysical means the exact same bytes were already ingested.
	DuplicatePhysical DuplicateKind = "physical"
	// DuplicateLogical means the extracted data matches an existing record
	// on the duplicate key fields.
	DuplicateLogical DuplicateKind = "logical"
)

// DuplicateError reports a classifier rejection. It is an outcome, not a
// failure: the batch continues and the caller surfaces it as a notice.
type DuplicateError struct {
	Kind     DuplicateKind
	Conflict Record
}

func (e *DuplicateError) Error() string {
	if e.Kind == DuplicatePhysical {
		return fmt.Sprintf("duplicate file: identical bytes already ingested as %q (%s)",
			e.Conflict.Vendor, e.Conflict.Date)
	}
	return fmt.Sprintf("duplicate content: %s / %s / %.2f already recorded",
		e.Conflict.Vendor, e.Conflict.Date, e.Conflict.GrossAmount)
}
