// Package export serializes the current ledger view into a spreadsheet and
// a downloadable package bundling the original source documents.
package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/domain"
)

const (
	// WorkbookName is the spreadsheet entry inside the package.
	WorkbookName = "Audit_Report.xlsx"
	// SourceDir is the package subdirectory holding original files.
	SourceDir = "Source_Documents"
	// PackageName is the suggested download filename for the bundle.
	PackageName = "Finance_Audit_Package.zip"

	ledgerSheet   = "Ledger"
	vendorSheet   = "By Vendor"
	categorySheet = "By Category"
)

var ledgerHeader = []string{
	"date", "vendor", "category", "currency",
	"net_amount", "tax_amount", "gross_amount", "type",
}

// BlobSource resolves a record ID to its stored source blob.
type BlobSource interface {
	Blob(id uuid.UUID) (domain.SourceBlob, bool)
}

// Assembler renders ledger exports. The locale selects the decimal
// separator for amount columns: "pl" renders comma-decimal strings,
// anything else renders plain numbers.
type Assembler struct {
	locale string
}

// NewAssembler creates an Assembler for the given locale.
func NewAssembler(locale string) *Assembler {
	return &Assembler{locale: strings.ToLower(locale)}
}

// Workbook builds the spreadsheet: the full ledger plus per-vendor and
// per-category gross summaries.
func (a *Assembler) Workbook(records []domain.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", ledgerSheet); err != nil {
		return nil, fmt.Errorf("renaming ledger sheet: %w", err)
	}
	if err := a.writeLedgerSheet(f, records); err != nil {
		return nil, err
	}
	if err := a.writeSummarySheet(f, vendorSheet, "vendor", groupGross(records, func(r *domain.Record) string { return r.Vendor })); err != nil {
		return nil, err
	}
	if err := a.writeSummarySheet(f, categorySheet, "category", groupGross(records, func(r *domain.Record) string { return r.Category })); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (a *Assembler) writeLedgerSheet(f *excelize.File, records []domain.Record) error {
	for col, name := range ledgerHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(ledgerSheet, cell, name); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i := range records {
		rec := &records[i]
		row := i + 2
		values := []any{
			rec.Date, rec.Vendor, rec.Category, rec.Currency,
			a.amountCell(rec.NetAmount),
			a.amountCell(rec.TaxAmount),
			a.amountCell(rec.GrossAmount),
			rec.Type,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(ledgerSheet, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", row, err)
			}
		}
	}
	return nil
}

func (a *Assembler) writeSummarySheet(f *excelize.File, sheet, keyHeader string, groups []domain.VendorSpend) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}
	if err := f.SetCellValue(sheet, "A1", keyHeader); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "B1", "gross_amount"); err != nil {
		return err
	}
	for i, g := range groups {
		row := i + 2
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), g.Vendor); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), a.amountCell(g.Gross)); err != nil {
			return err
		}
	}
	return nil
}

// amountCell renders an amount for a spreadsheet cell honoring the locale.
func (a *Assembler) amountCell(v float64) any {
	if a.locale == "pl" {
		return FormatAmount(v, "pl")
	}
	return domain.RoundAmount(v)
}

// FormatAmount renders an amount with the locale's decimal separator.
func FormatAmount(v float64, locale string) string {
	s := fmt.Sprintf("%.2f", domain.RoundAmount(v))
	if strings.ToLower(locale) == "pl" {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s
}

// Bundle builds the export package: the workbook plus every source blob
// still referenced by a surviving record. Rows without a stored blob stay
// in the spreadsheet but contribute no file; a missing blob is never an
// error.
func (a *Assembler) Bundle(records []domain.Record, blobs BlobSource) ([]byte, error) {
	workbook, err := a.Workbook(records)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create(WorkbookName)
	if err != nil {
		return nil, fmt.Errorf("creating workbook entry: %w", err)
	}
	if _, err := w.Write(workbook); err != nil {
		return nil, fmt.Errorf("writing workbook entry: %w", err)
	}

	seen := make(map[string]bool)
	for i := range records {
		rec := &records[i]
		blob, ok := blobs.Blob(rec.ID)
		if !ok {
			continue
		}
		name := sourceFileName(rec, blob.Name)
		if seen[name] {
			ext := filepath.Ext(name)
			name = strings.TrimSuffix(name, ext) + "_" + rec.ID.String()[:8] + ext
		}
		seen[name] = true

		fw, err := zw.Create(SourceDir + "/" + name)
		if err != nil {
			return nil, fmt.Errorf("creating source entry %s: %w", name, err)
		}
		if _, err := fw.Write(blob.Data); err != nil {
			return nil, fmt.Errorf("writing source entry %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing package: %w", err)
	}
	return buf.Bytes(), nil
}

// sourceFileName builds the deterministic bundle name
// {date}_{vendor}_{category}_{gross}.{ext} with spaces collapsed to
// underscores. The extension comes from the original filename, defaulting
// to .pdf.
func sourceFileName(rec *domain.Record, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".pdf"
	}
	name := fmt.Sprintf("%s_%s_%s_%.2f", rec.Date, rec.Vendor, rec.Category, rec.GrossAmount)
	name = strings.ReplaceAll(name, " ", "_")
	name = sanitizeName(name)
	return name + ext
}

// sanitizeName strips path separators and other characters that are unsafe
// in archive member names.
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, name)
}

// groupGross sums gross amounts by a key, sorted descending then by key.
func groupGross(records []domain.Record, key func(*domain.Record) string) []domain.VendorSpend {
	sums := make(map[string]float64)
	for i := range records {
		sums[key(&records[i])] += domain.CoerceAmount(records[i].GrossAmount)
	}
	out := make([]domain.VendorSpend, 0, len(sums))
	for k, v := range sums {
		out = append(out, domain.VendorSpend{Vendor: k, Gross: domain.RoundAmount(v)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Gross != out[j].Gross {
			return out[i].Gross > out[j].Gross
		}
		return out[i].Vendor < out[j].Vendor
	})
	return out
}
