package domain

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// IngestStatus is the terminal state of one document in an ingestion batch.
type IngestStatus string

const (
	IngestAccepted         IngestStatus = "accepted"
	IngestDuplicateFile    IngestStatus = "skipped_duplicate_file"
	IngestDuplicateContent IngestStatus = "skipped_duplicate_content"
	IngestFailed           IngestStatus = "failed"
)

// Language selects the interface language for prompts and category sets.
type Language string

const (
	LangPL Language = "PL"
	LangEN Language = "EN"
)

// Categories returns the expense category enumeration for a language.
// Unknown languages fall back to the English set.
func Categories(lang Language) []string {
	if lang == LangPL {
		return []string{"TOWAR", "MEDIA", "PALIWO", "USŁUGI", "INNE"}
	}
	return []string{"COGS", "OPEX", "CAPEX", "SERVICES", "OTHER"}
}

// FieldMissing is the sentinel stored for optional fields absent at append time.
const FieldMissing = "N/A"

// UnknownEntity is the canonical identity for empty or missing vendor names.
const UnknownEntity = "UNKNOWN_ENTITY"
