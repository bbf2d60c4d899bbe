package port

import (
	"context"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/domain"
)

// ParseInput carries one document to the extraction model.
type ParseInput struct {
	FileBytes   []byte
	ContentType string
	Language    domain.Language
}

// ParseOutput is the raw result of an extraction call. RawText is the
// model's free-form response; it is not guaranteed to be clean JSON and
// must go through the response sanitizer before use.
type ParseOutput struct {
	RawText    string
	ModelUsed  string
	PromptUsed string
}

// DocumentParser abstracts the external document-understanding model.
type DocumentParser interface {
	Parse(ctx context.Context, input ParseInput) (*ParseOutput, error)
}

// TextModel abstracts a plain text completion call, used for spend insights.
type TextModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
