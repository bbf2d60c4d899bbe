package parser

import (
	"strings"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/domain"
)

// BuildExtractionPrompt returns the extraction instruction for one financial
// document. The field schema is fixed; only the category enumeration varies
// with the interface language.
func BuildExtractionPrompt(lang domain.Language) string {
	categories := strings.Join(domain.Categories(lang), ", ")

	return `Act as a Financial Auditor. Extract data from the provided document (invoice or receipt) into JSON.

Use ONLY these categories: ` + categories + `.

Format:
{"date":"YYYY-MM-DD", "vendor":"Name", "category":"...", "currency":"Code", "net_amount":0.0, "tax_amount":0.0, "gross_amount":0.0, "type":"Invoice"}

Rules:
- Normalize the date to YYYY-MM-DD. If no date is readable, use an empty string.
- Amounts are plain numbers with a dot decimal separator, no thousands separators, no currency symbols.
- "currency" is the ISO code printed on the document (e.g. PLN, EUR, USD).

Return ONLY the JSON object. No commentary.`
}

// BuildInsightsPrompt returns the instruction for the spend-insights call.
// vendorSummary is a plain-text per-vendor gross spend table.
func BuildInsightsPrompt(lang domain.Language, vendorSummary string) string {
	return "Act as a CFO. Language: " + string(lang) +
		". Analyze this spend:\n" + vendorSummary +
		"\nGive 3 professional business insights."
}
