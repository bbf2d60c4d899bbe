package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/domain"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/parser"
)

func TestBuildExtractionPrompt_CategoriesFollowLanguage(t *testing.T) {
	pl := parser.BuildExtractionPrompt(domain.LangPL)
	assert.Contains(t, pl, "TOWAR, MEDIA, PALIWO")
	assert.NotContains(t, pl, "COGS")

	en := parser.BuildExtractionPrompt(domain.LangEN)
	assert.Contains(t, en, "COGS, OPEX, CAPEX")
	assert.NotContains(t, en, "TOWAR")
}

func TestBuildExtractionPrompt_FixedSchema(t *testing.T) {
	p := parser.BuildExtractionPrompt(domain.LangEN)
	assert.Contains(t, p, `"gross_amount"`)
	assert.Contains(t, p, "YYYY-MM-DD")
	assert.Contains(t, p, "Return ONLY the JSON object")
}

func TestBuildInsightsPrompt(t *testing.T) {
	p := parser.BuildInsightsPrompt(domain.LangPL, "ORLEN  300.00\n")
	assert.Contains(t, p, "Language: PL")
	assert.Contains(t, p, "ORLEN  300.00")
}
