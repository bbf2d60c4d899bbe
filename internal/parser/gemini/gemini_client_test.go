package gemini_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/config"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/domain"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/parser"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/parser/gemini"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/port"
)

func testConfig() *config.ParserConfig {
	return &config.ParserConfig{
		APIKey:          "test-key",
		DefaultModel:    "gemini-2.0-flash",
		TimeoutSecs:     5,
		MaxOutputTokens: 512,
	}
}

func candidateResponse(text string) string {
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{
				"content": map[string]any{
					"parts": []map[string]any{{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	})
	return string(body)
}

func TestParse_SendsInlineDocumentAndPrompt(t *testing.T) {
	var gotHeader string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(candidateResponse(`{"vendor": "ACME"}`)))
	}))
	defer server.Close()

	client := gemini.NewClientWithEndpoint(testConfig(), server.URL)
	out, err := client.Parse(context.Background(), port.ParseInput{
		FileBytes:   []byte("fake pdf bytes"),
		ContentType: "application/pdf",
		Language:    domain.LangEN,
	})
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotHeader)
	assert.Equal(t, `{"vendor": "ACME"}`, out.RawText)
	assert.Equal(t, "gemini-2.0-flash", out.ModelUsed)
	assert.Contains(t, out.PromptUsed, "Financial Auditor")

	contents := gotBody["contents"].([]any)
	require.Len(t, contents, 1)
	parts := contents[0].(map[string]any)["parts"].([]any)
	require.Len(t, parts, 2)

	inline := parts[0].(map[string]any)["inline_data"].(map[string]any)
	assert.Equal(t, "application/pdf", inline["mime_type"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("fake pdf bytes")), inline["data"])
	assert.Equal(t, out.PromptUsed, parts[1].(map[string]any)["text"])

	genCfg := gotBody["generationConfig"].(map[string]any)
	assert.Equal(t, float64(512), genCfg["maxOutputTokens"])
}

func TestParse_RejectsUnsupportedContentType(t *testing.T) {
	client := gemini.NewClientWithEndpoint(testConfig(), "http://unused.invalid")
	_, err := client.Parse(context.Background(), port.ParseInput{
		FileBytes:   []byte("bytes"),
		ContentType: "text/plain",
		Language:    domain.LangEN,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content type")
}

func TestParse_RateLimitedMapsTo429Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": "quota exceeded"}`))
	}))
	defer server.Close()

	client := gemini.NewClientWithEndpoint(testConfig(), server.URL)
	_, err := client.Parse(context.Background(), port.ParseInput{
		FileBytes:   []byte("bytes"),
		ContentType: "image/jpeg",
		Language:    domain.LangPL,
	})
	require.Error(t, err)

	var rateErr *parser.RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, "gemini", rateErr.Provider)
	assert.Equal(t, 30*time.Second, rateErr.RetryAfter)
}

func TestParse_ServerErrorMapsToTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "internal"}`))
	}))
	defer server.Close()

	client := gemini.NewClientWithEndpoint(testConfig(), server.URL)
	_, err := client.Parse(context.Background(), port.ParseInput{
		FileBytes:   []byte("bytes"),
		ContentType: "image/png",
		Language:    domain.LangEN,
	})
	require.Error(t, err)

	var transportErr *parser.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusInternalServerError, transportErr.StatusCode)
}

func TestParse_EmptyCandidatesIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := gemini.NewClientWithEndpoint(testConfig(), server.URL)
	_, err := client.Parse(context.Background(), port.ParseInput{
		FileBytes:   []byte("bytes"),
		ContentType: "application/pdf",
		Language:    domain.LangEN,
	})
	require.Error(t, err)

	var transportErr *parser.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Contains(t, transportErr.Error(), "no candidates")
}

func TestGenerate_ReturnsCandidateText(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(candidateResponse("Spend less on fuel.")))
	}))
	defer server.Close()

	client := gemini.NewClientWithEndpoint(testConfig(), server.URL)
	text, err := client.Generate(context.Background(), "Summarize spending")
	require.NoError(t, err)
	assert.Equal(t, "Spend less on fuel.", text)

	contents := gotBody["contents"].([]any)
	parts := contents[0].(map[string]any)["parts"].([]any)
	require.Len(t, parts, 1)
	assert.Equal(t, "Summarize spending", parts[0].(map[string]any)["text"])
}
