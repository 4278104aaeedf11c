package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"google.golang.org/genai"

	"tradedesk_backend/internal/enrichment/transport"
	"tradedesk_backend/platform/logger"
)

// maxRateEntries bounds how many advisory entries a document may carry.
const maxRateEntries = 4

// maxFieldLen caps each model-supplied field; anything longer is noise.
const maxFieldLen = 160

// RateExtractor turns raw search snippets into structured tentative rates
// with a single LLM call. The model output is treated as untrusted
// semi-structured text: the shape is validated defensively and any failure
// degrades to an empty list. This type never returns an error.
type RateExtractor struct {
	client *genai.Client
	model  string
	log    *logger.Logger
}

// NewRateExtractor creates the extractor. It returns a disabled extractor
// (nil client) when the API key is missing or the client cannot be built,
// so enrichment keeps working without live rates.
func NewRateExtractor(ctx context.Context, apiKey, model string, log *logger.Logger) *RateExtractor {
	ex := &RateExtractor{model: model, log: log}
	if apiKey == "" {
		return ex
	}

	cli, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		log.ExternalServiceError("llm", "client init", err)
		return ex
	}
	ex.client = cli
	return ex
}

// Enabled reports whether the extractor can issue model calls.
func (e *RateExtractor) Enabled() bool {
	return e != nil && e.client != nil
}

// ExtractRates asks the model to reduce search snippets to at most four
// structured rate entries. Returns nil on any API or parse failure.
func (e *RateExtractor) ExtractRates(ctx context.Context, productName string, snippets []transport.Snippet) []transport.TentativeRate {
	if !e.Enabled() || len(snippets) == 0 {
		return nil
	}

	prompt := buildExtractionPrompt(productName, snippets)
	result, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), nil)
	if err != nil {
		e.log.ExternalServiceError("llm", "rate extraction", err)
		return nil
	}

	rates, err := ParseRates(result.Text())
	if err != nil {
		e.log.ExternalServiceError("llm", "rate parsing", err)
		return nil
	}
	return rates
}

func buildExtractionPrompt(productName string, snippets []transport.Snippet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are extracting market price data for %q from Indian web search results.\n", productName)
	b.WriteString("Return ONLY a JSON array with at most 4 entries of the form\n")
	b.WriteString(`{"supplier": "...", "rate": "...", "unit": "...", "note": "..."}` + "\n")
	b.WriteString("All fields are optional strings. Skip results without a concrete price. No prose, no markdown.\n\nResults:\n")
	for i, s := range snippets {
		fmt.Fprintf(&b, "%d. %s — %s\n", i+1, s.Title, s.Snippet)
	}
	return b.String()
}

// ParseRates validates an LLM completion against the expected JSON-array
// contract. Markdown code fences and surrounding prose are tolerated; a
// missing or malformed array is an error.
func ParseRates(text string) ([]transport.TentativeRate, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in completion")
	}

	var raw []transport.TentativeRate
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("decode rate array: %w", err)
	}

	rates := make([]transport.TentativeRate, 0, maxRateEntries)
	for _, r := range raw {
		r.Supplier = clipField(r.Supplier)
		r.Rate = clipField(r.Rate)
		r.Unit = clipField(r.Unit)
		r.Note = clipField(r.Note)
		if r.Empty() {
			continue
		}
		rates = append(rates, r)
		if len(rates) == maxRateEntries {
			break
		}
	}
	if len(rates) == 0 {
		return nil, nil
	}
	return rates, nil
}

// clipField trims and caps a model-supplied field, cutting on a rune
// boundary so multi-byte text is never left as invalid UTF-8.
func clipField(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxFieldLen {
		return s
	}
	cut := maxFieldLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
