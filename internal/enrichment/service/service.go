// Package service orchestrates rate enrichment: catalog resolution, one
// web search, and one conditional LLM extraction.
package service

import (
	"context"
	"fmt"
	"strings"

	"tradedesk_backend/internal/catalog"
	"tradedesk_backend/internal/enrichment/transport"
	"tradedesk_backend/platform/logger"
)

// Searcher issues the single market-rate search. Failures surface as an
// empty snippet list, never an error.
type Searcher interface {
	SearchRates(ctx context.Context, productName string) []transport.Snippet
}

// Extractor reduces snippets to structured rates. Failures surface as an
// empty list, never an error.
type Extractor interface {
	Enabled() bool
	ExtractRates(ctx context.Context, productName string, snippets []transport.Snippet) []transport.TentativeRate
}

// Service is the rate enricher. It is stateless and safe for concurrent
// use across requests.
type Service struct {
	search  Searcher
	extract Extractor
	log     *logger.Logger
}

// New creates the enrichment service.
func New(search Searcher, extract Extractor, log *logger.Logger) *Service {
	return &Service{search: search, extract: extract, log: log}
}

// Enrich turns a product reference plus free-text item description into
// the data the document builder renders. It performs at most two network
// calls, chained: search first, LLM extraction only when search produced
// snippets. Enrichment never fails; missing data falls through the tier
// selection on CatalogData.
func (s *Service) Enrich(ctx context.Context, productRef, itemsText string) transport.CatalogData {
	data := transport.CatalogData{}

	if product, ok := catalog.Lookup(productRef); ok {
		data.ProductName = product.Name
		data.CategoryName = product.Category
		data.ShortDesc = product.ShortDesc
		data.Specs = product.Specs
		data.Sizes = product.Sizes
		data.Materials = product.Materials
		data.UseCases = product.UseCases
		data.Variants = product.Variants
		data.ClassificationNotes = product.Notes
		data.IndicativeRateRange = product.IndicativeRateRange
	} else {
		data.ProductName = DisplayName(itemsText)
	}
	if data.ProductName == "" {
		data.ProductName = "Requested materials"
	}

	snippets := s.search.SearchRates(ctx, data.ProductName)
	if len(snippets) == 0 {
		return data
	}
	data.SearchContext = summarizeSnippets(snippets)

	if !s.extract.Enabled() {
		return data
	}
	data.TentativeRates = s.extract.ExtractRates(ctx, data.ProductName, snippets)
	return data
}

// DisplayName derives a short product label from free text by taking the
// first clause: everything before the first comma, opening parenthesis, or
// newline, trimmed.
func DisplayName(itemsText string) string {
	name := strings.TrimSpace(itemsText)
	if idx := strings.IndexAny(name, ",(\n"); idx >= 0 {
		name = name[:idx]
	}
	return strings.TrimSpace(name)
}

func summarizeSnippets(snippets []transport.Snippet) string {
	var b strings.Builder
	for i, s := range snippets {
		if i > 0 {
			b.WriteString(" | ")
		}
		fmt.Fprintf(&b, "%s: %s", s.Title, s.Snippet)
	}
	return b.String()
}
