// Package enrichment provides the composition root for rate enrichment.
package enrichment

import (
	"context"

	"tradedesk_backend/internal/enrichment/client"
	"tradedesk_backend/internal/enrichment/service"
	"tradedesk_backend/platform/config"
	"tradedesk_backend/platform/logger"
)

// Module wires the rate enrichment service. Both the search and LLM
// credentials are optional; with neither configured, enrichment still runs
// and resolves catalog content with the contact-us pricing fallback.
type Module struct {
	service *service.Service
}

// NewModule creates the enrichment module.
func NewModule(ctx context.Context, cfg config.EnrichmentConfig, log *logger.Logger) *Module {
	search := client.NewSearchClient(cfg.GetSearchAPIKey(), log)
	extract := client.NewRateExtractor(ctx, cfg.GetLLMAPIKey(), cfg.GetLLMModel(), log)

	if !cfg.IsSearchEnabled() {
		log.Info("rate search disabled: SERPER_API_KEY not configured")
	}
	if !extract.Enabled() {
		log.Info("rate extraction disabled: GEMINI_API_KEY not configured")
	}

	return &Module{service: service.New(search, extract, log)}
}

// Service returns the enrichment service.
func (m *Module) Service() *service.Service {
	return m.service
}
