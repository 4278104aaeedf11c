// Package client provides the outbound HTTP clients used by rate enrichment:
// a web search provider and an LLM rate extractor.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tradedesk_backend/internal/enrichment/transport"
	"tradedesk_backend/platform/logger"
)

const (
	serperEndpoint     = "https://google.serper.dev/search"
	searchResultLimit  = 8
	defaultHTTPTimeout = 10 * time.Second
)

// localeTerms anchors the search query to the market the business quotes in.
const localeTerms = "India per kg per ton today"

// SearchClient issues one market-rate query per enrichment against a
// Serper-style search API. All failures degrade to an empty snippet list;
// pricing is advisory, so this client never returns an error.
type SearchClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	log        *logger.Logger
}

// NewSearchClient creates a search client. An empty apiKey is allowed and
// turns every search into a no-op.
func NewSearchClient(apiKey string, log *logger.Logger) *SearchClient {
	return &SearchClient{
		apiKey:     apiKey,
		endpoint:   serperEndpoint,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		log:        log,
	}
}

type serperRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num"`
}

type serperResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

// SearchRates runs the single market-rate query for a product name and
// reduces the results to title+snippet pairs.
func (c *SearchClient) SearchRates(ctx context.Context, productName string) []transport.Snippet {
	if c.apiKey == "" {
		return nil
	}

	query := fmt.Sprintf("%s price rate %s", productName, localeTerms)
	body, err := json.Marshal(serperRequest{Query: query, Num: searchResultLimit})
	if err != nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ExternalServiceError("search", "rate query", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.ExternalServiceError("search", "rate query",
			fmt.Errorf("search status %d", resp.StatusCode))
		return nil
	}

	var payload serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.ExternalServiceError("search", "decode", err)
		return nil
	}

	snippets := make([]transport.Snippet, 0, len(payload.Organic))
	for _, item := range payload.Organic {
		if item.Title == "" && item.Snippet == "" {
			continue
		}
		snippets = append(snippets, transport.Snippet{Title: item.Title, Snippet: item.Snippet})
	}
	return snippets
}
