// Package transport defines the data shapes exchanged by the enrichment
// module and its consumers.
package transport

// TentativeRate is one advisory market-rate entry derived from public
// search snippets. It is never a committed quote; every field is optional
// text straight from an untrusted model and must be escaped on render.
type TentativeRate struct {
	Supplier string `json:"supplier,omitempty"`
	Rate     string `json:"rate,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Note     string `json:"note,omitempty"`
}

// Empty reports whether the entry carries no usable text at all.
func (t TentativeRate) Empty() bool {
	return t.Supplier == "" && t.Rate == "" && t.Unit == "" && t.Note == ""
}

// Snippet is one reduced web search result.
type Snippet struct {
	Title   string
	Snippet string
}

// RateTier identifies which of the three mutually exclusive pricing blocks
// a catalog document renders.
type RateTier int

const (
	// TierLive renders tentative rates found through search + extraction.
	TierLive RateTier = iota
	// TierIndicative renders the product's static curated range.
	TierIndicative
	// TierContact renders the generic "contact us for today's rate" block.
	TierContact
)

// CatalogData is the per-request, ephemeral input of the document builder.
// It is recomputed for every submission and never persisted.
type CatalogData struct {
	ProductName         string
	CategoryName        string
	ShortDesc           string
	Specs               []string
	Sizes               []string
	Materials           []string
	UseCases            []string
	Variants            []string
	ClassificationNotes string
	TentativeRates      []TentativeRate
	IndicativeRateRange string
	SearchContext       string
}

// Tier selects the active pricing tier. Exactly one tier applies: live
// rates win, then the indicative range, then the contact fallback.
func (d CatalogData) Tier() RateTier {
	if len(d.TentativeRates) > 0 {
		return TierLive
	}
	if d.IndicativeRateRange != "" {
		return TierIndicative
	}
	return TierContact
}
