package service

import (
	"context"
	"testing"

	"tradedesk_backend/internal/enrichment/transport"
	"tradedesk_backend/platform/logger"
)

type fakeSearcher struct {
	snippets []transport.Snippet
	calls    int
}

func (f *fakeSearcher) SearchRates(_ context.Context, _ string) []transport.Snippet {
	f.calls++
	return f.snippets
}

type fakeExtractor struct {
	enabled bool
	rates   []transport.TentativeRate
	calls   int
}

func (f *fakeExtractor) Enabled() bool { return f.enabled }

func (f *fakeExtractor) ExtractRates(_ context.Context, _ string, _ []transport.Snippet) []transport.TentativeRate {
	f.calls++
	return f.rates
}

func TestEnrich_CatalogProductWithLiveRates(t *testing.T) {
	search := &fakeSearcher{snippets: []transport.Snippet{{Title: "SteelCo", Snippet: "TMT at ₹52,500/ton"}}}
	extract := &fakeExtractor{enabled: true, rates: []transport.TentativeRate{{Rate: "₹52,500", Unit: "per ton"}}}
	svc := New(search, extract, logger.New("test"))

	data := svc.Enrich(context.Background(), "tmt-bars", "")

	if data.ProductName == "" || data.CategoryName == "" {
		t.Fatalf("expected catalog fields populated, got %+v", data)
	}
	if data.Tier() != transport.TierLive {
		t.Fatalf("expected live tier, got %v", data.Tier())
	}
	if extract.calls != 1 {
		t.Fatalf("expected one extraction call, got %d", extract.calls)
	}
}

func TestEnrich_NoCredentialsDegradesToContactTier(t *testing.T) {
	// Both integrations unavailable: search yields nothing and the
	// extractor is disabled. The flow still produces a usable document.
	search := &fakeSearcher{}
	extract := &fakeExtractor{}
	svc := New(search, extract, logger.New("test"))

	data := svc.Enrich(context.Background(), "gi-pipes", "GI pipes, 2 inch")

	if data.ProductName == "" {
		t.Fatalf("expected a product name even without rates")
	}
	if data.Tier() != transport.TierContact {
		t.Fatalf("expected contact tier, got %v", data.Tier())
	}
	if extract.calls != 0 {
		t.Fatalf("extractor must not be called without snippets")
	}
}

func TestEnrich_ExtractionSkippedWithoutSnippets(t *testing.T) {
	search := &fakeSearcher{}
	extract := &fakeExtractor{enabled: true}
	svc := New(search, extract, logger.New("test"))

	svc.Enrich(context.Background(), "opc-cement", "")

	if search.calls != 1 {
		t.Fatalf("expected one search call, got %d", search.calls)
	}
	if extract.calls != 0 {
		t.Fatalf("extraction must be skipped when search returned nothing, got %d calls", extract.calls)
	}
}

func TestEnrich_DisabledExtractorKeepsSearchContext(t *testing.T) {
	search := &fakeSearcher{snippets: []transport.Snippet{{Title: "Price guide", Snippet: "Cement ₹405 per bag"}}}
	extract := &fakeExtractor{enabled: false}
	svc := New(search, extract, logger.New("test"))

	data := svc.Enrich(context.Background(), "", "OPC 53 cement")

	if data.SearchContext == "" {
		t.Fatalf("expected search context retained for a disabled extractor")
	}
	if len(data.TentativeRates) != 0 {
		t.Fatalf("expected no rates from a disabled extractor")
	}
	if extract.calls != 0 {
		t.Fatalf("disabled extractor must not be called")
	}
}

func TestEnrich_UnknownProductUsesItemsText(t *testing.T) {
	svc := New(&fakeSearcher{}, &fakeExtractor{}, logger.New("test"))

	data := svc.Enrich(context.Background(), "no-such-key", "Copper wire 4mm, 200 meters")
	if data.ProductName != "Copper wire 4mm" {
		t.Fatalf("expected first clause of items text, got %q", data.ProductName)
	}

	data = svc.Enrich(context.Background(), "", "   ")
	if data.ProductName != "Requested materials" {
		t.Fatalf("expected fallback name for blank input, got %q", data.ProductName)
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"TMT bars, 12mm", "TMT bars"},
		{"Cement (OPC 53)", "Cement"},
		{"Paint\n20 liters", "Paint"},
		{"  Binding wire  ", "Binding wire"},
		{"", ""},
	}
	for _, c := range cases {
		if got := DisplayName(c.in); got != c.want {
			t.Fatalf("DisplayName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
