package document

import (
	"strings"
	"testing"

	"tradedesk_backend/internal/enrichment/transport"
	"tradedesk_backend/platform/logger"
)

type testAssets struct {
	baseURL  string
	logoPath string
}

func (a testAssets) GetPublicBaseURL() string { return a.baseURL }
func (a testAssets) GetLogoPath() string      { return a.logoPath }

func newTestBuilder() *Builder {
	return NewBuilder(DefaultBusiness, testAssets{logoPath: "testdata/no-such-logo.png"}, logger.New("test"))
}

func TestBuild_LiveTierRendersRateTable(t *testing.T) {
	b := newTestBuilder()
	html, err := b.Build(transport.CatalogData{
		ProductName: "TMT Bars",
		TentativeRates: []transport.TentativeRate{
			{Supplier: "SteelCo", Rate: "₹52,500", Unit: "per ton", Note: "Fe 550D"},
		},
		IndicativeRateRange: "₹50,000–₹56,000 per ton",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(html, "Indicative market rates found today") {
		t.Fatalf("expected live rate block")
	}
	if !strings.Contains(html, "₹52,500") || !strings.Contains(html, "SteelCo") {
		t.Fatalf("expected rate entry rendered")
	}
	// Live rates win over the curated range and the contact block.
	if strings.Contains(html, "Typical price range") || strings.Contains(html, "Pricing on request") {
		t.Fatalf("live document must not carry other rate blocks")
	}
}

func TestBuild_IndicativeTier(t *testing.T) {
	b := newTestBuilder()
	html, err := b.Build(transport.CatalogData{
		ProductName:         "Binding Wire",
		IndicativeRateRange: "₹58–₹72 per kg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(html, "Typical price range") || !strings.Contains(html, "₹58–₹72 per kg") {
		t.Fatalf("expected curated range block")
	}
	if strings.Contains(html, "Indicative market rates found today") || strings.Contains(html, "Pricing on request") {
		t.Fatalf("indicative document must not carry other rate blocks")
	}
}

func TestBuild_ContactTier(t *testing.T) {
	b := newTestBuilder()
	html, err := b.Build(transport.CatalogData{ProductName: "GI Pipes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(html, "Pricing on request") {
		t.Fatalf("expected contact block")
	}
	if strings.Contains(html, "Indicative market rates found today") || strings.Contains(html, "Typical price range") {
		t.Fatalf("contact document must not carry rate blocks")
	}
}

func TestBuild_EscapesUntrustedText(t *testing.T) {
	b := newTestBuilder()
	html, err := b.Build(transport.CatalogData{
		ProductName: `<script>alert("x")</script>`,
		TentativeRates: []transport.TentativeRate{
			{Supplier: "<img src=x onerror=alert(1)>", Rate: "₹1"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(html, "<script>") || strings.Contains(html, "<img src=x") {
		t.Fatalf("untrusted text leaked unescaped into the document")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatalf("expected escaped product name in output")
	}
}

func TestBuild_OmitsEmptySections(t *testing.T) {
	b := newTestBuilder()
	html, err := b.Build(transport.CatalogData{ProductName: "Fasteners"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, heading := range []string{"Specifications", "Available Sizes", "Materials", "Common Uses", "Variants"} {
		if strings.Contains(html, heading) {
			t.Fatalf("expected %q section omitted for empty data", heading)
		}
	}
}

func TestBuild_MissingLogoOmitsImage(t *testing.T) {
	b := newTestBuilder()
	html, err := b.Build(transport.CatalogData{ProductName: "Cement"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<img src=\"data:") {
		t.Fatalf("expected no inline logo when the file is unreadable")
	}
}

func TestBuild_CatalogLinkFromBaseURL(t *testing.T) {
	b := NewBuilder(DefaultBusiness, testAssets{baseURL: "https://tradedesk.example/"}, logger.New("test"))
	html, err := b.Build(transport.CatalogData{ProductName: "Cement"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `href="https://tradedesk.example/catalog"`) {
		t.Fatalf("expected online catalog link in document")
	}

	// No public base URL configured: the link is omitted entirely.
	html, err = newTestBuilder().Build(transport.CatalogData{ProductName: "Cement"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "Browse the full catalog online") {
		t.Fatalf("expected no catalog link without a base URL")
	}
}

func TestBuild_FooterCarriesBusinessIdentity(t *testing.T) {
	b := newTestBuilder()
	html, err := b.Build(transport.CatalogData{ProductName: "Roofing Sheets"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(html, DefaultBusiness.Name) {
		t.Fatalf("expected business name in footer")
	}
	if !strings.Contains(html, DefaultBusiness.GSTIN) {
		t.Fatalf("expected GSTIN in footer")
	}
	if !strings.Contains(html, DefaultBusiness.WhatsAppLink) {
		t.Fatalf("expected WhatsApp link in document")
	}
}
