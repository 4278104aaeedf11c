package transport

import "testing"

func TestTier_LiveRatesWin(t *testing.T) {
	data := CatalogData{
		TentativeRates:      []TentativeRate{{Rate: "₹52,000", Unit: "per ton"}},
		IndicativeRateRange: "₹50,000–₹55,000 per ton",
	}
	if got := data.Tier(); got != TierLive {
		t.Fatalf("expected TierLive, got %v", got)
	}
}

func TestTier_IndicativeWhenNoLiveRates(t *testing.T) {
	data := CatalogData{IndicativeRateRange: "₹360–₹420 per bag"}
	if got := data.Tier(); got != TierIndicative {
		t.Fatalf("expected TierIndicative, got %v", got)
	}
}

func TestTier_ContactWhenNothingAvailable(t *testing.T) {
	data := CatalogData{}
	if got := data.Tier(); got != TierContact {
		t.Fatalf("expected TierContact, got %v", got)
	}
}

func TestTentativeRate_Empty(t *testing.T) {
	if !(TentativeRate{}).Empty() {
		t.Fatalf("zero value should be empty")
	}
	if (TentativeRate{Note: "GST extra"}).Empty() {
		t.Fatalf("entry with a note is not empty")
	}
}
