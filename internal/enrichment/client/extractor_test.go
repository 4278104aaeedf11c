package client

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestParseRates_NotJSON(t *testing.T) {
	rates, err := ParseRates("not json")
	if err == nil {
		t.Fatalf("expected an error for a non-JSON completion")
	}
	if rates != nil {
		t.Fatalf("expected no rates, got %v", rates)
	}
}

func TestParseRates_PlainArray(t *testing.T) {
	text := `[{"supplier":"SteelCo","rate":"₹52,500","unit":"per ton"},{"rate":"₹51,800"}]`
	rates, err := ParseRates(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rates) != 2 {
		t.Fatalf("expected 2 rates, got %d", len(rates))
	}
	if rates[0].Supplier != "SteelCo" || rates[0].Unit != "per ton" {
		t.Fatalf("first entry mismatched: %+v", rates[0])
	}
}

func TestParseRates_ToleratesFencesAndProse(t *testing.T) {
	text := "Here you go:\n```json\n[{\"rate\":\"₹405\",\"unit\":\"per bag\"}]\n```\nHope that helps."
	rates, err := ParseRates(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rates) != 1 || rates[0].Rate != "₹405" {
		t.Fatalf("unexpected rates: %+v", rates)
	}
}

func TestParseRates_CapsAtFourEntries(t *testing.T) {
	text := `[{"rate":"1"},{"rate":"2"},{"rate":"3"},{"rate":"4"},{"rate":"5"},{"rate":"6"}]`
	rates, err := ParseRates(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rates) != 4 {
		t.Fatalf("expected cap of 4, got %d", len(rates))
	}
}

func TestParseRates_DropsEmptyEntriesAndClipsLongFields(t *testing.T) {
	long := strings.Repeat("x", 500)
	text := `[{},{"note":"` + long + `"}]`
	rates, err := ParseRates(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rates) != 1 {
		t.Fatalf("expected the empty entry dropped, got %d entries", len(rates))
	}
	if len(rates[0].Note) != maxFieldLen {
		t.Fatalf("expected note clipped to %d, got %d", maxFieldLen, len(rates[0].Note))
	}
}

func TestParseRates_ClipsOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("₹", 120)
	text := `[{"note":"` + long + `"}]`
	rates, err := ParseRates(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rates) != 1 {
		t.Fatalf("expected 1 rate, got %d", len(rates))
	}
	note := rates[0].Note
	if len(note) > maxFieldLen {
		t.Fatalf("note not clipped, %d bytes", len(note))
	}
	if !utf8.ValidString(note) {
		t.Fatalf("clipping produced invalid UTF-8: %q", note)
	}
}

func TestParseRates_NonArrayJSON(t *testing.T) {
	if _, err := ParseRates(`{"rate":"₹405"}`); err == nil {
		t.Fatalf("expected an error for a JSON object completion")
	}
}

func TestParseRates_WrongElementTypes(t *testing.T) {
	if _, err := ParseRates(`[{"rate": 52500}]`); err == nil {
		t.Fatalf("expected an error for a numeric rate field")
	}
}

func TestRateExtractor_DisabledWithoutKey(t *testing.T) {
	ex := &RateExtractor{}
	if ex.Enabled() {
		t.Fatalf("extractor without a client must be disabled")
	}
	if got := ex.ExtractRates(nil, "TMT bars", nil); got != nil {
		t.Fatalf("disabled extractor must return nil, got %v", got)
	}
}
