package mailer

import (
	"strings"
	"testing"
	"time"

	"tradedesk_backend/internal/intake/transport"
)

func quoteSubmission() transport.Submission {
	return transport.Submission{
		Kind:            transport.KindQuote,
		Name:            "Ramesh Kulkarni",
		Phone:           "+919822011223",
		Email:           "ramesh@example.com",
		CustomerType:    "contractor",
		ProductCategory: "Iron & Steel",
		Items:           "TMT bars 12mm",
		Quantity:        "500",
		Delivery:        "delivery",
		Notes:           "Needed by Friday",
		ReceivedAt:      time.Date(2026, 3, 14, 9, 30, 5, 0, time.UTC),
	}
}

func TestNotificationFields_QuoteOrderAndLabels(t *testing.T) {
	n := LeadNotification{Submission: quoteSubmission()}
	fields := n.fields()

	if len(fields) != 11 {
		t.Fatalf("expected 11 fields for a quote, got %d", len(fields))
	}
	if fields[0].Label != "Received" || fields[2].Label != "Name" {
		t.Fatalf("unexpected field order: %v, %v", fields[0], fields[2])
	}

	byLabel := map[string]string{}
	for _, f := range fields {
		byLabel[f.Label] = f.Value
	}
	if byLabel["Customer Type"] != "Contractor" {
		t.Fatalf("expected customer type label, got %q", byLabel["Customer Type"])
	}
	if byLabel["Delivery"] != "Site delivery" {
		t.Fatalf("expected delivery label, got %q", byLabel["Delivery"])
	}
}

func TestNotificationFields_UnknownEnumPassesThroughRaw(t *testing.T) {
	sub := quoteSubmission()
	sub.CustomerType = "government-agency"
	sub.Delivery = "drone"
	fields := LeadNotification{Submission: sub}.fields()

	byLabel := map[string]string{}
	for _, f := range fields {
		byLabel[f.Label] = f.Value
	}
	if byLabel["Customer Type"] != "government-agency" {
		t.Fatalf("expected raw pass-through, got %q", byLabel["Customer Type"])
	}
	if byLabel["Delivery"] != "drone" {
		t.Fatalf("expected raw pass-through, got %q", byLabel["Delivery"])
	}
}

func TestNotificationFields_PurchaseAppendsExtras(t *testing.T) {
	sub := quoteSubmission()
	sub.Kind = transport.KindPurchase
	sub.Address = "Plot 14, Nashik"
	sub.InvoiceNumber = "INV-2041"
	sub.PurchaseDate = "2026-03-10"
	sub.PreferredContact = "whatsapp"

	fields := LeadNotification{Submission: sub}.fields()
	if len(fields) != 15 {
		t.Fatalf("expected 15 fields for a purchase, got %d", len(fields))
	}

	last := fields[len(fields)-1]
	if last.Label != "Preferred Contact" || last.Value != "WhatsApp" {
		t.Fatalf("unexpected trailing field: %+v", last)
	}
}

func TestNotificationBody_RateSectionOnlyWhenPresent(t *testing.T) {
	fields := LeadNotification{Submission: quoteSubmission()}.fields()

	body := notificationBody(fields, "SteelCo: ₹52,500 / per ton")
	if !strings.Contains(body, rateSeparator) {
		t.Fatalf("expected rate separator in body")
	}
	if !strings.Contains(body, "Rates shown to the customer:") {
		t.Fatalf("expected rate heading in body")
	}
	if !strings.Contains(body, "Name: Ramesh Kulkarni") {
		t.Fatalf("expected field dump in body")
	}

	body = notificationBody(fields, "")
	if strings.Contains(body, rateSeparator) {
		t.Fatalf("rate separator must be omitted without rate text")
	}
}
