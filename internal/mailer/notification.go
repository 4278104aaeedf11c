package mailer

import (
	"strings"

	"tradedesk_backend/internal/intake/transport"
)

// rateSeparator divides the field dump from the rate text shown to the
// customer, so the business can reconcile what was advertised.
const rateSeparator = "----------------------------------------"

// LeadNotification is the input of the business notification send.
type LeadNotification struct {
	Submission transport.Submission
	// RateText is the exact advisory rate text rendered in the customer
	// document, when any. Empty when the contact-us tier applied.
	RateText string
}

type labeledField struct {
	Label string
	Value string
}

// fields returns every submission field as ordered label/value pairs.
// The same list drives the plain-text dump and the CSV attachment.
func (n LeadNotification) fields() []labeledField {
	sub := n.Submission
	fields := []labeledField{
		{"Received", sub.ReceivedAt.Format("2006-01-02 15:04:05 MST")},
		{"Type", string(sub.Kind)},
		{"Name", sub.Name},
		{"Phone", sub.Phone},
		{"Email", sub.Email},
		{"Customer Type", transport.CustomerTypeLabel(sub.CustomerType)},
		{"Product Category", sub.ProductCategory},
		{"Items", sub.Items},
		{"Quantity", sub.Quantity},
		{"Delivery", transport.DeliveryLabel(sub.Delivery)},
		{"Notes", sub.Notes},
	}
	if sub.Kind == transport.KindPurchase {
		fields = append(fields,
			labeledField{"Address", sub.Address},
			labeledField{"Invoice Number", sub.InvoiceNumber},
			labeledField{"Purchase Date", sub.PurchaseDate},
			labeledField{"Preferred Contact", transport.PreferredContactLabel(sub.PreferredContact)},
		)
	}
	return fields
}

func notificationBody(fields []labeledField, rateText string) string {
	var b strings.Builder
	for _, f := range fields {
		b.WriteString(f.Label)
		b.WriteString(": ")
		b.WriteString(f.Value)
		b.WriteString("\n")
	}
	if rateText != "" {
		b.WriteString("\n")
		b.WriteString(rateSeparator)
		b.WriteString("\nRates shown to the customer:\n")
		b.WriteString(rateText)
		b.WriteString("\n")
	}
	return b.String()
}
