// Package transport defines the inbound submission payloads and the
// normalized Submission value the pipeline consumes.
package transport

import "time"

// SubmissionKind discriminates the two inbound variants.
type SubmissionKind string

const (
	// KindQuote is a request for a sales quote.
	KindQuote SubmissionKind = "quote"
	// KindPurchase is a post-purchase record submitted after an offline sale.
	KindPurchase SubmissionKind = "purchase"
)

// QuoteRequest is the raw quote-intake payload. Website is the hidden
// honeypot field: humans never see it, so any value means a bot.
type QuoteRequest struct {
	Name            string `json:"name" validate:"required,max=120"`
	Phone           string `json:"phone" validate:"required,min=7,max=20"`
	Email           string `json:"email" validate:"required,email,max=254"`
	CustomerType    string `json:"customerType" validate:"omitempty,max=40"`
	ProductCategory string `json:"productCategory" validate:"omitempty,max=80"`
	ProductRef      string `json:"productRef" validate:"omitempty,max=80"`
	Items           string `json:"items" validate:"required,max=2000"`
	Quantity        string `json:"quantity" validate:"required,numeric"`
	Delivery        string `json:"delivery" validate:"omitempty,max=40"`
	Notes           string `json:"notes" validate:"omitempty,max=2000"`
	Website         string `json:"website"`
}

// PurchaseRequest is the raw post-purchase payload.
type PurchaseRequest struct {
	Name             string `json:"name" validate:"required,max=120"`
	Phone            string `json:"phone" validate:"required,min=7,max=20"`
	Email            string `json:"email" validate:"required,email,max=254"`
	CustomerType     string `json:"customerType" validate:"omitempty,max=40"`
	ProductCategory  string `json:"productCategory" validate:"omitempty,max=80"`
	ProductRef       string `json:"productRef" validate:"omitempty,max=80"`
	Items            string `json:"items" validate:"required,max=2000"`
	Quantity         string `json:"quantity" validate:"required,numeric"`
	Address          string `json:"address" validate:"required,max=500"`
	InvoiceNumber    string `json:"invoiceNumber" validate:"omitempty,max=60"`
	PurchaseDate     string `json:"purchaseDate" validate:"omitempty,max=20"`
	PreferredContact string `json:"preferredContact" validate:"omitempty,max=40"`
	Notes            string `json:"notes" validate:"omitempty,max=2000"`
	Website          string `json:"website"`
}

// Submission is the normalized, immutable lead record. It is created once
// at intake and consumed read-only by the ledger and the mail dispatcher.
type Submission struct {
	Kind            SubmissionKind
	Name            string
	Phone           string
	Email           string
	CustomerType    string
	ProductCategory string
	ProductRef      string
	Items           string
	Quantity        string
	Delivery        string
	Notes           string

	// Purchase-only fields; empty on quotes.
	Address          string
	InvoiceNumber    string
	PurchaseDate     string
	PreferredContact string

	// ReceivedAt is the server-observed intake time.
	ReceivedAt time.Time
}

// SubmitResponse is the success payload for both intake endpoints.
type SubmitResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CategoriesResponse lists the product categories the intake form offers.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
