package document

// ContactLine is one labeled contact entry rendered in the catalog footer.
type ContactLine struct {
	Label string
	Value string
}

// BusinessInfo holds the structured contact details rendered at the foot of
// every catalog document. Static per deployment.
type BusinessInfo struct {
	Name         string
	Tagline      string
	Address      string
	Phones       []ContactLine
	Emails       []ContactLine
	WhatsAppLink string
	Hours        string
	GSTIN        string
}

// DefaultBusiness is the supplier identity shipped with the backend.
var DefaultBusiness = BusinessInfo{
	Name:    "Tradedesk Building Materials",
	Tagline: "Steel, cement and site supplies since 1998",
	Address: "Plot 14, Industrial Estate Road, Nashik 422010, Maharashtra",
	Phones: []ContactLine{
		{Label: "Sales", Value: "+91 98220 11223"},
		{Label: "Dispatch", Value: "+91 98220 44556"},
	},
	Emails: []ContactLine{
		{Label: "Quotes", Value: "sales@tradedesk.example"},
		{Label: "Accounts", Value: "accounts@tradedesk.example"},
	},
	WhatsAppLink: "https://wa.me/919822011223",
	Hours:        "Mon–Sat 9:00–19:00 IST",
	GSTIN:        "27ABCDE1234F1Z5",
}
