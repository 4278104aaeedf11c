package transport

// Enum values arrive from the website's form controls. The mappings are
// finite and explicit; unrecognized values pass through raw rather than
// erroring, so a form change never breaks notifications.

var customerTypeLabels = map[string]string{
	"individual": "Individual / Homeowner",
	"contractor": "Contractor",
	"builder":    "Builder / Developer",
	"reseller":   "Reseller / Trader",
}

var deliveryLabels = map[string]string{
	"pickup":   "Pickup from yard",
	"delivery": "Site delivery",
}

var preferredContactLabels = map[string]string{
	"phone":    "Phone call",
	"whatsapp": "WhatsApp",
	"email":    "Email",
}

// CustomerTypeLabel resolves the display label for a customer type value.
func CustomerTypeLabel(v string) string {
	if label, ok := customerTypeLabels[v]; ok {
		return label
	}
	return v
}

// DeliveryLabel resolves the display label for a delivery preference.
func DeliveryLabel(v string) string {
	if label, ok := deliveryLabels[v]; ok {
		return label
	}
	return v
}

// PreferredContactLabel resolves the display label for a contact preference.
func PreferredContactLabel(v string) string {
	if label, ok := preferredContactLabels[v]; ok {
		return label
	}
	return v
}
