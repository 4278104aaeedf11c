package ledger

import (
	"strings"
	"time"

	"tradedesk_backend/internal/intake/transport"
)

// Header is the fixed 11-column ledger schema. A header row must exist
// before any data row; Append self-heals when it is missing.
var Header = []string{
	"Date", "Time", "Name", "Phone", "Email",
	"Customer Type", "Product Category", "Items",
	"Quantity", "Delivery", "Notes",
}

// purchaseTypeSuffix tags purchase rows so both submission kinds share one
// sheet without schema drift.
const purchaseTypeSuffix = " (Purchase)"

// segmentDelimiter joins the labeled note segments of purchase rows.
const segmentDelimiter = " | "

// ist renders ledger timestamps in the business's regional timezone
// regardless of server locale. Falls back to a fixed offset when the host
// has no tz database.
var ist = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}()

// Row maps a submission onto the fixed column shape. Date and time are two
// separate values to support spreadsheet-native sorting.
func Row(sub transport.Submission) []interface{} {
	at := sub.ReceivedAt.In(ist)

	customerType := transport.CustomerTypeLabel(sub.CustomerType)
	if sub.Kind == transport.KindPurchase {
		customerType += purchaseTypeSuffix
	}

	return []interface{}{
		at.Format("02/01/2006"),
		at.Format("15:04:05"),
		sub.Name,
		sub.Phone,
		sub.Email,
		customerType,
		sub.ProductCategory,
		sub.Items,
		sub.Quantity,
		transport.DeliveryLabel(sub.Delivery),
		notesColumn(sub),
	}
}

// notesColumn folds the purchase-only fields into the single notes column
// as labeled segments, keeping the 11-column shape for both kinds.
func notesColumn(sub transport.Submission) string {
	segments := make([]string, 0, 5)
	if sub.Notes != "" {
		segments = append(segments, sub.Notes)
	}
	if sub.Kind == transport.KindPurchase {
		if sub.Address != "" {
			segments = append(segments, "Address: "+sub.Address)
		}
		if sub.InvoiceNumber != "" {
			segments = append(segments, "Invoice: "+sub.InvoiceNumber)
		}
		if sub.PreferredContact != "" {
			segments = append(segments, "Preferred Contact: "+transport.PreferredContactLabel(sub.PreferredContact))
		}
		if sub.PurchaseDate != "" {
			segments = append(segments, "Purchase Date: "+sub.PurchaseDate)
		}
	}
	return strings.Join(segments, segmentDelimiter)
}
