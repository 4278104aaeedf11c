package mailer

import (
	"fmt"
	"strings"
	"time"

	"tradedesk_backend/platform/sanitize"
)

// maxFilenameStem caps the sanitized sender-name part of attachment names.
const maxFilenameStem = 24

// EscapeCSVField applies RFC 4180 quoting: fields containing a comma,
// double quote, or line break are wrapped in quotes with internal quotes
// doubled. All other fields pass through unescaped.
func EscapeCSVField(field string) string {
	if !strings.ContainsAny(field, ",\"\n\r") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// buildCSV renders a one-header-row, one-data-row CSV from ordered
// label/value pairs.
func buildCSV(fields []labeledField) []byte {
	headers := make([]string, len(fields))
	values := make([]string, len(fields))
	for i, f := range fields {
		headers[i] = EscapeCSVField(f.Label)
		values[i] = EscapeCSVField(f.Value)
	}
	return []byte(strings.Join(headers, ",") + "\r\n" + strings.Join(values, ",") + "\r\n")
}

// csvFilename builds the attachment name from the intake timestamp and a
// sanitized sender name.
func csvFilename(senderName string, at time.Time) string {
	return fmt.Sprintf("lead-%s-%s.csv",
		at.Format("20060102-150405"),
		sanitize.FileStem(senderName, maxFilenameStem))
}
