package ledger

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// rowWriter is the narrow sheet-append surface the ledger needs. Faked in
// tests; implemented against the Google Sheets API in production.
type rowWriter interface {
	appendRow(ctx context.Context, spreadsheetID string, row []interface{}) error
	writeHeader(ctx context.Context, spreadsheetID string, header []string) error
}

// sheetsWriter appends rows to the first worksheet of a spreadsheet using
// a service account identity.
type sheetsWriter struct {
	svc *sheets.Service
}

func newSheetsWriter(ctx context.Context, serviceAccountEmail, privateKey string) (*sheetsWriter, error) {
	conf := &jwt.Config{
		Email:      serviceAccountEmail,
		PrivateKey: []byte(NormalizePrivateKey(privateKey)),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	return &sheetsWriter{svc: svc}, nil
}

func (w *sheetsWriter) appendRow(ctx context.Context, spreadsheetID string, row []interface{}) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := w.svc.Spreadsheets.Values.Append(spreadsheetID, "A:K", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

func (w *sheetsWriter) writeHeader(ctx context.Context, spreadsheetID string, header []string) error {
	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{cells}}
	_, err := w.svc.Spreadsheets.Values.Update(spreadsheetID, "A1:K1", vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}

// NormalizePrivateKey prepares a copy-pasted service-account key for use:
// JSON-formatted keys commonly arrive wrapped in quotation marks and with
// literal backslash-n sequences instead of line breaks.
func NormalizePrivateKey(key string) string {
	key = strings.TrimSpace(key)
	key = strings.Trim(key, `"'`)
	return strings.ReplaceAll(key, `\n`, "\n")
}
