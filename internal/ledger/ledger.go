// Package ledger appends every submission to a spreadsheet-backed,
// append-only lead ledger. Write-only by design: reads, filtering, and
// exports are downstream administrative concerns.
package ledger

import (
	"context"
	"strings"

	"tradedesk_backend/internal/intake/transport"
	"tradedesk_backend/platform/apperr"
	"tradedesk_backend/platform/config"
	"tradedesk_backend/platform/logger"
)

// Ledger writes lead rows. Purchases may target their own spreadsheet,
// falling back to the shared one when unset.
type Ledger struct {
	writer          rowWriter
	sheetID         string
	purchaseSheetID string
	log             *logger.Logger
}

// New creates the ledger. With incomplete credentials it returns a
// disabled ledger whose Append reports a configuration error, keeping the
// rest of the pipeline operational.
func New(ctx context.Context, cfg config.LedgerConfig, log *logger.Logger) *Ledger {
	l := &Ledger{
		sheetID:         cfg.GetSheetID(),
		purchaseSheetID: cfg.GetPurchaseSheetID(),
		log:             log,
	}
	if !cfg.IsLedgerConfigured() {
		log.Info("lead ledger disabled: sheet or service account not configured")
		return l
	}

	writer, err := newSheetsWriter(ctx, cfg.GetServiceAccountEmail(), cfg.GetServiceAccountKey())
	if err != nil {
		log.ExternalServiceError("sheets", "client init", err)
		return l
	}
	l.writer = writer
	return l
}

// Append writes one submission row. If the first attempt fails because the
// sheet has no initialized header, the header is written once and the
// append retried exactly once. Any other failure, or a second failure
// after recovery, is reported; there are no further automatic retries.
func (l *Ledger) Append(ctx context.Context, sub transport.Submission) error {
	if l.writer == nil {
		return apperr.ConfigurationMissing("lead ledger is not configured").WithOp("ledger.Append")
	}

	sheetID := l.sheetFor(sub.Kind)
	row := Row(sub)

	err := l.writer.appendRow(ctx, sheetID, row)
	if err == nil {
		return nil
	}
	if !isMissingHeaderErr(err) {
		l.log.ExternalServiceError("sheets", "row append", err)
		return apperr.Wrap(apperr.KindUnavailable, "could not record the lead", err)
	}

	l.log.Info("ledger header missing, initializing", "sheet_id", sheetID)
	if err := l.writer.writeHeader(ctx, sheetID, Header); err != nil {
		l.log.ExternalServiceError("sheets", "header init", err)
		return apperr.Wrap(apperr.KindUnavailable, "could not initialize the ledger", err)
	}
	if err := l.writer.appendRow(ctx, sheetID, row); err != nil {
		l.log.ExternalServiceError("sheets", "row append after header init", err)
		return apperr.Wrap(apperr.KindUnavailable, "could not record the lead", err)
	}
	return nil
}

func (l *Ledger) sheetFor(kind transport.SubmissionKind) string {
	if kind == transport.KindPurchase && l.purchaseSheetID != "" {
		return l.purchaseSheetID
	}
	return l.sheetID
}

// isMissingHeaderErr heuristically matches the error surfaced when the
// target sheet has never been initialized with a header row.
func isMissingHeaderErr(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "header") || strings.Contains(msg, "unable to parse range")
}
