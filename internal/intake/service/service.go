// Package service runs the intake-to-fulfillment pipeline for one
// validated submission: enrich, render, then dispatch the three
// independent side effects.
package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	etransport "tradedesk_backend/internal/enrichment/transport"
	"tradedesk_backend/internal/intake/transport"
	"tradedesk_backend/internal/mailer"
	"tradedesk_backend/platform/apperr"
	"tradedesk_backend/platform/logger"
)

// Enricher produces the catalog data for a submission.
type Enricher interface {
	Enrich(ctx context.Context, productRef, itemsText string) etransport.CatalogData
}

// DocumentBuilder renders catalog data into the HTML email body.
type DocumentBuilder interface {
	Build(data etransport.CatalogData) (string, error)
}

// Mailer dispatches the two independent sends.
type Mailer interface {
	SendCatalog(ctx context.Context, toEmail, productName, htmlContent string) error
	SendLeadNotification(ctx context.Context, n mailer.LeadNotification) error
}

// LedgerAppender records the lead.
type LedgerAppender interface {
	Append(ctx context.Context, sub transport.Submission) error
}

// Service is the submission pipeline.
type Service struct {
	enricher Enricher
	builder  DocumentBuilder
	mail     Mailer
	ledger   LedgerAppender
	log      *logger.Logger
}

// New creates the pipeline service.
func New(enricher Enricher, builder DocumentBuilder, mail Mailer, ledger LedgerAppender, log *logger.Logger) *Service {
	return &Service{enricher: enricher, builder: builder, mail: mail, ledger: ledger, log: log}
}

// Process runs the pipeline for one submission. The customer catalog send
// defines the user-visible outcome; the ledger append and the business
// notification are attempted regardless and their failures are logged, not
// surfaced — the customer has already completed their part.
func (s *Service) Process(ctx context.Context, sub transport.Submission) error {
	log := s.log.WithContext(ctx)

	data := s.enricher.Enrich(ctx, sub.ProductRef, sub.Items)
	html, err := s.builder.Build(data)
	if err != nil {
		log.Error("catalog document build failed", "error", err)
		return apperr.Wrap(apperr.KindInternal, "could not prepare the catalog email", err)
	}
	rateText := RateText(data)

	var customerErr, ledgerErr, notifyErr error
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		customerErr = s.mail.SendCatalog(gctx, sub.Email, data.ProductName, html)
		return nil
	})
	g.Go(func() error {
		// The ledger write and the business notification are independent:
		// a failed append must not block the notification attempt.
		ledgerErr = s.ledger.Append(gctx, sub)
		notifyErr = s.mail.SendLeadNotification(gctx, mailer.LeadNotification{
			Submission: sub,
			RateText:   rateText,
		})
		return nil
	})
	_ = g.Wait()

	if ledgerErr != nil {
		log.Error("ledger append failed", "error", ledgerErr, "kind", sub.Kind)
	}
	if notifyErr != nil {
		log.Error("business notification failed", "error", notifyErr, "kind", sub.Kind)
	}
	if customerErr != nil {
		log.Error("customer catalog send failed", "error", customerErr)
		return customerErr
	}
	return nil
}

// RateText renders the advisory rate content of the active tier as plain
// text, exactly as the business should reconcile it. Empty for the
// contact-us tier.
func RateText(data etransport.CatalogData) string {
	switch data.Tier() {
	case etransport.TierLive:
		lines := make([]string, 0, len(data.TentativeRates))
		for _, r := range data.TentativeRates {
			line := r.Rate
			if r.Unit != "" {
				line += " / " + r.Unit
			}
			if r.Supplier != "" {
				line = r.Supplier + ": " + line
			}
			if r.Note != "" {
				line += fmt.Sprintf(" (%s)", r.Note)
			}
			lines = append(lines, line)
		}
		return strings.Join(lines, "\n")
	case etransport.TierIndicative:
		return data.IndicativeRateRange
	default:
		return ""
	}
}
