// Package mailer sends the customer catalog email and the business lead
// notification through one shared SMTP identity.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"tradedesk_backend/platform/apperr"
	"tradedesk_backend/platform/config"
	"tradedesk_backend/platform/logger"
)

const (
	smtpTimeout = 15 * time.Second

	subjectCatalogFmt      = "Your catalog and rates: %s"
	subjectNotificationFmt = "New %s lead: %s"
)

// Attachment is a file attached to an outbound message.
type Attachment struct {
	FileName string
	Content  []byte
}

// Dispatcher delivers mail over an authenticated SMTP relay. The customer
// send and the business notification are independent operations: each
// returns its own error and neither blocks the other.
type Dispatcher struct {
	host       string
	port       int
	username   string
	password   string
	fromName   string
	fromEmail  string
	notifyAddr string
	configured bool
	log        *logger.Logger
}

// NewDispatcher creates a dispatcher from mail config. Missing credentials
// do not fail construction; they fail each send with a typed configuration
// error so the rest of the pipeline still runs.
func NewDispatcher(cfg config.MailConfig, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		host:       cfg.GetSMTPHost(),
		port:       cfg.GetSMTPPort(),
		username:   cfg.GetSMTPUser(),
		password:   cfg.GetSMTPPassword(),
		fromName:   cfg.GetMailFromName(),
		fromEmail:  cfg.GetMailFromAddress(),
		notifyAddr: cfg.GetNotifyAddress(),
		configured: cfg.IsMailConfigured(),
		log:        log,
	}
}

// SendCatalog mails the rendered catalog document to the customer.
func (d *Dispatcher) SendCatalog(ctx context.Context, toEmail, productName, htmlContent string) error {
	if !d.configured {
		return apperr.ConfigurationMissing("mail delivery is not configured").WithOp("mailer.SendCatalog")
	}
	subject := fmt.Sprintf(subjectCatalogFmt, productName)
	if err := d.send(ctx, toEmail, subject, gomail.TypeTextHTML, htmlContent); err != nil {
		d.log.ExternalServiceError("smtp", "customer catalog send", err)
		return apperr.Wrap(apperr.KindUnavailable, "could not deliver the catalog email", err)
	}
	return nil
}

// SendLeadNotification mails the plain-text lead summary with its CSV
// attachment to the business inbox.
func (d *Dispatcher) SendLeadNotification(ctx context.Context, n LeadNotification) error {
	if !d.configured {
		return apperr.ConfigurationMissing("mail delivery is not configured").WithOp("mailer.SendLeadNotification")
	}

	fields := n.fields()
	subject := fmt.Sprintf(subjectNotificationFmt, n.Submission.Kind, n.Submission.Name)
	body := notificationBody(fields, n.RateText)
	att := Attachment{
		FileName: csvFilename(n.Submission.Name, n.Submission.ReceivedAt),
		Content:  buildCSV(fields),
	}

	if err := d.send(ctx, d.notifyAddr, subject, gomail.TypeTextPlain, body, att); err != nil {
		d.log.ExternalServiceError("smtp", "business notification send", err)
		return apperr.Wrap(apperr.KindUnavailable, "could not deliver the lead notification", err)
	}
	return nil
}

func (d *Dispatcher) send(ctx context.Context, toEmail, subject string, contentType gomail.ContentType, body string, attachments ...Attachment) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(d.fromName, d.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(contentType, body)

	for _, att := range attachments {
		msg.AttachReader(att.FileName, bytes.NewReader(att.Content))
	}

	client, err := gomail.NewClient(d.host,
		gomail.WithPort(d.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(d.username),
		gomail.WithPassword(d.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(smtpTimeout),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
