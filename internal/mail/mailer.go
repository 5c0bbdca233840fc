// Package mail delivers transactional email over SMTP. The SMTPMailer is
// constructed once during app wiring and injected wherever a
// service.Mailer is needed.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"github.com/murmurapp/murmur/pkg/slogx"
)

// Config holds the SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string

	// From is the sender address on outgoing mail.
	From string

	// AppURL is the public base URL used to build verification links.
	AppURL string
}

// SMTPMailer sends verification email through a single long-lived SMTP
// client.
type SMTPMailer struct {
	client *gomail.Client
	from   string
	appURL string
}

// NewSMTPMailer builds the mailer. The underlying client dials lazily,
// so construction succeeds even when the SMTP host is unreachable.
func NewSMTPMailer(cfg Config) (*SMTPMailer, error) {
	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("mail: build smtp client: %w", err)
	}

	return &SMTPMailer{
		client: client,
		from:   cfg.From,
		appURL: cfg.AppURL,
	}, nil
}

// SendVerification emails the 6-digit code and a verification link.
func (m *SMTPMailer) SendVerification(ctx context.Context, email, username, code string) error {
	log := slogx.FromContext(ctx)

	var body bytes.Buffer
	if err := verificationTmpl.Execute(&body, verificationData{
		Username:  username,
		Code:      code,
		VerifyURL: fmt.Sprintf("%s/verify/%s", m.appURL, username),
	}); err != nil {
		return fmt.Errorf("mail: render verification email: %w", err)
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("mail: invalid from address: %w", err)
	}
	if err := msg.To(email); err != nil {
		return fmt.Errorf("mail: invalid recipient address: %w", err)
	}
	msg.Subject("Verify your email - Murmur")
	msg.SetBodyString(gomail.TypeTextHTML, body.String())

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail: send verification email: %w", err)
	}

	log.Debug("verification email sent", slog.String("to", email))
	return nil
}
