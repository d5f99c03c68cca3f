// Package mailer sends plain-text notification mail. The SMTP implementation
// is used when SMTP_HOST is configured; otherwise messages are only logged.
package mailer

import (
	"context"
	"fmt"

	"github.com/lshigami/quizmaster/config"
	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

func NewMailer(cfg *config.Config) (Mailer, error) {
	if cfg.SMTP.Host == "" {
		log.Warn().Msg("SMTP_HOST is not set. Outgoing mail will only be logged.")
		return NewLogMailer(), nil
	}
	return NewSMTPMailer(cfg.SMTP)
}

type smtpMailer struct {
	client *mail.Client
	from   string
}

func NewSMTPMailer(cfg config.SMTP) (Mailer, error) {
	opts := []mail.Option{mail.WithPort(cfg.Port)}
	if cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client for %s: %w", cfg.Host, err)
	}
	return &smtpMailer{client: client, from: cfg.From}, nil
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("mail has no recipient")
	}
	out := mail.NewMsg()
	if err := out.From(m.from); err != nil {
		return fmt.Errorf("invalid sender %q: %w", m.from, err)
	}
	if err := out.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextPlain, msg.Body)

	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("sending mail to %s: %w", msg.To, err)
	}
	return nil
}

type logMailer struct{}

func NewLogMailer() Mailer {
	return logMailer{}
}

func (logMailer) Send(_ context.Context, msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("mail has no recipient")
	}
	log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("Mail (not sent, SMTP disabled)")
	return nil
}
