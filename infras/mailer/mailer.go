package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"

	"hms/config"

	"github.com/rs/zerolog/log"
)

// Mailer delivers transactional email. Implementations must honor the
// context deadline for connection setup.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type smtpMailer struct {
	config *config.Config
}

func New(cfg *config.Config) Mailer {
	return &smtpMailer{config: cfg}
}

// Send delivers an HTML mail over implicit TLS (port 465 style SMTP).
func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	cfg := m.config.Mail

	if !cfg.Enable {
		log.Warn().Str("to", to).Str("subject", subject).Msg("Mail delivery disabled, dropping message")

		return nil
	}

	msg := []byte(
		fmt.Sprintf("From: %s\r\n", cfg.Sender) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body,
	)

	addr := net.JoinHostPort(cfg.Host, cfg.Port)

	dialer := &tls.Dialer{
		Config: &tls.Config{ServerName: cfg.Host},
	}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to dial smtp server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, cfg.Host)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := client.Mail(cfg.Sender); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data writer: %w", err)
	}

	if _, err := writer.Write(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("Mail sent")

	return nil
}
