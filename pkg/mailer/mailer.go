package mailer

import (
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"transfer-booking/pkg/utils"

	"go.uber.org/zap"
)

// sendTimeout bounds the whole SMTP exchange, dial included. Sends run
// on background goroutines, so a dead SMTP host must not hold them forever.
const sendTimeout = 10 * time.Second

// Mailer delivers plain-text notification emails.
type Mailer interface {
	Send(to []string, subject, body string) error
}

// NewMailer returns an SMTP mailer when SMTP_HOST is configured,
// otherwise a logger-backed mailer for development.
func NewMailer(config utils.EmailConfig, log *zap.Logger) Mailer {
	if config.Host == "" {
		return &logMailer{log: log.With(zap.String("mailer", "log"))}
	}
	return &smtpMailer{
		config:  config,
		log:     log.With(zap.String("mailer", "smtp")),
		timeout: sendTimeout,
	}
}

type smtpMailer struct {
	config  utils.EmailConfig
	log     *zap.Logger
	timeout time.Duration
}

func (m *smtpMailer) Send(to []string, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + m.config.From,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	if err := m.deliver(to, msg); err != nil {
		m.log.Error("Failed to send email",
			zap.Error(err),
			zap.Strings("to", to),
			zap.String("subject", subject),
		)
		return fmt.Errorf("send email %q: %w", subject, err)
	}

	m.log.Info("Email sent",
		zap.Strings("to", to),
		zap.String("subject", subject),
	)
	return nil
}

// deliver speaks SMTP over a connection with an absolute deadline.
// smtp.SendMail has no timeout of its own, so the dial and every
// read/write are bounded here instead.
func (m *smtpMailer) deliver(to []string, msg string) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	conn, err := (&net.Dialer{Timeout: m.timeout}).Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	if err := conn.SetDeadline(time.Now().Add(m.timeout)); err != nil {
		conn.Close()
		return fmt.Errorf("set deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, m.config.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake with %s: %w", addr, err)
	}
	defer client.Close()

	if m.config.User != "" {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(nil); err != nil {
				return fmt.Errorf("starttls: %w", err)
			}
		}
		auth := smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(m.config.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("rcpt %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close message: %w", err)
	}

	return client.Quit()
}

// logMailer prints messages instead of sending them (development mode)
type logMailer struct {
	log *zap.Logger
}

func (m *logMailer) Send(to []string, subject, body string) error {
	m.log.Info("Email (not sent, SMTP disabled)",
		zap.Strings("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
