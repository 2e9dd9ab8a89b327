package service

import (
	"errors"
	"fmt"

	"github.com/devfolio/internal/db"
	"github.com/wneessen/go-mail"
)

// ErrNotifierDisabled 在未配置 SMTP 主机时返回
var ErrNotifierDisabled = errors.New("mail notifier disabled: no SMTP host configured")

// MailNotifier delivers contact notifications to a single fixed operator
// address over SMTP. One synchronous attempt per submission, no retry and
// no queue; the caller decides what to do with a failure.
type MailNotifier struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       string
}

// NewMailNotifier constructs a MailNotifier. An empty host yields a
// notifier that reports itself disabled on every attempt.
func NewMailNotifier(host string, port int, username, password, from, to string) *MailNotifier {
	return &MailNotifier{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		to:       to,
	}
}

// Notify sends a plain-text notification for the stored message.
func (n *MailNotifier) Notify(msg *db.ContactMessage) error {
	if n.host == "" {
		return ErrNotifierDisabled
	}

	m := mail.NewMsg()
	if err := m.From(n.from); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := m.To(n.to); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}

	m.Subject("New Contact Form Submission: " + msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, notificationBody(msg))

	opts := []mail.Option{
		mail.WithPort(n.port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if n.username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.username),
			mail.WithPassword(n.password),
		)
	}

	client, err := mail.NewClient(n.host, opts...)
	if err != nil {
		return fmt.Errorf("create mail client: %w", err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("send notification mail: %w", err)
	}
	return nil
}

func notificationBody(msg *db.ContactMessage) string {
	return fmt.Sprintf(`New contact form submission from your portfolio website:

Name: %s
Email: %s
Subject: %s

Message:
%s

Submitted at: %s
`, msg.Name, msg.Email, msg.Subject, msg.Message, msg.CreatedAt.Format("2006-01-02 15:04:05"))
}
