package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/hackfest/api/internal/config"
	"github.com/hackfest/api/internal/registration/model"
	"github.com/hackfest/api/pkg/retry"
)

// SMTPNotifier sends a plain-text registration notification over SMTP.
type SMTPNotifier struct {
	cfg      config.MailConfig
	retryCfg retry.Config
	send     func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTP creates an SMTP notifier from mail configuration.
func NewSMTP(cfg config.MailConfig) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:      cfg,
		retryCfg: retry.SMTPConfig(),
		send:     smtp.SendMail,
	}
}

// NotifyRegistration mails a registration summary to the configured address.
func (n *SMTPNotifier) NotifyRegistration(ctx context.Context, reg *model.TeamRegistration) error {
	msg := buildMessage(n.cfg.NotifyTo, reg)
	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	addr := n.cfg.Host + ":" + n.cfg.Port

	err := retry.Do(ctx, n.retryCfg, func() error {
		return n.send(addr, auth, n.cfg.Username, []string{n.cfg.NotifyTo}, msg)
	})
	if err != nil {
		return fmt.Errorf("failed to send registration notification: %w", err)
	}
	return nil
}

// buildMessage renders the notification body with headers.
func buildMessage(to string, reg *model.TeamRegistration) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: New team registration: %s\r\n", reg.TeamName)
	b.WriteString("MIME-version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")

	fmt.Fprintf(&b, "Team %q registered with %d participants.\n\n", reg.TeamName, reg.TeamSize)
	fmt.Fprintf(&b, "Lead: %s <%s>\n", reg.LeadName, reg.LeadEmail)
	for _, m := range reg.Members {
		fmt.Fprintf(&b, "Member %d: %s <%s>\n", m.Slot, m.Name, m.Email)
	}
	if reg.Campus != "" {
		fmt.Fprintf(&b, "Campus: %s\n", reg.Campus)
	}
	if reg.Batch != "" {
		fmt.Fprintf(&b, "Batch: %s\n", reg.Batch)
	}
	return []byte(b.String())
}
