package lead

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/uuid"
)

type leadNotifierSrv struct {
	repo       port.LeadRepository
	mailer     port.Mailer
	recipients []string
}

// compile-time check: *leadNotifierSrv must satisfy port.LeadNotifier
var _ port.LeadNotifier = (*leadNotifierSrv)(nil)

func NewLeadNotifier(repo port.LeadRepository, mailer port.Mailer, recipients []string) port.LeadNotifier {
	return &leadNotifierSrv{repo: repo, mailer: mailer, recipients: recipients}
}

// NotifyLead emails the sales inbox once per lead. Leads already notified,
// and setups without recipients, are skipped.
func (s *leadNotifierSrv) NotifyLead(ctx context.Context, id uuid.UUID) error {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if l.NotifiedAt != nil {
		logger.Infof(ctx, "lead #%s already notified, skipping", id)
		return nil
	}
	if len(s.recipients) == 0 {
		logger.Warnf(ctx, "⚠️  no lead recipients configured, lead #%s not emailed", id)
		return nil
	}

	if err := s.mailer.Send(ctx, leadEmail(l, s.recipients)); err != nil {
		return fmt.Errorf("send lead #%s: %w", id, err)
	}
	if err := s.repo.MarkNotified(ctx, id); err != nil {
		return err
	}

	logger.Infof(ctx, "✅  lead #%s emailed to %d recipient(s)", id, len(s.recipients))
	return nil
}

func leadEmail(l *model.Lead, to []string) port.Email {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", l.Name)
	fmt.Fprintf(&b, "Email: %s\n", l.Email)
	if l.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", l.Phone)
	}
	if l.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", l.Company)
	}
	fmt.Fprintf(&b, "Source: %s\n", l.Source)
	fmt.Fprintf(&b, "Received: %s\n\n", l.CreatedAt.Format("2006-01-02 15:04 MST"))
	b.WriteString(l.Message)
	b.WriteString("\n")

	return port.Email{
		To:      to,
		ReplyTo: l.Email,
		Subject: "New lead: " + l.Name,
		Text:    b.String(),
	}
}
