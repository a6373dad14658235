package mock

import (
	"context"

	"github.com/fhuszti/paper-site-go/internal/port"
)

// Mailer records sent emails.
type Mailer struct {
	Err  error
	Sent []port.Email
}

func (m *Mailer) Send(ctx context.Context, e port.Email) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, e)
	return nil
}
