package port

import "context"

type Email struct {
	To      []string
	ReplyTo string
	Subject string
	Text    string
}

// Mailer sends transactional email.
type Mailer interface {
	Send(ctx context.Context, e Email) error
}
