package model

import (
	"time"

	"github.com/fhuszti/paper-site-go/internal/uuid"
)

// Lead is an inbound contact request from the public site.
type Lead struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone,omitempty"`
	Company    string     `json:"company,omitempty"`
	Message    string     `json:"message"`
	Source     string     `json:"source,omitempty"`
	NotifiedAt *time.Time `json:"notified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
