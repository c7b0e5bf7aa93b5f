package notification

import (
	"time"

	"github.com/google/uuid"
)

// Type classifies what a notification is about.
type Type string

const (
	TypeComment Type = "comment"
	TypeEvent   Type = "event"
	TypeSystem  Type = "system"
)

// IsValid reports whether t is a known notification type.
func (t Type) IsValid() bool {
	switch t {
	case TypeComment, TypeEvent, TypeSystem:
		return true
	}
	return false
}

// Notification is a per-account inbox entry. Records are private to
// their recipient.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      Type      `json:"type"`
	Message   string    `json:"message"`
	Link      *string   `json:"link,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
