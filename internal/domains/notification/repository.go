package notification

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for notification inboxes.
// Every read and write is scoped to a recipient; one account can never
// see or touch another account's records.
type Repository interface {
	Create(ctx context.Context, n *Notification) error

	// FindByUser returns the recipient's notifications, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Notification, error)

	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)

	// MarkRead flips one record owned by userID. ErrNotificationNotFound
	// when the record does not exist or belongs to someone else.
	MarkRead(ctx context.Context, userID, id uuid.UUID) error

	// MarkAllRead flips every unread record owned by userID and
	// returns how many changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
}
