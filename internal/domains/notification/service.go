package notification

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for notification inboxes.
type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
}
