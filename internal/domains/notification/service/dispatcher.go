package service

import (
	"context"

	"github.com/google/uuid"

	"authorsite-backend/internal/domains/notification"
	"authorsite-backend/internal/domains/user"
	"authorsite-backend/pkg/cache"
	"authorsite-backend/pkg/logger"
)

// eventNewNotification is the websocket event name pushed to live
// sessions when a record lands in their inbox.
const eventNewNotification = "new_notification"

// RecipientResolver yields the accounts that receive moderation
// alerts. Satisfied by user.Repository.
type RecipientResolver interface {
	FindElevated(ctx context.Context) ([]user.User, error)
}

// Publisher pushes an event to a recipient's live sessions,
// best-effort. Satisfied by realtime.Hub.
type Publisher interface {
	Publish(recipientID uuid.UUID, event string, payload interface{})
}

// Dispatcher fans an event out to every elevated account: one
// persisted record per recipient, plus a best-effort real-time push.
// It fails only when it cannot run at all; per-recipient persistence
// failures are logged and skipped.
type Dispatcher struct {
	resolver   RecipientResolver
	repository notification.Repository
	publisher  Publisher
	cache      cache.Cache
}

func NewDispatcher(resolver RecipientResolver, repo notification.Repository, publisher Publisher, c cache.Cache) *Dispatcher {
	return &Dispatcher{
		resolver:   resolver,
		repository: repo,
		publisher:  publisher,
		cache:      c,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, eventType, message string, link *string) error {
	typ := notification.Type(eventType)
	if !typ.IsValid() {
		return notification.ErrInvalidType
	}

	recipients, err := d.resolver.FindElevated(ctx)
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		return nil
	}

	for _, recipient := range recipients {
		n := &notification.Notification{
			UserID:  recipient.ID,
			Type:    typ,
			Message: message,
			Link:    link,
		}

		if err := d.repository.Create(ctx, n); err != nil {
			logger.Error("failed to persist notification", err, map[string]interface{}{
				"recipient": recipient.ID.String(),
				"type":      eventType,
			})
			continue
		}

		if err := d.cache.Delete(ctx, unreadCountKey(recipient.ID)); err != nil {
			logger.Warn("failed to invalidate unread count cache", map[string]interface{}{
				"recipient": recipient.ID.String(),
				"error":     err.Error(),
			})
		}

		d.publisher.Publish(recipient.ID, eventNewNotification, n)
	}

	return nil
}
