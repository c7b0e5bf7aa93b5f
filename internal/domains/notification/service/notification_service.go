package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"authorsite-backend/internal/domains/notification"
	"authorsite-backend/pkg/cache"
	"authorsite-backend/pkg/logger"
)

const unreadCountTTL = 60 * time.Second

func unreadCountKey(userID uuid.UUID) string {
	return fmt.Sprintf("notifications:unread:%s", userID)
}

type notificationServiceImpl struct {
	repository notification.Repository
	cache      cache.Cache
}

func NewNotificationService(repo notification.Repository, c cache.Cache) notification.Service {
	return &notificationServiceImpl{repository: repo, cache: c}
}

func (s *notificationServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error) {
	return s.repository.FindByUser(ctx, userID)
}

func (s *notificationServiceImpl) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	key := unreadCountKey(userID)

	var cached int
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return cached, nil
	}

	count, err := s.repository.CountUnread(ctx, userID)
	if err != nil {
		return 0, err
	}

	if err := s.cache.Set(ctx, key, count, unreadCountTTL); err != nil {
		logger.Warn("failed to cache unread count", map[string]interface{}{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
	}

	return count, nil
}

func (s *notificationServiceImpl) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repository.MarkRead(ctx, userID, id); err != nil {
		return err
	}

	s.invalidateUnreadCount(ctx, userID)
	return nil
}

func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	updated, err := s.repository.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, err
	}

	if updated > 0 {
		s.invalidateUnreadCount(ctx, userID)
	}
	return updated, nil
}

func (s *notificationServiceImpl) invalidateUnreadCount(ctx context.Context, userID uuid.UUID) {
	if err := s.cache.Delete(ctx, unreadCountKey(userID)); err != nil {
		logger.Warn("failed to invalidate unread count cache", map[string]interface{}{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
	}
}
