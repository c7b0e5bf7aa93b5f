package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authorsite-backend/internal/domains/notification"
)

func seedNotification(t *testing.T, repo *fakeNotificationRepo, userID uuid.UUID, createdAt time.Time) uuid.UUID {
	t.Helper()
	n := &notification.Notification{
		UserID:  userID,
		Type:    notification.TypeComment,
		Message: "a comment awaits approval",
	}
	require.NoError(t, repo.Create(context.Background(), n))
	repo.notifications[n.ID].CreatedAt = createdAt
	return n.ID
}

func TestListIsOwnerScopedAndNewestFirst(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, newMemoryCache())

	owner := uuid.New()
	other := uuid.New()

	older := seedNotification(t, repo, owner, time.Now().Add(-time.Hour))
	newer := seedNotification(t, repo, owner, time.Now())
	seedNotification(t, repo, other, time.Now())

	list, err := svc.List(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer, list[0].ID)
	assert.Equal(t, older, list[1].ID)
}

func TestMarkReadRefusesForeignRecord(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, newMemoryCache())

	owner := uuid.New()
	intruder := uuid.New()
	id := seedNotification(t, repo, owner, time.Now())

	err := svc.MarkRead(context.Background(), intruder, id)
	assert.ErrorIs(t, err, notification.ErrNotificationNotFound)
	assert.Equal(t, "NOT_FOUND", notification.ToErrorCode(err))

	require.NoError(t, svc.MarkRead(context.Background(), owner, id))

	count, err := svc.UnreadCount(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMarkAllReadScopedToOwner(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, newMemoryCache())

	owner := uuid.New()
	other := uuid.New()

	seedNotification(t, repo, owner, time.Now())
	seedNotification(t, repo, owner, time.Now())
	seedNotification(t, repo, other, time.Now())

	updated, err := svc.MarkAllRead(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	otherCount, err := svc.UnreadCount(context.Background(), other)
	require.NoError(t, err)
	assert.Equal(t, 1, otherCount)

	// Repeating is a harmless no-op.
	updated, err = svc.MarkAllRead(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 0, updated)
}

func TestUnreadCountUsesCacheUntilInvalidated(t *testing.T) {
	repo := newFakeNotificationRepo()
	c := newMemoryCache()
	svc := NewNotificationService(repo, c)

	owner := uuid.New()
	seedNotification(t, repo, owner, time.Now())

	count, err := svc.UnreadCount(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// A write that bypasses the service is invisible until the cache
	// entry is invalidated or expires.
	seedNotification(t, repo, owner, time.Now())

	count, err = svc.UnreadCount(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	id := seedNotification(t, repo, owner, time.Now())
	require.NoError(t, svc.MarkRead(context.Background(), owner, id))

	count, err = svc.UnreadCount(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
