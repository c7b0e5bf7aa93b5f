package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authorsite-backend/internal/domains/notification"
	"authorsite-backend/internal/domains/user"
)

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications map[uuid.UUID]*notification.Notification
	failFor       map[uuid.UUID]bool
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{
		notifications: make(map[uuid.UUID]*notification.Notification),
		failFor:       make(map[uuid.UUID]bool),
	}
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[n.UserID] {
		return errors.New("insert failed")
	}
	n.ID = uuid.New()
	n.CreatedAt = time.Now()
	stored := *n
	f.notifications[n.ID] = &stored
	return nil
}

func (f *fakeNotificationRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]notification.Notification, 0)
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeNotificationRepo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, n := range f.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notifications[id]
	if !ok || n.UserID != userID {
		return notification.ErrNotificationNotFound
	}
	n.IsRead = true
	return nil
}

func (f *fakeNotificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	updated := 0
	for _, n := range f.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			updated++
		}
	}
	return updated, nil
}

type stubResolver struct {
	recipients []user.User
	err        error
}

func (s *stubResolver) FindElevated(ctx context.Context) ([]user.User, error) {
	return s.recipients, s.err
}

type publishedFrame struct {
	recipient uuid.UUID
	event     string
}

type fakePublisher struct {
	frames []publishedFrame
}

func (f *fakePublisher) Publish(recipientID uuid.UUID, event string, payload interface{}) {
	f.frames = append(f.frames, publishedFrame{recipient: recipientID, event: event})
}

// memoryCache is a map-backed cache.Cache for tests.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = data
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}

func (m *memoryCache) Ping(ctx context.Context) error { return nil }

func (m *memoryCache) Increment(ctx context.Context, key string) (int64, error) { return 0, nil }

func (m *memoryCache) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	return ok, nil
}

func (m *memoryCache) Expire(ctx context.Context, key string, ttl time.Duration) error { return nil }

func admin() user.User {
	return user.User{ID: uuid.New(), Username: "admin", Role: user.RoleAdmin}
}

func TestDispatchCreatesOneRecordPerRecipient(t *testing.T) {
	repo := newFakeNotificationRepo()
	publisher := &fakePublisher{}
	recipients := []user.User{admin(), admin(), admin()}

	d := NewDispatcher(&stubResolver{recipients: recipients}, repo, publisher, newMemoryCache())

	link := "/admin/comments"
	err := d.Dispatch(context.Background(), "comment", "a comment awaits approval", &link)
	require.NoError(t, err)

	assert.Len(t, repo.notifications, 3)
	for _, recipient := range recipients {
		inbox, err := repo.FindByUser(context.Background(), recipient.ID)
		require.NoError(t, err)
		require.Len(t, inbox, 1)
		assert.Equal(t, notification.TypeComment, inbox[0].Type)
		assert.False(t, inbox[0].IsRead)
		require.NotNil(t, inbox[0].Link)
		assert.Equal(t, link, *inbox[0].Link)
	}

	assert.Len(t, publisher.frames, 3)
	for _, frame := range publisher.frames {
		assert.Equal(t, "new_notification", frame.event)
	}
}

func TestDispatchNoRecipientsIsNotAnError(t *testing.T) {
	repo := newFakeNotificationRepo()
	publisher := &fakePublisher{}
	d := NewDispatcher(&stubResolver{}, repo, publisher, newMemoryCache())

	err := d.Dispatch(context.Background(), "comment", "msg", nil)
	require.NoError(t, err)
	assert.Empty(t, repo.notifications)
	assert.Empty(t, publisher.frames)
}

func TestDispatchResolverFailurePropagates(t *testing.T) {
	resolverErr := errors.New("resolver down")
	d := NewDispatcher(&stubResolver{err: resolverErr}, newFakeNotificationRepo(), &fakePublisher{}, newMemoryCache())

	err := d.Dispatch(context.Background(), "comment", "msg", nil)
	assert.ErrorIs(t, err, resolverErr)
}

func TestDispatchSkipsFailedRecipients(t *testing.T) {
	repo := newFakeNotificationRepo()
	publisher := &fakePublisher{}
	healthy := admin()
	broken := admin()
	repo.failFor[broken.ID] = true

	d := NewDispatcher(&stubResolver{recipients: []user.User{broken, healthy}}, repo, publisher, newMemoryCache())

	err := d.Dispatch(context.Background(), "comment", "msg", nil)
	require.NoError(t, err)

	inbox, err := repo.FindByUser(context.Background(), healthy.ID)
	require.NoError(t, err)
	assert.Len(t, inbox, 1)

	brokenInbox, err := repo.FindByUser(context.Background(), broken.ID)
	require.NoError(t, err)
	assert.Empty(t, brokenInbox)

	// No push without a persisted record.
	require.Len(t, publisher.frames, 1)
	assert.Equal(t, healthy.ID, publisher.frames[0].recipient)
}

func TestDispatchRejectsUnknownType(t *testing.T) {
	d := NewDispatcher(&stubResolver{recipients: []user.User{admin()}}, newFakeNotificationRepo(), &fakePublisher{}, newMemoryCache())

	err := d.Dispatch(context.Background(), "broadcast", "msg", nil)
	assert.ErrorIs(t, err, notification.ErrInvalidType)
}

func TestDispatchInvalidatesUnreadCountCache(t *testing.T) {
	repo := newFakeNotificationRepo()
	c := newMemoryCache()
	recipient := admin()

	svc := NewNotificationService(repo, c)

	count, err := svc.UnreadCount(context.Background(), recipient.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	d := NewDispatcher(&stubResolver{recipients: []user.User{recipient}}, repo, &fakePublisher{}, c)
	require.NoError(t, d.Dispatch(context.Background(), "comment", "msg", nil))

	count, err = svc.UnreadCount(context.Background(), recipient.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
