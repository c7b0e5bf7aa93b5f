package realtime

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesAllSessionsOfRecipient(t *testing.T) {
	hub := NewHub()
	alice := uuid.New()
	bob := uuid.New()

	s1 := hub.Register(alice)
	s2 := hub.Register(alice)
	s3 := hub.Register(bob)

	hub.Publish(alice, "new_notification", map[string]string{"message": "hello"})

	for _, s := range []*Session{s1, s2} {
		select {
		case frame := <-s.Outbound():
			var env struct {
				Event string            `json:"event"`
				Data  map[string]string `json:"data"`
			}
			require.NoError(t, json.Unmarshal(frame, &env))
			assert.Equal(t, "new_notification", env.Event)
			assert.Equal(t, "hello", env.Data["message"])
		default:
			t.Fatal("expected a frame on the session")
		}
	}

	select {
	case <-s3.Outbound():
		t.Fatal("bob must not receive alice's notification")
	default:
	}
}

func TestPublishWithoutSessionsIsNoop(t *testing.T) {
	hub := NewHub()

	// Must not panic or block.
	hub.Publish(uuid.New(), "new_notification", "payload")
}

func TestPublishDropsFramesOnFullBuffer(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()
	s := hub.Register(userID)

	// Nobody drains the session; overflow must not block the publisher.
	for i := 0; i < sendBuffer+5; i++ {
		hub.Publish(userID, "new_notification", i)
	}

	assert.Equal(t, sendBuffer, len(s.send))
}

func TestUnregisterClosesSessionAndForgetsUser(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()
	s := hub.Register(userID)

	require.Equal(t, 1, hub.SessionCount(userID))

	hub.Unregister(s)
	assert.Equal(t, 0, hub.SessionCount(userID))

	_, open := <-s.Outbound()
	assert.False(t, open)

	// Second unregister is a no-op.
	hub.Unregister(s)
}
