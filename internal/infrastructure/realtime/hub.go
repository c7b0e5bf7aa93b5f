package realtime

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"authorsite-backend/pkg/logger"
)

// sendBuffer bounds each session's outbound queue. A slow consumer
// drops frames instead of blocking publishers.
const sendBuffer = 16

// Hub owns the registry of live websocket sessions, keyed by the
// recipient's user ID. One user may hold several sessions (tabs,
// devices); publishing targets all of them.
type Hub struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]map[*Session]struct{}
}

// Session is a single live connection belonging to one user.
type Session struct {
	userID uuid.UUID
	send   chan []byte
}

type envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[uuid.UUID]map[*Session]struct{}),
	}
}

// Register adds a session for userID and returns it. The caller owns
// draining Outbound until Unregister closes it.
func (h *Hub) Register(userID uuid.UUID) *Session {
	s := &Session{
		userID: userID,
		send:   make(chan []byte, sendBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sessions[userID] == nil {
		h.sessions[userID] = make(map[*Session]struct{})
	}
	h.sessions[userID][s] = struct{}{}

	return s
}

// Unregister removes the session and closes its outbound channel.
// Safe to call once per session.
func (h *Hub) Unregister(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.sessions[s.userID]
	if !ok {
		return
	}
	if _, ok := set[s]; !ok {
		return
	}

	delete(set, s)
	if len(set) == 0 {
		delete(h.sessions, s.userID)
	}
	close(s.send)
}

// Publish delivers an event to every live session of the recipient,
// best-effort: no sessions, a marshal failure or a full buffer are all
// tolerated and never surface to the caller.
func (h *Hub) Publish(recipientID uuid.UUID, event string, payload interface{}) {
	frame, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		logger.Error("realtime: marshal event", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for s := range h.sessions[recipientID] {
		select {
		case s.send <- frame:
		default:
			// Slow consumer: drop the frame rather than block.
			logger.Warn("realtime: dropping frame", map[string]interface{}{
				"recipient": recipientID.String(),
				"event":     event,
			})
		}
	}
}

// SessionCount reports how many live sessions a user holds.
func (h *Hub) SessionCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[userID])
}

// Outbound exposes the session's frame stream to the write pump.
func (s *Session) Outbound() <-chan []byte {
	return s.send
}

// UserID returns the owning user of this session.
func (s *Session) UserID() uuid.UUID {
	return s.userID
}
