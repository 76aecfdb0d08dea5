package ws

import (
	"encoding/json"
	"sync"

	"liveusers/internal/events"
	"liveusers/internal/metrics"

	"go.uber.org/zap"
)

// GroupLiveUsers is the single broadcast group every session joins on
// connect.
const GroupLiveUsers = "live_users"

// Hub owns the session registry for one broadcast group. Membership is
// mutated only through Add/Remove and guarded by the mutex; delivery is
// best-effort with no replay for late joiners.
type Hub struct {
	group    string
	sessions map[string]*Session
	mu       sync.RWMutex
	log      *zap.Logger
}

func NewHub(group string, log *zap.Logger) *Hub {
	return &Hub{
		group:    group,
		sessions: make(map[string]*Session),
		log:      log,
	}
}

func (h *Hub) Add(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s.ID] = s
}

func (h *Hub) Remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, id)
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Broadcast sends an event to every session currently in the group.
// Fire-and-forget: slow sessions are skipped rather than blocked on.
func (h *Hub) Broadcast(event string, data any) {
	b, err := json.Marshal(events.Envelope{Event: event, Data: data})
	if err != nil {
		h.log.Error("marshal broadcast event", zap.String("event", event), zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.sessions {
		s.enqueue(b)
	}
	metrics.BroadcastsTotal.Inc()
	h.log.Debug("broadcast",
		zap.String("group", h.group),
		zap.String("event", event),
		zap.Int("sessions", len(h.sessions)))
}
