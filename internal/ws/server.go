package ws

import (
	"time"

	"liveusers/internal/metrics"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Server turns accepted websocket upgrades into hub sessions. There is no
// opt-in: every connection joins the group for its lifetime.
type Server struct {
	hub           *Hub
	pingInterval  time.Duration
	writeDeadline time.Duration
	sendBuffer    int
	log           *zap.Logger
}

func NewServer(hub *Hub, pingInterval, writeDeadline time.Duration, sendBuffer int, log *zap.Logger) *Server {
	return &Server{
		hub:           hub,
		pingInterval:  pingInterval,
		writeDeadline: writeDeadline,
		sendBuffer:    sendBuffer,
		log:           log,
	}
}

// HandleWS is mounted behind the fiber/websocket upgrade middleware. It
// blocks until the client disconnects.
func (s *Server) HandleWS() func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		sess := NewSession(uuid.New().String(), conn, s.sendBuffer)

		s.hub.Add(sess)
		metrics.ActiveConnections.Inc()
		s.log.Info("client connected",
			zap.String("session_id", sess.ID),
			zap.String("group", s.hub.group))

		go sess.writePump(s.pingInterval, s.writeDeadline)
		sess.readPump()

		s.hub.Remove(sess.ID)
		sess.Close()
		metrics.ActiveConnections.Dec()
		s.log.Info("client disconnected", zap.String("session_id", sess.ID))
	}
}
