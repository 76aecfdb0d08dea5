package ws

import (
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
)

const (
	readLimit    = 64 * 1024
	pongWait     = 60 * time.Second
	closeTimeout = time.Second
)

// Session is one connected viewer. Viewers only receive, the read pump
// exists to drive pong handling and to notice disconnects.
type Session struct {
	ID        string
	Connected time.Time

	conn   *websocket.Conn
	send   chan []byte
	mu     sync.Mutex
	closed bool
}

func NewSession(id string, conn *websocket.Conn, sendBuffer int) *Session {
	return &Session{
		ID:        id,
		Connected: time.Now().UTC(),
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
	}
}

// enqueue hands a frame to the write pump without blocking; a full buffer
// means the session is too slow and the frame is dropped.
func (s *Session) enqueue(b []byte) {
	select {
	case s.send <- b:
	default:
	}
}

func (s *Session) Close() {
	s.mu.Lock()
	if !s.closed {
		close(s.send)
		_ = s.conn.Close()
		s.closed = true
	}
	s.mu.Unlock()
}

func (s *Session) readPump() {
	s.conn.SetReadLimit(readLimit)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		// inbound frames are ignored, the channel is one-way
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Session) writePump(pingInterval, writeDeadline time.Duration) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case b, ok := <-s.send:
			if !ok {
				_ = s.conn.WriteControl(websocket.CloseMessage, []byte{}, time.Now().Add(closeTimeout))
				return
			}
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := s.conn.WriteMessage(websocket.TextMessage, b); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := s.conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(closeTimeout)); err != nil {
				return
			}
		}
	}
}
