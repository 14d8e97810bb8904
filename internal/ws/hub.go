package ws

import (
	"encoding/json"
	"sync"
	"time"

	"pricex-backend/pkg/logger"

	"github.com/gofiber/contrib/websocket"
)

// Hub fans price and alert events out to connected clients
type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			logger.Log.Debug().Msg("ws client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Publish queues a typed event for broadcast. The feed is best-effort:
// when the buffer is full the event is dropped rather than blocking the
// request path.
func (h *Hub) Publish(event string, payload interface{}) {
	msg, err := json.Marshal(map[string]interface{}{
		"type":      event,
		"data":      payload,
		"timestamp": time.Now(),
	})
	if err != nil {
		return
	}
	select {
	case h.Broadcast <- msg:
	default:
		logger.Log.Debug().Str("event", event).Msg("ws broadcast buffer full, event dropped")
	}
}
