package chat

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans incoming chat messages out to the owner dashboards watching a
// restroom. The mobile client itself polls over REST and never connects here.
type Hub struct {
	subscribers map[int64]map[*websocket.Conn]bool
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[int64]map[*websocket.Conn]bool),
	}
}

func (h *Hub) Subscribe(restroomID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.subscribers[restroomID] == nil {
		h.subscribers[restroomID] = make(map[*websocket.Conn]bool)
	}
	h.subscribers[restroomID][conn] = true
}

func (h *Hub) Unsubscribe(restroomID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conns, exists := h.subscribers[restroomID]; exists {
		_ = conn.Close()
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.subscribers, restroomID)
		}
	}
}

func (h *Hub) Broadcast(restroomID int64, message interface{}) {
	h.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(h.subscribers[restroomID]))
	for conn := range h.subscribers[restroomID] {
		conns = append(conns, conn)
	}
	h.mutex.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(message); err != nil {
			h.Unsubscribe(restroomID, conn)
		}
	}
}

func (h *Hub) SubscriberCount(restroomID int64) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.subscribers[restroomID])
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for restroomID, conns := range h.subscribers {
		for conn := range conns {
			_ = conn.Close()
		}
		delete(h.subscribers, restroomID)
	}
}
