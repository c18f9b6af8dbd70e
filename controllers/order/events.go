package orderControllers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/hbertrand-dev/watchstore-api/logger"
	"github.com/hbertrand-dev/watchstore-api/models"
)

// writeWait bounds each event write. Broadcasts happen on request
// goroutines, so a stalled dashboard must never hold up an order response;
// a client that cannot keep up is dropped instead.
const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type orderEvent struct {
	Event string        `json:"event"`
	Order *models.Order `json:"order"`
}

type eventHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

var hub = eventHub{clients: make(map[*websocket.Conn]bool)}

func (h *eventHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *eventHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

func (h *eventHub) size() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *eventHub) broadcast(ev orderEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(ev); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// OrderEventsHandler upgrades the connection and streams order lifecycle
// events until the client disconnects.
func OrderEventsHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	hub.add(conn)
	defer hub.remove(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func broadcastOrderEvent(event string, order *models.Order) {
	hub.broadcast(orderEvent{Event: event, Order: order})
}
