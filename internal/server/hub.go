package server

import (
	"net/http"
	"sync"
	"time"

	"auction-marketplace/internal/live"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
	sendBuffer   = 32
)

type subscriber struct {
	userID string
	send   chan live.Event
}

// Hub fans auction events out to WebSocket subscribers, one room per auction
type Hub struct {
	upgrader websocket.Upgrader
	tokens   TokenParser

	mu     sync.RWMutex
	rooms  map[string]map[*subscriber]struct{}
	closed bool
}

var _ live.Publisher = (*Hub)(nil)

func NewHub(tokens TokenParser) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		tokens: tokens,
		rooms:  make(map[string]map[*subscriber]struct{}),
	}
}

// Publish delivers e to the auction's room. payment.confirmed only reaches the payer.
// A subscriber whose buffer is full misses the event rather than stalling the caller.
func (h *Hub) Publish(e live.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.rooms[e.AuctionID] {
		if e.Type == live.EventPaymentConfirmed && sub.userID != e.UserID {
			continue
		}
		select {
		case sub.send <- e:
		default:
			utils.Warn("hub: subscriber too slow, event dropped", map[string]any{
				"auction_id": e.AuctionID,
				"type":       e.Type,
				"user_id":    sub.userID,
			})
		}
	}
}

// Subscribers is the number of open connections for an auction
func (h *Hub) Subscribers(auctionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[auctionID])
}

// Close disconnects every subscriber
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, room := range h.rooms {
		for sub := range room {
			close(sub.send)
		}
		delete(h.rooms, id)
	}
}

func (h *Hub) join(auctionID string, sub *subscriber) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	room, ok := h.rooms[auctionID]
	if !ok {
		room = make(map[*subscriber]struct{})
		h.rooms[auctionID] = room
	}
	room[sub] = struct{}{}
	return true
}

func (h *Hub) leave(auctionID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[auctionID]
	if !ok {
		return
	}
	if _, ok := room[sub]; !ok {
		return
	}
	delete(room, sub)
	close(sub.send)
	if len(room) == 0 {
		delete(h.rooms, auctionID)
	}
}

// ServeWS upgrades GET /ws/auctions/:id. A bearer token is optional; without one the
// connection receives only public events.
func (h *Hub) ServeWS(c *gin.Context) {
	auctionID := c.Param("id")

	sub := &subscriber{send: make(chan live.Event, sendBuffer)}
	if header := c.GetHeader("Authorization"); header != "" {
		claims, err := identify(h.tokens, c.Request)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "authentication required")
			return
		}
		sub.userID = claims.UserID
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("hub: upgrade failed", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}
	if !h.join(auctionID, sub) {
		conn.Close()
		return
	}
	utils.Debug("hub: subscriber joined", map[string]any{"auction_id": auctionID, "user_id": sub.userID})

	go h.writePump(conn, sub)
	h.readPump(conn)

	h.leave(auctionID, sub)
	utils.Debug("hub: subscriber left", map[string]any{"auction_id": auctionID, "user_id": sub.userID})
}

// readPump discards client messages and returns when the connection closes
func (h *Hub) readPump(conn *websocket.Conn) {
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(conn *websocket.Conn, sub *subscriber) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case e, ok := <-sub.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteJSON(e); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
