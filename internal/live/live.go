// Package live subscribes to server-pushed auction events over WebSocket.
package live

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"auction-marketplace/internal/session"
	"auction-marketplace/utils"

	"github.com/gorilla/websocket"
)

// EventType names a pushed event
type EventType string

const (
	EventBidPlaced        EventType = "bid.placed"
	EventAuctionUpdated   EventType = "auction.updated"
	EventPaymentConfirmed EventType = "payment.confirmed"
)

// Event is one message on an auction's channel
type Event struct {
	Type      EventType       `json:"type"`
	AuctionID string          `json:"auctionId"`
	UserID    string          `json:"userId,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	At        time.Time       `json:"at"`
}

// Decode unmarshals the payload into v
func (e Event) Decode(v any) error {
	if len(e.Payload) == 0 {
		return fmt.Errorf("event %s has no payload", e.Type)
	}
	return json.Unmarshal(e.Payload, v)
}

// Publisher fans an event out to everyone subscribed to its auction
type Publisher interface {
	Publish(e Event)
}

// NewEvent builds an event with payload encoded as JSON
func NewEvent(t EventType, auctionID, userID string, payload any) Event {
	e := Event{Type: t, AuctionID: auctionID, UserID: userID, At: time.Now().UTC()}
	if payload != nil {
		if raw, err := json.Marshal(payload); err == nil {
			e.Payload = raw
		}
	}
	return e
}

// Path is the server route for an auction's event stream
func Path(auctionID string) string {
	return "/ws/auctions/" + url.PathEscape(auctionID)
}

// Subscriber dials the event stream of the API host
type Subscriber struct {
	base   *url.URL
	store  session.Store
	dialer *websocket.Dialer
}

// NewSubscriber derives the ws:// or wss:// host from the API base URL
func NewSubscriber(apiBase *url.URL, store session.Store) *Subscriber {
	u := *apiBase
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = ""
	u.RawQuery = ""

	return &Subscriber{
		base:   &u,
		store:  store,
		dialer: &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
	}
}

// Subscribe streams events for auctionID until ctx is done or the connection drops.
// The returned channel is closed in both cases.
func (s *Subscriber) Subscribe(ctx context.Context, auctionID string) (<-chan Event, error) {
	u := *s.base
	u.Path = Path(auctionID)

	header := http.Header{}
	if snap, err := s.store.Load(); err == nil && snap.AccessToken != "" {
		header.Set("Authorization", "Bearer "+snap.AccessToken)
	}

	conn, resp, err := s.dialer.DialContext(ctx, u.String(), header)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", auctionID, err)
	}

	out := make(chan Event, 16)
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		case <-done:
		}
		conn.Close()
	}()

	go func() {
		defer close(out)
		defer close(done)
		for {
			var ev Event
			if err := conn.ReadJSON(&ev); err != nil {
				if ctx.Err() == nil {
					utils.Debug("live: stream closed", map[string]any{"auction_id": auctionID, "error": err.Error()})
				}
				return
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
