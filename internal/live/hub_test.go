package live

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func newHubServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := NewConn(context.Background(), r.URL.Query().Get("id"), ws)
		if err := hub.Add(c); err != nil {
			return
		}
		_ = c.Listen()
		hub.Remove(c)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, id string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?id=" + id
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

func waitForCount(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Count() != n {
		if time.Now().After(deadline) {
			t.Fatalf("hub has %d clients, want %d", hub.Count(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubBroadcastReachesAllSubscribers(t *testing.T) {
	hub := NewHub()
	srv := newHubServer(t, hub)

	a := dial(t, srv, "a")
	b := dial(t, srv, "b")
	waitForCount(t, hub, 2)

	hub.Broadcast(map[string]any{"type": "dashboard", "data": map[string]any{"weeklyBalance": 125}})

	for _, ws := range []*websocket.Conn{a, b} {
		_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
		var msg map[string]any
		if err := ws.ReadJSON(&msg); err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if msg["type"] != "dashboard" {
			t.Fatalf("unexpected message %v", msg)
		}
	}
}

func TestHubKeepsClientsSharingRequestID(t *testing.T) {
	hub := NewHub()
	srv := newHubServer(t, hub)

	first := dial(t, srv, "same")
	second := dial(t, srv, "same")
	waitForCount(t, hub, 2)

	hub.Broadcast(map[string]any{"type": "dashboard"})

	for _, ws := range []*websocket.Conn{first, second} {
		_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
		var msg map[string]any
		if err := ws.ReadJSON(&msg); err != nil {
			t.Fatalf("subscriber lost after id reuse: %v", err)
		}
	}
}

func TestNewConnAssignsUniqueIDs(t *testing.T) {
	a := NewConn(context.Background(), "req", nil)
	b := NewConn(context.Background(), "req", nil)
	if a.ID() == b.ID() || !strings.HasPrefix(a.ID(), "req#") {
		t.Fatalf("ids not unique: %q %q", a.ID(), b.ID())
	}
}

func TestHubDropsClosedSubscriber(t *testing.T) {
	hub := NewHub()
	srv := newHubServer(t, hub)

	ws := dial(t, srv, "gone")
	waitForCount(t, hub, 1)

	_ = ws.Close()
	waitForCount(t, hub, 0)
	hub.Broadcast(map[string]any{"type": "dashboard"})
	if hub.Count() != 0 {
		t.Fatalf("closed subscriber should stay removed")
	}
}

func TestHubDeleteUnknown(t *testing.T) {
	hub := NewHub()
	if err := hub.Delete("missing"); err != ErrConnIsNotFound {
		t.Fatalf("expected ErrConnIsNotFound, got %v", err)
	}
	if err := hub.Add(nil); err != ErrEmptyConn {
		t.Fatalf("expected ErrEmptyConn, got %v", err)
	}
}

func TestHubCloseDisconnects(t *testing.T) {
	hub := NewHub()
	srv := newHubServer(t, hub)

	ws := dial(t, srv, "x")
	waitForCount(t, hub, 1)

	hub.Close()
	if hub.Count() != 0 {
		t.Fatalf("hub should be empty after Close")
	}
	_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := ws.ReadMessage(); err == nil {
		t.Fatalf("expected the client to see the connection close")
	}
}
