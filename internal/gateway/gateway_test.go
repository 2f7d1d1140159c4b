package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{}

// fakeServer upgrades one connection, delivers hello and hands the
// connection to fn for the rest of the exchange.
func fakeServer(t *testing.T, heartbeatMs int, fn func(conn *websocket.Conn)) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()

		hello := map[string]any{"op": opHello, "d": map[string]any{"heartbeat_interval": heartbeatMs}}
		if err := conn.WriteJSON(hello); err != nil {
			return
		}
		fn(conn)
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestIdentifyAndDispatch(t *testing.T) {
	got := make(chan Message, 1)
	identified := make(chan payload, 1)

	url := fakeServer(t, 60000, func(conn *websocket.Conn) {
		var ident payload
		if err := conn.ReadJSON(&ident); err != nil {
			return
		}
		identified <- ident

		dispatch := map[string]any{
			"op": opDispatch,
			"s":  1,
			"t":  "MESSAGE_CREATE",
			"d": map[string]any{
				"id":         "42",
				"channel_id": "100",
				"content":    "!ping",
				"author":     map[string]any{"id": "7", "username": "kai", "bot": false},
			},
		}
		_ = conn.WriteJSON(dispatch)

		// Hold the connection open until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := New(url, "test-token")
	g.OnMessage = func(m Message) { got <- m }
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()

	select {
	case ident := <-identified:
		if ident.Op != opIdentify {
			t.Fatalf("expected identify, got op %d", ident.Op)
		}
		var d struct {
			Token   string `json:"token"`
			Intents int    `json:"intents"`
		}
		if err := json.Unmarshal(ident.D, &d); err != nil {
			t.Fatalf("decode identify: %v", err)
		}
		if d.Token != "test-token" {
			t.Errorf("identify token = %q", d.Token)
		}
		if d.Intents != intentGuildMessages|intentMessageContent {
			t.Errorf("identify intents = %d", d.Intents)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for identify")
	}

	select {
	case m := <-got:
		if m.ChannelID != "100" || m.Content != "!ping" || m.Author.ID != "7" {
			t.Fatalf("unexpected message: %+v", m)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for MESSAGE_CREATE")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}

func TestHeartbeatCarriesSequence(t *testing.T) {
	beats := make(chan payload, 4)

	url := fakeServer(t, 50, func(conn *websocket.Conn) {
		for {
			var p payload
			if err := conn.ReadJSON(&p); err != nil {
				return
			}
			if p.Op == opIdentify {
				// Bump the sequence before the first heartbeat fires.
				dispatch := map[string]any{"op": opDispatch, "s": 5, "t": "TYPING_START", "d": map[string]any{}}
				_ = conn.WriteJSON(dispatch)
				continue
			}
			if p.Op == opHeartbeat {
				beats <- p
				_ = conn.WriteJSON(map[string]any{"op": opHeartbeatACK})
			}
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := New(url, "test-token")
	go func() { _ = g.Run(ctx) }()

	deadline := time.After(3 * time.Second)
	for i := 0; i < 2; i++ {
		select {
		case beat := <-beats:
			var seq int64
			if err := json.Unmarshal(beat.D, &seq); err != nil {
				t.Fatalf("decode heartbeat seq: %v", err)
			}
			if seq != 5 {
				t.Errorf("heartbeat seq = %d, want 5", seq)
			}
		case <-deadline:
			t.Fatal("timed out waiting for heartbeats")
		}
	}
}
