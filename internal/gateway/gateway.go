// Package gateway maintains the realtime websocket connection and feeds
// incoming messages to the bot. It speaks just enough of the protocol to
// identify, heartbeat and receive MESSAGE_CREATE dispatches.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const (
	opDispatch     = 0
	opHeartbeat    = 1
	opIdentify     = 2
	opReconnect    = 7
	opInvalidSess  = 9
	opHello        = 10
	opHeartbeatACK = 11
)

// Gateway intents for message handling.
const (
	intentGuildMessages  = 1 << 9
	intentMessageContent = 1 << 15
)

// Author is the sender of a gateway message.
type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Bot      bool   `json:"bot"`
}

// Message is a MESSAGE_CREATE dispatch payload, trimmed to the fields
// the bot acts on.
type Message struct {
	ID        string `json:"id"`
	ChannelID string `json:"channel_id"`
	GuildID   string `json:"guild_id"`
	Content   string `json:"content"`
	Author    Author `json:"author"`
}

type payload struct {
	Op int             `json:"op"`
	D  json.RawMessage `json:"d"`
	S  int64           `json:"s"`
	T  string          `json:"t"`
}

type outPayload struct {
	Op int `json:"op"`
	D  any `json:"d"`
}

// Gateway is a single-shard websocket client. Create one with New and
// run it with Run; OnMessage fires for every chat message received.
type Gateway struct {
	URL       string
	Token     string
	Intents   int
	OnMessage func(Message)

	writeMu sync.Mutex
	limiter *rate.Limiter
	seq     atomic.Int64
	acked   atomic.Bool
}

// New returns a Gateway for the given websocket URL and bot token.
func New(url, token string) *Gateway {
	return &Gateway{
		URL:     url,
		Token:   token,
		Intents: intentGuildMessages | intentMessageContent,
		// The server allows 120 outbound events per 60 seconds.
		limiter: rate.NewLimiter(rate.Every(time.Minute/120), 120),
	}
}

// Run connects and processes events until ctx is cancelled, reconnecting
// with exponential backoff after connection loss.
func (g *Gateway) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		started := time.Now()
		err := g.session(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("[WARN] Gateway: session ended: %v", err)

		if time.Since(started) > time.Minute {
			backoff = time.Second
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		if backoff < 60*time.Second {
			backoff *= 2
		}
	}
}

// session runs one connection lifecycle: dial, hello, identify, read loop.
func (g *Gateway) session(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, g.URL, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	// Unblock ReadJSON when the caller shuts down.
	sessCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-sessCtx.Done()
		conn.Close()
	}()

	var hello payload
	if err := conn.ReadJSON(&hello); err != nil {
		return fmt.Errorf("read hello: %w", err)
	}
	if hello.Op != opHello {
		return fmt.Errorf("expected hello, got op %d", hello.Op)
	}
	var helloData struct {
		HeartbeatInterval int `json:"heartbeat_interval"`
	}
	if err := json.Unmarshal(hello.D, &helloData); err != nil {
		return fmt.Errorf("decode hello: %w", err)
	}

	if err := g.identify(ctx, conn); err != nil {
		return fmt.Errorf("identify: %w", err)
	}

	g.acked.Store(true)
	interval := time.Duration(helloData.HeartbeatInterval) * time.Millisecond
	go g.heartbeatLoop(sessCtx, conn, interval)

	log.Printf("[INFO] Gateway: connected to %s", g.URL)
	return g.readLoop(ctx, conn)
}

func (g *Gateway) identify(ctx context.Context, conn *websocket.Conn) error {
	return g.send(ctx, conn, outPayload{
		Op: opIdentify,
		D: map[string]any{
			"token":   g.Token,
			"intents": g.Intents,
			"properties": map[string]string{
				"os":      "linux",
				"browser": "discordapi",
				"device":  "discordapi",
			},
		},
	})
}

func (g *Gateway) heartbeatLoop(ctx context.Context, conn *websocket.Conn, interval time.Duration) {
	if interval <= 0 {
		interval = 41250 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !g.acked.Swap(false) {
				log.Println("[WARN] Gateway: heartbeat not acknowledged, reconnecting")
				conn.Close()
				return
			}
			if err := g.send(ctx, conn, outPayload{Op: opHeartbeat, D: g.seq.Load()}); err != nil {
				return
			}
		}
	}
}

func (g *Gateway) readLoop(ctx context.Context, conn *websocket.Conn) error {
	for {
		var p payload
		if err := conn.ReadJSON(&p); err != nil {
			return fmt.Errorf("read: %w", err)
		}

		switch p.Op {
		case opDispatch:
			g.seq.Store(p.S)
			if p.T == "MESSAGE_CREATE" && g.OnMessage != nil {
				var msg Message
				if err := json.Unmarshal(p.D, &msg); err != nil {
					log.Printf("[WARN] Gateway: bad MESSAGE_CREATE payload: %v", err)
					continue
				}
				g.OnMessage(msg)
			}
		case opHeartbeat:
			if err := g.send(ctx, conn, outPayload{Op: opHeartbeat, D: g.seq.Load()}); err != nil {
				return err
			}
		case opHeartbeatACK:
			g.acked.Store(true)
		case opReconnect, opInvalidSess:
			return fmt.Errorf("server requested reconnect (op %d)", p.Op)
		}
	}
}

// send applies the outbound rate budget and serializes writes.
func (g *Gateway) send(ctx context.Context, conn *websocket.Conn, p outPayload) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}
	g.writeMu.Lock()
	defer g.writeMu.Unlock()
	return conn.WriteJSON(p)
}
