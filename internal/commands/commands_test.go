package commands

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"discordapi/pkg/discord"
	"discordapi/pkg/router"
)

// sentLog records message sends observed by the fake REST endpoint.
type sentLog struct {
	mu   sync.Mutex
	msgs []string
}

func (s *sentLog) add(msg string) {
	s.mu.Lock()
	s.msgs = append(s.msgs, msg)
	s.mu.Unlock()
}

func (s *sentLog) all() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.msgs...)
}

func testAPI(t *testing.T) *sentLog {
	t.Helper()
	sent := &sentLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/messages") {
			body, _ := io.ReadAll(r.Body)
			var msg struct {
				Content string `json:"content"`
			}
			_ = json.Unmarshal(body, &msg)
			sent.add(msg.Content)
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	old := discord.BaseURL
	discord.BaseURL = srv.URL
	t.Cleanup(func() { discord.BaseURL = old })
	return sent
}

func TestRegisterAllWiresEveryCommandFile(t *testing.T) {
	r := router.New()
	RegisterAll(r)

	want := []string{"!avatar", "!ban", "!echo", "!help", "!ping", "!purge", "!roll", "!serverinfo"}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}
}

func TestPingRepliesPong(t *testing.T) {
	sent := testAPI(t)
	r := router.New()
	RegisterAll(r)

	if err := r.Dispatch(context.Background(), http.DefaultClient, "tok", "chan", "!ping"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	msgs := sent.all()
	if len(msgs) != 1 || !strings.Contains(msgs[0], "Pong") {
		t.Fatalf("unexpected messages: %v", msgs)
	}
}

func TestEchoSendsArgsVerbatim(t *testing.T) {
	sent := testAPI(t)
	r := router.New()
	RegisterAll(r)

	if err := r.Dispatch(context.Background(), http.DefaultClient, "tok", "chan", "!echo hello world"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	msgs := sent.all()
	if len(msgs) != 1 || msgs[0] != "hello world" {
		t.Fatalf("unexpected messages: %v", msgs)
	}
}

func TestRollRejectsBadFormula(t *testing.T) {
	sent := testAPI(t)
	r := router.New()
	RegisterAll(r)

	if err := r.Dispatch(context.Background(), http.DefaultClient, "tok", "chan", "!roll banana"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	msgs := sent.all()
	if len(msgs) != 1 || !strings.Contains(msgs[0], "Can't parse") {
		t.Fatalf("unexpected messages: %v", msgs)
	}
}

func TestUnknownCommandSendsNothing(t *testing.T) {
	sent := testAPI(t)
	r := router.New()
	RegisterAll(r)

	if err := r.Dispatch(context.Background(), http.DefaultClient, "tok", "chan", "!frobnicate"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if msgs := sent.all(); len(msgs) != 0 {
		t.Fatalf("unexpected messages: %v", msgs)
	}
}
