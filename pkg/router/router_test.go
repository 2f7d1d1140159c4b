package router

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
)

// recorder captures every Execute call it receives.
type recorder struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (r *recorder) Execute(ctx context.Context, client *http.Client, token, channelID, args string) error {
	r.mu.Lock()
	r.calls = append(r.calls, args)
	r.mu.Unlock()
	return r.err
}

func TestDispatchSplitsOnFirstSpaceOnly(t *testing.T) {
	r := New()
	rec := &recorder{}
	r.Register("!echo", rec)

	if err := r.Dispatch(context.Background(), nil, "tok", "chan", "!echo hello world"); err != nil {
		t.Fatalf("dispatch returned error: %v", err)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "hello world" {
		t.Fatalf("want args %q, got %v", "hello world", rec.calls)
	}
}

func TestDispatchBareCommandHasEmptyArgs(t *testing.T) {
	r := New()
	rec := &recorder{}
	r.Register("!ping", rec)

	if err := r.Dispatch(context.Background(), nil, "tok", "chan", "!ping"); err != nil {
		t.Fatalf("dispatch returned error: %v", err)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "" {
		t.Fatalf("want one call with empty args, got %v", rec.calls)
	}
}

func TestRegisterReplacesExisting(t *testing.T) {
	r := New()
	old := &recorder{}
	latest := &recorder{}
	r.Register("!dup", old)
	r.Register("!dup", latest)

	if err := r.Dispatch(context.Background(), nil, "tok", "chan", "!dup x"); err != nil {
		t.Fatalf("dispatch returned error: %v", err)
	}
	if len(old.calls) != 0 {
		t.Fatalf("replaced handler was invoked: %v", old.calls)
	}
	if len(latest.calls) != 1 {
		t.Fatalf("latest handler not invoked exactly once: %v", latest.calls)
	}
}

func TestDispatchUnknownCommandIsNotAnError(t *testing.T) {
	r := New()
	rec := &recorder{}
	r.Register("!ping", rec)

	if err := r.Dispatch(context.Background(), nil, "tok", "chan", "!pong"); err != nil {
		t.Fatalf("unknown command should not error, got: %v", err)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("handler invoked for unknown command: %v", rec.calls)
	}
}

func TestDispatchPropagatesHandlerError(t *testing.T) {
	r := New()
	want := errors.New("boom")
	r.Register("!fail", &recorder{err: want})

	if err := r.Dispatch(context.Background(), nil, "tok", "chan", "!fail"); !errors.Is(err, want) {
		t.Fatalf("want handler error %v, got %v", want, err)
	}
}

func TestConcurrentDispatchesDoNotInterfere(t *testing.T) {
	r := New()
	a := &recorder{}
	b := &recorder{}
	r.Register("!a", a)
	r.Register("!b", b)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = r.Dispatch(context.Background(), nil, "tok", "chan", "!a first")
		}()
		go func() {
			defer wg.Done()
			_ = r.Dispatch(context.Background(), nil, "tok", "chan", "!b second")
		}()
	}
	wg.Wait()

	if len(a.calls) != 50 || len(b.calls) != 50 {
		t.Fatalf("want 50 calls each, got a=%d b=%d", len(a.calls), len(b.calls))
	}
	for _, args := range a.calls {
		if args != "first" {
			t.Fatalf("handler a saw foreign args %q", args)
		}
	}
	for _, args := range b.calls {
		if args != "second" {
			t.Fatalf("handler b saw foreign args %q", args)
		}
	}
}

func TestEndToEndPingScenario(t *testing.T) {
	r := New()
	rec := &recorder{}
	r.Register("!ping", rec)

	for _, msg := range []string{"!ping", "!ping extra", "!pong"} {
		if err := r.Dispatch(context.Background(), nil, "tok", "chan", msg); err != nil {
			t.Fatalf("dispatch %q returned error: %v", msg, err)
		}
	}
	if len(rec.calls) != 2 {
		t.Fatalf("want 2 invocations, got %d", len(rec.calls))
	}
}

func TestNamesSorted(t *testing.T) {
	r := New()
	r.Register("!b", &recorder{})
	r.Register("!a", &recorder{})
	r.Register("!c", &recorder{})

	names := r.Names()
	want := []string{"!a", "!b", "!c"}
	if len(names) != len(want) {
		t.Fatalf("want %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("want %v, got %v", want, names)
		}
	}
}

func TestParseArguments(t *testing.T) {
	got := ParseArguments("  one   two three ")
	if len(got) != 3 || got[0] != "one" || got[1] != "two" || got[2] != "three" {
		t.Fatalf("unexpected tokens: %v", got)
	}
	if got := ParseArguments(""); len(got) != 0 {
		t.Fatalf("want no tokens for empty input, got %v", got)
	}
}
