// Package router maps chat command names (e.g. "!ping") to handlers and
// dispatches incoming message text to them. It performs no I/O itself; each
// handler gets the shared HTTP client and token and does its own REST calls.
package router

import (
	"context"
	"log"
	"net/http"
	"sort"
	"strings"
	"sync"
)

// Command is the contract every chat command implements. Execute receives the
// shared HTTP client, the bot token, the channel the message came from, and
// everything after the command token (empty string when there was nothing).
type Command interface {
	Execute(ctx context.Context, client *http.Client, token, channelID, args string) error
}

// Router stores commands by name. Dispatches take a read lock so they can run
// concurrently; Register takes the write lock.
type Router struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// New returns an empty router.
func New() *Router {
	return &Router{commands: make(map[string]Command)}
}

// Register adds a command under name, replacing any previous registration.
func (r *Router) Register(name string, c Command) {
	r.mu.Lock()
	r.commands[name] = c
	r.mu.Unlock()
}

// Lookup returns the command registered under name, or nil.
func (r *Router) Lookup(name string) Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.commands[name]
}

// Names returns all registered command names, sorted.
func (r *Router) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Dispatch splits content into a command token and an argument remainder at
// the first space, then runs the matching command. Unknown commands are not
// an error: most messages are plain chat, so they are logged and skipped.
// Handler errors are returned to the caller unchanged.
func (r *Router) Dispatch(ctx context.Context, client *http.Client, token, channelID, content string) error {
	name, args, _ := strings.Cut(content, " ")

	r.mu.RLock()
	c, ok := r.commands[name]
	r.mu.RUnlock()

	if !ok {
		log.Printf("[INFO] Command not found: %s", name)
		return nil
	}
	return c.Execute(ctx, client, token, channelID, args)
}
