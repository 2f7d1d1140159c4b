package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"discordapi/internal/commands"
	"discordapi/internal/config"
	"discordapi/internal/gateway"
	v "discordapi/internal/version"
	"discordapi/pkg/router"
)

func main() {
	log.Printf("[INFO] Starting %v bot...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.New()
	client := &http.Client{Timeout: cfg.HTTPTimeout}

	r := router.New()
	commands.RegisterAll(r)
	// Replace the generated help stub with one that can see the registry.
	r.Register("!help", &commands.Help{Names: r.Names})

	gw := gateway.New(cfg.GatewayURL, cfg.DiscordToken)
	gw.OnMessage = func(m gateway.Message) {
		if m.Author.Bot || !strings.HasPrefix(m.Content, "!") {
			return
		}
		if err := r.Dispatch(ctx, client, cfg.DiscordToken, m.ChannelID, m.Content); err != nil {
			log.Printf("[ERR] Command %s: %v", m.Content, err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		if err := gw.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Gateway error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Bot exited cleanly")
}
