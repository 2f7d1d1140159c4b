package config

import (
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "abc123")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.DiscordToken != "abc123" {
		t.Errorf("DiscordToken = %q", cfg.DiscordToken)
	}
	if cfg.GatewayURL != "wss://gateway.discord.gg/?v=9&encoding=json" {
		t.Errorf("GatewayURL = %q", cfg.GatewayURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "abc123")
	t.Setenv("GATEWAY_URL", "ws://localhost:9000")
	t.Setenv("HTTP_TIMEOUT", "5s")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.GatewayURL != "ws://localhost:9000" {
		t.Errorf("GatewayURL = %q", cfg.GatewayURL)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
}

func TestParseRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	if _, err := Parse(); err == nil {
		t.Fatal("expected error for missing DISCORD_TOKEN")
	}
}
