package commands

import (
	"context"
	"net/http"

	"discordapi/pkg/discord"
)

// Ping answers with a pong so users can check the bot is alive.
type Ping struct{}

func (Ping) Execute(ctx context.Context, client *http.Client, token, channelID, args string) error {
	return discord.SendMessage(ctx, client, token, channelID, "🏓 Pong!")
}
