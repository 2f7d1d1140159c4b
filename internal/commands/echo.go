package commands

import (
	"context"
	"net/http"

	"discordapi/pkg/discord"
)

// Echo repeats the argument text back into the channel.
type Echo struct{}

func (Echo) Execute(ctx context.Context, client *http.Client, token, channelID, args string) error {
	if args == "" {
		return discord.SendMessage(ctx, client, token, channelID, "Nothing to echo.")
	}
	return discord.SendMessage(ctx, client, token, channelID, args)
}
