package commands

import (
	"context"
	"net/http"
	"strings"

	"discordapi/pkg/discord"
)

// Help lists the registered commands. The host overrides the generated
// registration with one whose Names func is wired to the live router, relying
// on last-registration-wins.
type Help struct {
	Names func() []string
}

func (h *Help) Execute(ctx context.Context, client *http.Client, token, channelID, args string) error {
	if h.Names == nil {
		return discord.SendMessage(ctx, client, token, channelID, "No command list available.")
	}
	return discord.SendEmbedMessage(ctx, client, token, channelID, "Commands", strings.Join(h.Names(), "\n"))
}
