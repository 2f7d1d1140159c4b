package mod

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"discordapi/pkg/discord"
	"discordapi/pkg/router"
)

// Ban bans a user from a guild: `!ban <guild-id> <user-id> [days] [reason]`.
type Ban struct{}

func (Ban) Execute(ctx context.Context, client *http.Client, token, channelID, args string) error {
	tokens := router.ParseArguments(args)
	if len(tokens) < 2 {
		return discord.SendMessage(ctx, client, token, channelID, "Usage: `!ban <guild-id> <user-id> [days] [reason]`")
	}
	guildID, userID := tokens[0], tokens[1]

	days := 0
	if len(tokens) > 2 {
		d, err := strconv.Atoi(tokens[2])
		if err != nil || d < 0 || d > 7 {
			return discord.SendMessage(ctx, client, token, channelID, "Days must be 0-7.")
		}
		days = d
	}
	reason := ""
	if len(tokens) > 3 {
		reason = strings.Join(tokens[3:], " ")
	}

	if err := discord.BanUser(ctx, client, token, guildID, userID, uint8(days), reason); err != nil {
		return err
	}
	return discord.SendMessage(ctx, client, token, channelID, fmt.Sprintf("🔨 Banned <@%s>.", userID))
}
