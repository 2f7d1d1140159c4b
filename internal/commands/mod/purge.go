// Package mod holds moderation commands. They assume the bot has the matching
// guild permissions; permission errors surface as REST status errors.
package mod

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"discordapi/pkg/discord"
	"discordapi/pkg/router"
)

// Purge bulk-deletes the last N messages in the channel.
type Purge struct{}

func (Purge) Execute(ctx context.Context, client *http.Client, token, channelID, args string) error {
	tokens := router.ParseArguments(args)
	if len(tokens) != 1 {
		return discord.SendMessage(ctx, client, token, channelID, "Usage: `!purge <count>`")
	}
	count, err := strconv.Atoi(tokens[0])
	if err != nil || count < 2 || count > 100 {
		return discord.SendMessage(ctx, client, token, channelID, "Count must be between 2 and 100.")
	}

	raw, err := discord.GetChannelMessages(ctx, client, token, channelID)
	if err != nil {
		return err
	}
	var messages []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &messages); err != nil {
		return fmt.Errorf("decode messages: %w", err)
	}
	if len(messages) > count {
		messages = messages[:count]
	}
	if len(messages) < 2 {
		return discord.SendMessage(ctx, client, token, channelID, "Not enough messages to purge.")
	}

	ids := make([]string, len(messages))
	for i, m := range messages {
		ids[i] = m.ID
	}
	if err := discord.BulkDeleteMessages(ctx, client, token, channelID, ids); err != nil {
		return err
	}
	return discord.SendMessage(ctx, client, token, channelID, fmt.Sprintf("🧹 Deleted %d messages.", len(ids)))
}
