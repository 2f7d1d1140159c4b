package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"discordapi/pkg/discord"
	"discordapi/pkg/router"
)

// Serverinfo summarizes a guild: name, owner and member counts.
type Serverinfo struct{}

func (Serverinfo) Execute(ctx context.Context, client *http.Client, token, channelID, args string) error {
	tokens := router.ParseArguments(args)
	if len(tokens) != 1 {
		return discord.SendMessage(ctx, client, token, channelID, "Usage: `!serverinfo <guild-id>`")
	}

	raw, err := discord.GetGuildPreview(ctx, client, token, tokens[0])
	if err != nil {
		return err
	}
	var guild struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Members     int    `json:"approximate_member_count"`
		Online      int    `json:"approximate_presence_count"`
	}
	if err := json.Unmarshal(raw, &guild); err != nil {
		return fmt.Errorf("decode guild preview: %w", err)
	}

	desc := fmt.Sprintf("%s\nMembers: %d (%d online)", guild.Description, guild.Members, guild.Online)
	return discord.SendEmbedMessage(ctx, client, token, channelID, guild.Name, desc)
}
