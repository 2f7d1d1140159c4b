package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"discordapi/pkg/discord"
	"discordapi/pkg/router"
)

// Avatar shows a user's avatar given their ID.
type Avatar struct{}

func (Avatar) Execute(ctx context.Context, client *http.Client, token, channelID, args string) error {
	tokens := router.ParseArguments(args)
	if len(tokens) != 1 {
		return discord.SendMessage(ctx, client, token, channelID, "Usage: `!avatar <user-id>`")
	}
	userID := tokens[0]

	raw, err := discord.GetUser(ctx, client, token, userID)
	if err != nil {
		return err
	}
	var user struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Avatar   string `json:"avatar"`
	}
	if err := json.Unmarshal(raw, &user); err != nil {
		return fmt.Errorf("decode user: %w", err)
	}
	if user.Avatar == "" {
		return discord.SendMessage(ctx, client, token, channelID, fmt.Sprintf("%s has no custom avatar.", user.Username))
	}

	url := fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.png?size=512", user.ID, user.Avatar)
	return discord.SendEmbedMessage(ctx, client, token, channelID, user.Username, url)
}
