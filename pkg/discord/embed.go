package discord

import (
	"context"
	"fmt"
	"net/http"
)

// embedColor is the accent color used for embeds sent by this library.
const embedColor = 0x3498db

// SendEmbedMessage posts a simple title/description embed to a channel.
func SendEmbedMessage(ctx context.Context, client *http.Client, token, channelID, title, description string) error {
	path := fmt.Sprintf("/channels/%s/messages", channelID)
	return do(ctx, client, http.MethodPost, path, token, map[string]any{
		"embeds": []map[string]any{{
			"title":       title,
			"description": description,
			"color":       embedColor,
		}},
	})
}
