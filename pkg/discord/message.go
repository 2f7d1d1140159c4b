package discord

import (
	"context"
	"fmt"
	"net/http"
)

// SendMessage posts a plain text message to a channel.
func SendMessage(ctx context.Context, client *http.Client, token, channelID, content string) error {
	path := fmt.Sprintf("/channels/%s/messages", channelID)
	return do(ctx, client, http.MethodPost, path, token, map[string]any{"content": content})
}

// SendErrorMessage posts an "Error: ..." message to a channel. Handlers use it
// to surface a failure to the chat before returning the error upstream.
func SendErrorMessage(ctx context.Context, client *http.Client, token, channelID, errorMessage string) error {
	path := fmt.Sprintf("/channels/%s/messages", channelID)
	return do(ctx, client, http.MethodPost, path, token, map[string]any{
		"content": fmt.Sprintf("Error: %s", errorMessage),
	})
}

// EditMessage replaces the content of an existing message.
func EditMessage(ctx context.Context, client *http.Client, token, channelID, messageID, newContent string) error {
	path := fmt.Sprintf("/channels/%s/messages/%s", channelID, messageID)
	return do(ctx, client, http.MethodPatch, path, token, map[string]any{"content": newContent})
}

// DeleteMessage deletes a message.
func DeleteMessage(ctx context.Context, client *http.Client, token, channelID, messageID string) error {
	path := fmt.Sprintf("/channels/%s/messages/%s", channelID, messageID)
	return do(ctx, client, http.MethodDelete, path, token, nil)
}

// PinMessage pins a message in a channel.
func PinMessage(ctx context.Context, client *http.Client, token, channelID, messageID string) error {
	path := fmt.Sprintf("/channels/%s/pins/%s", channelID, messageID)
	return do(ctx, client, http.MethodPut, path, token, nil)
}

// UnpinMessage unpins a message in a channel.
func UnpinMessage(ctx context.Context, client *http.Client, token, channelID, messageID string) error {
	path := fmt.Sprintf("/channels/%s/pins/%s", channelID, messageID)
	return do(ctx, client, http.MethodDelete, path, token, nil)
}
