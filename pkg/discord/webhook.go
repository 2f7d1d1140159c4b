package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// The *WithToken and Execute* variants authenticate through the webhook's own
// token embedded in the URL, so no Authorization header is sent.

// CreateWebhook creates a webhook on a channel.
func CreateWebhook(ctx context.Context, client *http.Client, token, channelID string, webhookSettings any) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPost, fmt.Sprintf("/channels/%s/webhooks", channelID), token, webhookSettings)
}

// GetChannelWebhooks returns the webhooks of a channel.
func GetChannelWebhooks(ctx context.Context, client *http.Client, token, channelID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/channels/%s/webhooks", channelID), token, nil)
}

// GetGuildWebhooks returns the webhooks of a guild.
func GetGuildWebhooks(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/webhooks", guildID), token, nil)
}

// GetWebhook returns a webhook by ID.
func GetWebhook(ctx context.Context, client *http.Client, token, webhookID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/webhooks/%s", webhookID), token, nil)
}

// GetWebhookWithToken returns a webhook without needing bot authentication.
func GetWebhookWithToken(ctx context.Context, client *http.Client, webhookID, webhookToken string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/webhooks/%s/%s", webhookID, webhookToken), "", nil)
}

// ModifyWebhook updates a webhook.
func ModifyWebhook(ctx context.Context, client *http.Client, token, webhookID string, settings any) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPatch, fmt.Sprintf("/webhooks/%s", webhookID), token, settings)
}

// ModifyWebhookWithToken updates a webhook without bot authentication.
func ModifyWebhookWithToken(ctx context.Context, client *http.Client, webhookID, webhookToken string, settings any) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPatch, fmt.Sprintf("/webhooks/%s/%s", webhookID, webhookToken), "", settings)
}

// DeleteWebhook deletes a webhook.
func DeleteWebhook(ctx context.Context, client *http.Client, token, webhookID string) error {
	return do(ctx, client, http.MethodDelete, fmt.Sprintf("/webhooks/%s", webhookID), token, nil)
}

// DeleteWebhookWithToken deletes a webhook without bot authentication.
func DeleteWebhookWithToken(ctx context.Context, client *http.Client, webhookID, webhookToken string) error {
	return do(ctx, client, http.MethodDelete, fmt.Sprintf("/webhooks/%s/%s", webhookID, webhookToken), "", nil)
}

// ExecuteWebhook posts a message payload through a webhook.
func ExecuteWebhook(ctx context.Context, client *http.Client, webhookID, webhookToken string, payload any) error {
	return do(ctx, client, http.MethodPost, fmt.Sprintf("/webhooks/%s/%s", webhookID, webhookToken), "", payload)
}

// ExecuteSlackCompatibleWebhook posts a Slack-format payload through a webhook.
func ExecuteSlackCompatibleWebhook(ctx context.Context, client *http.Client, webhookID, webhookToken string, payload any) error {
	return do(ctx, client, http.MethodPost, fmt.Sprintf("/webhooks/%s/%s/slack", webhookID, webhookToken), "", payload)
}

// ExecuteGitHubCompatibleWebhook posts a GitHub-format payload through a webhook.
func ExecuteGitHubCompatibleWebhook(ctx context.Context, client *http.Client, webhookID, webhookToken string, payload any) error {
	return do(ctx, client, http.MethodPost, fmt.Sprintf("/webhooks/%s/%s/github", webhookID, webhookToken), "", payload)
}

// GetWebhookMessage returns a message previously sent by a webhook.
func GetWebhookMessage(ctx context.Context, client *http.Client, webhookID, webhookToken, messageID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/webhooks/%s/%s/messages/%s", webhookID, webhookToken, messageID), "", nil)
}

// EditWebhookMessage edits a message previously sent by a webhook.
func EditWebhookMessage(ctx context.Context, client *http.Client, webhookID, webhookToken, messageID string, newContent any) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPatch, fmt.Sprintf("/webhooks/%s/%s/messages/%s", webhookID, webhookToken, messageID), "", newContent)
}

// DeleteWebhookMessage deletes a message previously sent by a webhook.
func DeleteWebhookMessage(ctx context.Context, client *http.Client, webhookID, webhookToken, messageID string) error {
	return do(ctx, client, http.MethodDelete, fmt.Sprintf("/webhooks/%s/%s/messages/%s", webhookID, webhookToken, messageID), "", nil)
}
