package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ListScheduledEvents returns the scheduled events of a guild.
func ListScheduledEvents(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/scheduled-events", guildID), token, nil)
}

// CreateScheduledEvent creates a scheduled event in a guild.
func CreateScheduledEvent(ctx context.Context, client *http.Client, token, guildID string, eventSettings any) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPost, fmt.Sprintf("/guilds/%s/scheduled-events", guildID), token, eventSettings)
}

// GetScheduledEvent returns a scheduled event by ID.
func GetScheduledEvent(ctx context.Context, client *http.Client, token, guildID, eventID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/scheduled-events/%s", guildID, eventID), token, nil)
}

// ModifyScheduledEvent updates a scheduled event.
func ModifyScheduledEvent(ctx context.Context, client *http.Client, token, guildID, eventID string, eventSettings any) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPatch, fmt.Sprintf("/guilds/%s/scheduled-events/%s", guildID, eventID), token, eventSettings)
}

// DeleteScheduledEvent deletes a scheduled event.
func DeleteScheduledEvent(ctx context.Context, client *http.Client, token, guildID, eventID string) error {
	return do(ctx, client, http.MethodDelete, fmt.Sprintf("/guilds/%s/scheduled-events/%s", guildID, eventID), token, nil)
}

// GetScheduledEventUsers returns the users subscribed to a scheduled event.
func GetScheduledEventUsers(ctx context.Context, client *http.Client, token, guildID, eventID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/scheduled-events/%s/users", guildID, eventID), token, nil)
}

// UpdateScheduledEventStatus transitions a scheduled event to a new status.
func UpdateScheduledEventStatus(ctx context.Context, client *http.Client, token, guildID, eventID, status string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPatch, fmt.Sprintf("/guilds/%s/scheduled-events/%s", guildID, eventID), token, map[string]any{"status": status})
}
