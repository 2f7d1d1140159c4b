package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// AddRole assigns a role to a guild member.
func AddRole(ctx context.Context, client *http.Client, token, guildID, userID, roleID string) error {
	return do(ctx, client, http.MethodPut, fmt.Sprintf("/guilds/%s/members/%s/roles/%s", guildID, userID, roleID), token, nil)
}

// RemoveRole removes a role from a guild member.
func RemoveRole(ctx context.Context, client *http.Client, token, guildID, userID, roleID string) error {
	return do(ctx, client, http.MethodDelete, fmt.Sprintf("/guilds/%s/members/%s/roles/%s", guildID, userID, roleID), token, nil)
}

// FetchRoleInfo returns a role object.
func FetchRoleInfo(ctx context.Context, client *http.Client, token, guildID, roleID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/roles/%s", guildID, roleID), token, nil)
}
