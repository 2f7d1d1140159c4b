package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetCurrentUser returns the bot's own user object.
func GetCurrentUser(ctx context.Context, client *http.Client, token string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, "/users/@me", token, nil)
}

// GetUser returns a user object by ID.
func GetUser(ctx context.Context, client *http.Client, token, userID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/users/%s", userID), token, nil)
}

// ModifyCurrentUser updates the bot's username or avatar.
func ModifyCurrentUser(ctx context.Context, client *http.Client, token string, settings any) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPatch, "/users/@me", token, settings)
}

// GetCurrentUserGuilds returns the guilds the bot is a member of.
func GetCurrentUserGuilds(ctx context.Context, client *http.Client, token string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, "/users/@me/guilds", token, nil)
}

// GetCurrentUserGuildMember returns the bot's member object in a guild.
func GetCurrentUserGuildMember(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/users/@me/guilds/%s/member", guildID), token, nil)
}

// LeaveGuild removes the bot from a guild.
func LeaveGuild(ctx context.Context, client *http.Client, token, guildID string) error {
	return do(ctx, client, http.MethodDelete, fmt.Sprintf("/users/@me/guilds/%s", guildID), token, nil)
}

// CreateDM opens (or reuses) a DM channel with a user.
func CreateDM(ctx context.Context, client *http.Client, token, recipientID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPost, "/users/@me/channels", token, map[string]any{"recipient_id": recipientID})
}

// CreateGroupDM opens a group DM from a set of OAuth access tokens. nicks maps
// user IDs to nicknames.
func CreateGroupDM(ctx context.Context, client *http.Client, token string, accessTokens []string, nicks map[string]string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPost, "/users/@me/channels", token, map[string]any{
		"access_tokens": accessTokens,
		"nicks":         nicks,
	})
}

// GetCurrentUserConnections returns the bot account's connections.
func GetCurrentUserConnections(ctx context.Context, client *http.Client, token string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, "/users/@me/connections", token, nil)
}

// GetCurrentUserApplicationRoleConnection returns the role connection for an application.
func GetCurrentUserApplicationRoleConnection(ctx context.Context, client *http.Client, token, applicationID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/users/@me/applications/%s/role-connection", applicationID), token, nil)
}

// UpdateCurrentUserApplicationRoleConnection updates the role connection for an application.
func UpdateCurrentUserApplicationRoleConnection(ctx context.Context, client *http.Client, token, applicationID string, roleConnection any) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPut, fmt.Sprintf("/users/@me/applications/%s/role-connection", applicationID), token, roleConnection)
}

// KickUser removes a user from a guild.
func KickUser(ctx context.Context, client *http.Client, token, guildID, userID string) error {
	return do(ctx, client, http.MethodDelete, fmt.Sprintf("/guilds/%s/members/%s", guildID, userID), token, nil)
}

// BanUser bans a user from a guild, optionally deleting their recent messages.
func BanUser(ctx context.Context, client *http.Client, token, guildID, userID string, deleteMessageDays uint8, reason string) error {
	return do(ctx, client, http.MethodPut, fmt.Sprintf("/guilds/%s/bans/%s", guildID, userID), token, map[string]any{
		"delete_message_days": deleteMessageDays,
		"reason":              reason,
	})
}
