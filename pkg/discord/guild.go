package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// CreateGuild creates a new guild owned by the bot.
func CreateGuild(ctx context.Context, client *http.Client, token string, guildSettings any) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPost, "/guilds", token, guildSettings)
}

// GetGuild returns the guild object.
func GetGuild(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s", guildID), token, nil)
}

// GetGuildPreview returns the publicly visible preview of a guild.
func GetGuildPreview(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/preview", guildID), token, nil)
}

// ModifyGuild updates guild settings.
func ModifyGuild(ctx context.Context, client *http.Client, token, guildID string, settings any) error {
	return do(ctx, client, http.MethodPatch, fmt.Sprintf("/guilds/%s", guildID), token, settings)
}

// DeleteGuild deletes a guild the bot owns.
func DeleteGuild(ctx context.Context, client *http.Client, token, guildID string) error {
	return do(ctx, client, http.MethodDelete, fmt.Sprintf("/guilds/%s", guildID), token, nil)
}

// GetGuildChannels returns the channels of a guild.
func GetGuildChannels(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/channels", guildID), token, nil)
}

// CreateGuildChannel creates a channel in a guild.
func CreateGuildChannel(ctx context.Context, client *http.Client, token, guildID string, channelSettings any) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPost, fmt.Sprintf("/guilds/%s/channels", guildID), token, channelSettings)
}

// ModifyGuildChannelPositions reorders the channels of a guild.
func ModifyGuildChannelPositions(ctx context.Context, client *http.Client, token, guildID string, positions any) error {
	return do(ctx, client, http.MethodPatch, fmt.Sprintf("/guilds/%s/channels", guildID), token, positions)
}

// ListActiveGuildThreads returns the active threads in a guild.
func ListActiveGuildThreads(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/threads/active", guildID), token, nil)
}

// GetGuildMember returns the member object for a user.
func GetGuildMember(ctx context.Context, client *http.Client, token, guildID, userID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/members/%s", guildID, userID), token, nil)
}

// ListGuildMembers returns the members of a guild.
func ListGuildMembers(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/members", guildID), token, nil)
}

// SearchGuildMembers returns members whose username or nick starts with query.
func SearchGuildMembers(ctx context.Context, client *http.Client, token, guildID, query string) (json.RawMessage, error) {
	path := fmt.Sprintf("/guilds/%s/members/search?query=%s", guildID, url.QueryEscape(query))
	return doJSON(ctx, client, http.MethodGet, path, token, nil)
}

// AddGuildMember joins a user to a guild using their OAuth access token.
func AddGuildMember(ctx context.Context, client *http.Client, token, guildID, userID string, memberSettings any) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPut, fmt.Sprintf("/guilds/%s/members/%s", guildID, userID), token, memberSettings)
}

// ModifyGuildMember updates a member (nick, roles, mute, etc).
func ModifyGuildMember(ctx context.Context, client *http.Client, token, guildID, userID string, settings any) error {
	return do(ctx, client, http.MethodPatch, fmt.Sprintf("/guilds/%s/members/%s", guildID, userID), token, settings)
}

// ModifyCurrentMember updates the bot's own member in a guild.
func ModifyCurrentMember(ctx context.Context, client *http.Client, token, guildID string, settings any) error {
	return do(ctx, client, http.MethodPatch, fmt.Sprintf("/guilds/%s/members/@me", guildID), token, settings)
}

// ModifyCurrentUserNick changes the bot's nickname in a guild.
func ModifyCurrentUserNick(ctx context.Context, client *http.Client, token, guildID, nick string) error {
	path := fmt.Sprintf("/guilds/%s/members/@me/nick", guildID)
	return do(ctx, client, http.MethodPatch, path, token, map[string]any{"nick": nick})
}

// AddGuildMemberRole assigns a role to a member.
func AddGuildMemberRole(ctx context.Context, client *http.Client, token, guildID, userID, roleID string) error {
	return do(ctx, client, http.MethodPut, fmt.Sprintf("/guilds/%s/members/%s/roles/%s", guildID, userID, roleID), token, nil)
}

// RemoveGuildMemberRole removes a role from a member.
func RemoveGuildMemberRole(ctx context.Context, client *http.Client, token, guildID, userID, roleID string) error {
	return do(ctx, client, http.MethodDelete, fmt.Sprintf("/guilds/%s/members/%s/roles/%s", guildID, userID, roleID), token, nil)
}

// RemoveGuildMember kicks a member from a guild.
func RemoveGuildMember(ctx context.Context, client *http.Client, token, guildID, userID string) error {
	return do(ctx, client, http.MethodDelete, fmt.Sprintf("/guilds/%s/members/%s", guildID, userID), token, nil)
}

// GetGuildBans returns the bans of a guild.
func GetGuildBans(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/bans", guildID), token, nil)
}

// GetGuildBan returns the ban object for a user, if banned.
func GetGuildBan(ctx context.Context, client *http.Client, token, guildID, userID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/bans/%s", guildID, userID), token, nil)
}

// CreateGuildBan bans a user from a guild.
func CreateGuildBan(ctx context.Context, client *http.Client, token, guildID, userID string, banSettings any) error {
	return do(ctx, client, http.MethodPut, fmt.Sprintf("/guilds/%s/bans/%s", guildID, userID), token, banSettings)
}

// RemoveGuildBan unbans a user.
func RemoveGuildBan(ctx context.Context, client *http.Client, token, guildID, userID string) error {
	return do(ctx, client, http.MethodDelete, fmt.Sprintf("/guilds/%s/bans/%s", guildID, userID), token, nil)
}

// BulkGuildBan bans up to 200 users in one call.
func BulkGuildBan(ctx context.Context, client *http.Client, token, guildID string, userIDs []string) error {
	return do(ctx, client, http.MethodPost, fmt.Sprintf("/guilds/%s/bans", guildID), token, map[string]any{"user_ids": userIDs})
}

// GetGuildRoles returns the roles of a guild.
func GetGuildRoles(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/roles", guildID), token, nil)
}

// CreateGuildRole creates a role in a guild.
func CreateGuildRole(ctx context.Context, client *http.Client, token, guildID string, roleSettings any) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPost, fmt.Sprintf("/guilds/%s/roles", guildID), token, roleSettings)
}

// ModifyGuildRolePositions reorders the roles of a guild.
func ModifyGuildRolePositions(ctx context.Context, client *http.Client, token, guildID string, positions any) error {
	return do(ctx, client, http.MethodPatch, fmt.Sprintf("/guilds/%s/roles", guildID), token, positions)
}

// ModifyGuildRole updates a role.
func ModifyGuildRole(ctx context.Context, client *http.Client, token, guildID, roleID string, settings any) error {
	return do(ctx, client, http.MethodPatch, fmt.Sprintf("/guilds/%s/roles/%s", guildID, roleID), token, settings)
}

// ModifyGuildMFALevel sets the required MFA level for moderation actions.
func ModifyGuildMFALevel(ctx context.Context, client *http.Client, token, guildID string, level uint8) error {
	return do(ctx, client, http.MethodPost, fmt.Sprintf("/guilds/%s/mfa", guildID), token, map[string]any{"level": level})
}

// DeleteGuildRole deletes a role.
func DeleteGuildRole(ctx context.Context, client *http.Client, token, guildID, roleID string) error {
	return do(ctx, client, http.MethodDelete, fmt.Sprintf("/guilds/%s/roles/%s", guildID, roleID), token, nil)
}

// GetGuildPruneCount returns how many members a prune with the given
// inactivity window would remove.
func GetGuildPruneCount(ctx context.Context, client *http.Client, token, guildID string, days uint8) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/prune?days=%d", guildID, days), token, nil)
}

// BeginGuildPrune kicks members inactive for the given number of days.
func BeginGuildPrune(ctx context.Context, client *http.Client, token, guildID string, days uint8) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPost, fmt.Sprintf("/guilds/%s/prune", guildID), token, map[string]any{"days": days})
}

// GetGuildVoiceRegions returns the voice regions available to a guild.
func GetGuildVoiceRegions(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/regions", guildID), token, nil)
}

// GetGuildInvites returns the invites of a guild.
func GetGuildInvites(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/invites", guildID), token, nil)
}

// GetGuildIntegrations returns the integrations of a guild.
func GetGuildIntegrations(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/integrations", guildID), token, nil)
}

// DeleteGuildIntegration removes an integration from a guild.
func DeleteGuildIntegration(ctx context.Context, client *http.Client, token, guildID, integrationID string) error {
	return do(ctx, client, http.MethodDelete, fmt.Sprintf("/guilds/%s/integrations/%s", guildID, integrationID), token, nil)
}

// GetGuildWidgetSettings returns the widget settings of a guild.
func GetGuildWidgetSettings(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/widget", guildID), token, nil)
}

// ModifyGuildWidgetSettings updates the widget settings of a guild.
func ModifyGuildWidgetSettings(ctx context.Context, client *http.Client, token, guildID string, settings any) error {
	return do(ctx, client, http.MethodPatch, fmt.Sprintf("/guilds/%s/widget", guildID), token, settings)
}

// GetGuildWidget returns the widget JSON for a guild.
func GetGuildWidget(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/widget.json", guildID), token, nil)
}

// GetGuildVanityURL returns the vanity invite of a guild.
func GetGuildVanityURL(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/vanity-url", guildID), token, nil)
}

// GetGuildWidgetImage returns the widget image for a guild.
func GetGuildWidgetImage(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/widget.png", guildID), token, nil)
}

// GetGuildWelcomeScreen returns the welcome screen of a guild.
func GetGuildWelcomeScreen(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/welcome-screen", guildID), token, nil)
}

// ModifyGuildWelcomeScreen updates the welcome screen of a guild.
func ModifyGuildWelcomeScreen(ctx context.Context, client *http.Client, token, guildID string, settings any) error {
	return do(ctx, client, http.MethodPatch, fmt.Sprintf("/guilds/%s/welcome-screen", guildID), token, settings)
}

// GetGuildOnboarding returns the onboarding flow of a guild.
func GetGuildOnboarding(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/onboarding", guildID), token, nil)
}

// ModifyGuildOnboarding updates the onboarding flow of a guild.
func ModifyGuildOnboarding(ctx context.Context, client *http.Client, token, guildID string, settings any) error {
	return do(ctx, client, http.MethodPut, fmt.Sprintf("/guilds/%s/onboarding", guildID), token, settings)
}

// ModifyCurrentUserVoiceState updates the bot's voice state in a stage channel.
func ModifyCurrentUserVoiceState(ctx context.Context, client *http.Client, token, guildID string, settings any) error {
	return do(ctx, client, http.MethodPatch, fmt.Sprintf("/guilds/%s/voice-states/@me", guildID), token, settings)
}

// ModifyUserVoiceState updates another user's voice state in a stage channel.
func ModifyUserVoiceState(ctx context.Context, client *http.Client, token, guildID, userID string, settings any) error {
	return do(ctx, client, http.MethodPatch, fmt.Sprintf("/guilds/%s/voice-states/%s", guildID, userID), token, settings)
}
