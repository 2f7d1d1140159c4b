package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// FetchChannelInfo returns the channel object.
func FetchChannelInfo(ctx context.Context, client *http.Client, token, channelID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/channels/%s", channelID), token, nil)
}

// ModifyChannel updates channel settings (name, topic, etc).
func ModifyChannel(ctx context.Context, client *http.Client, token, channelID string, settings any) error {
	return do(ctx, client, http.MethodPatch, fmt.Sprintf("/channels/%s", channelID), token, settings)
}

// DeleteChannel deletes a channel, or closes it if it is a DM.
func DeleteChannel(ctx context.Context, client *http.Client, token, channelID string) error {
	return do(ctx, client, http.MethodDelete, fmt.Sprintf("/channels/%s", channelID), token, nil)
}

// GetChannelMessages returns the most recent messages in a channel.
func GetChannelMessages(ctx context.Context, client *http.Client, token, channelID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/channels/%s/messages", channelID), token, nil)
}

// GetChannelMessage returns a single message.
func GetChannelMessage(ctx context.Context, client *http.Client, token, channelID, messageID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/channels/%s/messages/%s", channelID, messageID), token, nil)
}

// CrosspostMessage publishes a message from an announcement channel.
func CrosspostMessage(ctx context.Context, client *http.Client, token, channelID, messageID string) error {
	return do(ctx, client, http.MethodPost, fmt.Sprintf("/channels/%s/messages/%s/crosspost", channelID, messageID), token, nil)
}

// CreateReaction adds the bot's reaction to a message.
func CreateReaction(ctx context.Context, client *http.Client, token, channelID, messageID, emoji string) error {
	path := fmt.Sprintf("/channels/%s/messages/%s/reactions/%s/@me", channelID, messageID, url.PathEscape(emoji))
	return do(ctx, client, http.MethodPut, path, token, nil)
}

// DeleteOwnReaction removes the bot's reaction from a message.
func DeleteOwnReaction(ctx context.Context, client *http.Client, token, channelID, messageID, emoji string) error {
	path := fmt.Sprintf("/channels/%s/messages/%s/reactions/%s/@me", channelID, messageID, url.PathEscape(emoji))
	return do(ctx, client, http.MethodDelete, path, token, nil)
}

// DeleteUserReaction removes another user's reaction from a message.
func DeleteUserReaction(ctx context.Context, client *http.Client, token, channelID, messageID, emoji, userID string) error {
	path := fmt.Sprintf("/channels/%s/messages/%s/reactions/%s/%s", channelID, messageID, url.PathEscape(emoji), userID)
	return do(ctx, client, http.MethodDelete, path, token, nil)
}

// GetReactions returns the reactions on a message.
func GetReactions(ctx context.Context, client *http.Client, token, channelID, messageID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/channels/%s/messages/%s/reactions", channelID, messageID), token, nil)
}

// DeleteAllReactions removes every reaction from a message.
func DeleteAllReactions(ctx context.Context, client *http.Client, token, channelID, messageID string) error {
	return do(ctx, client, http.MethodDelete, fmt.Sprintf("/channels/%s/messages/%s/reactions", channelID, messageID), token, nil)
}

// DeleteAllReactionsForEmoji removes every reaction with a given emoji.
func DeleteAllReactionsForEmoji(ctx context.Context, client *http.Client, token, channelID, messageID, emoji string) error {
	path := fmt.Sprintf("/channels/%s/messages/%s/reactions/%s", channelID, messageID, url.PathEscape(emoji))
	return do(ctx, client, http.MethodDelete, path, token, nil)
}

// BulkDeleteMessages deletes multiple messages in one call.
func BulkDeleteMessages(ctx context.Context, client *http.Client, token, channelID string, messageIDs []string) error {
	path := fmt.Sprintf("/channels/%s/messages/bulk-delete", channelID)
	return do(ctx, client, http.MethodPost, path, token, map[string]any{"messages": messageIDs})
}

// EditChannelPermissions updates a permission overwrite for a role or member.
func EditChannelPermissions(ctx context.Context, client *http.Client, token, channelID, overwriteID string, permissions any) error {
	return do(ctx, client, http.MethodPut, fmt.Sprintf("/channels/%s/permissions/%s", channelID, overwriteID), token, permissions)
}

// GetChannelInvites returns the invites for a channel.
func GetChannelInvites(ctx context.Context, client *http.Client, token, channelID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/channels/%s/invites", channelID), token, nil)
}

// CreateChannelInvite creates an invite for a channel.
func CreateChannelInvite(ctx context.Context, client *http.Client, token, channelID string, inviteSettings any) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPost, fmt.Sprintf("/channels/%s/invites", channelID), token, inviteSettings)
}

// DeleteChannelPermission removes a permission overwrite.
func DeleteChannelPermission(ctx context.Context, client *http.Client, token, channelID, overwriteID string) error {
	return do(ctx, client, http.MethodDelete, fmt.Sprintf("/channels/%s/permissions/%s", channelID, overwriteID), token, nil)
}

// FollowAnnouncementChannel subscribes a target channel to an announcement channel.
func FollowAnnouncementChannel(ctx context.Context, client *http.Client, token, channelID, webhookChannelID string) (json.RawMessage, error) {
	path := fmt.Sprintf("/channels/%s/followers", channelID)
	return doJSON(ctx, client, http.MethodPost, path, token, map[string]any{"webhook_channel_id": webhookChannelID})
}

// TriggerTypingIndicator shows the "is typing..." indicator in a channel.
func TriggerTypingIndicator(ctx context.Context, client *http.Client, token, channelID string) error {
	return do(ctx, client, http.MethodPost, fmt.Sprintf("/channels/%s/typing", channelID), token, nil)
}

// GetPinnedMessages returns the pinned messages of a channel.
func GetPinnedMessages(ctx context.Context, client *http.Client, token, channelID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/channels/%s/pins", channelID), token, nil)
}

// GroupDMAddRecipient adds a user to a group DM using their OAuth access token.
func GroupDMAddRecipient(ctx context.Context, client *http.Client, token, channelID, userID, accessToken, nick string) error {
	path := fmt.Sprintf("/channels/%s/recipients/%s", channelID, userID)
	return do(ctx, client, http.MethodPut, path, token, map[string]any{"access_token": accessToken, "nick": nick})
}

// GroupDMRemoveRecipient removes a user from a group DM.
func GroupDMRemoveRecipient(ctx context.Context, client *http.Client, token, channelID, userID string) error {
	return do(ctx, client, http.MethodDelete, fmt.Sprintf("/channels/%s/recipients/%s", channelID, userID), token, nil)
}

// StartThreadFromMessage creates a thread attached to an existing message.
func StartThreadFromMessage(ctx context.Context, client *http.Client, token, channelID, messageID string, threadSettings any) (json.RawMessage, error) {
	path := fmt.Sprintf("/channels/%s/messages/%s/threads", channelID, messageID)
	return doJSON(ctx, client, http.MethodPost, path, token, threadSettings)
}

// StartThreadWithoutMessage creates a standalone thread in a channel.
func StartThreadWithoutMessage(ctx context.Context, client *http.Client, token, channelID string, threadSettings any) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPost, fmt.Sprintf("/channels/%s/threads", channelID), token, threadSettings)
}

// JoinThread adds the bot to a thread.
func JoinThread(ctx context.Context, client *http.Client, token, channelID string) error {
	return do(ctx, client, http.MethodPut, fmt.Sprintf("/channels/%s/thread-members/@me", channelID), token, nil)
}

// AddThreadMember adds a user to a thread.
func AddThreadMember(ctx context.Context, client *http.Client, token, channelID, userID string) error {
	return do(ctx, client, http.MethodPut, fmt.Sprintf("/channels/%s/thread-members/%s", channelID, userID), token, nil)
}

// RemoveThreadMember removes a user from a thread.
func RemoveThreadMember(ctx context.Context, client *http.Client, token, channelID, userID string) error {
	return do(ctx, client, http.MethodDelete, fmt.Sprintf("/channels/%s/thread-members/%s", channelID, userID), token, nil)
}

// GetThreadMember returns a thread member object for a user.
func GetThreadMember(ctx context.Context, client *http.Client, token, channelID, userID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/channels/%s/thread-members/%s", channelID, userID), token, nil)
}

// ListThreadMembers returns the members of a thread.
func ListThreadMembers(ctx context.Context, client *http.Client, token, channelID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/channels/%s/thread-members", channelID), token, nil)
}

// ListPublicArchivedThreads returns archived public threads in a channel.
func ListPublicArchivedThreads(ctx context.Context, client *http.Client, token, channelID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/channels/%s/threads/archived/public", channelID), token, nil)
}

// ListPrivateArchivedThreads returns archived private threads in a channel.
func ListPrivateArchivedThreads(ctx context.Context, client *http.Client, token, channelID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/channels/%s/threads/archived/private", channelID), token, nil)
}

// ListJoinedPrivateArchivedThreads returns archived private threads the bot has joined.
func ListJoinedPrivateArchivedThreads(ctx context.Context, client *http.Client, token, channelID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/channels/%s/users/@me/threads/archived/private", channelID), token, nil)
}
