package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetSticker returns a sticker object by ID.
func GetSticker(ctx context.Context, client *http.Client, token, stickerID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/stickers/%s", stickerID), token, nil)
}

// ListStickerPacks returns the standard sticker packs.
func ListStickerPacks(ctx context.Context, client *http.Client, token string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, "/sticker-packs", token, nil)
}

// ListGuildStickers returns the stickers of a guild.
func ListGuildStickers(ctx context.Context, client *http.Client, token, guildID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/stickers", guildID), token, nil)
}

// GetGuildSticker returns a guild sticker by ID.
func GetGuildSticker(ctx context.Context, client *http.Client, token, guildID, stickerID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/stickers/%s", guildID, stickerID), token, nil)
}

// CreateGuildSticker uploads a sticker to a guild.
func CreateGuildSticker(ctx context.Context, client *http.Client, token, guildID string, stickerData any) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPost, fmt.Sprintf("/guilds/%s/stickers", guildID), token, stickerData)
}

// ModifyGuildSticker updates a guild sticker.
func ModifyGuildSticker(ctx context.Context, client *http.Client, token, guildID, stickerID string, stickerData any) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPatch, fmt.Sprintf("/guilds/%s/stickers/%s", guildID, stickerID), token, stickerData)
}

// DeleteGuildSticker deletes a guild sticker.
func DeleteGuildSticker(ctx context.Context, client *http.Client, token, guildID, stickerID string) error {
	return do(ctx, client, http.MethodDelete, fmt.Sprintf("/guilds/%s/stickers/%s", guildID, stickerID), token, nil)
}
