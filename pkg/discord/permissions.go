package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// CheckPermission reports whether a member's permissions field contains the
// given permission string. This is a coarse substring check against the
// member object; callers needing bitwise permission math should fetch the
// member and roles themselves.
func CheckPermission(ctx context.Context, client *http.Client, token, guildID, userID, permission string) (bool, error) {
	raw, err := doJSON(ctx, client, http.MethodGet, fmt.Sprintf("/guilds/%s/members/%s", guildID, userID), token, nil)
	if err != nil {
		return false, err
	}

	var member struct {
		Permissions string `json:"permissions"`
	}
	if err := json.Unmarshal(raw, &member); err != nil {
		return false, fmt.Errorf("decode member: %w", err)
	}
	if member.Permissions == "" {
		return false, nil
	}
	return strings.Contains(member.Permissions, permission), nil
}
