package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// GetAnswerVoters returns the users who voted for a poll answer. after and
// limit page through the voter list; pass "" and 0 to use the API defaults.
func GetAnswerVoters(ctx context.Context, client *http.Client, token, channelID, messageID, answerID, after string, limit int) (json.RawMessage, error) {
	path := fmt.Sprintf("/channels/%s/polls/%s/answers/%s/voters", channelID, messageID, answerID)

	q := url.Values{}
	if after != "" {
		q.Set("after", after)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	return doJSON(ctx, client, http.MethodGet, path, token, nil)
}

// EndPoll immediately expires a poll and returns the updated message.
func EndPoll(ctx context.Context, client *http.Client, token, channelID, messageID string) (json.RawMessage, error) {
	return doJSON(ctx, client, http.MethodPost, fmt.Sprintf("/channels/%s/polls/%s/expire", channelID, messageID), token, nil)
}
