// Package discord wraps the Discord REST API: each function formats a URL,
// attaches bearer authentication, optionally serializes a JSON body, performs
// exactly one HTTP request and unwraps the JSON response or error status.
// There is no retry, pagination or rate-limit handling here; callers own the
// *http.Client and any timeout policy.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// BaseURL is the API root. Variable so tests can point it at a local server.
var BaseURL = "https://discord.com/api/v9"

// StatusError is returned for non-2xx responses. The body is kept verbatim
// so callers can inspect Discord's error payload themselves.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("discord: status=%d body=%s", e.Code, e.Body)
}

// request performs one API call and returns the raw response body.
// An empty token skips the Authorization header (webhook-token endpoints).
func request(ctx context.Context, client *http.Client, method, path, token string, body any) (json.RawMessage, error) {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, BaseURL+path, rd)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}
	return respBody, nil
}

// do performs a call whose response body the caller does not need.
func do(ctx context.Context, client *http.Client, method, path, token string, body any) error {
	_, err := request(ctx, client, method, path, token, body)
	return err
}

// doJSON performs a call and returns the response as raw JSON.
func doJSON(ctx context.Context, client *http.Client, method, path, token string, body any) (json.RawMessage, error) {
	return request(ctx, client, method, path, token, body)
}
