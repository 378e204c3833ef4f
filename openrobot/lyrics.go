package openrobot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/openrobot/openrobot-go/internal/transport"
)

// Lyrics searches for the song best matching query and returns its lyrics.
func (c *Client) Lyrics(ctx context.Context, query string) (*LyricResult, error) {
	if query == "" {
		return nil, fmt.Errorf("openrobot: lyrics query is required")
	}

	var result LyricResult
	raw, err := c.call(ctx, &transport.Request{
		Method: http.MethodGet,
		Target: "/api/lyrics/" + url.QueryEscape(query),
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get lyrics: %w", err)
	}
	result.Raw = raw

	return &result, nil
}
