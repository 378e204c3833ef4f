package translate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/openrobot/openrobot-go/internal/transport"
)

// Client provides access to the OpenRobot translation services.
// It is safe for concurrent use.
type Client struct {
	transport *transport.Client
}

// NewClient creates a new Translate client.
// This is typically called internally by the root openrobot.Client.
func NewClient(t *transport.Client) *Client {
	return &Client{transport: t}
}

// Translate translates text into toLang using the named service.
// The source language is detected unless WithFromLang is given.
func (c *Client) Translate(ctx context.Context, service Service, text, toLang string, opts ...Option) (*Result, error) {
	if service == "" {
		return nil, fmt.Errorf("openrobot: translation service is required")
	}
	if text == "" {
		return nil, fmt.Errorf("openrobot: text is required")
	}
	if toLang == "" {
		return nil, fmt.Errorf("openrobot: target language is required")
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	query := url.Values{
		"text":    []string{text},
		"to_lang": []string{toLang},
	}
	if o.fromLang != "" {
		query.Set("from_lang", o.fromLang)
	}

	resp, err := c.transport.Do(ctx, &transport.Request{
		Method: http.MethodPost,
		Target: "/api/translate/" + url.QueryEscape(string(service)),
		Query:  query,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to translate text: %w", err)
	}

	var result Result
	if err := resp.Decode(&result); err != nil {
		return nil, err
	}
	result.Raw = resp.Body

	return &result, nil
}

// Languages lists the languages the named service can translate between.
func (c *Client) Languages(ctx context.Context, service Service) ([]Language, error) {
	if service == "" {
		return nil, fmt.Errorf("openrobot: translation service is required")
	}

	var resp struct {
		Languages []Language `json:"languages"`
	}

	target := "/api/translate/" + url.QueryEscape(string(service)) + "/languages"
	if err := c.transport.Get(ctx, target, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}

	return resp.Languages, nil
}
