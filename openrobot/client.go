// ABOUTME: Main SDK client for the OpenRobot API.
// ABOUTME: Provides NewClient, credential resolution, and the Translate/Speech accessors.

package openrobot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/openrobot/openrobot-go/internal/transport"
	"github.com/openrobot/openrobot-go/openrobot/credential"
	"github.com/openrobot/openrobot-go/openrobot/speech"
	"github.com/openrobot/openrobot-go/openrobot/translate"
)

// TestingToken is the shared public token. It allows 5 requests per day
// (resetting at 00:00 UTC) across all /api endpoints, after which the API
// answers 403.
const TestingToken = "I-Am-Testing"

// DefaultTries is the number of requests one call may send while rate limited.
const DefaultTries = transport.DefaultTries

// Unbounded makes WithTries retry rate-limited calls forever.
const Unbounded = transport.Unbounded

// Client is the OpenRobot SDK client.
// It holds only immutable configuration and may be reused across calls.
type Client struct {
	transport *transport.Client
	opts      options
	token     string

	translate *translate.Client
	speech    *speech.Client
}

// NewClient creates a new OpenRobot client with the given options.
// Without WithToken the token is looked up through the credential resolver:
//   - OPENROBOT_API_TOKEN environment variable
//   - OPENROBOT_API_TOKEN in ./.env
//   - token in $XDG_CONFIG_HOME/openrobot/config.toml (default ~/.config)
//
// ErrNoCredential is returned when none of them yields a token.
func NewClient(clientOpts ...Option) (*Client, error) {
	opts := options{handleRateLimit: true}

	for _, opt := range clientOpts {
		opt(&opts)
	}

	token := opts.token
	if token == "" {
		resolver := opts.resolver
		if resolver == nil {
			resolver = credential.Default()
		}
		resolved, err := resolver.Resolve()
		if err != nil {
			return nil, fmt.Errorf("openrobot: failed to resolve token: %w", err)
		}
		token = resolved
	}
	if token == "" {
		return nil, ErrNoCredential
	}

	tries := DefaultTries
	if opts.tries != nil {
		tries = *opts.tries
		if tries == 0 || tries < Unbounded {
			return nil, fmt.Errorf("openrobot: tries must be positive or Unbounded, got %d", tries)
		}
	}

	if token == TestingToken && !opts.ignoreWarning {
		logger := opts.logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("using the I-Am-Testing token: limited to 5 requests/day (resets 00:00 UTC); further /api calls return 403 Forbidden")
	}

	transportClient, err := transport.New(transport.Config{
		BaseURL:               opts.baseURL,
		Token:                 token,
		HTTPClient:            opts.httpClient,
		Logger:                opts.logger,
		Timeout:               opts.timeout,
		Tries:                 tries,
		DisableRateLimitRetry: !opts.handleRateLimit,
		Sleeper:               opts.sleeper,
	})
	if err != nil {
		return nil, fmt.Errorf("openrobot: failed to create transport: %w", err)
	}

	return &Client{
		transport: transportClient,
		opts:      opts,
		token:     token,
		translate: translate.NewClient(transportClient),
		speech:    speech.NewClient(transportClient),
	}, nil
}

// Token returns the API token the client authorizes with.
func (c *Client) Token() string {
	return c.token
}

// HandlesRateLimit reports whether 429 responses are retried.
func (c *Client) HandlesRateLimit() bool {
	return c.opts.handleRateLimit
}

// Translate returns the translation client.
func (c *Client) Translate() *translate.Client {
	return c.translate
}

// Speech returns the speech-to-text and text-to-speech client.
func (c *Client) Speech() *speech.Client {
	return c.speech
}

// Request is a low-level request descriptor for endpoints without a typed method.
type Request = transport.Request

// Response is the result of Do.
type Response = transport.Response

// Do dispatches a raw request through the same authorization, error mapping
// and rate-limit handling the typed methods use.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	return c.transport.Do(ctx, req)
}

// call dispatches req, decodes the body into result and returns the body.
func (c *Client) call(ctx context.Context, req *transport.Request, result any) (json.RawMessage, error) {
	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := resp.Decode(result); err != nil {
		return nil, err
	}
	return resp.Body, nil
}
