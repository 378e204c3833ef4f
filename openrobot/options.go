// ABOUTME: Defines functional options for configuring the client and endpoint calls.
// ABOUTME: Follows the functional options pattern used by AWS, Google Cloud, and Stripe Go SDKs.

package openrobot

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/openrobot/openrobot-go/internal/conv"
	"github.com/openrobot/openrobot-go/internal/transport"
	"github.com/openrobot/openrobot-go/openrobot/credential"
)

// options holds the configuration for a Client.
type options struct {
	token           string
	resolver        credential.Resolver
	ignoreWarning   bool
	handleRateLimit bool
	tries           *int
	httpClient      *http.Client
	logger          *slog.Logger
	timeout         time.Duration
	baseURL         string
	sleeper         Sleeper
}

// Option configures a Client.
type Option func(*options)

// WithToken sets the API token. It takes precedence over any credential resolver.
func WithToken(token string) Option {
	return func(o *options) {
		o.token = token
	}
}

// WithCredentialResolver sets where the token comes from when WithToken is not used.
// Default: credential.Default(), which checks OPENROBOT_API_TOKEN, ./.env and
// $XDG_CONFIG_HOME/openrobot/config.toml.
func WithCredentialResolver(r credential.Resolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// WithIgnoreWarning silences the warning logged when TestingToken is used.
func WithIgnoreWarning() Option {
	return func(o *options) {
		o.ignoreWarning = true
	}
}

// WithHandleRateLimit controls what happens on a 429. When enabled (the
// default) the client sleeps for Retry-After and retries; when disabled it
// returns a TooManyRequests error immediately.
func WithHandleRateLimit(enabled bool) Option {
	return func(o *options) {
		o.handleRateLimit = enabled
	}
}

// WithTries sets how many requests one call may send while rate limited.
// Pass Unbounded to retry forever. Default: 5.
func WithTries(n int) Option {
	return func(o *options) {
		o.tries = conv.Ptr(n)
	}
}

// WithHTTPClient sets a custom HTTP client.
// Use this to configure timeouts, TLS, or proxies.
// When a custom client is provided, WithTimeout is ignored;
// configure the timeout directly on the provided client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets a structured logger for debug output.
// If not set, the SDK is silent apart from the testing-token warning,
// which then goes to slog.Default().
func WithLogger(handler slog.Handler) Option {
	return func(o *options) {
		if handler != nil {
			o.logger = slog.New(handler)
		}
	}
}

// WithTimeout sets the per-request HTTP timeout.
// Default: 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithBaseURL points the client at a different API root, such as a mirror
// or a local test server. Relative endpoint paths are joined to it.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithSleeper replaces the function used to wait out Retry-After.
func WithSleeper(s Sleeper) Option {
	return func(o *options) {
		o.sleeper = s
	}
}

// Sleeper blocks for the rate-limit delay between attempts.
type Sleeper = transport.Sleeper

// SleeperFunc adapts a function to the Sleeper interface.
type SleeperFunc = transport.SleeperFunc

// textGenerationOptions holds the configuration for a TextGeneration call.
type textGenerationOptions struct {
	maxLength *int
	numReturn int
}

// TextGenerationOption configures a TextGeneration call.
type TextGenerationOption func(*textGenerationOptions)

// WithMaxLength caps the length of each generated text.
func WithMaxLength(n int) TextGenerationOption {
	return func(o *textGenerationOptions) {
		o.maxLength = conv.Ptr(n)
	}
}

// WithNumReturn sets how many generated texts to return.
// Default: 1.
func WithNumReturn(n int) TextGenerationOption {
	return func(o *textGenerationOptions) {
		o.numReturn = n
	}
}

// summarizationOptions holds the configuration for a Summarization call.
type summarizationOptions struct {
	maxLength *int
	minLength int
}

// SummarizationOption configures a Summarization call.
type SummarizationOption func(*summarizationOptions)

// WithSummaryMaxLength caps the summary length.
func WithSummaryMaxLength(n int) SummarizationOption {
	return func(o *summarizationOptions) {
		o.maxLength = conv.Ptr(n)
	}
}

// WithSummaryMinLength sets the minimum summary length.
// Default: 1.
func WithSummaryMinLength(n int) SummarizationOption {
	return func(o *summarizationOptions) {
		o.minLength = n
	}
}
