package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	apierrors "github.com/openrobot/openrobot-go/internal/errors"
)

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-Id"
)

// Client handles HTTP communication with the OpenRobot API.
// A Client holds no per-call state; each Do runs its own retry loop.
type Client struct {
	baseURL      string
	allowedHosts map[string]struct{}
	token        string
	headers      map[string]string
	httpClient   *http.Client
	logger       *slog.Logger

	tries           int
	handleRateLimit bool
	sleeper         Sleeper
	now             func() time.Time
}

// Config holds configuration for creating a transport Client.
type Config struct {
	// BaseURL defaults to DefaultBaseURL. Its host is always allowed.
	BaseURL string
	// Token is sent verbatim as the Authorization header.
	Token      string
	Headers    map[string]string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Timeout    time.Duration

	// Tries bounds the requests sent for one dispatch while rate limited.
	// Zero means DefaultTries; a negative value means Unbounded.
	Tries int
	// DisableRateLimitRetry makes a 429 fail immediately instead of sleeping.
	DisableRateLimitRetry bool
	Sleeper               Sleeper
	// Now is used to interpret HTTP-date Retry-After values.
	Now func() time.Time

	// AllowedHosts extends the hosts absolute targets may point at.
	AllowedHosts []string
}

// File is a single multipart upload.
type File struct {
	Field    string
	Filename string
	Data     []byte
}

// Request describes one logical API call.
type Request struct {
	Method string
	// Target is an endpoint path such as "/api/sentiment" or an absolute URL.
	Target string
	Query  url.Values
	Form   url.Values
	File   *File
	Header http.Header

	// PassThrough lists status codes returned as results regardless of range.
	PassThrough []int
	// Raw asks for the transport response alongside the decoded body.
	Raw bool
	// SkipURLValidation lets an absolute target point at any host.
	SkipURLValidation bool
}

// Response is the outcome of a successful dispatch.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       json.RawMessage
	RequestID  string
	// HTTP is only set when the request asked for Raw. Its body can be re-read.
	HTTP *http.Response
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if v == nil {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// New creates a new transport Client.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid base URL: %q is not absolute", base)
	}

	hosts := map[string]struct{}{
		strings.ToLower(baseURL.Host): {},
		LyricsHost:                    {},
	}
	for _, h := range cfg.AllowedHosts {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			hosts[h] = struct{}{}
		}
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	tries := cfg.Tries
	if tries == 0 {
		tries = DefaultTries
	}

	sleeper := cfg.Sleeper
	if sleeper == nil {
		sleeper = TimerSleeper
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Client{
		baseURL:         base,
		allowedHosts:    hosts,
		token:           cfg.Token,
		headers:         cfg.Headers,
		httpClient:      httpClient,
		logger:          cfg.Logger,
		tries:           tries,
		handleRateLimit: !cfg.DisableRateLimitRetry,
		sleeper:         sleeper,
		now:             now,
	}, nil
}

// Get performs a GET request to the specified path with query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values, result any) error {
	resp, err := c.Do(ctx, &Request{Method: http.MethodGet, Target: path, Query: query})
	if err != nil {
		return err
	}
	return resp.Decode(result)
}

// PostForm performs a POST request with form-encoded fields.
func (c *Client) PostForm(ctx context.Context, path string, query, form url.Values, result any) error {
	resp, err := c.Do(ctx, &Request{Method: http.MethodPost, Target: path, Query: query, Form: form})
	if err != nil {
		return err
	}
	return resp.Decode(result)
}

// PostFile performs a POST request uploading file as multipart form data.
func (c *Client) PostFile(ctx context.Context, path string, query url.Values, file File, result any) error {
	resp, err := c.Do(ctx, &Request{Method: http.MethodPost, Target: path, Query: query, File: &file})
	if err != nil {
		return err
	}
	return resp.Decode(result)
}

// Do dispatches req: it sends the request, classifies the response and
// retries rate-limited attempts until the try budget runs out.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	target, err := c.resolveTarget(req.Target, req.SkipURLValidation)
	if err != nil {
		return nil, err
	}
	target, err = withQuery(target, req.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to build request URL: %w", err)
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	header := c.mergeHeaders(req.Header)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	budget := newRetryBudget(c.tries)
	var last *Response

	for budget.next() {
		resp, err := c.send(ctx, method, target, header, body)
		if err != nil {
			budget.fail()
			return nil, err
		}

		status := resp.StatusCode
		switch {
		case passThrough(req.PassThrough, status):
			budget.succeed()
			return finish(resp, req.Raw), nil

		case status == http.StatusForbidden,
			status == http.StatusBadRequest,
			status == http.StatusInternalServerError:
			budget.fail()
			return nil, apierrors.New(status, resp.Body, resp.HTTP, resp.RequestID)

		case status == http.StatusTooManyRequests:
			if !c.handleRateLimit {
				budget.fail()
				return nil, apierrors.New(status, resp.Body, resp.HTTP, resp.RequestID)
			}

			delay, value, ok := parseRetryAfter(resp.Header, c.now())
			if !ok {
				budget.fail()
				return nil, &apierrors.RetryHeaderError{Value: value, Body: resp.Body, Response: resp.HTTP}
			}

			last = resp
			if !budget.rateLimited() {
				break
			}

			if c.logger != nil {
				c.logger.Debug("rate limited",
					"url", target,
					"retry_after", delay,
					"remaining", budget.remaining,
					"unbounded", budget.unbounded,
					"request_id", resp.RequestID,
				)
			}
			if err := c.sleeper.Sleep(ctx, delay); err != nil {
				budget.fail()
				return nil, err
			}

		case status >= 200 && status < 300:
			budget.succeed()
			return finish(resp, req.Raw), nil

		default:
			budget.fail()
			return nil, apierrors.New(status, resp.Body, resp.HTTP, resp.RequestID)
		}
	}

	if last == nil {
		return nil, &apierrors.APIError{Kind: apierrors.KindTooManyRequests, StatusCode: http.StatusTooManyRequests}
	}
	return nil, apierrors.New(last.StatusCode, last.Body, last.HTTP, last.RequestID)
}

// mergeHeaders layers caller headers over the client defaults and
// injects the credential when the caller did not set Authorization.
func (c *Client) mergeHeaders(override http.Header) http.Header {
	header := make(http.Header)
	header.Set("Accept", "application/json")
	for k, v := range c.headers {
		header.Set(k, v)
	}
	for k, vals := range override {
		header.Del(k)
		for _, v := range vals {
			header.Add(k, v)
		}
	}
	if header.Get(headerAuthorization) == "" && c.token != "" {
		header.Set(headerAuthorization, c.token)
	}
	return header
}

func (c *Client) send(ctx context.Context, method, target string, header http.Header, body []byte) (*Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = header.Clone()

	requestID := req.Header.Get(headerRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
		req.Header.Set(headerRequestID, requestID)
	}

	start := time.Now()
	if c.logger != nil {
		c.logger.Debug("request",
			"method", method,
			"url", target,
			"request_id", requestID,
		)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if c.logger != nil {
		c.logger.Debug("response",
			"status", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", requestID,
		)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(data))

	var decoded json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       decoded,
		RequestID:  requestID,
		HTTP:       resp,
	}, nil
}

// finish drops the transport response unless the caller asked for it.
func finish(resp *Response, raw bool) *Response {
	if !raw {
		resp.HTTP = nil
	}
	return resp
}

func passThrough(codes []int, status int) bool {
	for _, code := range codes {
		if code == status {
			return true
		}
	}
	return false
}

// encodeBody renders the form or file payload once so every retry resends the same bytes.
func encodeBody(req *Request) ([]byte, string, error) {
	if req.File != nil {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)

		for k, vals := range req.Form {
			for _, v := range vals {
				if err := w.WriteField(k, v); err != nil {
					return nil, "", fmt.Errorf("failed to encode form field %q: %w", k, err)
				}
			}
		}

		field := req.File.Field
		if field == "" {
			field = "file"
		}
		filename := req.File.Filename
		if filename == "" {
			filename = field
		}
		part, err := w.CreateFormFile(field, filename)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode upload: %w", err)
		}
		if _, err := part.Write(req.File.Data); err != nil {
			return nil, "", fmt.Errorf("failed to encode upload: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, "", fmt.Errorf("failed to encode upload: %w", err)
		}
		return buf.Bytes(), w.FormDataContentType(), nil
	}

	if req.Form != nil {
		return []byte(req.Form.Encode()), "application/x-www-form-urlencoded", nil
	}

	return nil, "", nil
}
