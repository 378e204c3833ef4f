package openrobot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrobot/openrobot-go/openrobot/credential"
)

type recordingSleeper struct {
	delays []time.Duration
}

func (s *recordingSleeper) Sleep(_ context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	return nil
}

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) (*Client, *recordingSleeper) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sleeper := &recordingSleeper{}
	base := []Option{
		WithToken("test-token"),
		WithBaseURL(server.URL + "/api"),
		WithSleeper(sleeper),
	}
	client, err := NewClient(append(base, opts...)...)
	require.NoError(t, err)
	return client, sleeper
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewClient_ExplicitToken(t *testing.T) {
	client, err := NewClient(WithToken("abc"), WithCredentialResolver(credential.Static("ignored")))
	require.NoError(t, err)
	assert.Equal(t, "abc", client.Token())
	assert.True(t, client.HandlesRateLimit())
	assert.NotNil(t, client.Translate())
	assert.NotNil(t, client.Speech())
}

func TestNewClient_ResolverToken(t *testing.T) {
	client, err := NewClient(WithCredentialResolver(credential.Static("from-resolver")))
	require.NoError(t, err)
	assert.Equal(t, "from-resolver", client.Token())
}

func TestNewClient_NoCredential(t *testing.T) {
	_, err := NewClient(WithCredentialResolver(credential.Chain{credential.Static("")}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestNewClient_ResolverError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewClient(WithCredentialResolver(credential.ResolverFunc(func() (string, error) {
		return "", boom
	})))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestNewClient_InvalidTries(t *testing.T) {
	for _, tries := range []int{0, -2, -10} {
		_, err := NewClient(WithToken("abc"), WithTries(tries))
		assert.Error(t, err, "tries=%d", tries)
	}

	_, err := NewClient(WithToken("abc"), WithTries(Unbounded))
	assert.NoError(t, err)
}

func TestNewClient_TestingTokenWarns(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	client, err := NewClient(WithToken(TestingToken), WithLogger(handler))
	require.NoError(t, err)
	assert.Equal(t, TestingToken, client.Token())
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "5 requests/day")
}

func TestNewClient_TestingTokenIgnoreWarning(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, nil)

	_, err := NewClient(WithToken(TestingToken), WithLogger(handler), WithIgnoreWarning())
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := NewClient(WithToken("abc"), WithBaseURL("not a url"))
	assert.Error(t, err)
}

func TestClient_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		is     func(error) bool
	}{
		{"bad request", http.StatusBadRequest, IsBadRequest},
		{"forbidden", http.StatusForbidden, IsForbidden},
		{"internal", http.StatusInternalServerError, IsInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, tt.status, map[string]any{"message": "nope"})
			}))

			_, err := client.Sentiment(context.Background(), "hello")
			require.Error(t, err)
			assert.True(t, tt.is(err))
			assert.True(t, IsAPIError(err))

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "nope", apiErr.Message)
			assert.JSONEq(t, `{"message":"nope"}`, string(apiErr.Body))
		})
	}
}

func TestClient_GenericError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "missing"})
	}))

	_, err := client.Lyrics(context.Background(), "unknown song")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindGeneric, apiErr.Kind)
	assert.False(t, IsForbidden(err))
}

func TestClient_RateLimitRetried(t *testing.T) {
	var calls atomic.Int32
	client, sleeper := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "7")
			writeJSON(w, http.StatusTooManyRequests, map[string]any{"message": "slow down"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"text": "hi"})
	}))

	result, err := client.OCR(context.Background(), ImageURL("https://example.com/a.png"))
	require.NoError(t, err)
	assert.Equal(t, "hi", result.Text)
	assert.Equal(t, []time.Duration{7 * time.Second}, sleeper.delays)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_RateLimitExhausted(t *testing.T) {
	var calls atomic.Int32
	client, sleeper := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "1")
		writeJSON(w, http.StatusTooManyRequests, map[string]any{"message": "slow down"})
	}), WithTries(2))

	_, err := client.Sentiment(context.Background(), "hello")
	require.Error(t, err)
	assert.True(t, IsTooManyRequests(err))
	assert.Equal(t, int32(2), calls.Load())
	assert.Len(t, sleeper.delays, 1)
}

func TestClient_RateLimitDisabled(t *testing.T) {
	client, sleeper := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "1")
		writeJSON(w, http.StatusTooManyRequests, map[string]any{})
	}), WithHandleRateLimit(false))

	assert.False(t, client.HandlesRateLimit())

	_, err := client.Sentiment(context.Background(), "hello")
	require.Error(t, err)
	assert.True(t, IsTooManyRequests(err))
	assert.Empty(t, sleeper.delays)
}

func TestClient_RateLimitMissingRetryAfter(t *testing.T) {
	var calls atomic.Int32
	client, sleeper := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusTooManyRequests, map[string]any{})
	}))

	_, err := client.Sentiment(context.Background(), "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRetryAfter)

	var headerErr *RetryHeaderError
	assert.ErrorAs(t, err, &headerErr)
	assert.Equal(t, int32(1), calls.Load())
	assert.Empty(t, sleeper.delays)
}

func TestClient_Do_PassThrough(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"found": false})
	}))

	resp, err := client.Do(context.Background(), &Request{
		Method:      http.MethodGet,
		Target:      "/api/anything",
		PassThrough: []int{http.StatusNotFound},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"found":false}`, string(resp.Body))
}

func TestClient_Do_MalformedURL(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusOK, map[string]any{})
	}))

	_, err := client.Do(context.Background(), &Request{Target: "https://evil.example.com/api/x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedURL)
	assert.Equal(t, int32(0), calls.Load())
}
