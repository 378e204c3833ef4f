package transport

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultTries bounds how many requests a single dispatch may send while rate limited.
	DefaultTries = 5

	// Unbounded disables the try bound; rate-limited requests are retried forever.
	Unbounded = -1
)

type retryState int

const (
	statePending retryState = iota
	stateRetrying
	stateSucceeded
	stateFailed
)

func (s retryState) String() string {
	switch s {
	case statePending:
		return "pending"
	case stateRetrying:
		return "retrying"
	case stateSucceeded:
		return "succeeded"
	default:
		return "failed"
	}
}

// retryBudget tracks one dispatch through Pending, Retrying, Succeeded and Failed.
// remaining counts the requests still allowed and is ignored when unbounded.
type retryBudget struct {
	state     retryState
	remaining int
	unbounded bool
}

func newRetryBudget(tries int) *retryBudget {
	return &retryBudget{
		state:     statePending,
		remaining: tries,
		unbounded: tries < 0,
	}
}

// next reports whether another request may be sent.
func (b *retryBudget) next() bool {
	switch b.state {
	case statePending:
		return b.unbounded || b.remaining > 0
	case stateRetrying:
		return true
	default:
		return false
	}
}

// rateLimited consumes one try for a 429 and reports whether a retry follows.
// No retry is scheduled once the last try is spent.
func (b *retryBudget) rateLimited() bool {
	if b.unbounded {
		b.state = stateRetrying
		return true
	}

	b.remaining--
	if b.remaining > 0 {
		b.state = stateRetrying
		return true
	}

	b.state = stateFailed
	return false
}

func (b *retryBudget) succeed() { b.state = stateSucceeded }

func (b *retryBudget) fail() { b.state = stateFailed }

// Sleeper blocks for the rate-limit delay between attempts.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SleeperFunc adapts a function to the Sleeper interface.
type SleeperFunc func(ctx context.Context, d time.Duration) error

// Sleep calls f(ctx, d).
func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// TimerSleeper waits on a timer and returns early if ctx is done.
var TimerSleeper Sleeper = SleeperFunc(sleep)

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// parseRetryAfter reads Retry-After as delay-seconds or an HTTP-date.
// ok is false when the header is absent or unreadable.
func parseRetryAfter(header http.Header, now time.Time) (time.Duration, string, bool) {
	v := strings.TrimSpace(header.Get("Retry-After"))
	if v == "" {
		return 0, "", false
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second, v, true
	}
	if t, err := http.ParseTime(v); err == nil {
		d := t.Sub(now)
		if d < 0 {
			d = 0
		}
		return d, v, true
	}
	return 0, v, false
}
