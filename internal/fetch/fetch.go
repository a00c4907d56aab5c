// Package fetch downloads archive bytes over HTTP with bounded,
// fixed-interval retries.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Defaults applied when Options fields are zero.
const (
	DefaultAttempts = 5
	DefaultBackoff  = 2 * time.Second
)

// Common errors
var (
	// ErrNotFound means the remote archive does not exist; retrying cannot
	// help a nonexistent repository or ref.
	ErrNotFound = errors.New("archive not found")

	// ErrExhausted means every allowed attempt failed transiently.
	ErrExhausted = errors.New("retries exhausted")
)

// Error wraps fetch failures with the URL and attempt count
type Error struct {
	URL      string
	Attempts int
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Options control the retry loop.
type Options struct {
	Attempts int           // maximum attempts, including the first
	Backoff  time.Duration // fixed wait between attempts
	Client   *http.Client  // defaults to http.DefaultClient
}

func (o Options) withDefaults() Options {
	if o.Attempts <= 0 {
		o.Attempts = DefaultAttempts
	}
	if o.Backoff <= 0 {
		o.Backoff = DefaultBackoff
	}
	if o.Client == nil {
		o.Client = http.DefaultClient
	}
	return o
}

// Event reports that attempt Attempt failed transiently and the fetch is
// about to back off and try again.
type Event struct {
	Attempt int
}

// Fetch issues a GET for url, retrying transient failures up to
// opts.Attempts times with a fixed backoff between attempts. Before each
// retry it calls sink (if non-nil) with the number of attempts failed so
// far. A not-found response is terminal and never retried.
func Fetch(ctx context.Context, url string, opts Options, sink func(Event)) ([]byte, error) {
	opts = opts.withDefaults()

	var lastErr error
	for attempt := 1; attempt <= opts.Attempts; attempt++ {
		body, err := get(ctx, opts.Client, url)
		if err == nil {
			return body, nil
		}
		if !retriable(err) {
			return nil, &Error{URL: url, Attempts: attempt, Err: err}
		}
		lastErr = err

		if attempt == opts.Attempts {
			break
		}
		if sink != nil {
			sink(Event{Attempt: attempt})
		}
		if err := sleep(ctx, opts.Backoff); err != nil {
			return nil, &Error{URL: url, Attempts: attempt, Err: err}
		}
	}

	return nil, &Error{
		URL:      url,
		Attempts: opts.Attempts,
		Err:      fmt.Errorf("%w after %d attempts: %w", ErrExhausted, opts.Attempts, lastErr),
	}
}

func get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w (status %d)", ErrNotFound, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &statusError{Status: resp.Status, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// Some providers answer 200 with a short "404: Not Found" marker body
	// instead of a real error status.
	if looksLikeNotFound(body) {
		return nil, fmt.Errorf("%w (server sent %q)", ErrNotFound, bytes.TrimSpace(body))
	}

	return body, nil
}

type statusError struct {
	Status string
	Code   int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %s", e.Status)
}

// retriable reports whether another attempt could plausibly succeed.
func retriable(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.Code >= 500 || se.Code == http.StatusTooManyRequests
	}
	// Transport-level failures: connection refused, timeout, DNS.
	return true
}

func looksLikeNotFound(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) >= 3 && len(trimmed) < 64 && bytes.HasPrefix(trimmed, []byte("404"))
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
