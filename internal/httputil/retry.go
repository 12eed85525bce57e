// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for the Article Source.
package httputil

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/pdiddy/wiktitrage/internal/logging"
)

// RetryBaseDelay is the first backoff delay. Tests override it to avoid
// real sleeps.
var RetryBaseDelay = 500 * time.Millisecond

// maxRetryAfter caps a server supplied Retry-After delay.
const maxRetryAfter = 30 * time.Second

const defaultMaxRetries = 3

// Retryable reports whether a response status is worth another attempt:
// 429 Too Many Requests and every 5xx.
func Retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// DoWithRetry executes req and retries retryable responses with
// exponential backoff starting at RetryBaseDelay. A Retry-After header
// given in seconds replaces the computed delay.
//
// When maxRetries is 0 the default (3) is used. Transport errors are
// returned immediately. If ctx is cancelled during a wait DoWithRetry
// returns ctx.Err(). After the last retry the final response is returned
// so the caller can inspect its status.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int, log *slog.Logger) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if log == nil {
		log = logging.Discard()
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if !Retryable(resp.StatusCode) || attempt >= maxRetries {
			return resp, nil
		}

		wait := backoff(attempt, resp.Header.Get("Retry-After"))
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		log.WarnContext(ctx, "retrying request",
			slog.Int("status", resp.StatusCode),
			slog.Duration("wait", wait),
			slog.Int("attempt", attempt+1),
			slog.Int("max_retries", maxRetries),
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func backoff(attempt int, retryAfter string) time.Duration {
	if secs, err := strconv.Atoi(retryAfter); err == nil && secs >= 0 {
		d := time.Duration(secs) * time.Second
		if d > maxRetryAfter {
			d = maxRetryAfter
		}
		return d
	}
	return RetryBaseDelay << attempt
}
