// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Use a tiny base delay so tests finish quickly.
	RetryBaseDelay = 1 * time.Millisecond
}

func statusServer(t *testing.T, status func(call int32) int) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		w.WriteHeader(status(n))
	}))
	t.Cleanup(ts.Close)
	return ts, &calls
}

func get(t *testing.T, ts *httptest.Server, ctx context.Context, maxRetries int) (*http.Response, error) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)
	return DoWithRetry(ctx, ts.Client(), req, maxRetries, nil)
}

func TestDoWithRetry(t *testing.T) {
	tests := []struct {
		name       string
		status     func(call int32) int
		maxRetries int
		wantStatus int
		wantCalls  int32
	}{
		{
			name:       "immediate success",
			status:     func(int32) int { return http.StatusOK },
			maxRetries: 3,
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
		{
			name: "429 then success",
			status: func(n int32) int {
				if n <= 2 {
					return http.StatusTooManyRequests
				}
				return http.StatusOK
			},
			maxRetries: 3,
			wantStatus: http.StatusOK,
			wantCalls:  3,
		},
		{
			name: "503 then success",
			status: func(n int32) int {
				if n == 1 {
					return http.StatusServiceUnavailable
				}
				return http.StatusOK
			},
			maxRetries: 3,
			wantStatus: http.StatusOK,
			wantCalls:  2,
		},
		{
			name:       "exhausts retries",
			status:     func(int32) int { return http.StatusBadGateway },
			maxRetries: 2,
			wantStatus: http.StatusBadGateway,
			wantCalls:  3,
		},
		{
			name:       "default max retries",
			status:     func(int32) int { return http.StatusTooManyRequests },
			maxRetries: 0,
			wantStatus: http.StatusTooManyRequests,
			wantCalls:  4,
		},
		{
			name:       "404 passes through",
			status:     func(int32) int { return http.StatusNotFound },
			maxRetries: 3,
			wantStatus: http.StatusNotFound,
			wantCalls:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, calls := statusServer(t, tt.status)
			resp, err := get(t, ts, context.Background(), tt.maxRetries)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(calls))
		})
	}
}

func TestDoWithRetry_ContextCancelled(t *testing.T) {
	ts, _ := statusServer(t, func(int32) int { return http.StatusTooManyRequests })

	old := RetryBaseDelay
	RetryBaseDelay = 500 * time.Millisecond
	defer func() { RetryBaseDelay = old }()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := get(t, ts, ctx, 5)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBackoff(t *testing.T) {
	old := RetryBaseDelay
	RetryBaseDelay = 100 * time.Millisecond
	defer func() { RetryBaseDelay = old }()

	assert.Equal(t, 100*time.Millisecond, backoff(0, ""))
	assert.Equal(t, 400*time.Millisecond, backoff(2, ""))
	assert.Equal(t, 2*time.Second, backoff(0, "2"))
	assert.Equal(t, maxRetryAfter, backoff(0, "3600"))
	assert.Equal(t, 200*time.Millisecond, backoff(1, "Wed, 21 Oct 2015 07:28:00 GMT"))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(http.StatusTooManyRequests))
	assert.True(t, Retryable(http.StatusInternalServerError))
	assert.True(t, Retryable(http.StatusGatewayTimeout))
	assert.False(t, Retryable(http.StatusOK))
	assert.False(t, Retryable(http.StatusNotFound))
}
