package tagger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

type echo struct {
	Text string `json:"text"`
}

func TestClient_PostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tag", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in echo
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(echo{Text: in.Text + "!"})
	}))
	defer server.Close()

	client := NewClient("test", server.URL+"/", 0)
	assert.Equal(t, server.URL, client.BaseURL())

	var out echo
	require.NoError(t, client.PostJSON(context.Background(), "/tag", echo{Text: "ciao"}, &out))
	assert.Equal(t, "ciao!", out.Text)
}

func TestClient_PostJSON_StatusErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		unavailable bool
	}{
		{"bad request", http.StatusBadRequest, false},
		{"not found", http.StatusNotFound, false},
		{"server error", http.StatusInternalServerError, true},
		{"unavailable", http.StatusServiceUnavailable, true},
		{"too many requests", http.StatusTooManyRequests, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "nope", tt.status)
			}))
			defer server.Close()

			client := NewClient("test", server.URL, 0)
			client.attempts = 1
			err := client.PostJSON(context.Background(), "/tag", echo{}, &echo{})

			require.Error(t, err)
			assert.Equal(t, tt.unavailable, errors.Is(err, domain.ErrTaggerUnavailable), "got %v", err)
		})
	}
}

func TestClient_PostJSON_RetriesAfterRateLimit(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		var in echo
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(echo{Text: in.Text + "!"})
	}))
	defer server.Close()

	client := NewClient("test", server.URL, 0)
	start := time.Now()

	var out echo
	require.NoError(t, client.PostJSON(context.Background(), "/tag", echo{Text: "ciao"}, &out))

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, "ciao!", out.Text)
	assert.GreaterOrEqual(t, time.Since(start), 900*time.Millisecond)
}

func TestClient_PostJSON_RateLimitExhausted(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient("test", server.URL, 0)
	client.attempts = 2
	err := client.PostJSON(context.Background(), "/tag", echo{}, &echo{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTaggerUnavailable))
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_PostJSON_RateLimitHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "60")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := NewClient("test", server.URL, 0).PostJSON(ctx, "/tag", echo{}, &echo{})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_PostJSON_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient("test", url, 0)
	err := client.PostJSON(context.Background(), "/tag", echo{}, &echo{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTaggerUnavailable))
}

func TestClient_PostJSON_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer server.Close()

	err := NewClient("test", server.URL, 0).PostJSON(context.Background(), "/tag", echo{}, &echo{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
	assert.False(t, errors.Is(err, domain.ErrTaggerUnavailable))
}

func TestClient_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	assert.NoError(t, NewClient("test", server.URL, 0).Ping(context.Background()))
}

func TestRateLimiter_Unlimited(t *testing.T) {
	r := NewRateLimiter(0)

	assert.Nil(t, r.limiter)
	for i := 0; i < 100; i++ {
		assert.NoError(t, r.Wait(context.Background()))
	}
}

func TestRateLimiter_Burst(t *testing.T) {
	r := NewRateLimiter(1.5)

	require.NotNil(t, r.limiter)
	assert.Equal(t, rate.Limit(1.5), r.limiter.Limit())
	assert.Equal(t, 2, r.limiter.Burst())
}

func TestRateLimiter_WaitAfterBackoff(t *testing.T) {
	r := NewRateLimiter(0)
	r.RecordRateLimitError(50 * time.Millisecond)

	start := time.Now()
	require.NoError(t, r.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestRateLimiter_WaitHonoursContext(t *testing.T) {
	r := NewRateLimiter(0)
	r.RecordRateLimitError(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, r.Wait(ctx), context.Canceled)
}

func TestRetryAfter(t *testing.T) {
	assert.Equal(t, 3*time.Second, retryAfter("3"))
	assert.Zero(t, retryAfter(""))
	assert.Zero(t, retryAfter("Wed, 21 Oct 2015 07:28:00 GMT"))
}
