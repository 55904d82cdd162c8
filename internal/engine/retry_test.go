package engine

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

var testRetryConfig = RetryConfig{
	MaxRetries:  3,
	InitialWait: time.Millisecond,
	MaxWait:     10 * time.Millisecond,
	Multiplier:  2,
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"http 429", &httpStatusError{429}, true},
		{"http 500", &httpStatusError{500}, true},
		{"http 503", &httpStatusError{503}, true},
		{"dns timeout", &net.DNSError{IsTimeout: true}, true},
		{"op error", &net.OpError{Op: "dial", Err: errors.New("refused")}, true},
		{"plain error", errors.New("bad caption track"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRetryDo(t *testing.T) {
	t.Run("first try succeeds", func(t *testing.T) {
		calls := 0
		got, err := RetryDo(context.Background(), testRetryConfig, func() (string, error) {
			calls++
			return "transcript", nil
		})
		if err != nil || got != "transcript" || calls != 1 {
			t.Errorf("got %q, err %v, calls %d", got, err, calls)
		}
	})

	t.Run("recovers after transient failures", func(t *testing.T) {
		calls := 0
		got, err := RetryDo(context.Background(), testRetryConfig, func() (string, error) {
			calls++
			if calls < 3 {
				return "", &httpStatusError{503}
			}
			return "ok", nil
		})
		if err != nil || got != "ok" || calls != 3 {
			t.Errorf("got %q, err %v, calls %d", got, err, calls)
		}
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		_, err := RetryDo(context.Background(), testRetryConfig, func() (string, error) {
			calls++
			return "", &httpStatusError{502}
		})
		if err == nil {
			t.Fatal("expected error after exhausting retries")
		}
		if calls != testRetryConfig.MaxRetries+1 {
			t.Errorf("expected %d calls, got %d", testRetryConfig.MaxRetries+1, calls)
		}
	})

	t.Run("permanent errors fail fast", func(t *testing.T) {
		calls := 0
		_, err := RetryDo(context.Background(), testRetryConfig, func() (string, error) {
			calls++
			return "", errors.New("no caption tracks")
		})
		if err == nil || calls != 1 {
			t.Errorf("err %v, calls %d", err, calls)
		}
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := RetryDo(ctx, testRetryConfig, func() (string, error) {
			return "", &httpStatusError{503}
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestRetryHTTP(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := RetryHTTP(context.Background(), testRetryConfig, func() (*http.Response, error) {
		return http.Get(srv.URL)
	})
	if err != nil {
		t.Fatalf("RetryHTTP error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if hits.Load() != 3 {
		t.Errorf("expected 3 requests, got %d", hits.Load())
	}
}
