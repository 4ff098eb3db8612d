package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(t *testing.T, h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiterAllowsWithinBudget(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(5, time.Minute, nil)
	h := rl.Handler(okHandler())

	for i := 0; i < 5; i++ {
		rec := doRequest(t, h, "203.0.113.7:51234")
		require.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}
}

func TestRateLimiterRejectsOverBudget(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(3, time.Minute, nil)
	h := rl.Handler(okHandler())

	for i := 0; i < 3; i++ {
		doRequest(t, h, "203.0.113.7:51234")
	}
	rec := doRequest(t, h, "203.0.113.7:51234")

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many requests from this IP, please try again later.")
}

func TestRateLimiterTracksClientsSeparately(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(1, time.Minute, nil)
	h := rl.Handler(okHandler())

	require.Equal(t, http.StatusOK, doRequest(t, h, "203.0.113.7:51234").Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(t, h, "203.0.113.7:51234").Code)

	// A different client still has its full budget.
	assert.Equal(t, http.StatusOK, doRequest(t, h, "198.51.100.9:40000").Code)
}

func TestRateLimiterExemptsLoopback(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(1, time.Minute, nil)
	h := rl.Handler(okHandler())

	for i := 0; i < 10; i++ {
		require.Equal(t, http.StatusOK, doRequest(t, h, "127.0.0.1:50000").Code)
	}
	for i := 0; i < 10; i++ {
		require.Equal(t, http.StatusOK, doRequest(t, h, "[::1]:50000").Code)
	}
}
