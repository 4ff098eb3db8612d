package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/customer-api/internal/platform/rediscache"
)

// ResponseCache is the subset of the redis cache the middleware needs.
// Satisfied by *rediscache.Cache.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, pattern string) error
}

// cacheKeyPrefix namespaces the response cache entries within redis.
const cacheKeyPrefix = "response:"

// ResponseCaching caches successful GET responses for ttl, keyed on the
// full request URI, and invalidates the namespace on any write method.
// Cache failures are soft: the request proceeds to the handler and the
// failure is logged at WARN.
func ResponseCaching(cache ResponseCache, ttl time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(slog.String("component", "response_cache"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)

				// Any write may change what cached reads would return.
				if isWriteMethod(r.Method) {
					if err := cache.Invalidate(r.Context(), cacheKeyPrefix+"*"); err != nil {
						log.Warn("cache invalidation failed",
							slog.String("error", err.Error()))
					}
				}
				return
			}

			key := cacheKeyPrefix + r.URL.RequestURI()

			if body, err := cache.Get(r.Context(), key); err == nil {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				if _, err := w.Write(body); err != nil {
					log.Warn("failed to write cached response",
						slog.String("error", err.Error()))
				}
				return
			} else if !errors.Is(err, rediscache.ErrCacheMiss) {
				log.Warn("cache lookup failed", slog.String("error", err.Error()))
			}

			rec := &cachingRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status == http.StatusOK {
				if err := cache.Set(r.Context(), key, rec.body.Bytes(), ttl); err != nil {
					log.Warn("cache store failed", slog.String("error", err.Error()))
				}
			}
		})
	}
}

func isWriteMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// cachingRecorder tees the response body while passing everything through
// to the real writer.
type cachingRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (rec *cachingRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *cachingRecorder) Write(p []byte) (int, error) {
	rec.body.Write(p)
	return rec.ResponseWriter.Write(p)
}
