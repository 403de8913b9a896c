package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the idempotency cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is the TTL for cached idempotency responses.
	IdempotencyKeyTTL = 5 * time.Minute

	defaultIdempotencyEntries = 10000
	// maxIdempotentBodyBytes bounds the request body hashed into the key.
	maxIdempotentBodyBytes = 1 << 20
)

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   *idempotencyCache
	Enabled bool
}

// DefaultIdempotencyConfig returns default idempotency configuration.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   newIdempotencyCache(IdempotencyKeyTTL, defaultIdempotencyEntries),
		Enabled: true,
	}
}

// Idempotency returns a middleware that replays the response of a repeated
// POST, PUT or PATCH carrying the same Idempotency-Key. Keys are scoped by
// client, method, path, query and body, so a reused key with a different
// request runs normally. Only 2xx responses are cached, with their headers,
// which keeps binary report exports replayable.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		cacheKey, ok := idempotencyCacheKey(key, GetClientID(c), c.Request)
		if !ok {
			c.Next()
			return
		}

		if cached, ok := cfg.Cache.Get(cacheKey); ok {
			for k, values := range cached.Header {
				c.Writer.Header()[k] = slices.Clone(values)
			}
			c.Header(IdempotencyReplayedHeader, "true")
			c.Status(cached.StatusCode)
			_, _ = c.Writer.Write(cached.Body)
			c.Abort()
			return
		}

		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status >= 200 && status < 300 {
			header := writer.Header().Clone()
			for _, h := range perRequestHeaders {
				header.Del(h)
			}
			cfg.Cache.Set(cacheKey, &cachedResponse{
				StatusCode: status,
				Header:     header,
				Body:       bytes.Clone(writer.body.Bytes()),
			})
		}
	}
}

// perRequestHeaders are set fresh on every request and never replayed. The
// cached body is uncompressed, so encoding headers belong to the replaying
// request's compression middleware.
var perRequestHeaders = []string{
	RequestIDHeader,
	"X-RateLimit-Limit",
	"X-RateLimit-Remaining",
	"X-RateLimit-Reset",
	"Content-Encoding",
	"Content-Length",
	"Vary",
}

// idempotencyCacheKey hashes the key with the request identity. It reports
// false when the body is too large to take part in the key.
func idempotencyCacheKey(idempotencyKey, clientID string, req *http.Request) (string, bool) {
	hasher := sha256.New()
	for _, part := range []string{idempotencyKey, clientID, req.Method, req.URL.Path, req.URL.RawQuery} {
		hasher.Write([]byte(part))
		hasher.Write([]byte{0})
	}

	if req.Body != nil {
		body, err := io.ReadAll(io.LimitReader(req.Body, maxIdempotentBodyBytes+1))
		req.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), req.Body))
		if err != nil || len(body) > maxIdempotentBodyBytes {
			return "", false
		}
		hasher.Write(body)
	}

	return hex.EncodeToString(hasher.Sum(nil)), true
}

// captureWriter copies the response body while writing it through.
type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
