// Package middleware provides the gin middleware of the pressure drop service:
// request correlation, authentication, rate limiting, audit logging and
// request shaping.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"

	// maxRequestIDLength caps client supplied request IDs.
	maxRequestIDLength = 128
)

// ContextKey type for context keys to avoid collisions.
type ContextKey string

const (
	// RequestIDKey is the context key for request ID.
	RequestIDKey ContextKey = "request_id"
	// ClientIDKey is the context key for the authenticated client ID.
	ClientIDKey ContextKey = "client_id"
)

// RequestID returns a middleware that ensures each request has a unique ID.
// A client supplied X-Request-ID is kept when it is short and printable;
// otherwise a new UUID v4 is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	return contextString(c, RequestIDKey)
}

// GetClientID retrieves the authenticated client ID from the gin context.
// It is empty for anonymous requests.
func GetClientID(c *gin.Context) string {
	return contextString(c, ClientIDKey)
}

func contextString(c *gin.Context, key ContextKey) string {
	if v, exists := c.Get(string(key)); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
