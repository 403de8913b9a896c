package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
	"github.com/guttosm/pressure-drop-service/internal/logger"
	"github.com/guttosm/pressure-drop-service/internal/service"
)

// RequestLogger returns a middleware that writes one structured log line per
// request and, when loggingService is set, stores the same entry in MongoDB.
// Requests to skipPaths are neither logged nor stored.
func RequestLogger(loggingService service.LoggingService, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		entry := &model.LogEntry{
			Timestamp:  time.Now(),
			Level:      getLogLevel(c.Writer.Status()),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			ClientID:   GetClientID(c),
		}
		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			entry.Error = errs.String()
		}

		log := logger.Logger().With().
			Str("request_id", entry.RequestID).
			Str("method", entry.Method).
			Str("path", entry.Path).
			Int("status_code", entry.StatusCode).
			Int64("duration_ms", entry.Duration).
			Str("ip", entry.IP).
			Str("user_agent", entry.UserAgent).
			Str("client_id", entry.ClientID).
			Logger()
		log.WithLevel(zerologLevel(entry.Level)).Msg(entry.Message)

		if loggingService != nil {
			dispatch(loggingService, entry)
		}
	}
}

// getLogLevel returns the log level based on HTTP status code.
func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return model.LogLevelError
	case statusCode >= 400:
		return model.LogLevelWarn
	default:
		return model.LogLevelInfo
	}
}

func zerologLevel(level string) zerolog.Level {
	switch level {
	case model.LogLevelError:
		return zerolog.ErrorLevel
	case model.LogLevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
