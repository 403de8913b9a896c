package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pressure-drop-service/internal/domain/dto"
	"github.com/guttosm/pressure-drop-service/internal/i18n"
)

// DefaultRequestTimeout is used when no timeout is configured.
const DefaultRequestTimeout = 30 * time.Second

// Timeout returns a middleware that puts a deadline on the request context.
// Handlers run on the request goroutine and observe the deadline through the
// context, so database calls are cancelled when it passes. If the deadline
// passed and the handler wrote nothing, the client gets 504.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) || c.Writer.Written() {
			return
		}
		message := i18n.GetTranslator().Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
		errorResp := dto.NewError(dto.ErrCodeTimeout, message).
			WithRequestID(GetRequestID(c))
		c.AbortWithStatusJSON(http.StatusGatewayTimeout, errorResp)
	}
}
