package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pressure-drop-service/internal/domain/dto"
	"github.com/guttosm/pressure-drop-service/internal/domain/model"
	"github.com/guttosm/pressure-drop-service/internal/i18n"
	"github.com/guttosm/pressure-drop-service/internal/logger"
	"github.com/guttosm/pressure-drop-service/internal/service"
)

// ErrorHandler returns a middleware that answers for errors a handler
// attached with c.Error but did not respond to. Bind errors and invalid
// input become 400, degenerate results 422 and everything else 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last()
		status, code, key := classifyError(err)

		log := logger.Logger()
		event := log.Warn()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("request_id", GetRequestID(c)).
			Str("client_id", GetClientID(c)).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Err(err.Err).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}
		message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
		errorResp := dto.NewError(code, message).WithRequestID(GetRequestID(c))
		c.JSON(status, errorResp)
	}
}

func classifyError(err *gin.Error) (status int, code, key string) {
	switch {
	case err.IsType(gin.ErrorTypeBind):
		return http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequestBody
	case errors.Is(err.Err, model.ErrInvalidInput):
		return http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidPipeline
	case errors.Is(err.Err, service.ErrNumericDegenerate):
		return http.StatusUnprocessableEntity, dto.ErrCodeNumericDegenerate, i18n.ErrKeyNumericDegenerate
	default:
		return http.StatusInternalServerError, dto.ErrCodeInternal, i18n.ErrKeyInternalError
	}
}
