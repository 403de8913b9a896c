package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pressure-drop-service/internal/domain/dto"
	"github.com/guttosm/pressure-drop-service/internal/i18n"
	"github.com/guttosm/pressure-drop-service/internal/service"
)

const bearerPrefix = "Bearer "

// JWTAuth returns a middleware that requires a valid bearer token and stores
// the token's client ID in the context under ClientIDKey.
func JWTAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := tokens.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(string(ClientIDKey), claims.ClientID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
