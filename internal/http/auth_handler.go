package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pressure-drop-service/internal/domain/dto"
	"github.com/guttosm/pressure-drop-service/internal/i18n"
	"github.com/guttosm/pressure-drop-service/internal/middleware"
	"github.com/guttosm/pressure-drop-service/internal/service"
)

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	tokenService service.TokenService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(tokenService service.TokenService) *AuthHandler {
	return &AuthHandler{tokenService: tokenService}
}

// IssueToken handles POST /api/auth/token requests.
//
// @Summary      Issue access token
// @Description  Exchanges client credentials for a signed JWT access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.TokenRequest true "Client credentials"
// @Success      200 {object} dto.SuccessResponse{data=dto.TokenResponse} "Access token"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.TokenRequest](c)
	if err != nil {
		if details := validationDetails(err); details != nil {
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, details, err)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	token, err := h.tokenService.IssueToken(c.Request.Context(), req.ClientID, req.ClientSecret)
	if err != nil {
		fields := map[string]interface{}{"client_id": req.ClientID}
		if errors.Is(err, service.ErrInvalidCredentials) {
			auditError(c, middleware.ActionIssueToken, "Rejected client credentials", err, fields)
			builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials, err)
			return
		}
		auditError(c, middleware.ActionIssueToken, "Token issue failed", err, fields)
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	c.Set(string(middleware.ClientIDKey), req.ClientID)
	audit(c, middleware.ActionIssueToken, "Access token issued", nil)

	builder.SuccessOK(token)
}
