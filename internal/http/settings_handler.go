package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pressure-drop-service/internal/domain/dto"
	"github.com/guttosm/pressure-drop-service/internal/domain/model"
	"github.com/guttosm/pressure-drop-service/internal/i18n"
	"github.com/guttosm/pressure-drop-service/internal/middleware"
	"github.com/guttosm/pressure-drop-service/internal/repository"
	"github.com/guttosm/pressure-drop-service/internal/service"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// SettingsHandler provides HTTP handlers for the calculation settings routes.
type SettingsHandler struct {
	settingsService service.SettingsService
	calculator      service.PressureDropCalculator
}

// NewSettingsHandler creates a new SettingsHandler instance.
func NewSettingsHandler(settingsService service.SettingsService, calculator service.PressureDropCalculator) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		calculator:      calculator,
	}
}

// GetSettings handles GET /api/settings requests.
//
// @Summary      Get calculation settings
// @Description  Returns the active stored settings version. When nothing is stored the configured settings are returned as version 0.
// @Tags         Settings
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if JWT auth enabled)"
// @Success      200 {object} dto.SuccessResponse{data=dto.SettingsResponse} "Settings in effect"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      503 {object} dto.ErrorResponse "Settings storage unavailable"
// @Security     BearerAuth
// @Router       /api/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	builder := NewResponseBuilder(c)

	doc, err := h.settingsService.GetActive(c.Request.Context())
	if err != nil && !errors.Is(err, service.ErrRepositoryNotConfigured) {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeySettingsUnavailable, err)
		return
	}
	if doc == nil {
		builder.SuccessOK(fromSettings(h.calculator.Settings()))
		return
	}

	builder.SuccessOK(fromDocument(doc))
}

// UpdateSettings handles PUT /api/settings requests.
//
// @Summary      Update calculation settings
// @Description  Stores a new active settings version and applies it to subsequent calculations. Cached results are discarded.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if JWT auth enabled)"
// @Param        request body dto.UpdateSettingsRequest true "New settings"
// @Success      200 {object} dto.SuccessResponse{data=dto.SettingsResponse} "Stored settings"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid settings"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      503 {object} dto.ErrorResponse "Settings storage unavailable"
// @Security     BearerAuth
// @Router       /api/settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.UpdateSettingsRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	settings := req.ToSettings()
	doc, err := h.settingsService.Update(c.Request.Context(), settings, middleware.GetClientID(c))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidInput):
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidSettings, validationDetails(err), err)
		default:
			auditError(c, middleware.ActionUpdateSettings, "Settings update failed", err, nil)
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeySettingsUnavailable, err)
		}
		return
	}

	audit(c, middleware.ActionUpdateSettings, "Calculation settings updated", map[string]interface{}{
		"gravity":         settings.Gravity,
		"laminar_formula": string(settings.LaminarFormula),
		"version":         doc.Version,
	})

	builder.SuccessOK(fromDocument(doc))
}

// ListSettingsHistory handles GET /api/settings/history requests.
//
// @Summary      List settings history
// @Description  Returns stored settings versions, newest first
// @Tags         Settings
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if JWT auth enabled)"
// @Param        limit query int false "Maximum number of versions (default 20, max 100)"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.SettingsResponse} "Settings history"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      503 {object} dto.ErrorResponse "Settings storage unavailable"
// @Security     BearerAuth
// @Router       /api/settings/history [get]
func (h *SettingsHandler) ListSettingsHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	docs, err := h.settingsService.History(c.Request.Context(), historyLimit(c.Query("limit")))
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeySettingsUnavailable, err)
		return
	}

	history := make([]dto.SettingsResponse, 0, len(docs))
	for i := range docs {
		history = append(history, fromDocument(&docs[i]))
	}
	builder.SuccessOK(history)
}

func historyLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultHistoryLimit
	}
	return min(limit, maxHistoryLimit)
}

func fromSettings(s model.CalculationSettings) dto.SettingsResponse {
	return dto.SettingsResponse{
		Gravity:        s.Gravity,
		LaminarFormula: string(s.LaminarFormula),
	}
}

func fromDocument(doc *repository.SettingsDocument) dto.SettingsResponse {
	resp := fromSettings(doc.CalculationSettings())
	resp.Version = doc.Version
	createdAt := doc.CreatedAt
	resp.CreatedAt = &createdAt
	resp.CreatedBy = doc.CreatedBy
	return resp
}
