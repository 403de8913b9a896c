package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pressure-drop-service/internal/domain/dto"
	"github.com/guttosm/pressure-drop-service/internal/domain/model"
	"github.com/guttosm/pressure-drop-service/internal/i18n"
	"github.com/guttosm/pressure-drop-service/internal/service"
)

const (
	defaultLogsLimit = 50
	maxLogsLimit     = 500
)

// LogsHandler serves the stored request and audit log.
type LogsHandler struct {
	loggingService service.LoggingService
}

// NewLogsHandler creates a new LogsHandler instance.
func NewLogsHandler(loggingService service.LoggingService) *LogsHandler {
	return &LogsHandler{loggingService: loggingService}
}

// ListLogs handles GET /api/logs requests.
//
// @Summary      Query request and audit logs
// @Description  Returns stored log entries, newest first, filtered by the given query parameters
// @Tags         Logs
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if JWT auth enabled)"
// @Param        request_id query string false "Request ID"
// @Param        client_id query string false "Client ID"
// @Param        level query string false "Log level" Enums(info, warn, error)
// @Param        method query string false "HTTP method"
// @Param        path query string false "Request path"
// @Param        action query string false "Audit action" Enums(calculate, report, export_report, issue_token, update_settings)
// @Param        start query string false "Earliest timestamp (RFC 3339)"
// @Param        end query string false "Latest timestamp (RFC 3339)"
// @Param        limit query int false "Page size (default 50, max 500)"
// @Param        skip query int false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.LogsResponse} "Log entries"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid filter"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/logs [get]
func (h *LogsHandler) ListLogs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	opts, details := logQueryOptions(c)
	if details != nil {
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, details, nil)
		return
	}

	ctx := c.Request.Context()
	entries, err := h.loggingService.QueryLogs(ctx, opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	total, err := h.loggingService.CountLogs(ctx, opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if entries == nil {
		entries = []model.LogEntry{}
	}

	builder.SuccessOK(dto.LogsResponse{
		Entries: entries,
		Total:   total,
		Limit:   opts.Limit,
		Skip:    opts.Skip,
	})
}

// logQueryOptions reads the filter from the query string. details is
// non-nil when a parameter could not be parsed.
func logQueryOptions(c *gin.Context) (model.LogQueryOptions, map[string]string) {
	opts := model.LogQueryOptions{
		RequestID: c.Query("request_id"),
		ClientID:  c.Query("client_id"),
		Level:     c.Query("level"),
		Method:    c.Query("method"),
		Path:      c.Query("path"),
		Action:    c.Query("action"),
		Limit:     defaultLogsLimit,
	}
	details := map[string]string{}

	for _, p := range []struct {
		name string
		dst  **time.Time
	}{
		{"start", &opts.StartTime},
		{"end", &opts.EndTime},
	} {
		raw := c.Query(p.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			details[p.name] = "must be an RFC 3339 timestamp"
			continue
		}
		*p.dst = &t
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			details["limit"] = "must be a positive integer"
		} else {
			opts.Limit = min(limit, maxLogsLimit)
		}
	}
	if raw := c.Query("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			details["skip"] = "must not be negative"
		} else {
			opts.Skip = skip
		}
	}

	if len(details) > 0 {
		return opts, details
	}
	return opts, nil
}
