package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
	"github.com/guttosm/pressure-drop-service/internal/service"
)

// Audit action types.
const (
	ActionCalculate      = "calculate"
	ActionReport         = "report"
	ActionExportReport   = "export_report"
	ActionIssueToken     = "issue_token"
	ActionUpdateSettings = "update_settings"
)

const fallbackWriteTimeout = 5 * time.Second

// AuditLog records a client action. It never blocks the request.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := newAuditEntry(c, model.LogLevelInfo, actionType, message, fields)
	dispatch(loggingService, entry)
}

// AuditLogError records a failed client action.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := newAuditEntry(c, model.LogLevelError, actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	dispatch(loggingService, entry)
}

func newAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ClientID:   GetClientID(c),
		ActionType: actionType,
	}
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	return entry
}

// dispatch hands entry to the global async logger, or writes it from a
// goroutine when none is running.
func dispatch(loggingService service.LoggingService, entry *model.LogEntry) {
	if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
		asyncLogger.Log(entry)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), fallbackWriteTimeout)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
