package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wsawebmaster/delivery/internal/domain/model"
	"github.com/wsawebmaster/delivery/internal/service"
)

// AuditLog records a storefront action such as an order dispatch. No-op without a
// logging service.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	audit(loggingService, c, "info", actionType, message, nil, fields)
}

// AuditLogError records a rejected or failed action together with its error.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	audit(loggingService, c, "warn", actionType, message, err, fields)
}

func audit(loggingService service.LoggingService, c *gin.Context, level, actionType, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		SessionID:  GetSessionID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	if len(fields) > 0 {
		entry.WithFields(fields)
	}

	store(loggingService, entry)
}
