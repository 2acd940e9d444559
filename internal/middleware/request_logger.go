package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/wsawebmaster/delivery/internal/domain/model"
	"github.com/wsawebmaster/delivery/internal/logger"
	"github.com/wsawebmaster/delivery/internal/service"
)

// RequestLogger logs every request at a level chosen by its status code. When a logging
// service is given the entry is also queued on the async logger for storage.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		entry := &model.LogEntry{
			Timestamp:  start.UTC(),
			Level:      levelForStatus(statusCode).String(),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			SessionID:  GetSessionID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: statusCode,
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		}

		logger.Logger().WithLevel(levelForStatus(statusCode)).
			Str("request_id", entry.RequestID).
			Str("session_id", entry.SessionID).
			Str("method", entry.Method).
			Str("path", entry.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", entry.Duration).
			Str("ip", entry.IP).
			Str("user_agent", entry.UserAgent).
			Msg(entry.Message)

		if loggingService != nil {
			store(loggingService, entry)
		}
	}
}

func levelForStatus(statusCode int) zerolog.Level {
	switch {
	case statusCode >= 500:
		return zerolog.ErrorLevel
	case statusCode >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
