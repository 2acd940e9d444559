package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wsawebmaster/delivery/internal/domain/dto"
	"github.com/wsawebmaster/delivery/internal/i18n"
	"github.com/wsawebmaster/delivery/internal/logger"
)

// ErrorHandler logs errors attached with c.Error and answers 500 if the handler wrote nothing.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)
		logger.Logger().Error().
			Str("request_id", requestID).
			Str("session_id", GetSessionID(c)).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError,
				dto.NewError(dto.ErrCodeInternal, i18n.Translate(c, i18n.ErrKeyInternalError)).
					WithRequestID(requestID))
		}
	}
}
