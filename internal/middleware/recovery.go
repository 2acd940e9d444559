package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/wsawebmaster/delivery/internal/domain/dto"
	"github.com/wsawebmaster/delivery/internal/i18n"
	"github.com/wsawebmaster/delivery/internal/logger"
)

// Recovery turns a panic into a 500 error envelope. The panic is logged with the request
// and session it happened in.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			requestID := GetRequestID(c)
			logger.Logger().Error().
				Str("request_id", requestID).
				Str("session_id", GetSessionID(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("Panic recovered")

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewError(dto.ErrCodeInternal, i18n.Translate(c, i18n.ErrKeyInternalError)).
					WithRequestID(requestID))
		}()
		c.Next()
	}
}
