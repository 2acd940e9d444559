package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTimeout(t *testing.T) {
	tests := []struct {
		name       string
		timeout    time.Duration
		handler    gin.HandlerFunc
		wantStatus int
	}{
		{
			name:       "fast handler",
			timeout:    time.Second,
			handler:    func(c *gin.Context) { c.Status(http.StatusOK) },
			wantStatus: http.StatusOK,
		},
		{
			name:    "handler honours deadline without writing",
			timeout: 20 * time.Millisecond,
			handler: func(c *gin.Context) {
				<-c.Request.Context().Done()
			},
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:    "handler that already answered keeps its answer",
			timeout: 20 * time.Millisecond,
			handler: func(c *gin.Context) {
				<-c.Request.Context().Done()
				c.String(http.StatusOK, "late but written")
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "disabled",
			timeout: 0,
			handler: func(c *gin.Context) {
				_, hasDeadline := c.Request.Context().Deadline()
				if hasDeadline {
					c.Status(http.StatusInternalServerError)
					return
				}
				c.Status(http.StatusNoContent)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Timeout(tt.timeout))
			router.GET("/", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusGatewayTimeout {
				assert.Contains(t, w.Body.String(), "timeout")
			}
		})
	}
}
