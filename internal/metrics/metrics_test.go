package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/api/state", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/error", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		path           string
		label          string
		expectedStatus int
	}{
		{
			name:           "records metrics for successful request",
			path:           "/api/state",
			label:          "/api/state",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records metrics for error request",
			path:           "/error",
			label:          "/error",
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "unmatched paths share one label",
			path:           "/does/not/exist/123",
			label:          "unmatched",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.label, strconv.Itoa(tt.expectedStatus)))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.label, strconv.Itoa(tt.expectedStatus)))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestRecordZoneLookup(t *testing.T) {
	before := testutil.ToFloat64(ZoneLookupsTotal.WithLabelValues("resolved"))

	RecordZoneLookup(120*time.Millisecond, "resolved")

	assert.Equal(t, before+1, testutil.ToFloat64(ZoneLookupsTotal.WithLabelValues("resolved")))
}

func TestRecordCartChange(t *testing.T) {
	add := testutil.ToFloat64(CartChangesTotal.WithLabelValues("add"))
	remove := testutil.ToFloat64(CartChangesTotal.WithLabelValues("remove"))

	RecordCartChange(1)
	RecordCartChange(-1)
	RecordCartChange(-1)

	assert.Equal(t, add+1, testutil.ToFloat64(CartChangesTotal.WithLabelValues("add")))
	assert.Equal(t, remove+2, testutil.ToFloat64(CartChangesTotal.WithLabelValues("remove")))
}

func TestRecordOrderSubmission(t *testing.T) {
	before := testutil.ToFloat64(OrdersSubmittedTotal.WithLabelValues("dispatched"))
	RecordOrderSubmission("dispatched")
	assert.Equal(t, before+1, testutil.ToFloat64(OrdersSubmittedTotal.WithLabelValues("dispatched")))
}

func TestSetActiveSessions(t *testing.T) {
	SetActiveSessions(7)
	assert.Equal(t, 7.0, testutil.ToFloat64(ActiveSessions))
	SetActiveSessions(0)
	assert.Equal(t, 0.0, testutil.ToFloat64(ActiveSessions))
}

func TestRecordCacheOperation(t *testing.T) {
	before := testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit"))
	RecordCacheOperation("get", "hit")
	assert.Equal(t, before+1, testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit")))
}
