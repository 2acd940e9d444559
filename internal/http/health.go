package http

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/wsawebmaster/delivery/internal/circuitbreaker"
)

// HealthChecker is a dependency that can be checked, such as the audit store.
type HealthChecker interface {
	Check() error
}

// HealthHandler serves the liveness and readiness checks.
type HealthHandler struct {
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// Readiness statuses. A degraded service keeps taking traffic; the storefront works with
// lookups or audit writes short-circuited.
const (
	StatusOK          = "ok"
	StatusDegraded    = "degraded"
	StatusUnavailable = "unavailable"
)

// ReadinessResponse is the body of /readyz.
type ReadinessResponse struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks"`
} // @name ReadinessResponse

// NewHealthHandler creates a HealthHandler with nothing registered.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
	}
}

// RegisterChecker adds a dependency checked on every readiness request.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// RegisterCircuitBreaker reports cb under name+"_circuit". A nil cb is ignored.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	if cb == nil {
		return
	}
	h.circuitBreakers[name] = cb
}

// Register registers the health endpoints on router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness endpoint.
// @Summary     Liveness check
// @Description Returns OK while the process is serving requests.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness endpoint.
// @Summary     Readiness check
// @Description Returns 503 when a registered dependency fails its check. An open circuit breaker only marks the service degraded.
// @Tags        Health
// @Produce     json
// @Success     200 {object} ReadinessResponse "Service is ready"
// @Failure     503 {object} ReadinessResponse "A dependency is failing its check"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	resp := ReadinessResponse{Status: StatusOK, Checks: make(map[string]string)}

	for name, cb := range h.circuitBreakers {
		stats := cb.GetStats()
		resp.Checks[name+"_circuit"] = stats.State
		if !stats.IsHealthy {
			resp.Status = StatusDegraded
		}
	}

	for _, name := range sortedKeys(h.checkers) {
		if err := h.checkers[name].Check(); err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = StatusUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	if len(resp.Checks) == 0 {
		resp.Checks["service"] = "ok"
	}

	status := http.StatusOK
	if resp.Status == StatusUnavailable {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}

func sortedKeys(m map[string]HealthChecker) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
