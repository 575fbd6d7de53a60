package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-sync/internal/circuitbreaker"
)

const defaultProbeTimeout = 2 * time.Second

// HealthChecker is a dependency probed by the readiness endpoint.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckFunc adapts a function to HealthChecker.
type HealthCheckFunc func(ctx context.Context) error

// Check calls f.
func (f HealthCheckFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checkers     map[string]HealthChecker
	breakers     map[string]*circuitbreaker.CircuitBreaker
	sessions     func() int
	probeTimeout time.Duration
}

// NewHealthHandler creates a HealthHandler with nothing registered.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:     make(map[string]HealthChecker),
		breakers:     make(map[string]*circuitbreaker.CircuitBreaker),
		probeTimeout: defaultProbeTimeout,
	}
}

// RegisterChecker adds a dependency to the readiness probe.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// RegisterCircuitBreaker reports a breaker as <name>_circuit. An open
// breaker makes the service not ready.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	h.breakers[name] = cb
}

// ReportSessions adds the live session count to the readiness payload.
func (h *HealthHandler) ReportSessions(count func() int) {
	h.sessions = count
}

// Register mounts /healthz and /readyz.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

type readinessResponse struct {
	Status   string                 `json:"status"`
	Checks   map[string]interface{} `json:"checks"`
	Sessions *int                   `json:"sessions,omitempty"`
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK while the process is serving
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Probes MongoDB and reports every circuit breaker. Returns 503 when a probe fails or a breaker is open.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @ExampleResponse 503 {"status": "degraded", "checks": {"mongodb": "connection refused", "upstream_cart_circuit": "open"}, "sessions": 12}
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.probeTimeout)
	defer cancel()

	resp := readinessResponse{Status: "ok", Checks: h.probe(ctx)}
	ready := true
	for _, v := range resp.Checks {
		if v != "ok" {
			ready = false
		}
	}

	for name, cb := range h.breakers {
		stats := cb.GetStats()
		resp.Checks[name+"_circuit"] = stats.State
		if !stats.IsHealthy {
			ready = false
		}
	}

	if len(resp.Checks) == 0 {
		resp.Checks["service"] = "ok"
	}
	if h.sessions != nil {
		n := h.sessions()
		resp.Sessions = &n
	}

	status := http.StatusOK
	if !ready {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}

// probe runs every checker concurrently and returns "ok" or the error text per name.
func (h *HealthHandler) probe(ctx context.Context) map[string]interface{} {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]interface{}, len(h.checkers)+len(h.breakers))
	)
	for name, checker := range h.checkers {
		wg.Add(1)
		go func(name string, checker HealthChecker) {
			defer wg.Done()
			var result interface{} = "ok"
			if err := checker.Check(ctx); err != nil {
				result = err.Error()
			}
			mu.Lock()
			results[name] = result
			mu.Unlock()
		}(name, checker)
	}
	wg.Wait()
	return results
}
