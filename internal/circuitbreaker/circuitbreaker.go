// Package circuitbreaker guards calls to the upstream cart server and MongoDB.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrCircuitOpen is returned without running the call while the breaker is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State is the breaker position.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

var stateNames = [...]string{
	StateClosed:   "closed",
	StateOpen:     "open",
	StateHalfOpen: "half-open",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Config holds circuit breaker configuration.
type Config struct {
	// Name identifies the breaker in logs and health output.
	Name string
	// FailureThreshold consecutive failures open a closed breaker.
	FailureThreshold int
	// SuccessThreshold consecutive trial successes close a half-open breaker.
	SuccessThreshold int
	// Timeout is how long an open breaker rejects calls before letting trials through.
	Timeout time.Duration
	// IsFailure classifies errors; nil counts every error. Errors it rejects
	// are still returned to the caller but count as successes.
	IsFailure func(error) bool
	// OnStateChange is called with the lock held after every transition.
	OnStateChange func(name string, from, to State)
}

// DefaultConfig returns the thresholds used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Name:             "circuit-breaker",
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
	}
}

// counts tracks the current streak; only one of the two is ever non-zero
// outside of a transition.
type counts struct {
	failures  int
	successes int
	rejected  int64
}

// CircuitBreaker fails fast once a dependency keeps failing and probes it
// again after Timeout.
type CircuitBreaker struct {
	cfg Config
	now func() time.Time

	mu          sync.RWMutex
	state       State
	counts      counts
	openedAt    time.Time
	lastFailure time.Time
}

// New creates a closed breaker. Non-positive thresholds are raised to 1.
func New(cfg Config) *CircuitBreaker {
	cfg.FailureThreshold = max(cfg.FailureThreshold, 1)
	cfg.SuccessThreshold = max(cfg.SuccessThreshold, 1)
	return &CircuitBreaker{cfg: cfg, now: time.Now}
}

// Execute runs fn unless the breaker is open. A done ctx is reported
// without running fn and without touching the counters.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cb.admit(); err != nil {
		return err
	}

	err := fn()
	cb.record(err)
	return err
}

func (cb *CircuitBreaker) admit() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return nil
	}
	if cb.now().Sub(cb.openedAt) < cb.cfg.Timeout {
		cb.counts.rejected++
		return ErrCircuitOpen
	}
	cb.setState(StateHalfOpen)
	return nil
}

func (cb *CircuitBreaker) record(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err == nil || (cb.cfg.IsFailure != nil && !cb.cfg.IsFailure(err)) {
		cb.counts.failures = 0
		if cb.state != StateHalfOpen {
			return
		}
		cb.counts.successes++
		if cb.counts.successes >= cb.cfg.SuccessThreshold {
			cb.setState(StateClosed)
		}
		return
	}

	cb.counts.failures++
	cb.lastFailure = cb.now()
	switch {
	case cb.state == StateHalfOpen:
		cb.counts.failures = cb.cfg.FailureThreshold
		cb.setState(StateOpen)
	case cb.state == StateClosed && cb.counts.failures >= cb.cfg.FailureThreshold:
		cb.setState(StateOpen)
	}
}

// setState must be called with the write lock held.
func (cb *CircuitBreaker) setState(to State) {
	from := cb.state
	if from == to {
		return
	}
	cb.state = to
	cb.counts.successes = 0
	if to == StateOpen {
		cb.openedAt = cb.now()
	}

	log.Info().
		Str("circuit_breaker", cb.cfg.Name).
		Stringer("from", from).
		Stringer("to", to).
		Int("failure_count", cb.counts.failures).
		Msg("Circuit breaker state changed")
	if cb.cfg.OnStateChange != nil {
		cb.cfg.OnStateChange(cb.cfg.Name, from, to)
	}
}

// Name returns the configured breaker name.
func (cb *CircuitBreaker) Name() string {
	return cb.cfg.Name
}

func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) IsOpen() bool {
	return cb.State() == StateOpen
}

// Reset closes the breaker and clears the streak counters.
func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.counts.failures = 0
	cb.setState(StateClosed)
}

// Stats is a point-in-time view of a breaker for health output.
type Stats struct {
	Name         string    `json:"name"`
	State        string    `json:"state"`
	FailureCount int       `json:"failure_count"`
	SuccessCount int       `json:"success_count"`
	Rejected     int64     `json:"rejected"`
	LastFailure  time.Time `json:"last_failure,omitempty"`
	IsHealthy    bool      `json:"healthy"`
}

func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return Stats{
		Name:         cb.cfg.Name,
		State:        cb.state.String(),
		FailureCount: cb.counts.failures,
		SuccessCount: cb.counts.successes,
		Rejected:     cb.counts.rejected,
		LastFailure:  cb.lastFailure,
		IsHealthy:    cb.state != StateOpen,
	}
}
