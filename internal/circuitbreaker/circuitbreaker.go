// Package circuitbreaker guards MongoDB calls so a failing database degrades
// settings and log persistence instead of stalling calculations.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/guttosm/pressure-drop-service/internal/logger"
	"github.com/guttosm/pressure-drop-service/internal/metrics"
)

// ErrCircuitOpen is returned by Execute while the breaker rejects calls.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State is the position of a breaker. The numeric values are published as
// the circuit breaker state gauge.
type State int

const (
	// StateClosed lets every call through.
	StateClosed State = iota
	// StateOpen rejects calls until the cool-down has elapsed.
	StateOpen
	// StateHalfOpen lets calls through on probation.
	StateHalfOpen
)

var stateNames = map[State]string{
	StateClosed:   "closed",
	StateOpen:     "open",
	StateHalfOpen: "half-open",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Config holds circuit breaker configuration.
type Config struct {
	// FailureThreshold is the number of consecutive failures that opens a closed breaker.
	FailureThreshold int
	// SuccessThreshold is the number of consecutive half-open successes that closes it again.
	SuccessThreshold int
	// Timeout is the cool-down an open breaker waits before probing.
	Timeout time.Duration
	// Name labels log lines and the state gauge.
	Name string
	// IsFailure reports whether an error counts towards opening the circuit.
	// Nil means every error except context cancellation counts.
	IsFailure func(error) bool
}

// DefaultConfig returns the breaker settings used when none are configured.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "circuit-breaker",
	}
}

// CircuitBreaker counts consecutive failures of the calls it wraps and stops
// making them once the database looks unavailable.
type CircuitBreaker struct {
	cfg Config
	now func() time.Time

	mu          sync.RWMutex
	state       State
	failures    int
	successes   int
	lastFailure time.Time
}

// New creates a closed circuit breaker.
func New(cfg Config) *CircuitBreaker {
	if cfg.IsFailure == nil {
		cfg.IsFailure = func(err error) bool { return !errors.Is(err, context.Canceled) }
	}
	metrics.SetCircuitBreakerState(cfg.Name, int(StateClosed))
	return &CircuitBreaker{cfg: cfg, now: time.Now}
}

// Execute runs fn unless the circuit is open, in which case it returns
// ErrCircuitOpen. A context that is already done short-circuits without
// touching the counters.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !cb.allow() {
		return ErrCircuitOpen
	}

	err := fn()
	cb.record(err)
	return err
}

// allow reports whether a call may go through, moving an open breaker whose
// cool-down has elapsed to half-open.
func (cb *CircuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return true
	}
	if cb.now().Sub(cb.lastFailure) < cb.cfg.Timeout {
		return false
	}
	cb.successes = 0
	cb.transition(StateHalfOpen, "cool-down elapsed")
	return true
}

func (cb *CircuitBreaker) record(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch {
	case err == nil:
		cb.failures = 0
		if cb.state != StateHalfOpen {
			cb.successes = 0
			return
		}
		cb.successes++
		if cb.successes >= cb.cfg.SuccessThreshold {
			cb.successes = 0
			cb.transition(StateClosed, "recovered")
		}
	case cb.cfg.IsFailure(err):
		cb.failures++
		cb.lastFailure = cb.now()
		switch {
		case cb.state == StateHalfOpen:
			cb.failures = cb.cfg.FailureThreshold
			cb.transition(StateOpen, "probe failed")
		case cb.state == StateClosed && cb.failures >= cb.cfg.FailureThreshold:
			cb.transition(StateOpen, "failure threshold reached")
		}
	}
}

// transition must be called with mu held.
func (cb *CircuitBreaker) transition(to State, reason string) {
	from := cb.state
	cb.state = to
	metrics.SetCircuitBreakerState(cb.cfg.Name, int(to))

	log := logger.Logger()
	event := log.Info()
	if to == StateOpen {
		event = log.Warn()
	}
	event.
		Str("circuit_breaker", cb.cfg.Name).
		Str("from", from.String()).
		Str("to", to.String()).
		Int("failure_count", cb.failures).
		Msg("Circuit breaker " + reason)
}

// State returns the current state of the circuit breaker.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// IsOpen reports whether calls are currently rejected.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.State() == StateOpen
}

// Stats is a snapshot of a breaker for the readiness probe.
type Stats struct {
	Name         string
	State        string
	FailureCount int
	SuccessCount int
	LastFailure  time.Time
	IsHealthy    bool
}

// GetStats returns current circuit breaker statistics.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return Stats{
		Name:         cb.cfg.Name,
		State:        cb.state.String(),
		FailureCount: cb.failures,
		SuccessCount: cb.successes,
		LastFailure:  cb.lastFailure,
		IsHealthy:    cb.state == StateClosed,
	}
}
