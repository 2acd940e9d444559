package repository

import (
	"context"
	"errors"

	"github.com/wsawebmaster/delivery/internal/circuitbreaker"
)

// LogsRepositoryWithCircuitBreaker guards a logs repository with a circuit breaker.
// Writes are dropped silently while the circuit is open; reads report ErrCircuitOpen.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker wraps repo.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *LogsRepositoryWithCircuitBreaker) write(ctx context.Context, fn func() error) error {
	err := r.circuitBreaker.Execute(ctx, fn)
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Create stores one entry.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	return r.write(ctx, func() error { return r.repo.Create(ctx, entry) })
}

// CreateMany stores a batch of entries.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	return r.write(ctx, func() error { return r.repo.CreateMany(ctx, entries) })
}

// Query reads entries.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count counts entries.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker exposes the breaker for health reporting.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
