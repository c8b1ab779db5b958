package circuitbreaker

import (
	"context"
	"database/sql"
)

// DBCircuitBreaker wraps *sql.DB with a circuit breaker. It satisfies the
// Querier interface used by the persistence adapters.
type DBCircuitBreaker struct {
	cb *CircuitBreaker
	db *sql.DB
}

// NewDBCircuitBreaker creates a circuit breaker wrapped database.
func NewDBCircuitBreaker(db *sql.DB) *DBCircuitBreaker {
	return &DBCircuitBreaker{
		cb: New(DBConfig()),
		db: db,
	}
}

// QueryContext executes a query through the circuit breaker.
func (d *DBCircuitBreaker) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	result, err := d.cb.Execute(func() (interface{}, error) {
		return d.db.QueryContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*sql.Rows), nil
}

// QueryRowContext executes a single-row query. sql.Row defers its error to
// Scan, so the call cannot report failure here and bypasses the breaker.
func (d *DBCircuitBreaker) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return d.db.QueryRowContext(ctx, query, args...)
}

// ExecContext executes a statement through the circuit breaker.
func (d *DBCircuitBreaker) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	result, err := d.cb.Execute(func() (interface{}, error) {
		return d.db.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(sql.Result), nil
}

// State returns the current state of the underlying circuit breaker.
func (d *DBCircuitBreaker) State() string {
	return d.cb.State().String()
}

// IsOpen returns true if the circuit is open.
func (d *DBCircuitBreaker) IsOpen() bool {
	return d.cb.IsOpen()
}

// DB returns the underlying database handle for health checks.
func (d *DBCircuitBreaker) DB() *sql.DB {
	return d.db
}
