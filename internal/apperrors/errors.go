package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrNotFound is returned when a lookup by id matches no row.
	ErrNotFound = errors.New("resource not found")

	// ErrConnection matches every *ConnectionError.
	ErrConnection = errors.New("database connection failed")

	// ErrQuery matches every *QueryError.
	ErrQuery = errors.New("database query failed")
)

// ConnectionError reports that a database connection could not be opened
// (unreachable host, rejected credentials, unknown schema).
type ConnectionError struct {
	Err error
}

// Error implements error interface
func (e *ConnectionError) Error() string {
	if e.Err == nil {
		return ErrConnection.Error()
	}
	return fmt.Sprintf("%s: %v", ErrConnection, e.Err)
}

// Unwrap returns the driver error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrConnection) true.
func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnection
}

// QueryError reports that one SQL statement failed on an open connection.
type QueryError struct {
	Op  string
	Err error
}

// Error implements error interface
func (e *QueryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s (%s)", ErrQuery, e.Op)
	}
	return fmt.Sprintf("%s (%s): %v", ErrQuery, e.Op, e.Err)
}

// Unwrap returns the driver error.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrQuery) true.
func (e *QueryError) Is(target error) bool {
	return target == ErrQuery
}

// NewConnectionError wraps a driver error as a *ConnectionError.
func NewConnectionError(err error) error {
	return &ConnectionError{Err: err}
}

// NewQueryError wraps a driver error as a *QueryError for the named operation.
func NewQueryError(op string, err error) error {
	return &QueryError{Op: op, Err: err}
}

// Cause returns the innermost driver message of a Connection or Query error,
// falling back to err.Error().
func Cause(err error) string {
	var connErr *ConnectionError
	if errors.As(err, &connErr) && connErr.Err != nil {
		return connErr.Err.Error()
	}
	var queryErr *QueryError
	if errors.As(err, &queryErr) && queryErr.Err != nil {
		return queryErr.Err.Error()
	}
	return err.Error()
}
