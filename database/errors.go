package database

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

// Sentinel errors for the session failure kinds.
var (
	// ErrConnection indicates the session could not be established.
	ErrConnection = errors.New("database: connection error")

	// ErrEmptyStatement indicates blank statement text was submitted.
	ErrEmptyStatement = errors.New("database: empty statement submitted")

	// ErrStatement indicates the server rejected or failed to execute a statement.
	ErrStatement = errors.New("database: statement failed")

	// ErrClosed indicates the session was used after Close.
	ErrClosed = errors.New("database: session is closed")

	// ErrNotImplemented is returned by operations that are declared but not provided.
	ErrNotImplemented = errors.New("database: not implemented")
)

// ConnectionError is returned by New when a setup step fails.
type ConnectionError struct {
	// Op is the setup step that failed: open, connect, ping, select database or set charset.
	Op string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("database: connection error: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Is reports ErrConnection as a match.
func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnection
}

// StatementError carries the server message of a failed statement.
type StatementError struct {
	// Statement is the statement text as submitted.
	Statement string

	// Message is the server's error message.
	Message string

	// Code is the server error code when the driver reports one: the MySQL
	// error number or the Postgres SQLSTATE.
	Code string

	// Err is the underlying driver error.
	Err error
}

// Error implements the error interface.
func (e *StatementError) Error() string {
	return fmt.Sprintf("database: statement failed: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *StatementError) Unwrap() error {
	return e.Err
}

// Is reports ErrStatement as a match.
func (e *StatementError) Is(target error) bool {
	return target == ErrStatement
}

func newStatementError(statement string, err error) *StatementError {
	stmtErr := &StatementError{
		Statement: statement,
		Message:   err.Error(),
		Err:       err,
	}

	var (
		myErr *mysql.MySQLError
		pqErr *pq.Error
	)
	switch {
	case errors.As(err, &myErr):
		stmtErr.Message = myErr.Message
		stmtErr.Code = strconv.Itoa(int(myErr.Number))
	case errors.As(err, &pqErr):
		stmtErr.Message = pqErr.Message
		stmtErr.Code = string(pqErr.Code)
	}

	return stmtErr
}

// IsConnectionError checks if an error is a connection error.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnection)
}

// IsStatementError checks if an error is a statement error.
func IsStatementError(err error) bool {
	return errors.Is(err, ErrStatement)
}
