package database

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/lucasvillarinho/sqlsession/database/drivers"
)

// Option configures a session.
type Option func(*Session)

// WithDB sets the database handle instead of opening one through the driver.
// The session takes ownership and closes it.
func WithDB(db *sql.DB) Option {
	return func(s *Session) {
		s.db = db
	}
}

// WithDriver sets the dialect, overriding Config.Driver.
func WithDriver(driver drivers.Driver) Option {
	return func(s *Session) {
		s.driver = driver
	}
}

// WithDriverFactory sets the factory used to resolve Config.Driver.
func WithDriverFactory(factory drivers.Factory) Option {
	return func(s *Session) {
		s.factory = factory
	}
}

// WithLogger sets the statement logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithClock sets the time source used to measure statements.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithErrorHandler sets the handler invoked when the session cannot be established.
func WithErrorHandler(handler func(error)) Option {
	return func(s *Session) {
		s.onConnError = handler
	}
}
