package database

import (
	"context"
	"database/sql"

	"github.com/lucasvillarinho/sqlsession/database/drivers"
)

// connect runs the fixed setup sequence: open, pin a connection, ping, select
// the database and fix the charset. On failure every handle is released.
func (s *Session) connect(ctx context.Context, cfg Config) error {
	if s.driver == nil {
		driver, err := s.factory.GetDriver(cfg.driverType())
		if err != nil {
			return &ConnectionError{Op: "open", Err: err}
		}
		s.driver = driver
	}

	if s.db == nil {
		db, err := s.driver.Open(cfg.endpoint())
		if err != nil {
			return &ConnectionError{Op: "open", Err: err}
		}
		s.db = db
	}

	conn, err := s.db.Conn(ctx)
	if err != nil {
		s.release()
		return &ConnectionError{Op: "connect", Err: err}
	}
	s.conn = conn

	if err := pin(ctx, conn, s.driver, cfg); err != nil {
		s.release()
		return err
	}

	return nil
}

func pin(ctx context.Context, conn *sql.Conn, driver drivers.Driver, cfg Config) error {
	if err := conn.PingContext(ctx); err != nil {
		return &ConnectionError{Op: "ping", Err: err}
	}

	if err := driver.SelectDatabase(ctx, conn, cfg.Database); err != nil {
		return &ConnectionError{Op: "select database", Err: err}
	}

	if err := driver.SetCharset(ctx, conn, cfg.Charset); err != nil {
		return &ConnectionError{Op: "set charset", Err: err}
	}

	return nil
}

// release closes the pinned connection and the handle. It is safe to call twice.
func (s *Session) release() error {
	var err error
	if s.conn != nil {
		err = s.conn.Close()
		s.conn = nil
	}
	if s.db != nil {
		if closeErr := s.db.Close(); err == nil {
			err = closeErr
		}
		s.db = nil
	}
	return err
}
