package database

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/lucasvillarinho/sqlsession/database/drivers"
	"github.com/lucasvillarinho/sqlsession/internal/helpers"
	"github.com/lucasvillarinho/sqlsession/internal/log"
)

// Config describes the server a session connects to.
type Config struct {
	// Driver selects the dialect. Defaults to drivers.DriverMySQL.
	Driver drivers.DriverType

	Host     string
	Port     int // 0 selects the driver default
	Username string
	Password string

	// Database is the database name, or the file path for the SQLite drivers.
	Database string

	// Charset is the connection text encoding. Empty selects the driver's UTF-8 variant.
	Charset string
}

func (c Config) driverType() drivers.DriverType {
	if c.Driver == "" {
		return drivers.DriverMySQL
	}
	return c.Driver
}

func (c Config) endpoint() drivers.Endpoint {
	return drivers.Endpoint{
		Host:     c.Host,
		Port:     c.Port,
		Username: c.Username,
		Password: c.Password,
		Database: c.Database,
	}
}

// Session wraps one live connection and the bookkeeping of the last statement.
//
// A session is not safe for concurrent use. Every operation performs at most
// one round trip and blocks until the server replies.
type Session struct {
	driver  drivers.Driver
	factory drivers.Factory
	db      *sql.DB
	conn    *sql.Conn
	result  *resultSet

	rowCount     int64
	affectedRows int64
	insertID     int64
	duration     time.Duration

	logger      *slog.Logger
	now         func() time.Time
	onConnError func(error)
}

// New connects to the configured server, selects the target database and
// fixes the connection charset.
//
// Parameters:
//   - ctx: the context
//   - cfg: the connection configuration
//   - opts: the session options
//
// Returns:
//   - *Session: the session
//   - error: a *ConnectionError if any setup step failed
//
// On failure the error handler is invoked with the same error and no session
// is returned.
//
// Example:
//
//	s, err := database.New(ctx, database.Config{
//		Host:     "127.0.0.1",
//		Username: "app",
//		Password: "secret",
//		Database: "shop",
//	})
//	if err != nil {
//		return err
//	}
//	defer s.Close()
func New(ctx context.Context, cfg Config, opts ...Option) (*Session, error) {
	s := &Session{
		factory: drivers.NewDriverFactory(),
		logger:  log.Discard(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.onConnError == nil {
		s.onConnError = log.ErrorHandler(s.logger)
	}

	if err := s.connect(ctx, cfg); err != nil {
		s.onConnError(err)
		return nil, err
	}

	s.logger.Debug("session established",
		slog.String("driver", string(cfg.driverType())),
		slog.String("database", cfg.Database),
	)

	return s, nil
}

// exec sends one statement and refreshes the bookkeeping picked by its shape.
func (s *Session) exec(ctx context.Context, statement string) error {
	if strings.TrimSpace(statement) == "" {
		return ErrEmptyStatement
	}
	if s.conn == nil {
		return ErrClosed
	}

	kind := Classify(statement)

	var (
		rs  *resultSet
		res sql.Result
		err error
	)

	start := s.now()
	if kind.producesRows() || returnsRows(statement) {
		rs, err = s.queryRows(ctx, statement)
	} else {
		res, err = s.conn.ExecContext(ctx, statement)
	}
	s.duration = s.now().Sub(start)

	// the previous reply is gone either way
	s.result = nil

	if err != nil {
		s.logger.Debug("statement failed",
			slog.String("statement", helpers.NormalizeQuery(statement)),
			slog.Duration("duration", s.duration),
			slog.Any("error", err),
		)
		return newStatementError(statement, err)
	}

	switch {
	case kind == KindSelect:
		s.rowCount = rs.Len()
	case rs != nil:
		// row-producing statements outside the SELECT shape report their rows as affected
		s.affectedRows = rs.Len()
	case kind == KindInsert:
		s.insertID = s.count(kind, "last insert id", res.LastInsertId)
		s.affectedRows = s.count(kind, "rows affected", res.RowsAffected)
	default:
		s.affectedRows = s.count(kind, "rows affected", res.RowsAffected)
	}

	s.result = rs

	s.logger.Debug("statement executed",
		slog.String("statement", helpers.NormalizeQuery(statement)),
		slog.String("kind", kind.String()),
		slog.Duration("duration", s.duration),
	)

	return nil
}

func (s *Session) queryRows(ctx context.Context, statement string) (*resultSet, error) {
	rows, err := s.conn.QueryContext(ctx, statement)
	if err != nil {
		return nil, err
	}

	return newResultSet(rows)
}

// count reads a server counter. Failures are logged and read as zero.
func (s *Session) count(kind Kind, name string, read func() (int64, error)) int64 {
	n, err := read()
	if err != nil {
		s.logger.Warn("counter unavailable",
			slog.String("counter", name),
			slog.String("kind", kind.String()),
			slog.Any("error", err),
		)
		return 0
	}
	return n
}

// Fetch executes the statement and returns its first row, or nil when it
// produced no rows. Remaining rows are discarded.
func (s *Session) Fetch(ctx context.Context, statement string) (Row, error) {
	if err := s.exec(ctx, statement); err != nil {
		return nil, err
	}

	return s.result.Next(), nil
}

// FetchAll executes the statement and returns every row in server order.
// The slice is empty, not nil, when there are no rows.
func (s *Session) FetchAll(ctx context.Context, statement string) ([]Row, error) {
	if err := s.exec(ctx, statement); err != nil {
		return nil, err
	}

	return s.result.Drain(), nil
}

// Execute executes the statement and returns the affected row count.
//
// On a SELECT the count is the one left by an earlier statement, use RowCount.
func (s *Session) Execute(ctx context.Context, statement string) (int64, error) {
	if err := s.exec(ctx, statement); err != nil {
		return 0, err
	}

	return s.affectedRows, nil
}

// Query executes the statement and reports only whether it succeeded.
func (s *Session) Query(ctx context.Context, statement string) error {
	return s.exec(ctx, statement)
}

// InsertID returns the id assigned by the last INSERT, or 0 if none ran.
func (s *Session) InsertID() int64 {
	return s.insertID
}

// RowCount returns the number of rows returned by the last SELECT.
func (s *Session) RowCount() int64 {
	return s.rowCount
}

// LastQueryDuration returns the wall-clock duration of the last statement.
func (s *Session) LastQueryDuration() time.Duration {
	return s.duration
}

// Columns returns the column names of the last result set in server order.
func (s *Session) Columns() []string {
	return s.result.Columns()
}

// FoundRows is declared for compatibility and not implemented.
func (s *Session) FoundRows() (int64, error) {
	return 0, ErrNotImplemented
}

// Escape strips markup and surrounding whitespace from value, then applies
// the server escaping routine.
//
// ⚠️ WARNING: escaping is not a defense against SQL injection. It exists for
// legacy call sites that splice literals into SQL text. New code should use
// parameterized statements through database/sql instead.
func (s *Session) Escape(value string) string {
	return s.driver.Escape(strings.TrimSpace(stripTags(value)))
}

// EscapeRaw applies only the server escaping routine.
func (s *Session) EscapeRaw(value string) string {
	return s.driver.Escape(value)
}

// Close releases the connection. Further statements fail with ErrClosed.
func (s *Session) Close() error {
	s.result = nil
	return s.release()
}
