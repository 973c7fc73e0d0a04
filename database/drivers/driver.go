package drivers

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
)

// Conn is the single pinned connection a session talks to.
// It is satisfied by *sql.Conn.
type Conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Endpoint describes the server a driver connects to.
type Endpoint struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string
}

// Driver is the dialect a session uses to reach a database server.
// It performs the fixed setup steps and provides the server escaping routine.
type Driver interface {
	// Open returns a handle for the endpoint. No connection is established yet.
	Open(ep Endpoint) (*sql.DB, error)

	// SelectDatabase makes name the current database of conn.
	// It fails when the database does not exist on the server.
	SelectDatabase(ctx context.Context, conn Conn, name string) error

	// SetCharset fixes the connection text encoding.
	// An empty charset selects the dialect's UTF-8 variant.
	SetCharset(ctx context.Context, conn Conn, charset string) error

	// Escape makes value safe to splice between single quotes in SQL text.
	Escape(value string) string
}

var charsetName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// BaseDriver holds the behavior shared by the dialects.
type BaseDriver struct {
	// DefaultCharset is used when SetCharset receives an empty name.
	DefaultCharset string
}

// Charset returns the charset to apply, validated so it can be spliced into SQL text.
func (d *BaseDriver) Charset(charset string) (string, error) {
	if charset == "" {
		charset = d.DefaultCharset
	}
	if !charsetName.MatchString(charset) {
		return "", fmt.Errorf("invalid charset: %q", charset)
	}

	return charset, nil
}

// Escape doubles single quotes, which is the standard SQL literal escape.
func (d *BaseDriver) Escape(value string) string {
	return quoteDoubling.Replace(value)
}

func open(driverName, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// the session pins exactly one connection
	db.SetMaxOpenConns(1)

	return db, nil
}
