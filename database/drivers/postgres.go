package drivers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

const defaultPostgresPort = 5432

type driverPostgres struct {
	BaseDriver
}

func NewPostgresDriver() Driver {
	return &driverPostgres{
		BaseDriver: BaseDriver{DefaultCharset: "UTF8"},
	}
}

// Open opens a handle bound to ep.Database. Postgres connections cannot switch
// databases, so SelectDatabase only verifies the binding.
func (d *driverPostgres) Open(ep Endpoint) (*sql.DB, error) {
	return open("postgres", PostgresDSN(ep))
}

// PostgresDSN formats the endpoint as a postgres:// URL with SSL disabled.
func PostgresDSN(ep Endpoint) string {
	host := ep.Host
	if host == "" {
		host = "127.0.0.1"
	}
	port := ep.Port
	if port == 0 {
		port = defaultPostgresPort
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(host, strconv.Itoa(port)),
		Path:     "/" + ep.Database,
		RawQuery: "sslmode=disable",
	}
	if ep.Password != "" {
		u.User = url.UserPassword(ep.Username, ep.Password)
	} else if ep.Username != "" {
		u.User = url.User(ep.Username)
	}

	return u.String()
}

func (d *driverPostgres) SelectDatabase(ctx context.Context, conn Conn, name string) error {
	query, args, err := sq.Select("datname").
		From("pg_database").
		Where(sq.And{
			sq.Eq{"datname": name},
			sq.Expr("datname = current_database()"),
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building database lookup: %w", err)
	}

	var found string
	err = conn.QueryRowContext(ctx, query, args...).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrUnknownDatabase, name)
	}
	if err != nil {
		return fmt.Errorf("looking up database: %w", err)
	}

	return nil
}

func (d *driverPostgres) SetCharset(ctx context.Context, conn Conn, charset string) error {
	charset, err := d.Charset(charset)
	if err != nil {
		return err
	}

	if _, err := conn.ExecContext(ctx, "SET client_encoding TO "+pq.QuoteLiteral(charset)); err != nil {
		return fmt.Errorf("setting charset: %w", err)
	}

	return nil
}
