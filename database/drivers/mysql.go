package drivers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
)

// ErrUnknownDatabase is returned by SelectDatabase when the server has no such database.
var ErrUnknownDatabase = errors.New("database not found")

const defaultMySQLPort = 3306

type driverMySQL struct {
	BaseDriver
}

func NewMySQLDriver() Driver {
	return &driverMySQL{
		BaseDriver: BaseDriver{DefaultCharset: "utf8mb4"},
	}
}

// Open opens a handle without a default database, SelectDatabase picks it afterwards.
func (d *driverMySQL) Open(ep Endpoint) (*sql.DB, error) {
	return open("mysql", MySQLDSN(ep))
}

// MySQLDSN formats the endpoint as a go-sql-driver DSN without a database name.
func MySQLDSN(ep Endpoint) string {
	host := ep.Host
	if host == "" {
		host = "127.0.0.1"
	}
	port := ep.Port
	if port == 0 {
		port = defaultMySQLPort
	}

	cfg := mysql.NewConfig()
	cfg.User = ep.Username
	cfg.Passwd = ep.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(port))

	return cfg.FormatDSN()
}

func (d *driverMySQL) SelectDatabase(ctx context.Context, conn Conn, name string) error {
	query, args, err := sq.Select("SCHEMA_NAME").
		From("information_schema.SCHEMATA").
		Where(sq.Eq{"SCHEMA_NAME": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building schema lookup: %w", err)
	}

	var found string
	err = conn.QueryRowContext(ctx, query, args...).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrUnknownDatabase, name)
	}
	if err != nil {
		return fmt.Errorf("looking up database: %w", err)
	}

	if _, err := conn.ExecContext(ctx, "USE "+quoteMySQLIdent(name)); err != nil {
		return fmt.Errorf("selecting database: %w", err)
	}

	return nil
}

func (d *driverMySQL) SetCharset(ctx context.Context, conn Conn, charset string) error {
	charset, err := d.Charset(charset)
	if err != nil {
		return err
	}

	if _, err := conn.ExecContext(ctx, "SET NAMES "+charset); err != nil {
		return fmt.Errorf("setting charset: %w", err)
	}

	return nil
}

// Escape follows mysql_real_escape_string for the backslash-escaping SQL modes.
func (d *driverMySQL) Escape(value string) string {
	return backslashEscaping.Replace(value)
}

func quoteMySQLIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
