package drivers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	// Import the sqlite drivers to register them with the database/sql package.
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/lucasvillarinho/sqlsession/internal/helpers"
)

// sqliteDialect treats Endpoint.Database as the database file path.
// Host and credentials are ignored.
type sqliteDialect struct {
	BaseDriver
	driverName string
}

type driverMattn struct {
	sqliteDialect
}

type driverModernc struct {
	sqliteDialect
}

func NewMattnDriver() Driver {
	return &driverMattn{sqliteDialect: newSQLiteDialect("sqlite3")}
}

func NewModerncDriver() Driver {
	return &driverModernc{sqliteDialect: newSQLiteDialect("sqlite")}
}

func newSQLiteDialect(driverName string) sqliteDialect {
	return sqliteDialect{
		BaseDriver: BaseDriver{DefaultCharset: "UTF-8"},
		driverName: driverName,
	}
}

// Open opens the database file read-write. A missing file is not created.
func (d *sqliteDialect) Open(ep Endpoint) (*sql.DB, error) {
	dsn, err := helpers.SQLiteDSN(ep.Database)
	if err != nil {
		return nil, fmt.Errorf("error creating DSN: %w", err)
	}

	return open(d.driverName, dsn)
}

// SelectDatabase checks that the file is attached as the main schema.
func (d *sqliteDialect) SelectDatabase(ctx context.Context, conn Conn, name string) error {
	query, args, err := sq.Select("name").
		From("pragma_database_list").
		Where(sq.Eq{"name": "main"}).
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

func (d *sqliteDialect) SetCharset(ctx context.Context, conn Conn, charset string) error {
	charset, err := d.Charset(charset)
	if err != nil {
		return err
	}

	if _, err := conn.ExecContext(ctx, fmt.Sprintf("PRAGMA encoding = '%s'", charset)); err != nil {
		return fmt.Errorf("setting charset: %w", err)
	}

	return nil
}
