// Package sqlsession opens single-connection SQL sessions that run caller-built
// statements and keep per-statement bookkeeping.
package sqlsession

import (
	"context"

	"github.com/lucasvillarinho/sqlsession/database"
)

// Open connects a session. See database.New.
func Open(ctx context.Context, cfg database.Config, opts ...database.Option) (*database.Session, error) {
	return database.New(ctx, cfg, opts...)
}
