package repository

import (
	"context"
	"database/sql"

	"trivia-api/internal/config"
)

// insertReturningID runs an INSERT written with ? placeholders and returns
// the generated id. Oracle has no RETURNING result set, so the id comes back
// through an out bind instead.
func insertReturningID(ctx context.Context, db DBTX, insert string, args ...interface{}) (int64, error) {
	var id int64
	if db.DriverName() == config.DriverOracle {
		args = append(args, sql.Out{Dest: &id})
		_, err := db.ExecContext(ctx, db.Rebind(insert+" RETURNING id INTO ?"), args...)
		return id, err
	}
	err := db.GetContext(ctx, &id, db.Rebind(insert+" RETURNING id"), args...)
	return id, err
}
