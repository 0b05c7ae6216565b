package database

import (
	"fmt"

	"trivia-api/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver ("pgx")
	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver ("oracle")
)

func init() {
	// go-ora accepts :name placeholders; sqlx does not know the driver name.
	sqlx.BindDriver(config.DriverOracle, sqlx.NAMED)
}

// NewSQLXDB opens and pings the configured database. The caller owns the
// returned handle and must Close it at shutdown.
func NewSQLXDB(cfg config.DBConfig, dsn string) (*sqlx.DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres, config.DriverOracle:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := sqlx.Connect(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Driver, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.Driver, err)
	}

	return db, nil
}
