// Package sqldb reads collision records from SQLite (the SWITRS distribution) or PostgreSQL.
package sqldb

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/collisions-monitor/internal/config"
	"github.com/collisions-monitor/internal/domain"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
	// DriverLibPQ - lib/pq, для окружений без pgx
	DriverLibPQ    = "postgres"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

type DB struct {
	*sqlx.DB
	logger *zap.Logger
}

// New opens the record store. Every failure is reported as domain.ErrSourceUnavailable.
func New(cfg *config.Config, logger *zap.Logger) (*DB, error) {
	driver := cfg.Database.Driver
	dsn := cfg.GetDatabaseDSN()

	if driver == DriverSQLite && !isMemoryDSN(dsn) {
		// modernc creates missing files, an empty database is not a usable source
		if _, err := os.Stat(dsn); err != nil {
			return nil, fmt.Errorf("%w: sqlite file %s: %w", domain.ErrSourceUnavailable, dsn, err)
		}
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrSourceUnavailable, driver, err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", domain.ErrSourceUnavailable, driver, err)
	}

	logger.Info("Record store connected",
		zap.String("driver", driver),
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
	)

	return &DB{DB: db, logger: logger}, nil
}

func (db *DB) Close() error {
	db.logger.Info("Closing record store connection")
	return db.DB.Close()
}

func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}

// NewDBForTest wraps an existing connection, e.g. sqlmock or an in-memory sqlite.
func NewDBForTest(sqlxDB *sqlx.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{
		DB:     sqlxDB,
		logger: logger,
	}
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory") || strings.HasPrefix(dsn, "file::memory:")
}
