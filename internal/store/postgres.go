package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"

	"github.com/jekabolt/merchant-report/internal/dependency"
)

// Config defines configurations to connect database
type Config struct {
	DSN                string        `mapstructure:"dsn"`
	Automigrate        bool          `mapstructure:"automigrate"`
	MaxOpenConnections int           `mapstructure:"max_open_connections"`
	MaxIdleConnections int           `mapstructure:"max_idle_connections"`
	QueryTimeout       time.Duration `mapstructure:"query_timeout"`
}

// PostgresStore implements the metrics source and merchant directory on top
// of the reporting database.
type PostgresStore struct {
	// db is used for executing queries
	db    dependency.DB
	c     Config
	close context.CancelFunc
}

// New connects to the database, optionally applies migrations and returns a new PostgresStore object.
func New(ctx context.Context, cfg Config) (*PostgresStore, error) {
	d, err := sqlx.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("couldn't open database : %v", err)
	}

	if cfg.MaxOpenConnections > 0 {
		d.SetMaxOpenConns(cfg.MaxOpenConnections)
	}
	if cfg.MaxIdleConnections > 0 {
		d.SetMaxIdleConns(cfg.MaxIdleConnections)
	}
	d.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	defer pingCancel()
	if err := d.PingContext(pingCtx); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.Automigrate {
		slog.Default().InfoContext(ctx, "applying migrations")
		if err := Migrate(d.DB); err != nil {
			d.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	ctx, c := context.WithCancel(ctx)
	ps := newWithDB(d, cfg)
	ps.close = c

	go func() {
		<-ctx.Done()
		d.Close()
	}()

	return ps, nil
}

func newWithDB(db dependency.DB, cfg Config) *PostgresStore {
	return &PostgresStore{
		db:    db,
		c:     cfg,
		close: func() {},
	}
}

//go:embed sql
var fs embed.FS

// Migrate applies the embedded schema migrations.
func Migrate(db *sql.DB) error {
	m := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: fs,
		Root:       "sql",
	}
	n, err := migrate.Exec(db, "postgres", m, migrate.Up)
	if err != nil {
		return fmt.Errorf("db migrations have failed: %w", err)
	}
	slog.Default().Info("applied migrations",
		slog.Int("count", n),
	)
	return nil
}

func (ps *PostgresStore) Close() {
	ps.close()
}

// Ping checks database connectivity by executing a simple query
func (ps *PostgresStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result int
	err := ps.db.QueryRowxContext(ctx, "SELECT 1").Scan(&result)
	if err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// withTimeout bounds a single query when a query timeout is configured.
func (ps *PostgresStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ps.c.QueryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, ps.c.QueryTimeout)
}
