package orm

import (
	"context"
	"database/sql"

	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/TechXTT/blog/internal/core"
	"github.com/TechXTT/blog/pkg/config"
	"github.com/TechXTT/blog/pkg/logger"
)

// DB is the gateway that runs statements against a connection pool.
// It holds no per-call state and is safe for concurrent use.
type DB struct {
	conn    *sql.DB
	dialect Dialect
}

// NewDB wraps an existing pool.
func NewDB(conn *sql.DB, dialect Dialect) *DB {
	return &DB{conn: conn, dialect: dialect}
}

// Open creates the pool described by cfg and verifies it.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("create database connection pool",
		"driver", cfg.Driver, "host", cfg.Host, "db", cfg.Name, "min", cfg.MinSize, "max", cfg.MaxSize)
	conn, err := core.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewDB(conn, dialect), nil
}

// Dialect reports the dialect statements are rewritten for.
func (d *DB) Dialect() Dialect { return d.dialect }

func (d *DB) Ping(ctx context.Context) error {
	return d.conn.PingContext(ctx)
}

func (d *DB) Close() error {
	return core.Close(d.conn)
}

// Select runs query and returns up to size rows keyed by column name; size
// <= 0 returns every row. Driver errors are returned unchanged.
func (d *DB) Select(ctx context.Context, query string, args []any, size int) ([]Row, error) {
	log := logger.FromContext(ctx)
	log.Info("SQL", "query", query, "args", len(args))
	q, err := d.dialect.Rebind(query)
	if err != nil {
		return nil, err
	}

	conn, err := d.conn.Conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rs := sqlscan.NewRowScanner(rows)
	var out []Row
	for (size <= 0 || len(out) < size) && rows.Next() {
		row := map[string]any{}
		if err := rs.Scan(&row); err != nil {
			return nil, err
		}
		out = append(out, Row(row))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	log.Info("rows returned", "count", len(out))
	return out, nil
}

// Execute runs a mutating statement and returns the affected row count.
// Driver errors are returned unchanged.
func (d *DB) Execute(ctx context.Context, query string, args []any) (int64, error) {
	logger.FromContext(ctx).Info("SQL", "query", query, "args", len(args))
	q, err := d.dialect.Rebind(query)
	if err != nil {
		return 0, err
	}

	conn, err := d.conn.Conn(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
