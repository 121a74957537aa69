// File: internal/core/connection.go
package core

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/TechXTT/blog/pkg/config"
)

// DriverName maps a configured driver to the database/sql driver name.
func DriverName(driver string) (string, error) {
	switch driver {
	case "mysql":
		return "mysql", nil
	case "postgres":
		return "postgres", nil
	case "sqlite":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported driver %q", driver)
	}
}

// DSN builds the driver-specific data source name for cfg.
func DSN(cfg *config.DatabaseConfig) (string, error) {
	switch cfg.Driver {
	case "mysql":
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
		mc.DBName = cfg.Name
		mc.Params = map[string]string{
			"charset":    cfg.Charset,
			"autocommit": strconv.FormatBool(cfg.Autocommit),
		}
		return mc.FormatDSN(), nil
	case "postgres":
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(cfg.User, cfg.Password),
			Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Path:   "/" + cfg.Name,
		}
		// Ensure SSL mode is disabled by default.
		q := url.Values{}
		q.Set("sslmode", "disable")
		if cfg.Charset != "" {
			q.Set("client_encoding", cfg.Charset)
		}
		u.RawQuery = q.Encode()
		return u.String(), nil
	case "sqlite":
		if cfg.Name == "" {
			return "", fmt.Errorf("DSN is empty")
		}
		return cfg.Name, nil
	default:
		return "", fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

// Connect opens the pool described by cfg and verifies it with a ping.
func Connect(ctx context.Context, cfg *config.DatabaseConfig) (*sql.DB, error) {
	driver, err := DriverName(cfg.Driver)
	if err != nil {
		return nil, err
	}
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	ConfigurePool(conn, cfg)
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return conn, nil
}

// ConfigurePool applies the pool bounds. MaxSize caps open connections and
// every released connection may stay idle up to that cap. database/sql has
// no minimum pool size, so MinSize is only validated.
func ConfigurePool(conn *sql.DB, cfg *config.DatabaseConfig) {
	if cfg.MaxSize > 0 {
		conn.SetMaxOpenConns(cfg.MaxSize)
		conn.SetMaxIdleConns(cfg.MaxSize)
	}
}

func Close(db *sql.DB) error {
	return db.Close()
}
