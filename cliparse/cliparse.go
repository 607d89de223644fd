// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"fmt"
	"strings"
	"time"

	goflags "github.com/jessevdk/go-flags"
)

type Config struct {
	// Network config (can be CLI args or env)
	Port int `short:"p" long:"port" env:"PORT" default:"8088" description:"Server port"`

	// Database
	DatabaseURL  string        `short:"d" long:"database-url" env:"DATABASE_URL" description:"Database URL"`
	DatabaseType string        `short:"t" long:"database-type" env:"DATABASE_TYPE" default:"postgres" choice:"postgres" choice:"sqlite" description:"Database type"`
	MaxOpenConns int           `long:"max-conns" env:"DB_MAX_CONNS" default:"4" description:"Maximum open database connections"`
	QueryTimeout time.Duration `long:"query-timeout" env:"QUERY_TIMEOUT" default:"5s" description:"Timeout for a single storage call"`

	// Operations
	ReportInterval time.Duration `long:"report-interval" env:"REPORT_INTERVAL" default:"0s" description:"Log recent top chapters on this interval (0 disables)"`
	Verbose        bool          `short:"v" long:"verbose" env:"VERBOSE" description:"Enable debug logging"`
}

// ParseFlags parses CLI flags, falling back to environment variables and
// then to defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	parser := goflags.NewParser(&cfg, goflags.HelpFlag|goflags.PassDoubleDash)
	parser.Name = "wtcounter"

	if _, err := parser.ParseArgs(args); err != nil {
		return Config{}, err
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.MaxOpenConns < 1 {
		return Config{}, errors.New("max-conns must be at least 1")
	}
	if cfg.QueryTimeout <= 0 {
		return Config{}, errors.New("query-timeout must be positive")
	}
	if cfg.ReportInterval < 0 {
		return Config{}, errors.New("report-interval must not be negative")
	}

	return cfg, nil
}

// DriverName returns the database/sql driver registered for DatabaseType.
func (c Config) DriverName() string {
	if c.DatabaseType == "sqlite" {
		return "sqlite"
	}
	return "postgres"
}

// sqliteParams make writers queue for the lock. BEGIN IMMEDIATE takes the
// write lock up front, so a transaction that reads first cannot fail when
// upgrading, and busy_timeout makes waiters retry instead of returning SQLITE_BUSY.
var sqliteParams = []struct{ key, param string }{
	{"busy_timeout", "_pragma=busy_timeout(5000)"},
	{"_txlock", "_txlock=immediate"},
	{"foreign_keys", "_pragma=foreign_keys(1)"},
}

// DataSourceName returns DatabaseURL, with SQLite locking parameters added
// unless the URL already sets them.
func (c Config) DataSourceName() string {
	if c.DriverName() != "sqlite" {
		return c.DatabaseURL
	}

	dsn := c.DatabaseURL
	for _, p := range sqliteParams {
		if strings.Contains(dsn, p.key) {
			continue
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + p.param
	}
	return dsn
}

// IsHelp reports whether err came from -h/--help.
func IsHelp(err error) bool {
	var flagsErr *goflags.Error
	return errors.As(err, &flagsErr) && flagsErr.Type == goflags.ErrHelp
}
