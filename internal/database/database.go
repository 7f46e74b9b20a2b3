package database

import (
	"context"
	"database/sql"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"

	"github.com/01moynul/instituto-dashboard/internal/apperrors"
	"github.com/01moynul/instituto-dashboard/internal/config"
)

const (
	charset   = "utf8mb4"
	collation = "utf8mb4_unicode_ci"
)

// Querier is the read surface the Queries need from a connection.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Conn is one acquired connection. *sql.Conn satisfies it.
type Conn interface {
	Querier
	Close() error
}

// Provider hands out one dedicated connection per request.
// The underlying *sql.DB is only used as a connector: with no idle
// connections kept, a released connection is closed instead of reused.
type Provider struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewMySQLConfig translates the application settings into a driver config:
// utf8mb4, autocommit on, DATE/DATETIME parsed into time.Time.
func NewMySQLConfig(cfg config.DatabaseConfig) *mysql.Config {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.DBName = cfg.Name
	mc.Collation = collation
	mc.ParseTime = true
	mc.Timeout = cfg.Timeout
	mc.Params = map[string]string{
		"autocommit": "true",
	}
	return mc
}

// NewProvider builds a Provider for the configured MySQL server.
// No connection is opened until Acquire is called.
func NewProvider(cfg config.DatabaseConfig, logger zerolog.Logger) (*Provider, error) {
	connector, err := mysql.NewConnector(NewMySQLConfig(cfg))
	if err != nil {
		return nil, apperrors.NewConnectionError(err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxIdleConns(0)

	logger.Info().
		Str("addr", net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))).
		Str("database", cfg.Name).
		Str("charset", charset).
		Msg("Database provider configured")

	return &Provider{db: db, logger: logger}, nil
}

// NewProviderFromDB wraps an existing handle. Pool settings are left alone.
func NewProviderFromDB(db *sql.DB, logger zerolog.Logger) *Provider {
	return &Provider{db: db, logger: logger}
}

// Acquire opens a dedicated connection and verifies it answers.
// Any failure is logged and returned as *apperrors.ConnectionError.
func (p *Provider) Acquire(ctx context.Context) (Conn, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		p.logger.Error().Err(err).Msg("Error connecting to database")
		return nil, apperrors.NewConnectionError(err)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		p.logger.Error().Err(err).Msg("Error connecting to database")
		return nil, apperrors.NewConnectionError(err)
	}

	return conn, nil
}

// WithConnection acquires a connection, runs fn with Queries bound to it and
// releases the connection on every exit path, panics included.
func (p *Provider) WithConnection(ctx context.Context, fn func(q *Queries) error) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	return p.use(conn, fn)
}

func (p *Provider) use(conn Conn, fn func(q *Queries) error) error {
	defer func() {
		if err := conn.Close(); err != nil {
			p.logger.Warn().Err(err).Msg("Failed to release database connection")
		}
	}()
	return fn(NewQueries(conn, p.logger))
}

// Ping acquires and releases a connection.
func (p *Provider) Ping(ctx context.Context) error {
	return p.WithConnection(ctx, func(*Queries) error { return nil })
}

// Close releases the connector.
func (p *Provider) Close() error {
	if p.db == nil {
		return nil
	}
	p.logger.Debug().Msg("closing database provider")
	return p.db.Close()
}
