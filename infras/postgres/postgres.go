package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"
	"todos/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName                = "postgres"
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

var errConnectionFailed = errors.New("could not connect to database")

// Connection holds separate pools for reads and writes. Both may point at
// the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New opens both pools, retrying each as configured. The returned cleanup
// closes them.
func New(cfg *config.Config) (*Connection, func(), error) {
	pg := cfg.DB.Postgres

	write, err := CreatePostgresConnection("write", DSN(cfg, pg.Write.Username, pg.Write.Password, pg.Write.Host, pg.Write.Port, pg.Write.Name, pg.Write.SSLMode), pg.MaxRetry, pg.RetryWaitTime)
	if err != nil {
		return nil, nil, err
	}

	read, err := CreatePostgresConnection("read", DSN(cfg, pg.Read.Username, pg.Read.Password, pg.Read.Host, pg.Read.Port, pg.Read.Name, pg.Read.SSLMode), pg.MaxRetry, pg.RetryWaitTime)
	if err != nil {
		write.Close()

		return nil, nil, err
	}

	conn := &Connection{Read: read, Write: write}

	return conn, conn.Close, nil
}

func (c *Connection) Close() {
	for name, db := range map[string]*sqlx.DB{"read": c.Read, "write": c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Str("name", name).Msg("Failed closing database connection")
		}
	}
}

// Ping checks that the write pool can reach the server.
func (c *Connection) Ping(ctx context.Context) error {
	if c == nil || c.Write == nil {
		return errConnectionFailed
	}

	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	return nil
}

func getDBName(cfg *config.Config, baseName string) string {
	if cfg.DB.Postgres.Prefix != "" {
		return cfg.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// DSN builds a postgres URL for the given endpoint.
func DSN(cfg *config.Config, username, password, host, port, dbName, sslMode string) string {
	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(username, password),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + getDBName(cfg, dbName),
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}

	return dsn.String()
}

// CreatePostgresConnection connects to descriptor, retrying up to maxRetry times.
func CreatePostgresConnection(name, descriptor string, maxRetry, waitTime int) (*sqlx.DB, error) {
	var lastErr error

	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect(driverName, descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB, nil
		}

		lastErr = err

		log.
			Error().
			Err(err).
			Str("name", name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil, fmt.Errorf("%w (%s): %w", errConnectionFailed, name, lastErr)
}
