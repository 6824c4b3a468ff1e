package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

type DB struct {
	Host     string `yaml:"host" envconfig:"DB_HOST" default:"localhost"`
	Port     int    `yaml:"port" envconfig:"DB_PORT" default:"5432"`
	Username string `yaml:"user" envconfig:"DB_USER" default:"postgres"`
	Password string `yaml:"password" envconfig:"DB_PASSWORD"`
	NameDB   string `yaml:"dbname" envconfig:"DB_NAME" default:"booking"`
	SSLMode  string `yaml:"sslmode" envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns int32  `yaml:"maxConns" envconfig:"DB_MAX_CONNS" default:"10"`
}

func (db *DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		db.Username, db.Password, net.JoinHostPort(db.Host, strconv.Itoa(db.Port)), db.NameDB, db.SSLMode)
}

// NewPostgresDB opens a pool and applies the goose migrations found at the root of migrations.
func NewPostgresDB(ctx context.Context, cfg *DB, migrations fs.FS) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "parse dsn")
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connCtx, poolCfg)
	if err != nil {
		return nil, errors.Wrap(err, "pgxpool.NewWithConfig")
	}
	if err = pool.Ping(connCtx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping")
	}
	if migrations != nil {
		if err = migrate(pool, migrations); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return pool, nil
}

// migrationDB opens a database/sql handle with the pool's connection settings for goose.
func migrationDB(pool *pgxpool.Pool) *sql.DB {
	return stdlib.OpenDB(*pool.Config().ConnConfig)
}

func migrate(pool *pgxpool.Pool, migrations fs.FS) error {
	db := migrationDB(pool)
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "goose.SetDialect")
	}
	if err := goose.Up(db, "."); err != nil {
		return errors.Wrap(err, "goose.Up")
	}
	return nil
}
