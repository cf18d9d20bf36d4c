// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Sigi3012/Midnight/internal/config"
	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/migrations"
)

const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite3"

	defaultAcquireAttempts = 5
	defaultAcquireStep     = 500 * time.Millisecond
)

// DB is the shared connection pool. Every repository operation acquires a
// dedicated connection through withConn and releases it on return.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	acquireAttempts    uint
	acquireStep        time.Duration
	logger             *logger.Logger
}

// NewDB opens the pool for the configured driver and pings it.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.Driver == driverSQLite {
		if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
			log.Err(err).Str("func", "NewDB").Msg("error creating database file")
			return nil, err
		}
	}

	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	db := newDB(conn, cfg.Driver, log)
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = db.withConn(ctx, func(c *sql.Conn) error { return c.PingContext(ctx) }); err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewDB").Str("driver", cfg.Driver).Msg("connected to database successfully")

	return db, nil
}

func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:              conn,
		driver:          driver,
		acquireAttempts: defaultAcquireAttempts,
		acquireStep:     defaultAcquireStep,
		logger:          log,
	}

	switch driver {
	case driverSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// withConn runs fn on a connection acquired with bounded linear retry.
// The connection is held only for the duration of fn.
func (db *DB) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := db.acquire(ctx)
	if err != nil {
		return errors.Join(ErrAcquiringConnection, err)
	}
	defer conn.Close()

	return fn(conn)
}

// withTx runs fn inside a transaction, committing when fn succeeds.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return db.withConn(ctx, func(conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return errors.Join(ErrBeginningTransaction, err)
		}

		if err = fn(tx); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				db.logger.Err(rbErr).Str("func", "*DB.withTx").Msg("rollback failed")
			}
			return err
		}

		if err = tx.Commit(); err != nil {
			return errors.Join(ErrCommitingTransaction, err)
		}

		return nil
	})
}

// execer is satisfied by *sql.Conn and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// exec builds and runs a statement and returns the number of affected rows.
func exec(ctx context.Context, e execer, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, errors.Join(ErrBuildingSQLQuery, err)
	}

	res, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Join(ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Join(ErrExecutingQuery, err)
	}

	return affected, nil
}
