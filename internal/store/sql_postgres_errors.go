// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result of [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// NonRetryable errors are surfaced immediately.
	NonRetryable ErrorClassification = iota

	// Retryable errors are transient: the pool is exhausted, the server
	// is restarting or the network dropped.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps a *pgconn.PgError and delegates to [ClassifyPgError].
// Broken connections and network errors are retryable as well.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return classifyTransport(err)
}

// ClassifyPgError maps a SQLSTATE code to a classification.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if pgerrcode.IsConnectionException(pgErr.Code) ||
		pgerrcode.IsInsufficientResources(pgErr.Code) ||
		pgerrcode.IsTransactionRollback(pgErr.Code) {
		return Retryable
	}

	switch pgErr.Code {
	case pgerrcode.CannotConnectNow, // 57P03
		pgerrcode.AdminShutdown,       // 57P01
		pgerrcode.CrashShutdown:       // 57P02
		return Retryable
	}

	return NonRetryable
}

func classifyTransport(err error) ErrorClassification {
	if errors.Is(err, driver.ErrBadConn) {
		return Retryable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return Retryable
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return Retryable
	}

	return NonRetryable
}
