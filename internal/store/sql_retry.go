package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// linearBackOff waits step, 2*step, 3*step... between attempts.
type linearBackOff struct {
	step    time.Duration
	attempt int
}

func (b *linearBackOff) NextBackOff() time.Duration {
	b.attempt++
	return time.Duration(b.attempt) * b.step
}

func (b *linearBackOff) Reset() {
	b.attempt = 0
}

// acquire takes a connection from the pool. Errors classified as retryable
// are retried with linear backoff up to acquireAttempts times.
func (db *DB) acquire(ctx context.Context) (*sql.Conn, error) {
	return backoff.Retry(ctx, func() (*sql.Conn, error) {
		conn, err := db.DB.Conn(ctx)
		if err == nil {
			return conn, nil
		}

		if db.errorClassificator.Classify(err) != Retryable {
			return nil, backoff.Permanent(err)
		}

		return nil, err
	},
		backoff.WithBackOff(&linearBackOff{step: db.acquireStep}),
		backoff.WithMaxTries(db.acquireAttempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			db.logger.Warn().Err(err).
				Str("func", "*DB.acquire").
				Dur("retry_in", next).
				Msg("database connection unavailable, retrying")
		}),
	)
}
