package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/models"
)

type beatmapsetRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewBeatmapsetRepository(db *DB, logger *logger.Logger) BeatmapsetRepository {
	logger.Debug().Msg("creating beatmapset repository")
	return &beatmapsetRepository{
		db:     db,
		logger: logger,
	}
}

func (r *beatmapsetRepository) InsertBeatmapsets(ctx context.Context, ids ...int32) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	q := r.db.builder.Insert(tableBeatmapsets).Columns("id")
	for _, id := range ids {
		q = q.Values(id)
	}
	q = q.Suffix(onConflictDoNothing)

	err := r.db.withConn(ctx, func(conn *sql.Conn) error {
		_, err := exec(ctx, conn, q)
		return err
	})
	if err != nil {
		logQueryError(log, "*beatmapsetRepository.InsertBeatmapsets", err, "error inserting beatmapsets")
		return err
	}

	return nil
}

func (r *beatmapsetRepository) DeleteBeatmapset(ctx context.Context, id int32) error {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := exec(ctx, tx, r.db.builder.Delete(tableSubscriptions).Where(sq.Eq{"beatmapset_id": id})); err != nil {
			return err
		}
		_, err := exec(ctx, tx, r.db.builder.Delete(tableBeatmapsets).Where(sq.Eq{"id": id}))
		return err
	})
	if err != nil {
		logQueryError(log, "*beatmapsetRepository.DeleteBeatmapset", err, "error deleting beatmapset")
		return err
	}

	return nil
}

func (r *beatmapsetRepository) ListBeatmapsetIDs(ctx context.Context) ([]int32, error) {
	log := logger.FromContext(ctx)

	ids, err := queryInt32s(ctx, r.db, r.db.builder.Select("id").From(tableBeatmapsets).OrderBy("id"))
	if err != nil {
		logQueryError(log, "*beatmapsetRepository.ListBeatmapsetIDs", err, "error listing beatmapsets")
		return nil, err
	}

	return ids, nil
}

// AddSubscriber is idempotent: an existing subscription is reported as
// SubscriptionAlreadyExists.
func (r *beatmapsetRepository) AddSubscriber(ctx context.Context, beatmapsetID int32, userID int64) (models.SubscriptionStatus, error) {
	log := logger.FromContext(ctx)

	var status models.SubscriptionStatus
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.db.builder.Select("1").From(tableBeatmapsets).Where(sq.Eq{"id": beatmapsetID}).ToSql()
		if err != nil {
			return errors.Join(ErrBuildingSQLQuery, err)
		}

		var one int
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrBeatmapsetNotTracked
			}
			return errors.Join(ErrExecutingQuery, err)
		}

		affected, err := exec(ctx, tx, r.db.builder.Insert(tableSubscriptions).
			Columns("user_id", "beatmapset_id").
			Values(userID, beatmapsetID).
			Suffix(onConflictDoNothing))
		if err != nil {
			return err
		}

		status = models.SubscriptionAlreadyExists
		if affected > 0 {
			status = models.SubscriptionAdded
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrBeatmapsetNotTracked) {
			logQueryError(log, "*beatmapsetRepository.AddSubscriber", err, "error adding subscriber")
		}
		return 0, err
	}

	return status, nil
}

// RemoveSubscriber is idempotent: a missing subscription is reported as
// SubscriptionDidNotExist.
func (r *beatmapsetRepository) RemoveSubscriber(ctx context.Context, beatmapsetID int32, userID int64) (models.SubscriptionStatus, error) {
	log := logger.FromContext(ctx)

	var affected int64
	err := r.db.withConn(ctx, func(conn *sql.Conn) error {
		var err error
		affected, err = exec(ctx, conn, r.db.builder.Delete(tableSubscriptions).
			Where(sq.Eq{"user_id": userID, "beatmapset_id": beatmapsetID}))
		return err
	})
	if err != nil {
		logQueryError(log, "*beatmapsetRepository.RemoveSubscriber", err, "error removing subscriber")
		return 0, err
	}

	if affected == 0 {
		return models.SubscriptionDidNotExist, nil
	}
	return models.SubscriptionRemoved, nil
}

func (r *beatmapsetRepository) ListSubscribers(ctx context.Context, beatmapsetID int32) ([]int64, error) {
	log := logger.FromContext(ctx)

	ids, err := queryInt64s(ctx, r.db, r.db.builder.Select("user_id").
		From(tableSubscriptions).
		Where(sq.Eq{"beatmapset_id": beatmapsetID}).
		OrderBy("user_id"))
	if err != nil {
		logQueryError(log, "*beatmapsetRepository.ListSubscribers", err, "error listing subscribers")
		return nil, err
	}

	return ids, nil
}

func (r *beatmapsetRepository) ListSubscriptions(ctx context.Context, userID int64) ([]int32, error) {
	log := logger.FromContext(ctx)

	ids, err := queryInt32s(ctx, r.db, r.db.builder.Select("beatmapset_id").
		From(tableSubscriptions).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("beatmapset_id"))
	if err != nil {
		logQueryError(log, "*beatmapsetRepository.ListSubscriptions", err, "error listing subscriptions")
		return nil, err
	}

	return ids, nil
}

func queryInt32s(ctx context.Context, db *DB, b sq.SelectBuilder) ([]int32, error) {
	var ids []int32
	err := queryRows(ctx, db, b, func(rows *sql.Rows) error {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return err
		}
		ids = append(ids, id)
		return nil
	})

	return ids, err
}

func queryInt64s(ctx context.Context, db *DB, b sq.SelectBuilder) ([]int64, error) {
	var ids []int64
	err := queryRows(ctx, db, b, func(rows *sql.Rows) error {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return err
		}
		ids = append(ids, id)
		return nil
	})

	return ids, err
}

// queryRows runs a select on its own connection and calls scan per row.
func queryRows(ctx context.Context, db *DB, b sq.SelectBuilder, scan func(rows *sql.Rows) error) error {
	query, args, err := b.ToSql()
	if err != nil {
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	return db.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return errors.Join(ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			if err = scan(rows); err != nil {
				return errors.Join(ErrScanningRows, err)
			}
		}

		if err = rows.Err(); err != nil {
			return errors.Join(ErrScanningRows, err)
		}
		return nil
	})
}
