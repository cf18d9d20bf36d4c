package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/models"
)

type channelRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewChannelRepository(db *DB, logger *logger.Logger) ChannelRepository {
	logger.Debug().Msg("creating channel repository")
	return &channelRepository{
		db:     db,
		logger: logger,
	}
}

func (r *channelRepository) SubscribeChannel(ctx context.Context, channelID int64, kind models.ChannelKind) (models.SubscriptionStatus, error) {
	log := logger.FromContext(ctx)

	var affected int64
	err := r.db.withConn(ctx, func(conn *sql.Conn) error {
		var err error
		affected, err = exec(ctx, conn, r.db.builder.Insert(tableChannels).
			Columns("channel_id", "kind").
			Values(channelID, string(kind)).
			Suffix(onConflictDoNothing))
		return err
	})
	if err != nil {
		logQueryError(log, "*channelRepository.SubscribeChannel", err, "error subscribing channel")
		return 0, err
	}

	if affected == 0 {
		return models.SubscriptionAlreadyExists, nil
	}
	return models.SubscriptionAdded, nil
}

func (r *channelRepository) UnsubscribeChannel(ctx context.Context, channelID int64, kind models.ChannelKind) (models.SubscriptionStatus, error) {
	log := logger.FromContext(ctx)

	var affected int64
	err := r.db.withConn(ctx, func(conn *sql.Conn) error {
		var err error
		affected, err = exec(ctx, conn, r.db.builder.Delete(tableChannels).
			Where(sq.Eq{"channel_id": channelID, "kind": string(kind)}))
		return err
	})
	if err != nil {
		logQueryError(log, "*channelRepository.UnsubscribeChannel", err, "error unsubscribing channel")
		return 0, err
	}

	if affected == 0 {
		return models.SubscriptionDidNotExist, nil
	}
	return models.SubscriptionRemoved, nil
}

func (r *channelRepository) ListChannels(ctx context.Context, kind models.ChannelKind) ([]int64, error) {
	log := logger.FromContext(ctx)

	ids, err := queryInt64s(ctx, r.db, r.db.builder.Select("channel_id").
		From(tableChannels).
		Where(sq.Eq{"kind": string(kind)}).
		OrderBy("channel_id"))
	if err != nil {
		logQueryError(log, "*channelRepository.ListChannels", err, "error listing channels")
		return nil, err
	}

	return ids, nil
}
