package service

import (
	"context"

	"github.com/Sigi3012/Midnight/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// FeedNotifier renders and delivers the outcome of a cycle to the channels
// subscribed to the feed.
type FeedNotifier interface {
	NotifyMapfeed(ctx context.Context, notices []models.BeatmapsetNotice) error
	NotifyGroups(ctx context.Context, diff models.GroupDiff) error
}

// ChannelRefresher reloads the cached channel set of a feed after its
// subscriptions changed.
type ChannelRefresher interface {
	Refresh(ctx context.Context, kind models.ChannelKind) error
}
