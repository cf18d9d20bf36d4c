package service

import (
	"github.com/Sigi3012/Midnight/internal/adapter"
	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/internal/store"
)

type Services struct {
	Mapfeed       *MapfeedService
	Groups        *GroupService
	Subscriptions *SubscriptionService
}

// NotifierFactory builds the notifier of the feeds. It receives the
// subscription service the buttons of posted cards act on.
type NotifierFactory func(subscriptions *SubscriptionService) FeedNotifier

func NewServices(
	storages *store.Storages,
	osu adapter.OsuAPI,
	channels ChannelRefresher,
	newNotifier NotifierFactory,
	logger *logger.Logger,
) *Services {
	subscriptions := NewSubscriptionService(osu, storages.Beatmapsets, storages.Channels, channels, logger)
	notifier := newNotifier(subscriptions)

	return &Services{
		Mapfeed:       NewMapfeedService(osu, storages.Beatmapsets, notifier, logger),
		Groups:        NewGroupService(osu, storages.Groups, notifier, logger),
		Subscriptions: subscriptions,
	}
}
