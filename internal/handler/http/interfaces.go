package http

import (
	"context"

	"github.com/Sigi3012/Midnight/models"
)

//go:generate mockgen -source=interfaces.go -destination=../../mock/handler_mock.go -package=mock

// SubscriptionManager serves the /mapfeed and /mod commands.
type SubscriptionManager interface {
	Subscribe(ctx context.Context, userID int64, link string) (models.SubscriptionStatus, error)
	Unsubscribe(ctx context.Context, userID int64, link string) (models.SubscriptionStatus, error)
	Subscriptions(ctx context.Context, userID int64) ([]models.Beatmapset, error)
	Beatmapset(ctx context.Context, link string) (models.Beatmapset, error)
	SubscribeChannel(ctx context.Context, channelID int64, kind string) (models.SubscriptionStatus, error)
	UnsubscribeChannel(ctx context.Context, channelID int64, kind string) (models.SubscriptionStatus, error)
}

// ComponentRouter hands a button press to whoever listens to its message.
type ComponentRouter interface {
	Dispatch(ctx context.Context, in models.Interaction) error
}

// Showcaser posts a beatmapset card its owner can delete.
type Showcaser interface {
	Showcase(ctx context.Context, channelID, ownerID int64, set models.Beatmapset) error
}

// FollowupSender posts a message to an interaction that was already
// acknowledged.
type FollowupSender interface {
	CreateFollowup(ctx context.Context, interactionToken string, msg models.Message, ephemeral bool) error
}

type HealthChecker interface {
	PingContext(ctx context.Context) error
}
