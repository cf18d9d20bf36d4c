// Package notify renders feed changes into Discord messages, delivers them
// to the subscribed channels and keeps the interactive controls of sent
// messages alive until they expire.
package notify

import (
	"context"

	"github.com/Sigi3012/Midnight/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notify_mock.go -package=mock

// Sink delivers messages to chat channels.
type Sink interface {
	// SendMessage posts msg and returns the id of the created message.
	SendMessage(ctx context.Context, channelID int64, msg models.Message) (int64, error)
	StripComponents(ctx context.Context, channelID, messageID int64) error
	DeleteMessage(ctx context.Context, channelID, messageID int64) error
}

// Subscriber changes the beatmapset subscriptions of a user.
type Subscriber interface {
	SubscribeTo(ctx context.Context, userID int64, beatmapsetID int32) (models.SubscriptionStatus, error)
	UnsubscribeFrom(ctx context.Context, userID int64, beatmapsetID int32) (models.SubscriptionStatus, error)
}

// Handler reacts to one interaction with a message's controls. Handlers of
// the same message never run concurrently.
type Handler func(ctx context.Context, in models.Interaction) error
