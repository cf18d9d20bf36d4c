package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sigi3012/Midnight/internal/app"
	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/internal/store"
	"github.com/Sigi3012/Midnight/models"
)

// SubscriptionHandler handles the subscribe and unsubscribe buttons of
// mapfeed cards. The reply is only visible to the user who pressed.
func SubscriptionHandler(subscriber Subscriber) Handler {
	return func(ctx context.Context, in models.Interaction) error {
		id, action, err := ParseControlID(in.CustomID)
		if err != nil {
			return errors.Join(err, in.Responder.Reply(ctx, models.Message{Content: app.MsgSomethingWentWrong}, true))
		}

		var status models.SubscriptionStatus
		switch action {
		case ActionSubscribe:
			status, err = subscriber.SubscribeTo(ctx, in.UserID, int32(id))
		case ActionUnsubscribe:
			status, err = subscriber.UnsubscribeFrom(ctx, in.UserID, int32(id))
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownControl, in.CustomID)
		}

		content := SubscriptionReply(status)
		if err != nil {
			content = app.MsgSomethingWentWrong
			if errors.Is(err, store.ErrBeatmapsetNotTracked) {
				content = app.MsgBeatmapsetNotQualified
			} else {
				logger.FromContext(ctx).Err(err).Str("func", "SubscriptionHandler").
					Int64("user_id", in.UserID).
					Str("custom_id", in.CustomID).
					Msg("error changing subscription")
			}
		}

		return in.Responder.Reply(ctx, models.Message{Content: content}, true)
	}
}

// SubscriptionReply returns the text confirming a subscription change.
func SubscriptionReply(status models.SubscriptionStatus) string {
	switch status {
	case models.SubscriptionAdded:
		return app.MsgSubscribed
	case models.SubscriptionAlreadyExists:
		return app.MsgAlreadySubscribed
	case models.SubscriptionRemoved:
		return app.MsgUnsubscribed
	case models.SubscriptionDidNotExist:
		return app.MsgNotSubscribed
	default:
		return app.MsgSomethingWentWrong
	}
}

// OwnerHandler lets ownerID delete the message. Anyone else is told they
// do not own it. A successful delete ends the listener.
func OwnerHandler(sink Sink, ownerID int64) Handler {
	return func(ctx context.Context, in models.Interaction) error {
		if in.UserID != ownerID {
			logger.FromContext(ctx).Warn().Str("func", "OwnerHandler").
				Int64("user_id", in.UserID).
				Int64("message_id", in.MessageID).
				Msg("control pressed by someone other than the owner")
			return in.Responder.Reply(ctx, models.Message{Content: app.MsgNotMessageOwner}, true)
		}

		if err := sink.DeleteMessage(ctx, in.ChannelID, in.MessageID); err != nil {
			return errors.Join(
				fmt.Errorf("deleting message %d: %w", in.MessageID, err),
				in.Responder.Reply(ctx, models.Message{Content: app.MsgSomethingWentWrong}, true),
			)
		}

		if err := in.Responder.Acknowledge(ctx); err != nil {
			return errors.Join(ErrStopListening, err)
		}
		return ErrStopListening
	}
}
