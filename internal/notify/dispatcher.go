// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"k8s.io/utils/clock"

	"github.com/Sigi3012/Midnight/internal/cache"
	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/internal/metrics"
	"github.com/Sigi3012/Midnight/models"
)

// Dispatcher delivers feed changes to the channels subscribed to each feed.
// It implements service.FeedNotifier.
type Dispatcher struct {
	sink       Sink
	caches     *cache.Caches
	registry   *Registry
	subscriber Subscriber
	lifetime   time.Duration
	clock      clock.Clock
	metrics    *metrics.Metrics
	logger     *logger.Logger
}

// NewDispatcher creates a Dispatcher whose message controls stay active for
// lifetime.
func NewDispatcher(
	sink Sink,
	caches *cache.Caches,
	registry *Registry,
	subscriber Subscriber,
	lifetime time.Duration,
	clk clock.Clock,
	m *metrics.Metrics,
	log *logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		sink:       sink,
		caches:     caches,
		registry:   registry,
		subscriber: subscriber,
		lifetime:   lifetime,
		clock:      clk,
		metrics:    m,
		logger:     log,
	}
}

// NotifyMapfeed sends one card per notice. Cards of qualified beatmapsets
// get subscription controls.
func (d *Dispatcher) NotifyMapfeed(ctx context.Context, notices []models.BeatmapsetNotice) error {
	messages := make([]models.Message, 0, len(notices))
	for _, notice := range notices {
		if notice.Deleted {
			messages = append(messages, RenderDeletedBeatmapset(notice.Beatmapset.ID, notice.Subscribers))
			continue
		}
		messages = append(messages, RenderBeatmapset(notice.Beatmapset, notice.Subscribers))
	}

	return d.Broadcast(ctx, models.ChannelKindMapfeed, messages, SubscriptionHandler(d.subscriber))
}

// NotifyGroups sends the embeds of one group diff.
func (d *Dispatcher) NotifyGroups(ctx context.Context, diff models.GroupDiff) error {
	return d.Broadcast(ctx, models.ChannelKindGroups, RenderGroupDiff(diff, d.clock.Now()), nil)
}

// Broadcast sends every message to every channel subscribed to kind.
// Messages with buttons get a listener running handler when it is not nil.
// A failed send does not stop the others; all failures are returned
// together. When the subscribed channels cannot be read nothing is sent and
// ErrChannelsUnavailable is returned.
func (d *Dispatcher) Broadcast(ctx context.Context, kind models.ChannelKind, messages []models.Message, handler Handler) error {
	if len(messages) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)
	channels, err := d.caches.For(kind).Channels(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Dispatcher.Broadcast").
			Str("kind", string(kind)).
			Int("messages", len(messages)).
			Msg("subscribed channels unavailable, nothing sent")
		return errors.Join(ErrChannelsUnavailable, err)
	}
	if len(channels) == 0 {
		log.Info().Str("func", "*Dispatcher.Broadcast").Str("kind", string(kind)).Msg("no subscribed channels")
		return nil
	}

	var errs []error
	for _, channelID := range channels {
		for _, msg := range messages {
			messageID, err := d.sink.SendMessage(ctx, channelID, msg)
			d.metrics.NotificationSent(string(kind), err)
			if err != nil {
				log.Err(err).Str("func", "*Dispatcher.Broadcast").
					Str("kind", string(kind)).
					Int64("channel_id", channelID).
					Msg("error sending notification")
				errs = append(errs, fmt.Errorf("channel %d: %w", channelID, err))
				continue
			}

			if handler != nil && len(msg.Buttons) > 0 {
				d.registry.Listen(ctx, channelID, messageID, d.lifetime, handler)
			}
		}
	}

	log.Info().Str("func", "*Dispatcher.Broadcast").
		Str("kind", string(kind)).
		Int("channels", len(channels)).
		Int("messages", len(messages)).
		Int("failed", len(errs)).
		Msg("notifications sent")

	return errors.Join(errs...)
}

// Showcase posts the card of set to channelID with a delete button only
// ownerID may use.
func (d *Dispatcher) Showcase(ctx context.Context, channelID, ownerID int64, set models.Beatmapset) error {
	messageID, err := d.sink.SendMessage(ctx, channelID, RenderShowcase(set, ownerID))
	if err != nil {
		return fmt.Errorf("posting beatmapset %d: %w", set.ID, err)
	}

	d.registry.Listen(ctx, channelID, messageID, d.lifetime, OwnerHandler(d.sink, ownerID))
	return nil
}
