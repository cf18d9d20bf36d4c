package service

import (
	"cmp"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/Sigi3012/Midnight/internal/adapter"
	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/internal/store"
	"github.com/Sigi3012/Midnight/models"
)

const beatmapLinkMarker = "osu.ppy.sh/beatmapsets"

var beatmapLinkPattern = regexp.MustCompile(`https://osu\.ppy\.sh/beatmapsets/(\d+)`)

// ParseBeatmapLink returns the beatmapset id of the first beatmapset link in
// s. It returns [ErrNoBeatmapLink] when s has no such link and
// [ErrMalformedBeatmapLink] when it has one without a usable id.
func ParseBeatmapLink(s string) (int32, error) {
	match := beatmapLinkPattern.FindStringSubmatch(s)
	if match == nil {
		if strings.Contains(s, beatmapLinkMarker) {
			return 0, fmt.Errorf("%w: %q", ErrMalformedBeatmapLink, strings.TrimSpace(s))
		}
		return 0, ErrNoBeatmapLink
	}

	id, err := strconv.ParseInt(match[1], 10, 32)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedBeatmapLink, match[0])
	}

	return int32(id), nil
}

// SubscriptionService backs the user and channel subscription commands.
type SubscriptionService struct {
	osu         adapter.OsuAPI
	beatmapsets store.BeatmapsetRepository
	channels    store.ChannelRepository
	cache       ChannelRefresher
	logger      *logger.Logger
}

func NewSubscriptionService(
	osu adapter.OsuAPI,
	beatmapsets store.BeatmapsetRepository,
	channels store.ChannelRepository,
	cache ChannelRefresher,
	logger *logger.Logger,
) *SubscriptionService {
	return &SubscriptionService{
		osu:         osu,
		beatmapsets: beatmapsets,
		channels:    channels,
		cache:       cache,
		logger:      logger,
	}
}

// Subscribe adds userID to the subscribers of the linked beatmapset. It
// fails with [store.ErrBeatmapsetNotTracked] for a beatmapset that is not
// qualified.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID int64, link string) (models.SubscriptionStatus, error) {
	id, err := ParseBeatmapLink(link)
	if err != nil {
		return 0, err
	}

	return s.SubscribeTo(ctx, userID, id)
}

// SubscribeTo is Subscribe for a known beatmapset id.
func (s *SubscriptionService) SubscribeTo(ctx context.Context, userID int64, beatmapsetID int32) (models.SubscriptionStatus, error) {
	status, err := s.beatmapsets.AddSubscriber(ctx, beatmapsetID, userID)
	if err != nil {
		return 0, fmt.Errorf("subscribing %d to %d: %w", userID, beatmapsetID, err)
	}

	return status, nil
}

func (s *SubscriptionService) Unsubscribe(ctx context.Context, userID int64, link string) (models.SubscriptionStatus, error) {
	id, err := ParseBeatmapLink(link)
	if err != nil {
		return 0, err
	}

	return s.UnsubscribeFrom(ctx, userID, id)
}

func (s *SubscriptionService) UnsubscribeFrom(ctx context.Context, userID int64, beatmapsetID int32) (models.SubscriptionStatus, error) {
	status, err := s.beatmapsets.RemoveSubscriber(ctx, beatmapsetID, userID)
	if err != nil {
		return 0, fmt.Errorf("unsubscribing %d from %d: %w", userID, beatmapsetID, err)
	}

	return status, nil
}

// Subscriptions returns the beatmapsets userID is subscribed to, the one
// closest to being ranked first. Beatmapsets that could not be fetched are
// left out.
func (s *SubscriptionService) Subscriptions(ctx context.Context, userID int64) ([]models.Beatmapset, error) {
	ids, err := s.beatmapsets.ListSubscriptions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions of %d: %w", userID, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	sets, err := s.osu.FetchBeatmapsets(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching subscribed beatmapsets: %w", err)
	}
	slices.SortFunc(sets, byRankedDate)

	return sets, nil
}

// Beatmapset fetches the linked beatmapset.
func (s *SubscriptionService) Beatmapset(ctx context.Context, link string) (models.Beatmapset, error) {
	id, err := ParseBeatmapLink(link)
	if err != nil {
		return models.Beatmapset{}, err
	}

	return s.osu.FetchBeatmapset(ctx, id)
}

// SubscribeChannel makes channelID receive the feed kind.
func (s *SubscriptionService) SubscribeChannel(ctx context.Context, channelID int64, kind string) (models.SubscriptionStatus, error) {
	feed, err := models.ParseChannelKind(kind)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidChannelKind, err)
	}

	status, err := s.channels.SubscribeChannel(ctx, channelID, feed)
	if err != nil {
		return 0, fmt.Errorf("subscribing channel %d to %s: %w", channelID, feed, err)
	}
	s.refresh(ctx, feed)

	return status, nil
}

// UnsubscribeChannel stops the feed kind for channelID.
func (s *SubscriptionService) UnsubscribeChannel(ctx context.Context, channelID int64, kind string) (models.SubscriptionStatus, error) {
	feed, err := models.ParseChannelKind(kind)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidChannelKind, err)
	}

	status, err := s.channels.UnsubscribeChannel(ctx, channelID, feed)
	if err != nil {
		return 0, fmt.Errorf("unsubscribing channel %d from %s: %w", channelID, feed, err)
	}
	s.refresh(ctx, feed)

	return status, nil
}

// refresh only logs a failure; the cache reloads on its next read.
func (s *SubscriptionService) refresh(ctx context.Context, kind models.ChannelKind) {
	if err := s.cache.Refresh(ctx, kind); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*SubscriptionService.refresh").
			Str("kind", string(kind)).
			Msg("error refreshing channel cache")
	}
}

// byRankedDate orders by ranked date with undated beatmapsets last.
func byRankedDate(a, b models.Beatmapset) int {
	switch {
	case a.RankedDate == nil && b.RankedDate == nil:
		return cmp.Compare(a.ID, b.ID)
	case a.RankedDate == nil:
		return 1
	case b.RankedDate == nil:
		return -1
	}

	if c := a.RankedDate.Compare(*b.RankedDate); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func sortBeatmapsets(sets []models.Beatmapset) {
	slices.SortFunc(sets, func(a, b models.Beatmapset) int { return cmp.Compare(a.ID, b.ID) })
}
