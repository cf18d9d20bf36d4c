// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/Sigi3012/Midnight/internal/adapter"
	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/internal/store"
	"github.com/Sigi3012/Midnight/internal/workers"
	"github.com/Sigi3012/Midnight/models"
)

// MapfeedService reconciles the qualified beatmapsets with the local
// snapshot. It implements [workers.Feed].
type MapfeedService struct {
	osu         adapter.OsuAPI
	beatmapsets store.BeatmapsetRepository
	notifier    FeedNotifier
	logger      *logger.Logger
}

func NewMapfeedService(osu adapter.OsuAPI, beatmapsets store.BeatmapsetRepository, notifier FeedNotifier, logger *logger.Logger) *MapfeedService {
	return &MapfeedService{osu: osu, beatmapsets: beatmapsets, notifier: notifier, logger: logger}
}

func (s *MapfeedService) Name() string {
	return string(models.ChannelKindMapfeed)
}

// Cycle runs one reconciliation. The first cycle on an empty snapshot only
// stores the remote ids. Beatmapsets whose record could not be fetched are
// left as they are and picked up again by the next cycle, except removed
// ones that osu! answers with 404: those were deleted and are dropped after
// their subscribers are told.
func (s *MapfeedService) Cycle(ctx context.Context, enter workers.StageFunc) error {
	log := logger.FromContext(ctx)

	enter(workers.StateFetching)
	remote, err := s.osu.SearchQualifiedIDs(ctx)
	if err != nil {
		return fmt.Errorf("fetching qualified beatmapsets: %w", err)
	}
	local, err := s.beatmapsets.ListBeatmapsetIDs(ctx)
	if err != nil {
		return fmt.Errorf("listing tracked beatmapsets: %w", err)
	}

	enter(workers.StateDiffing)
	diff := DiffIDs(remote, local)

	if len(local) == 0 {
		enter(workers.StatePersisting)
		return s.populate(ctx, diff.Added)
	}
	if diff.Empty() {
		log.Debug().Str("func", "*MapfeedService.Cycle").Int("tracked", len(local)).Msg("no qualified list changes")
		return nil
	}

	added, err := s.osu.FetchBeatmapsets(ctx, diff.Added)
	if err != nil {
		return fmt.Errorf("fetching added beatmapsets: %w", err)
	}
	removed, gone, err := s.osu.ResolveBeatmapsets(ctx, diff.Removed)
	if err != nil {
		return fmt.Errorf("fetching removed beatmapsets: %w", err)
	}
	sortBeatmapsets(added)
	sortBeatmapsets(removed)

	notices := make([]models.BeatmapsetNotice, 0, len(added)+len(removed)+len(gone))
	for _, set := range added {
		notices = append(notices, models.BeatmapsetNotice{Beatmapset: set})
	}
	for _, set := range removed {
		subscribers, err := s.beatmapsets.ListSubscribers(ctx, set.ID)
		if err != nil {
			return fmt.Errorf("listing subscribers of %d: %w", set.ID, err)
		}
		notices = append(notices, models.BeatmapsetNotice{Beatmapset: set, Subscribers: subscribers})
	}
	for _, id := range gone {
		subscribers, err := s.beatmapsets.ListSubscribers(ctx, id)
		if err != nil {
			return fmt.Errorf("listing subscribers of %d: %w", id, err)
		}
		notices = append(notices, models.BeatmapsetNotice{
			Beatmapset:  models.Beatmapset{ID: id},
			Subscribers: subscribers,
			Deleted:     true,
		})
	}

	enter(workers.StatePersisting)
	if len(added) > 0 {
		if err = s.beatmapsets.InsertBeatmapsets(ctx, beatmapsetIDs(added)...); err != nil {
			return fmt.Errorf("storing added beatmapsets: %w", err)
		}
	}
	for _, id := range append(beatmapsetIDs(removed), gone...) {
		if err = s.beatmapsets.DeleteBeatmapset(ctx, id); err != nil {
			return fmt.Errorf("deleting beatmapset %d: %w", id, err)
		}
	}

	log.Info().Str("func", "*MapfeedService.Cycle").
		Ints32("added", beatmapsetIDs(added)).
		Ints32("removed", beatmapsetIDs(removed)).
		Ints32("deleted", gone).
		Int("unresolved", len(diff.Added)+len(diff.Removed)-len(added)-len(removed)-len(gone)).
		Msg("qualified list changed")

	if len(notices) == 0 {
		return nil
	}

	enter(workers.StateNotifying)
	if err = s.notifier.NotifyMapfeed(ctx, notices); err != nil {
		return fmt.Errorf("notifying mapfeed: %w", err)
	}

	return nil
}

func (s *MapfeedService) populate(ctx context.Context, ids []int32) error {
	if len(ids) == 0 {
		return nil
	}

	if err := s.beatmapsets.InsertBeatmapsets(ctx, ids...); err != nil {
		return fmt.Errorf("populating tracked beatmapsets: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*MapfeedService.populate").
		Int("count", len(ids)).
		Msg("empty snapshot populated without notifications")
	return nil
}

func beatmapsetIDs(sets []models.Beatmapset) []int32 {
	ids := make([]int32, 0, len(sets))
	for _, set := range sets {
		ids = append(ids, set.ID)
	}
	return ids
}
