package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sigi3012/Midnight/internal/adapter"
	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/internal/store"
	"github.com/Sigi3012/Midnight/internal/workers"
	"github.com/Sigi3012/Midnight/models"
)

// GroupService reconciles the members of the tracked groups with the local
// snapshot. It implements [workers.Feed].
type GroupService struct {
	osu      adapter.OsuAPI
	groups   store.GroupRepository
	notifier FeedNotifier
	tracked  []models.Group
	logger   *logger.Logger
}

func NewGroupService(osu adapter.OsuAPI, groups store.GroupRepository, notifier FeedNotifier, logger *logger.Logger) *GroupService {
	return &GroupService{
		osu:      osu,
		groups:   groups,
		notifier: notifier,
		tracked:  models.TrackedGroups(),
		logger:   logger,
	}
}

func (s *GroupService) Name() string {
	return string(models.ChannelKindGroups)
}

// Cycle syncs every tracked group in turn. A failing group does not stop
// the others; all failures are returned together.
func (s *GroupService) Cycle(ctx context.Context, enter workers.StageFunc) error {
	var errs []error
	for _, group := range s.tracked {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := s.syncGroup(ctx, group, enter); err != nil {
			errs = append(errs, fmt.Errorf("group %s: %w", group, err))
		}
	}

	return errors.Join(errs...)
}

func (s *GroupService) syncGroup(ctx context.Context, group models.Group, enter workers.StageFunc) error {
	log := logger.FromContext(ctx)

	enter(workers.StateFetching)
	remote, err := s.osu.FetchGroupMembers(ctx, group)
	if err != nil {
		return fmt.Errorf("fetching members: %w", err)
	}
	local, err := s.groups.ListGroupMembers(ctx, group)
	if err != nil {
		return fmt.Errorf("listing stored members: %w", err)
	}

	enter(workers.StateDiffing)
	profiles := ProfileUpdates(remote, local)
	diff := DiffGroupMembers(group, remote, local)
	if diff.Empty() && len(profiles) == 0 {
		return nil
	}

	enter(workers.StatePersisting)
	if err = s.persist(ctx, group, diff, profiles); err != nil {
		return err
	}

	if len(local) == 0 {
		log.Info().Str("func", "*GroupService.syncGroup").
			Str("group", string(group)).
			Int("count", len(diff.Added)).
			Msg("empty group snapshot populated without notifications")
		return nil
	}

	log.Info().Str("func", "*GroupService.syncGroup").
		Str("group", string(group)).
		Int("added", len(diff.Added)).
		Int("removed", len(diff.Removed)).
		Int("updated", len(diff.Updated)).
		Int("profiles", len(profiles)).
		Msg("group changed")

	if diff.Empty() {
		return nil
	}

	enter(workers.StateNotifying)
	if err = s.notifier.NotifyGroups(ctx, diff); err != nil {
		return fmt.Errorf("notifying: %w", err)
	}

	return nil
}

func (s *GroupService) persist(ctx context.Context, group models.Group, diff models.GroupDiff, profiles []models.ProfileUpdate) error {
	for _, update := range profiles {
		if err := s.groups.UpdateProfile(ctx, update); err != nil {
			return fmt.Errorf("updating profile of %d: %w", update.UserID, err)
		}
	}
	for _, member := range diff.Added {
		if err := s.groups.InsertGroupMember(ctx, group, member); err != nil {
			return fmt.Errorf("inserting member %d: %w", member.ID, err)
		}
	}
	for _, member := range diff.Removed {
		if err := s.groups.DeleteGroupMember(ctx, group, member.ID); err != nil {
			return fmt.Errorf("deleting member %d: %w", member.ID, err)
		}
	}
	for _, update := range diff.Updated {
		if err := s.groups.UpdateGroupMemberGamemodes(ctx, update.Member.ID, update.Change); err != nil {
			return fmt.Errorf("updating rulesets of %d: %w", update.Member.ID, err)
		}
	}

	return nil
}
