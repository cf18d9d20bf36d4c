package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/internal/mock"
	"github.com/Sigi3012/Midnight/internal/workers"
	"github.com/Sigi3012/Midnight/models"
)

func newGroupService(t *testing.T, tracked ...models.Group) (*GroupService, *mock.MockOsuAPI, *mock.MockGroupRepository, *mock.MockFeedNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)

	osu := mock.NewMockOsuAPI(ctrl)
	groups := mock.NewMockGroupRepository(ctrl)
	notifier := mock.NewMockFeedNotifier(ctrl)

	s := NewGroupService(osu, groups, notifier, logger.Nop())
	s.tracked = tracked
	return s, osu, groups, notifier
}

func noStages(workers.State) {}

func TestGroupService_TracksDefaultGroups(t *testing.T) {
	s := NewGroupService(nil, nil, nil, logger.Nop())

	assert.Equal(t, "groups", s.Name())
	assert.Equal(t, models.TrackedGroups(), s.tracked)
}

func TestGroupService_Cycle_NotifiesChanges(t *testing.T) {
	bn := models.GroupBeatmapNominator
	s, osu, groups, notifier := newGroupService(t, bn)

	local := []models.GroupMember{
		member(1, "a", in(bn, models.GamemodeOsu, models.GamemodeTaiko)),
		member(2, "b", in(bn, models.GamemodeMania)),
	}
	remote := []models.GroupMember{
		member(1, "a", in(bn, models.GamemodeOsu)),
		member(3, "c", in(bn, models.GamemodeFruits)),
	}
	change := models.GamemodeChange{Group: bn, Removed: []models.Gamemode{models.GamemodeTaiko}}

	osu.EXPECT().FetchGroupMembers(gomock.Any(), bn).Return(remote, nil)
	groups.EXPECT().ListGroupMembers(gomock.Any(), bn).Return(local, nil)

	gomock.InOrder(
		groups.EXPECT().InsertGroupMember(gomock.Any(), bn, remote[1]).Return(nil),
		groups.EXPECT().DeleteGroupMember(gomock.Any(), bn, int32(2)).Return(nil),
		groups.EXPECT().UpdateGroupMemberGamemodes(gomock.Any(), int32(1), change).Return(nil),
		notifier.EXPECT().NotifyGroups(gomock.Any(), models.GroupDiff{
			Group:   bn,
			Added:   []models.GroupMember{remote[1]},
			Removed: []models.GroupMember{local[1]},
			Updated: []models.MemberUpdate{{Member: remote[0], Change: change}},
		}).Return(nil),
	)

	var stages []workers.State
	require.NoError(t, s.Cycle(context.Background(), func(st workers.State) { stages = append(stages, st) }))
	assert.Equal(t, []workers.State{
		workers.StateFetching,
		workers.StateDiffing,
		workers.StatePersisting,
		workers.StateNotifying,
	}, stages)
}

func TestGroupService_Cycle_PopulatesEmptyGroupWithoutNotifying(t *testing.T) {
	nat := models.GroupNominationAssessmentTeam
	s, osu, groups, _ := newGroupService(t, nat)

	remote := []models.GroupMember{member(4, "d", in(nat, models.GamemodeOsu)), member(5, "e", in(nat))}

	osu.EXPECT().FetchGroupMembers(gomock.Any(), nat).Return(remote, nil)
	groups.EXPECT().ListGroupMembers(gomock.Any(), nat).Return(nil, nil)
	groups.EXPECT().InsertGroupMember(gomock.Any(), nat, remote[0]).Return(nil)
	groups.EXPECT().InsertGroupMember(gomock.Any(), nat, remote[1]).Return(nil)

	require.NoError(t, s.Cycle(context.Background(), noStages))
}

func TestGroupService_Cycle_ProfileChangesAreStoredSilently(t *testing.T) {
	gmt := models.GroupGlobalModerationTeam
	s, osu, groups, _ := newGroupService(t, gmt)

	renamed := "renamed"
	osu.EXPECT().FetchGroupMembers(gomock.Any(), gmt).Return([]models.GroupMember{member(1, renamed, in(gmt))}, nil)
	groups.EXPECT().ListGroupMembers(gomock.Any(), gmt).Return([]models.GroupMember{
		{ID: 1, Username: "old", AvatarURL: renamed + ".png", Groups: []models.MemberOf{in(gmt)}},
	}, nil)
	groups.EXPECT().UpdateProfile(gomock.Any(), models.ProfileUpdate{UserID: 1, Username: &renamed}).Return(nil)

	require.NoError(t, s.Cycle(context.Background(), noStages))
}

func TestGroupService_Cycle_Unchanged(t *testing.T) {
	dev := models.GroupDeveloper
	s, osu, groups, _ := newGroupService(t, dev)

	members := []models.GroupMember{member(1, "a", in(dev))}
	osu.EXPECT().FetchGroupMembers(gomock.Any(), dev).Return(members, nil)
	groups.EXPECT().ListGroupMembers(gomock.Any(), dev).Return(members, nil)

	require.NoError(t, s.Cycle(context.Background(), noStages))
}

func TestGroupService_Cycle_FailingGroupDoesNotStopOthers(t *testing.T) {
	bn, dev := models.GroupBeatmapNominator, models.GroupDeveloper
	s, osu, groups, _ := newGroupService(t, bn, dev)

	osu.EXPECT().FetchGroupMembers(gomock.Any(), bn).Return(nil, errors.New("page changed"))
	osu.EXPECT().FetchGroupMembers(gomock.Any(), dev).Return(nil, nil)
	groups.EXPECT().ListGroupMembers(gomock.Any(), dev).Return(nil, nil)

	err := s.Cycle(context.Background(), noStages)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "group bng")
	assert.NotContains(t, err.Error(), "group dev")
}

func TestGroupService_Cycle_PersistFailureSkipsNotification(t *testing.T) {
	bn := models.GroupBeatmapNominator
	s, osu, groups, _ := newGroupService(t, bn)

	boom := errors.New("boom")
	osu.EXPECT().FetchGroupMembers(gomock.Any(), bn).Return([]models.GroupMember{member(2, "b", in(bn))}, nil)
	groups.EXPECT().ListGroupMembers(gomock.Any(), bn).Return([]models.GroupMember{member(1, "a", in(bn))}, nil)
	groups.EXPECT().InsertGroupMember(gomock.Any(), bn, gomock.Any()).Return(boom)

	assert.ErrorIs(t, s.Cycle(context.Background(), noStages), boom)
}

func TestGroupService_Cycle_StopsOnCancelledContext(t *testing.T) {
	s, _, _, _ := newGroupService(t, models.GroupBeatmapNominator)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Cycle(ctx, noStages), context.Canceled)
}
