package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sigi3012/Midnight/models"
)

func member(id int32, name string, memberships ...models.MemberOf) models.GroupMember {
	return models.GroupMember{ID: id, Username: name, AvatarURL: name + ".png", Groups: memberships}
}

func in(group models.Group, modes ...models.Gamemode) models.MemberOf {
	return models.MemberOf{Group: group, Gamemodes: modes}
}

func TestDiffIDs(t *testing.T) {
	tests := []struct {
		name   string
		remote []int32
		local  []int32
		want   models.IDDiff
	}{
		{
			name:   "added and removed",
			remote: []int32{2, 3, 4},
			local:  []int32{1, 2, 3},
			want:   models.IDDiff{Added: []int32{4}, Removed: []int32{1}, Common: []int32{2, 3}},
		},
		{
			name:   "unchanged",
			remote: []int32{5, 1},
			local:  []int32{1, 5},
			want:   models.IDDiff{Common: []int32{1, 5}},
		},
		{
			name:   "empty local",
			remote: []int32{3, 1},
			want:   models.IDDiff{Added: []int32{1, 3}},
		},
		{
			name:  "empty remote",
			local: []int32{9},
			want:  models.IDDiff{Removed: []int32{9}},
		},
		{
			name:   "duplicates ignored",
			remote: []int32{7, 7, 8},
			local:  []int32{8, 8},
			want:   models.IDDiff{Added: []int32{7}, Common: []int32{8}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiffIDs(tt.remote, tt.local))
		})
	}
}

func TestDiffIDs_SetProperties(t *testing.T) {
	remote := []int32{1, 4, 6, 9, 12, 15}
	local := []int32{2, 4, 6, 8, 15, 21}

	diff := DiffIDs(remote, local)

	for _, id := range diff.Added {
		assert.Contains(t, remote, id)
		assert.NotContains(t, local, id)
		assert.NotContains(t, diff.Removed, id)
	}
	for _, id := range diff.Removed {
		assert.Contains(t, local, id)
		assert.NotContains(t, remote, id)
	}
	assert.Len(t, diff.Added, 3)
	assert.Len(t, diff.Removed, 3)

	assert.Equal(t, diff, DiffIDs(remote, local), "same inputs give the same diff")
}

func TestDiffIDs_ApplyingDiffConverges(t *testing.T) {
	remote := []int32{10, 11, 12}
	local := []int32{9, 10}

	diff := DiffIDs(remote, local)

	next := append([]int32{}, diff.Common...)
	next = append(next, diff.Added...)

	assert.True(t, DiffIDs(remote, next).Empty())
}

func TestDiffGroupMembers_RulesetRemoved(t *testing.T) {
	bn := models.GroupBeatmapNominator
	local := []models.GroupMember{member(1, "a", in(bn, models.GamemodeOsu, models.GamemodeTaiko))}
	remote := []models.GroupMember{member(1, "a", in(bn, models.GamemodeOsu))}

	diff := DiffGroupMembers(bn, remote, local)

	assert.Empty(t, diff.Added)
	assert.Empty(t, diff.Removed)
	assert.Equal(t, []models.MemberUpdate{{
		Member: remote[0],
		Change: models.GamemodeChange{Group: bn, Removed: []models.Gamemode{models.GamemodeTaiko}},
	}}, diff.Updated)
}

func TestDiffGroupMembers_RulesetsSwapped(t *testing.T) {
	nat := models.GroupNominationAssessmentTeam
	local := []models.GroupMember{member(5, "e", in(nat, models.GamemodeTaiko, models.GamemodeFruits))}
	remote := []models.GroupMember{member(5, "e", in(nat, models.GamemodeOsu, models.GamemodeTaiko))}

	diff := DiffGroupMembers(nat, remote, local)

	if assert.Len(t, diff.Updated, 1) {
		change := diff.Updated[0].Change
		assert.Equal(t, []models.Gamemode{models.GamemodeOsu}, change.Added)
		assert.Equal(t, []models.Gamemode{models.GamemodeFruits}, change.Removed)
	}
}

func TestDiffGroupMembers_AddedAndRemoved(t *testing.T) {
	gmt := models.GroupGlobalModerationTeam
	local := []models.GroupMember{member(1, "a", in(gmt)), member(2, "b", in(gmt))}
	remote := []models.GroupMember{member(3, "c", in(gmt)), member(2, "b", in(gmt))}

	diff := DiffGroupMembers(gmt, remote, local)

	assert.Equal(t, []models.GroupMember{remote[0]}, diff.Added)
	assert.Equal(t, []models.GroupMember{local[0]}, diff.Removed)
	assert.Empty(t, diff.Updated, "groups without rulesets never update")
}

func TestDiffGroupMembers_AbsentGroupCountsAsEmpty(t *testing.T) {
	bn := models.GroupBeatmapNominator
	local := []models.GroupMember{member(1, "a", in(bn, models.GamemodeMania, models.GamemodeOsu))}
	remote := []models.GroupMember{member(1, "a", in(models.GroupDeveloper))}

	diff := DiffGroupMembers(bn, remote, local)

	if assert.Len(t, diff.Updated, 1) {
		assert.Empty(t, diff.Updated[0].Change.Added)
		assert.Equal(t,
			[]models.Gamemode{models.GamemodeOsu, models.GamemodeMania},
			diff.Updated[0].Change.Removed,
			"a departure lists every ruleset in osu! order")
	}
}

func TestDiffGroupMembers_OrderAndIdempotence(t *testing.T) {
	bn := models.GroupBeatmapNominator
	remote := []models.GroupMember{
		member(9, "i", in(bn, models.GamemodeOsu)),
		member(4, "d", in(bn, models.GamemodeOsu)),
		member(6, "f", in(bn, models.GamemodeTaiko)),
	}
	local := []models.GroupMember{
		member(6, "f", in(bn, models.GamemodeOsu)),
		member(2, "b", in(bn, models.GamemodeOsu)),
	}

	diff := DiffGroupMembers(bn, remote, local)

	assert.Equal(t, []int32{4, 9}, []int32{diff.Added[0].ID, diff.Added[1].ID})
	assert.Equal(t, int32(2), diff.Removed[0].ID)
	assert.Equal(t, int32(6), diff.Updated[0].Member.ID)
	assert.Equal(t, diff, DiffGroupMembers(bn, remote, local))

	assert.True(t, DiffGroupMembers(bn, remote, remote).Empty())
}

func TestProfileUpdates(t *testing.T) {
	local := []models.GroupMember{
		{ID: 1, Username: "old", AvatarURL: "a.png"},
		{ID: 2, Username: "same", AvatarURL: "old.png"},
		{ID: 3, Username: "both", AvatarURL: "x.png"},
		{ID: 4, Username: "gone", AvatarURL: "g.png"},
	}
	remote := []models.GroupMember{
		{ID: 3, Username: "both", AvatarURL: "x.png"},
		{ID: 2, Username: "same", AvatarURL: "new.png"},
		{ID: 1, Username: "new", AvatarURL: "a.png"},
		{ID: 5, Username: "fresh", AvatarURL: "f.png"},
	}

	updates := ProfileUpdates(remote, local)

	if assert.Len(t, updates, 2) {
		assert.Equal(t, int32(1), updates[0].UserID)
		assert.Equal(t, "new", *updates[0].Username)
		assert.Nil(t, updates[0].AvatarURL)

		assert.Equal(t, int32(2), updates[1].UserID)
		assert.Nil(t, updates[1].Username)
		assert.Equal(t, "new.png", *updates[1].AvatarURL)
	}
}
