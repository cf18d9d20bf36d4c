package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/models"
)

func newTestGroupRepo(t *testing.T) (*groupRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &groupRepository{db: db, logger: logger.Nop()}, mock
}

func TestListGroupMembers_AggregatesGamemodes(t *testing.T) {
	repo, mock := newTestGroupRepo(t)

	rows := sqlmock.NewRows([]string{"id", "username", "avatar_url", "gamemode"}).
		AddRow(1, "alpha", "a.png", "osu").
		AddRow(1, "alpha", "a.png", "taiko").
		AddRow(2, "beta", "b.png", nil)
	mock.ExpectQuery(`SELECT u.id, u.username, u.avatar_url, gm.gamemode FROM osu_user_groups g JOIN osu_users u`).
		WithArgs("bng").
		WillReturnRows(rows)

	members, err := repo.ListGroupMembers(context.Background(), models.GroupBeatmapNominator)
	require.NoError(t, err)

	assert.Equal(t, []models.GroupMember{
		{
			ID: 1, Username: "alpha", AvatarURL: "a.png",
			Groups: []models.MemberOf{{Group: models.GroupBeatmapNominator, Gamemodes: []models.Gamemode{models.GamemodeOsu, models.GamemodeTaiko}}},
		},
		{
			ID: 2, Username: "beta", AvatarURL: "b.png",
			Groups: []models.MemberOf{{Group: models.GroupBeatmapNominator}},
		},
	}, members)
}

func TestListGroupMembers_Empty(t *testing.T) {
	repo, mock := newTestGroupRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM osu_user_groups").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "avatar_url", "gamemode"}))

	members, err := repo.ListGroupMembers(context.Background(), models.GroupProjectLoved)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestInsertGroupMember(t *testing.T) {
	repo, mock := newTestGroupRepo(t)
	member := models.GroupMember{
		ID: 3, Username: "gamma", AvatarURL: "g.png",
		Groups: []models.MemberOf{
			{Group: models.GroupNominationAssessmentTeam, Gamemodes: []models.Gamemode{models.GamemodeMania}},
			{Group: models.GroupBeatmapNominator, Gamemodes: []models.Gamemode{models.GamemodeOsu, models.GamemodeFruits}},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO osu_users \(id,username,avatar_url\) VALUES \(\$1,\$2,\$3\) ON CONFLICT DO NOTHING`).
		WithArgs(int32(3), "gamma", "g.png").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO osu_user_groups`).
		WithArgs(int32(3), "bng").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO osu_user_group_gamemodes`).
		WithArgs(int32(3), "bng", "osu", int32(3), "bng", "fruits").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.InsertGroupMember(context.Background(), models.GroupBeatmapNominator, member))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertGroupMember_WithoutGamemodes(t *testing.T) {
	repo, mock := newTestGroupRepo(t)
	member := models.GroupMember{
		ID: 4, Username: "delta",
		Groups: []models.MemberOf{{Group: models.GroupDeveloper}},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO osu_users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO osu_user_groups").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.InsertGroupMember(context.Background(), models.GroupDeveloper, member))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGroupMember(t *testing.T) {
	repo, mock := newTestGroupRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM osu_user_group_gamemodes WHERE group_name = \$1 AND user_id = \$2`).
		WithArgs("gmt", int32(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM osu_user_groups WHERE group_name = \$1 AND user_id = \$2`).
		WithArgs("gmt", int32(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM osu_users WHERE id = \$1 AND NOT EXISTS`).
		WithArgs(int32(8), int32(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteGroupMember(context.Background(), models.GroupGlobalModerationTeam, 8))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateGroupMemberGamemodes(t *testing.T) {
	repo, mock := newTestGroupRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO osu_user_group_gamemodes`).
		WithArgs(int32(1), "bng", "mania").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM osu_user_group_gamemodes WHERE gamemode IN \(\$1\) AND group_name = \$2 AND user_id = \$3`).
		WithArgs("taiko", "bng", int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateGroupMemberGamemodes(context.Background(), 1, models.GamemodeChange{
		Group:   models.GroupBeatmapNominator,
		Added:   []models.Gamemode{models.GamemodeMania},
		Removed: []models.Gamemode{models.GamemodeTaiko},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateGroupMemberGamemodes_EmptyChange(t *testing.T) {
	repo, mock := newTestGroupRepo(t)

	require.NoError(t, repo.UpdateGroupMemberGamemodes(context.Background(), 1, models.GamemodeChange{Group: models.GroupBeatmapNominator}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfile(t *testing.T) {
	repo, mock := newTestGroupRepo(t)
	name := "renamed"

	mock.ExpectExec(`UPDATE osu_users SET username = \$1 WHERE id = \$2`).
		WithArgs("renamed", int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateProfile(context.Background(), models.ProfileUpdate{UserID: 1, Username: &name}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfile_NothingToUpdate(t *testing.T) {
	repo, mock := newTestGroupRepo(t)

	require.NoError(t, repo.UpdateProfile(context.Background(), models.ProfileUpdate{UserID: 1}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
