package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/models"
)

type groupRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewGroupRepository(db *DB, logger *logger.Logger) GroupRepository {
	logger.Debug().Msg("creating group repository")
	return &groupRepository{
		db:     db,
		logger: logger,
	}
}

func (r *groupRepository) ListGroupMembers(ctx context.Context, group models.Group) ([]models.GroupMember, error) {
	log := logger.FromContext(ctx)

	q := r.db.builder.
		Select("u.id", "u.username", "u.avatar_url", "gm.gamemode").
		From(tableOsuUserGroups + " g").
		Join(tableOsuUsers + " u ON u.id = g.user_id").
		LeftJoin(tableOsuUserGamemodes + " gm ON gm.user_id = g.user_id AND gm.group_name = g.group_name").
		Where(sq.Eq{"g.group_name": string(group)}).
		OrderBy("u.id", "gm.gamemode")

	members := make([]models.GroupMember, 0)
	err := queryRows(ctx, r.db, q, func(rows *sql.Rows) error {
		var (
			id        int32
			username  string
			avatarURL string
			gamemode  sql.NullString
		)
		if err := rows.Scan(&id, &username, &avatarURL, &gamemode); err != nil {
			return err
		}

		// rows are ordered by user, so a new id starts a new member
		if n := len(members); n == 0 || members[n-1].ID != id {
			members = append(members, models.GroupMember{
				ID:        id,
				Username:  username,
				AvatarURL: avatarURL,
				Groups:    []models.MemberOf{{Group: group}},
			})
		}

		if gamemode.Valid {
			last := &members[len(members)-1].Groups[0]
			last.Gamemodes = append(last.Gamemodes, models.Gamemode(gamemode.String))
		}
		return nil
	})
	if err != nil {
		logQueryError(log, "*groupRepository.ListGroupMembers", err, "error listing group members")
		return nil, err
	}

	return members, nil
}

func (r *groupRepository) InsertGroupMember(ctx context.Context, group models.Group, member models.GroupMember) error {
	log := logger.FromContext(ctx)

	gamemodes, _ := member.GamemodesIn(group)
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := exec(ctx, tx, r.db.builder.Insert(tableOsuUsers).
			Columns("id", "username", "avatar_url").
			Values(member.ID, member.Username, member.AvatarURL).
			Suffix(onConflictDoNothing)); err != nil {
			return err
		}

		if _, err := exec(ctx, tx, r.db.builder.Insert(tableOsuUserGroups).
			Columns("user_id", "group_name").
			Values(member.ID, string(group)).
			Suffix(onConflictDoNothing)); err != nil {
			return err
		}

		return insertGamemodes(ctx, r.db, tx, member.ID, group, gamemodes)
	})
	if err != nil {
		logQueryError(log, "*groupRepository.InsertGroupMember", err, "error inserting group member")
		return err
	}

	return nil
}

// DeleteGroupMember removes the membership and its rulesets. The user row
// goes too once the user belongs to no tracked group.
func (r *groupRepository) DeleteGroupMember(ctx context.Context, group models.Group, userID int32) error {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		membership := sq.Eq{"user_id": userID, "group_name": string(group)}
		if _, err := exec(ctx, tx, r.db.builder.Delete(tableOsuUserGamemodes).Where(membership)); err != nil {
			return err
		}

		if _, err := exec(ctx, tx, r.db.builder.Delete(tableOsuUserGroups).Where(membership)); err != nil {
			return err
		}

		_, err := exec(ctx, tx, r.db.builder.Delete(tableOsuUsers).
			Where(sq.Eq{"id": userID}).
			Where("NOT EXISTS (SELECT 1 FROM "+tableOsuUserGroups+" WHERE user_id = ?)", userID))
		return err
	})
	if err != nil {
		logQueryError(log, "*groupRepository.DeleteGroupMember", err, "error deleting group member")
		return err
	}

	return nil
}

func (r *groupRepository) UpdateGroupMemberGamemodes(ctx context.Context, userID int32, change models.GamemodeChange) error {
	if change.Empty() {
		return nil
	}
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := insertGamemodes(ctx, r.db, tx, userID, change.Group, change.Added); err != nil {
			return err
		}

		if len(change.Removed) == 0 {
			return nil
		}

		removed := make([]string, 0, len(change.Removed))
		for _, mode := range change.Removed {
			removed = append(removed, string(mode))
		}
		_, err := exec(ctx, tx, r.db.builder.Delete(tableOsuUserGamemodes).Where(sq.Eq{
			"user_id":    userID,
			"group_name": string(change.Group),
			"gamemode":   removed,
		}))
		return err
	})
	if err != nil {
		logQueryError(log, "*groupRepository.UpdateGroupMemberGamemodes", err, "error updating gamemodes")
		return err
	}

	return nil
}

func (r *groupRepository) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	set := make(map[string]any, 2)
	if update.Username != nil {
		set["username"] = *update.Username
	}
	if update.AvatarURL != nil {
		set["avatar_url"] = *update.AvatarURL
	}
	if len(set) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	err := r.db.withConn(ctx, func(conn *sql.Conn) error {
		_, err := exec(ctx, conn, r.db.builder.Update(tableOsuUsers).
			SetMap(set).
			Where(sq.Eq{"id": update.UserID}))
		return err
	})
	if err != nil {
		logQueryError(log, "*groupRepository.UpdateProfile", err, "error updating profile")
		return err
	}

	return nil
}

func insertGamemodes(ctx context.Context, db *DB, tx *sql.Tx, userID int32, group models.Group, modes []models.Gamemode) error {
	if len(modes) == 0 {
		return nil
	}

	q := db.builder.Insert(tableOsuUserGamemodes).Columns("user_id", "group_name", "gamemode")
	for _, mode := range modes {
		q = q.Values(userID, string(group), string(mode))
	}

	_, err := exec(ctx, tx, q.Suffix(onConflictDoNothing))
	return err
}
