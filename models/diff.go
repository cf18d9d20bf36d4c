package models

import "strconv"

// IDDiff is the difference between two id snapshots.
type IDDiff struct {
	Added   []int32
	Removed []int32
	Common  []int32
}

// Empty reports whether nothing was added or removed.
func (d IDDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// GamemodeChange is the ruleset change of a member inside a single group.
type GamemodeChange struct {
	Group   Group
	Added   []Gamemode
	Removed []Gamemode
}

// Empty reports whether the change carries no rulesets.
func (c GamemodeChange) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0
}

// MemberUpdate pairs the remote member record with its ruleset change.
type MemberUpdate struct {
	Member GroupMember
	Change GamemodeChange
}

// GroupDiff is the difference between the remote and the local members of
// one group. Added holds remote records, Removed holds local records.
type GroupDiff struct {
	Group   Group
	Added   []GroupMember
	Removed []GroupMember
	Updated []MemberUpdate
}

// Empty reports whether the diff carries no entries.
func (d GroupDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Updated) == 0
}

// ProfileUpdate carries the changed profile fields of a user. Nil fields are
// unchanged.
type ProfileUpdate struct {
	UserID    int32
	Username  *string
	AvatarURL *string
}

func itoa32(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// BeatmapsetNotice is a beatmapset that entered or left the qualified list
// together with the users subscribed to it. A deleted beatmapset no longer
// exists on osu! and only carries its id.
type BeatmapsetNotice struct {
	Beatmapset  Beatmapset
	Subscribers []int64
	Deleted     bool
}
