package service

import (
	"cmp"
	"slices"

	"github.com/Sigi3012/Midnight/models"
)

// gamemodeOrder is the order rulesets are listed in everywhere on osu!.
var gamemodeOrder = map[models.Gamemode]int{
	models.GamemodeOsu:    0,
	models.GamemodeTaiko:  1,
	models.GamemodeFruits: 2,
	models.GamemodeMania:  3,
}

// DiffIDs compares the remote and local id snapshots. Every output list is
// sorted and duplicates in the inputs are ignored.
func DiffIDs(remote, local []int32) models.IDDiff {
	remoteSet := idSet(remote)
	localSet := idSet(local)

	var diff models.IDDiff
	for id := range remoteSet {
		if _, ok := localSet[id]; ok {
			diff.Common = append(diff.Common, id)
		} else {
			diff.Added = append(diff.Added, id)
		}
	}
	for id := range localSet {
		if _, ok := remoteSet[id]; !ok {
			diff.Removed = append(diff.Removed, id)
		}
	}

	slices.Sort(diff.Added)
	slices.Sort(diff.Removed)
	slices.Sort(diff.Common)

	return diff
}

// DiffGroupMembers compares the members listed on the remote page of group
// with the members stored for it. Added holds remote records, Removed local
// ones. For members on both sides the rulesets of group are compared; a
// side that does not list group counts as having no rulesets. Only members
// whose rulesets changed are reported as updated.
func DiffGroupMembers(group models.Group, remote, local []models.GroupMember) models.GroupDiff {
	remoteByID := memberIndex(remote)
	localByID := memberIndex(local)

	diff := models.GroupDiff{Group: group}
	for id, member := range remoteByID {
		stored, ok := localByID[id]
		if !ok {
			diff.Added = append(diff.Added, member)
			continue
		}

		remoteModes, _ := member.GamemodesIn(group)
		localModes, _ := stored.GamemodesIn(group)
		change := models.GamemodeChange{
			Group:   group,
			Added:   gamemodesMinus(remoteModes, localModes),
			Removed: gamemodesMinus(localModes, remoteModes),
		}
		if !change.Empty() {
			diff.Updated = append(diff.Updated, models.MemberUpdate{Member: member, Change: change})
		}
	}
	for id, member := range localByID {
		if _, ok := remoteByID[id]; !ok {
			diff.Removed = append(diff.Removed, member)
		}
	}

	byID := func(a, b models.GroupMember) int { return cmp.Compare(a.ID, b.ID) }
	slices.SortFunc(diff.Added, byID)
	slices.SortFunc(diff.Removed, byID)
	slices.SortFunc(diff.Updated, func(a, b models.MemberUpdate) int { return cmp.Compare(a.Member.ID, b.Member.ID) })

	return diff
}

// ProfileUpdates reports the members present on both sides whose username
// or avatar changed. It is independent of group membership.
func ProfileUpdates(remote, local []models.GroupMember) []models.ProfileUpdate {
	localByID := memberIndex(local)

	var updates []models.ProfileUpdate
	for id, member := range memberIndex(remote) {
		stored, ok := localByID[id]
		if !ok {
			continue
		}

		update := models.ProfileUpdate{UserID: id}
		if member.Username != stored.Username {
			update.Username = &member.Username
		}
		if member.AvatarURL != stored.AvatarURL {
			update.AvatarURL = &member.AvatarURL
		}
		if update.Username != nil || update.AvatarURL != nil {
			updates = append(updates, update)
		}
	}

	slices.SortFunc(updates, func(a, b models.ProfileUpdate) int { return cmp.Compare(a.UserID, b.UserID) })
	return updates
}

func idSet(ids []int32) map[int32]struct{} {
	set := make(map[int32]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func memberIndex(members []models.GroupMember) map[int32]models.GroupMember {
	index := make(map[int32]models.GroupMember, len(members))
	for _, m := range members {
		index[m.ID] = m
	}
	return index
}

// gamemodesMinus returns the rulesets of a missing from b in ruleset order.
func gamemodesMinus(a, b []models.Gamemode) []models.Gamemode {
	var out []models.Gamemode
	for _, mode := range a {
		if !slices.Contains(b, mode) && !slices.Contains(out, mode) {
			out = append(out, mode)
		}
	}

	slices.SortFunc(out, func(x, y models.Gamemode) int {
		return cmp.Compare(gamemodeRank(x), gamemodeRank(y))
	})
	return out
}

func gamemodeRank(mode models.Gamemode) int {
	if rank, ok := gamemodeOrder[mode]; ok {
		return rank
	}
	return len(gamemodeOrder)
}
