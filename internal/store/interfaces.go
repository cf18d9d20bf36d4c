package store

import (
	"context"

	"github.com/Sigi3012/Midnight/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BeatmapsetRepository persists the local mapfeed snapshot and the users
// subscribed to each tracked beatmapset.
type BeatmapsetRepository interface {
	// InsertBeatmapsets stores ids, ignoring ids that are already tracked.
	InsertBeatmapsets(ctx context.Context, ids ...int32) error
	// DeleteBeatmapset removes a tracked beatmapset and its subscriptions.
	DeleteBeatmapset(ctx context.Context, id int32) error
	ListBeatmapsetIDs(ctx context.Context) ([]int32, error)

	AddSubscriber(ctx context.Context, beatmapsetID int32, userID int64) (models.SubscriptionStatus, error)
	RemoveSubscriber(ctx context.Context, beatmapsetID int32, userID int64) (models.SubscriptionStatus, error)
	ListSubscribers(ctx context.Context, beatmapsetID int32) ([]int64, error)
	ListSubscriptions(ctx context.Context, userID int64) ([]int32, error)
}

// GroupRepository persists the local group snapshot: users, their group
// memberships and the rulesets of every membership.
type GroupRepository interface {
	// ListGroupMembers returns the members of group. Each member carries
	// only the membership of that group.
	ListGroupMembers(ctx context.Context, group models.Group) ([]models.GroupMember, error)
	InsertGroupMember(ctx context.Context, group models.Group, member models.GroupMember) error
	DeleteGroupMember(ctx context.Context, group models.Group, userID int32) error
	UpdateGroupMemberGamemodes(ctx context.Context, userID int32, change models.GamemodeChange) error
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) error
}

// ChannelRepository persists which Discord channels receive which feed.
type ChannelRepository interface {
	SubscribeChannel(ctx context.Context, channelID int64, kind models.ChannelKind) (models.SubscriptionStatus, error)
	UnsubscribeChannel(ctx context.Context, channelID int64, kind models.ChannelKind) (models.SubscriptionStatus, error)
	ListChannels(ctx context.Context, kind models.ChannelKind) ([]int64, error)
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
