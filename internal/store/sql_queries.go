package store

import (
	"github.com/Sigi3012/Midnight/internal/logger"
)

const (
	tableBeatmapsets      = "beatmapsets"
	tableSubscriptions    = "beatmapset_subscriptions"
	tableChannels         = "channel_subscriptions"
	tableOsuUsers         = "osu_users"
	tableOsuUserGroups    = "osu_user_groups"
	tableOsuUserGamemodes = "osu_user_group_gamemodes"

	onConflictDoNothing = "ON CONFLICT DO NOTHING"
)

// logQueryError logs a failed statement with its SQLSTATE when the driver
// reports one.
func logQueryError(log *logger.Logger, fn string, err error, msg string) {
	event := log.Err(err).Str("func", fn)
	if code := postgresError(err); code != "" {
		event = event.Str("sqlstate", code)
	}
	event.Msg(msg)
}
