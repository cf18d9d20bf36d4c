package store

import "github.com/Sigi3012/Midnight/internal/logger"

// Storages groups every repository over one connection pool.
type Storages struct {
	Beatmapsets BeatmapsetRepository
	Groups      GroupRepository
	Channels    ChannelRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Beatmapsets: NewBeatmapsetRepository(db, logger),
		Groups:      NewGroupRepository(db, logger),
		Channels:    NewChannelRepository(db, logger),
	}
}
