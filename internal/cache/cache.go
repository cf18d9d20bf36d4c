// Package cache keeps the channels subscribed to each feed in memory. It is
// read for every notification and refreshed by the subscription commands.
package cache

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/internal/store"
	"github.com/Sigi3012/Midnight/models"
)

// ChannelCache is the set of channels subscribed to one feed. The set is
// loaded on first read. Refresh applies additions and removals in place, so
// readers never see it empty unless no channel is subscribed. Reads fail
// while the set has never been loaded.
type ChannelCache struct {
	kind   models.ChannelKind
	source store.ChannelRepository

	// refreshMu serializes loads from the store.
	refreshMu sync.Mutex

	mu        sync.RWMutex
	loaded    bool
	populated bool // set by the first successful load, kept by Invalidate
	channels  map[int64]struct{}

	logger *logger.Logger
}

func NewChannelCache(kind models.ChannelKind, source store.ChannelRepository, log *logger.Logger) *ChannelCache {
	return &ChannelCache{
		kind:     kind,
		source:   source,
		channels: make(map[int64]struct{}),
		logger:   log,
	}
}

// Contains reports whether channelID receives the feed.
func (c *ChannelCache) Contains(ctx context.Context, channelID int64) (bool, error) {
	if err := c.populate(ctx); err != nil {
		return false, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.channels[channelID]
	return ok, nil
}

// Channels returns the subscribed channels in ascending order.
func (c *ChannelCache) Channels(ctx context.Context) ([]int64, error) {
	if err := c.populate(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]int64, 0, len(c.channels))
	for id := range c.channels {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids, nil
}

// Refresh reloads the set from the store. After a failure the cached entries
// stay readable and the next read tries to load again.
func (c *ChannelCache) Refresh(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if err := c.load(ctx); err != nil {
		c.Invalidate()
		return err
	}

	return nil
}

// Invalidate makes the next read reload the set. Cached entries stay
// readable until then.
func (c *ChannelCache) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.mu.Unlock()
}

// populate loads the set when it is not loaded. A failed reload is only
// logged when an earlier load succeeded; without one there is nothing to
// serve and the error is returned.
func (c *ChannelCache) populate(ctx context.Context) error {
	if loaded, _ := c.state(); loaded {
		return nil
	}

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	// another reader may have loaded it while we waited
	loaded, populated := c.state()
	if loaded {
		return nil
	}

	err := c.load(ctx)
	if err == nil {
		return nil
	}
	if !populated {
		return err
	}

	c.logger.Err(err).Str("func", "*ChannelCache.populate").
		Str("kind", string(c.kind)).
		Msg("error reloading subscribed channels, serving cached set")
	return nil
}

func (c *ChannelCache) state() (loaded, populated bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded, c.populated
}

// load must be called with refreshMu held.
func (c *ChannelCache) load(ctx context.Context) error {
	ids, err := c.source.ListChannels(ctx, c.kind)
	if err != nil {
		return fmt.Errorf("listing %s channels: %w", c.kind, err)
	}

	current := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		current[id] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var added, removed int
	for id := range current {
		if _, ok := c.channels[id]; !ok {
			c.channels[id] = struct{}{}
			added++
		}
	}
	for id := range c.channels {
		if _, ok := current[id]; !ok {
			delete(c.channels, id)
			removed++
		}
	}
	c.loaded = true
	c.populated = true

	c.logger.Debug().Str("func", "*ChannelCache.load").
		Str("kind", string(c.kind)).
		Int("added", added).
		Int("removed", removed).
		Msg("channel cache refreshed")

	return nil
}

// Caches holds one [ChannelCache] per feed.
type Caches struct {
	byKind map[models.ChannelKind]*ChannelCache
}

func NewCaches(source store.ChannelRepository, log *logger.Logger) *Caches {
	caches := &Caches{byKind: make(map[models.ChannelKind]*ChannelCache)}
	for _, kind := range models.ChannelKinds() {
		caches.byKind[kind] = NewChannelCache(kind, source, log)
	}

	return caches
}

// For returns the cache of kind. Every kind of [models.ChannelKinds] has
// one; asking for another is a programming error.
func (c *Caches) For(kind models.ChannelKind) *ChannelCache {
	cache, ok := c.byKind[kind]
	if !ok {
		panic(fmt.Sprintf("cache: no channel cache for kind %q", kind))
	}

	return cache
}

// Refresh reloads the cache of kind.
func (c *Caches) Refresh(ctx context.Context, kind models.ChannelKind) error {
	return c.For(kind).Refresh(ctx)
}
