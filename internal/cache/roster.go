package cache

import (
	"context"
	"errors"
	"time"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/team"
)

// RosterEntry is the cached roster for one manager. FetchedAt travels with
// the data so staleness is judged against when it was read, not when it
// was last served.
type RosterEntry struct {
	Members   []team.RosterMember `json:"members"`
	FetchedAt time.Time           `json:"fetched_at"`
}

// IsStale reports whether the entry has outlived ttl at now.
func (e RosterEntry) IsStale(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.FetchedAt) > ttl
}

type RosterCache struct {
	redis *Redis
	ttl   time.Duration
}

func NewRosterCache(redis *Redis, ttl time.Duration) *RosterCache {
	return &RosterCache{redis: redis, ttl: ttl}
}

func (c *RosterCache) key(managerID string) string {
	return c.redis.key("roster", managerID)
}

// Get returns the cached entry and whether it was found.
func (c *RosterCache) Get(ctx context.Context, managerID string) (RosterEntry, bool, error) {
	var entry RosterEntry
	err := c.redis.GetJSON(ctx, c.key(managerID), &entry)
	if errors.Is(err, ErrCacheMiss) {
		return RosterEntry{}, false, nil
	}
	if err != nil {
		return RosterEntry{}, false, err
	}
	return entry, true, nil
}

func (c *RosterCache) Set(ctx context.Context, managerID string, entry RosterEntry) error {
	return c.redis.SetJSON(ctx, c.key(managerID), entry, c.ttl)
}

func (c *RosterCache) Invalidate(ctx context.Context, managerID string) error {
	return c.redis.Delete(ctx, c.key(managerID))
}

func (c *RosterCache) TTL() time.Duration {
	return c.ttl
}
