package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRosterEntry_IsStale(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	ttl := 30 * time.Minute

	fresh := RosterEntry{FetchedAt: now.Add(-10 * time.Minute)}
	assert.False(t, fresh.IsStale(now, ttl))

	atBoundary := RosterEntry{FetchedAt: now.Add(-ttl)}
	assert.False(t, atBoundary.IsStale(now, ttl))

	stale := RosterEntry{FetchedAt: now.Add(-ttl - time.Second)}
	assert.True(t, stale.IsStale(now, ttl))

	zero := RosterEntry{}
	assert.True(t, zero.IsStale(now, ttl))
}
