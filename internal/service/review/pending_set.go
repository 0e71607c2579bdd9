package review

import (
	"sync"
	"time"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/review"
)

// pendingSet is a per-manager snapshot of the review queue. Decisions
// remove items optimistically before the store write; a failed write
// invalidates the snapshot so the next read refetches. The snapshot is
// never patched back with a removed item.
type pendingSet struct {
	mu        sync.Mutex
	items     []review.PendingItem
	counts    review.PendingCounts
	fetchedAt time.Time
	valid     bool
}

func (p *pendingSet) get() (review.PendingItemsResponse, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.valid {
		return review.PendingItemsResponse{}, false
	}
	items := make([]review.PendingItem, len(p.items))
	copy(items, p.items)
	return review.PendingItemsResponse{Items: items, Counts: p.counts}, true
}

func (p *pendingSet) replace(items []review.PendingItem, counts review.PendingCounts, now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = items
	p.counts = counts
	p.fetchedAt = now
	p.valid = true
}

// lookup finds a snapshot item without mutating the set.
func (p *pendingSet) lookup(itemID string, itemType review.ItemType) (review.PendingItem, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.valid {
		return review.PendingItem{}, false
	}
	for _, item := range p.items {
		if item.ID == itemID && item.Type == itemType {
			return item, true
		}
	}
	return review.PendingItem{}, false
}

// remove drops one item and decrements its type's count. Missing items are
// a no-op so a double decision cannot drive counts negative.
func (p *pendingSet) remove(itemID string, itemType review.ItemType) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.valid {
		return
	}
	for i, item := range p.items {
		if item.ID != itemID || item.Type != itemType {
			continue
		}
		p.items = append(p.items[:i], p.items[i+1:]...)
		switch itemType {
		case review.ItemSheets:
			p.counts.Sheets--
		case review.ItemExpense:
			p.counts.Expenses--
		}
		p.counts.Total--
		return
	}
}

// invalidate discards the snapshot. The next get misses and the caller
// refetches from the store.
func (p *pendingSet) invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = nil
	p.counts = review.PendingCounts{}
	p.valid = false
}

func (p *pendingSet) isStale(now time.Time, ttl time.Duration) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.valid || now.Sub(p.fetchedAt) > ttl
}
