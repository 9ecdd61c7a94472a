package store

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"stash-indexer/internal/differ"
	"stash-indexer/internal/metrics"
)

// CachedStore serves stash snapshots from memory and keeps them in step with
// successful commits. owners maps an item id to the cached stash that last
// listed it, so a stash losing an item to another stash outside its own
// updates is evicted instead of serving a stale live set.
type CachedStore struct {
	Store
	cache  *cache.Cache
	owners *cache.Cache
}

// NewCachedStore wraps a Store with a snapshot cache whose entries expire after ttl.
func NewCachedStore(inner Store, ttl time.Duration) *CachedStore {
	return &CachedStore{
		Store:  inner,
		cache:  cache.New(ttl, 2*ttl),
		owners: cache.New(ttl, 2*ttl),
	}
}

// GetSnapshot returns a copy of the cached snapshot, loading it on a miss.
func (c *CachedStore) GetSnapshot(ctx context.Context, stashID string) (differ.Snapshot, error) {
	if v, ok := c.cache.Get(stashID); ok {
		metrics.SnapshotCacheHits.Inc()
		return copySnapshot(v.(differ.Snapshot)), nil
	}
	metrics.SnapshotCacheMisses.Inc()

	snap, err := c.Store.GetSnapshot(ctx, stashID)
	if err != nil {
		return nil, err
	}
	c.remember(stashID, snap)
	return snap, nil
}

// CommitBatch commits through the wrapped store. Touched stashes get their new
// live sets on success and are evicted on failure.
func (c *CachedStore) CommitBatch(ctx context.Context, now time.Time, batch Batch) error {
	if err := c.Store.CommitBatch(ctx, now, batch); err != nil {
		for _, u := range batch.Stashes {
			c.cache.Delete(u.StashID)
		}
		return err
	}
	for _, u := range batch.Stashes {
		if u.Live == nil {
			c.cache.Delete(u.StashID)
			continue
		}
		c.remember(u.StashID, u.Live)
	}
	return nil
}

// remember caches a stash's live set and claims its items. Any other cached
// stash still holding one of them is evicted; the database row now points
// elsewhere, so its next load comes from the store.
func (c *CachedStore) remember(stashID string, snap differ.Snapshot) {
	for itemID := range snap {
		if v, ok := c.owners.Get(itemID); ok {
			if owner := v.(string); owner != stashID {
				c.cache.Delete(owner)
			}
		}
		c.owners.SetDefault(itemID, stashID)
	}
	c.cache.SetDefault(stashID, copySnapshot(snap))
}

// Len reports the number of cached stashes.
func (c *CachedStore) Len() int {
	return c.cache.ItemCount()
}

func copySnapshot(s differ.Snapshot) differ.Snapshot {
	out := make(differ.Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
