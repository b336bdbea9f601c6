package recents

import (
	"sync"

	"github.com/ytget/captray/internal/model"
)

// Capacity is the number of items the tray keeps.
const Capacity = 6

// Cache holds the most recent items, newest first.
type Cache struct {
	mu       sync.RWMutex
	items    []model.Item
	capacity int
}

// NewCache creates an empty cache. A non-positive capacity selects Capacity.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = Capacity
	}
	return &Cache{capacity: capacity}
}

// Replace swaps the whole content, typically with the result of a startup scan.
func (c *Cache) Replace(items []model.Item) {
	next := make([]model.Item, len(items))
	copy(next, items)
	sortNewestFirst(next)
	if len(next) > c.capacity {
		next = next[:c.capacity]
	}

	c.mu.Lock()
	c.items = next
	c.mu.Unlock()
}

// UpsertFront inserts item, replacing any entry with the same path. The item
// goes ahead of every entry that is not newer than it, and the oldest entries
// are evicted once the cache is over capacity.
//
// An item is only placed at index 0 when nothing cached is newer. A re-added
// project that is older than the current front keeps its creation-time slot,
// so the list stays sorted newest first instead of jumping to the top.
func (c *Cache) UpsertFront(item model.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := make([]model.Item, 0, len(c.items))
	for _, it := range c.items {
		if it.Path != item.Path {
			kept = append(kept, it)
		}
	}

	at := len(kept)
	for i, it := range kept {
		if !it.CreatedAt.After(item.CreatedAt) {
			at = i
			break
		}
	}

	next := make([]model.Item, 0, len(kept)+1)
	next = append(next, kept[:at]...)
	next = append(next, item)
	next = append(next, kept[at:]...)
	if len(next) > c.capacity {
		next = next[:c.capacity]
	}
	c.items = next
}

// UpdateThumbnail attaches thumb to the entry at path. It reports false when
// the entry is no longer cached.
func (c *Cache) UpdateThumbnail(path string, thumb *model.Thumbnail) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Path == path {
			c.items[i].Thumbnail = thumb
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the entries in cache order.
func (c *Cache) Snapshot() []model.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Item, len(c.items))
	copy(out, c.items)
	return out
}

// MissingThumbnails lists the paths of entries without a preview.
func (c *Cache) MissingThumbnails() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var paths []string
	for _, it := range c.items {
		if !it.HasThumbnail() {
			paths = append(paths, it.Path)
		}
	}
	return paths
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
