package aggregation

import (
	"github.com/patrickmn/go-cache"

	"marketplace-admin/internal/repository"
)

// EntityCache holds the documents fetched during one aggregation call, keyed by
// (collection, id). It is safe for concurrent writers and is never shared across calls.
type EntityCache struct {
	entries *cache.Cache
}

// NewEntityCache creates an empty cache; entries never expire and no janitor runs
func NewEntityCache() *EntityCache {
	return &EntityCache{entries: cache.New(cache.NoExpiration, 0)}
}

// NUL cannot appear in a collection name, so keys of different collections never collide
func cacheKey(collection, id string) string {
	return collection + "\x00" + id
}

// Put stores a fetched document
func (c *EntityCache) Put(collection string, doc repository.Document) {
	c.entries.Set(cacheKey(collection, doc.ID), doc, cache.NoExpiration)
}

// Get returns the cached document, if present
func (c *EntityCache) Get(collection, id string) (repository.Document, bool) {
	if id == "" {
		return repository.Document{}, false
	}
	x, found := c.entries.Get(cacheKey(collection, id))
	if !found {
		return repository.Document{}, false
	}
	return x.(repository.Document), true
}

// Has reports whether (collection, id) was resolved
func (c *EntityCache) Has(collection, id string) bool {
	_, found := c.Get(collection, id)
	return found
}

// Len is the number of cached documents
func (c *EntityCache) Len() int {
	return c.entries.ItemCount()
}

// CachedDocs returns the cached documents of collection for the given IDs
func (c *EntityCache) CachedDocs(collection string, ids IDSet) []repository.Document {
	docs := make([]repository.Document, 0, len(ids))
	for _, id := range ids.Sorted() {
		if d, ok := c.Get(collection, id); ok {
			docs = append(docs, d)
		}
	}
	return docs
}
