package api

import (
	"encoding/hex"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/zeebo/blake3"
)

// defaultCacheBytes bounds the conversion cache when no budget is configured.
const defaultCacheBytes = 32 << 20

// Cache memoizes conversion results. Conversion output depends only on
// the input text and direction, and the same document is often
// submitted repeatedly (live preview followed by a final request), so
// results can be reused freely.
type Cache struct {
	store *ristretto.Cache[string, string]
}

// NewCache creates a conversion cache holding up to maxBytes of output text.
func NewCache(maxBytes int64) (*Cache, error) {
	if maxBytes <= 0 {
		maxBytes = defaultCacheBytes
	}
	store, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: 100_000,
		MaxCost:     maxBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Cache{store: store}, nil
}

// Get returns a previously cached conversion result.
func (c *Cache) Get(direction, text string) (string, bool) {
	return c.store.Get(cacheKey(direction, text))
}

// Put stores a conversion result, costed by its output size.
func (c *Cache) Put(direction, text, result string) {
	c.store.Set(cacheKey(direction, text), result, int64(len(result)))
}

// Wait blocks until buffered writes have been applied. Used by tests.
func (c *Cache) Wait() {
	c.store.Wait()
}

// cacheKey derives the lookup key from the direction and the input
// text. Hashing keeps keys small for large documents.
func cacheKey(direction, text string) string {
	sum := blake3.Sum256([]byte(direction + "\x00" + text))
	return hex.EncodeToString(sum[:])
}
