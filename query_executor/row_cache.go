package executor

import (
	"MiniDB/types"

	"github.com/dgraph-io/ristretto/v2"
)

// RowCache caches deserialized rows for point lookups so repeated
// select-by-id statements skip the tree descent. Inserts populate it, deletes
// invalidate it; the tree stays the source of truth on every miss.
type RowCache struct {
	cache *ristretto.Cache[uint32, types.Row]
}

// NewRowCache builds a cache that admits roughly maxEntries rows, each
// costed at 1.
func NewRowCache(maxEntries int64) (*RowCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[uint32, types.Row]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &RowCache{cache: cache}, nil
}

func (rc *RowCache) Get(key uint32) (types.Row, bool) {
	return rc.cache.Get(key)
}

func (rc *RowCache) Put(row types.Row) {
	rc.cache.Set(row.ID, row, 1)
}

func (rc *RowCache) Del(key uint32) {
	rc.cache.Del(key)
}

// Wait blocks until buffered admissions are applied. Only inspection and
// tests need it.
func (rc *RowCache) Wait() {
	rc.cache.Wait()
}

func (rc *RowCache) Close() {
	rc.cache.Close()
}
