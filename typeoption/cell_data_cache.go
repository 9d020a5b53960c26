package typeoption

import (
	"github.com/dgraph-io/ristretto"
	"github.com/pkg/errors"

	"columncalc/core"
)

type CacheConfig struct {
	NumCounters int64
	MaxCost     int64
}

func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		NumCounters: 1e6,
		MaxCost:     1 << 20,
	}
}

type cachedValue struct {
	value float64
	ok    bool
}

// CellDataCache memoises extraction results per (field, raw data). Cells
// without a string payload are never cached.
type CellDataCache struct {
	cache *ristretto.Cache
}

func NewCellDataCache(config CacheConfig) (*CellDataCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: config.NumCounters,
		MaxCost:     config.MaxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create cell data cache")
	}
	return &CellDataCache{cache: cache}, nil
}

func cacheKey(field *core.Field, data string) string {
	return field.ID + "\x00" + field.Type.String() + "\x00" + data
}

func (c *CellDataCache) Get(field *core.Field, data string) (float64, bool, bool) {
	v, found := c.cache.Get(cacheKey(field, data))
	if !found {
		return 0, false, false
	}
	cached := v.(cachedValue)
	return cached.value, cached.ok, true
}

func (c *CellDataCache) Set(field *core.Field, data string, value float64, ok bool) {
	c.cache.Set(cacheKey(field, data), cachedValue{value: value, ok: ok}, 1)
}

func (c *CellDataCache) Close() {
	c.cache.Close()
}

func (c *CellDataCache) Wrap(field *core.Field, extractor core.NumericExtractor) core.NumericExtractor {
	return core.ExtractorFunc(func(cell core.Cell) (float64, bool) {
		data, hasData := cell.Data()
		if !hasData {
			return extractor.Extract(cell)
		}
		if value, ok, found := c.Get(field, data); found {
			return value, ok
		}
		value, ok := extractor.Extract(cell)
		c.Set(field, data, value, ok)
		return value, ok
	})
}
