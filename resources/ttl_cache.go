package resources

import (
	"github.com/magic-lib/go-plat-pool/hashpool"
	gocache "github.com/patrickmn/go-cache"
	"time"
)

var (
	_ hashpool.Resource                  = (*TTLCache)(nil)
	_ hashpool.Info[struct{}, *TTLCache] = TTLCacheInfo{}
)

// TTLCacheInfo go-cache 描述
type TTLCacheInfo struct {
	DefaultTTL      time.Duration
	CleanupInterval time.Duration
}

// TTLCache 可复用的带过期时间的内存缓存，条目过期由 go-cache 管理，与池无关
type TTLCache struct {
	*gocache.Cache
}

// Create 新建 go-cache
func (i TTLCacheInfo) Create(_ struct{}) (*TTLCache, error) {
	return &TTLCache{
		Cache: gocache.New(i.DefaultTTL, i.CleanupInterval),
	}, nil
}

// Clear 删除所有条目
func (c *TTLCache) Clear() {
	c.Flush()
}
