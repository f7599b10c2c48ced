package resources

import (
	"github.com/VictoriaMetrics/fastcache"
	"github.com/magic-lib/go-plat-pool/hashpool"
)

var (
	_ hashpool.Resource                   = (*ByteCache)(nil)
	_ hashpool.Info[struct{}, *ByteCache] = ByteCacheInfo{}
)

// ByteCacheInfo fastcache 描述，MaxBytes 小于 32MB 时 fastcache 会按 32MB 分配
type ByteCacheInfo struct {
	MaxBytes int
}

// ByteCache 可复用的 fastcache
type ByteCache struct {
	*fastcache.Cache
}

// Create 新建 fastcache
func (i ByteCacheInfo) Create(_ struct{}) (*ByteCache, error) {
	return &ByteCache{
		Cache: fastcache.New(i.MaxBytes),
	}, nil
}

// Clear 清空所有条目，已分配的 chunk 保留复用
func (c *ByteCache) Clear() {
	c.Reset()
}

// Len 当前条目数
func (c *ByteCache) Len() uint64 {
	var st fastcache.Stats
	c.UpdateStats(&st)
	return st.EntriesCount
}
