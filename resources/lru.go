package resources

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/magic-lib/go-plat-pool/hashpool"
)

var (
	_ hashpool.Resource                          = (*LRU[string, any])(nil)
	_ hashpool.Info[struct{}, *LRU[string, any]] = LRUInfo[string, any]{}
)

// LRUInfo 按条目数区分的 LRU 描述
type LRUInfo[K comparable, V any] struct {
	Size int
}

// LRU 可复用的 LRU 缓存
type LRU[K comparable, V any] struct {
	*lru.Cache[K, V]
}

// Create Size <= 0 时由 golang-lru 返回错误
func (i LRUInfo[K, V]) Create(_ struct{}) (*LRU[K, V], error) {
	c, err := lru.New[K, V](i.Size)
	if err != nil {
		return nil, err
	}
	return &LRU[K, V]{Cache: c}, nil
}

// Clear 清空所有条目
func (l *LRU[K, V]) Clear() {
	l.Purge()
}
