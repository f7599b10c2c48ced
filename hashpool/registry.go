package hashpool

import (
	"fmt"
	cmap "github.com/orcaman/concurrent-map/v2"
	"sort"
	"sync"
)

// Reporter 可以注册到 Registry 的池，HashPool 的任意实例化都满足
type Reporter interface {
	Name() string
	Len() int
	Stats() Stats
}

// Registry 资源池注册表，按 namespace + name 维护不同类型的池
type Registry struct {
	pools cmap.ConcurrentMap[string, Reporter]
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry 进程级的默认注册表
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry 创建一个注册表
func NewRegistry() *Registry {
	return &Registry{
		pools: cmap.New[Reporter](),
	}
}

// getNsKey 获取namespace下的key，规范化
func getNsKey(ns string, key string) string {
	if ns != "" {
		return fmt.Sprintf("{%s}%s", ns, key)
	}
	return key
}

// Register 注册一个池，同名的会被替换
func (r *Registry) Register(namespace, name string, pool Reporter) {
	if pool == nil {
		return
	}
	r.pools.Set(getNsKey(namespace, name), pool)
}

// Get 获取已注册的池
func (r *Registry) Get(namespace, name string) Reporter {
	if v, ok := r.pools.Get(getNsKey(namespace, name)); ok {
		return v
	}
	return nil
}

// Remove 移除一个池，池本身不受影响
func (r *Registry) Remove(namespace, name string) bool {
	_, ok := r.pools.Pop(getNsKey(namespace, name))
	return ok
}

// Names 已注册的所有 key，有序
func (r *Registry) Names() []string {
	keys := r.pools.Keys()
	sort.Strings(keys)
	return keys
}

// Snapshot 所有池的统计快照
func (r *Registry) Snapshot() map[string]Stats {
	out := make(map[string]Stats, r.pools.Count())
	r.pools.IterCb(func(key string, v Reporter) {
		out[key] = v.Stats()
	})
	return out
}
