package hashpool

import (
	"fmt"
	"github.com/magic-lib/go-plat-utils/logs"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"hash/maphash"
)

// HashPool 按描述分桶的资源池，相等的描述共享同一个 bucket。
// 没有容量上限，也不会淘汰，bucket 创建后不会删除。
type HashPool[I Info[C, R], C any, R Resource] struct {
	cfg     Config
	buckets cmap.ConcurrentMap[I, *bucket[R]]
	owner   *owner
}

// New 创建一个资源池，cfg 可以为空
func New[I Info[C, R], C any, R Resource](cfg *Config) *HashPool[I, C, R] {
	conf := withDefaults(cfg)
	seed := maphash.MakeSeed()
	p := &HashPool[I, C, R]{
		cfg: conf,
		buckets: cmap.NewWithCustomShardingFunction[I, *bucket[R]](func(key I) uint32 {
			return uint32(maphash.Comparable(seed, key))
		}),
		owner: &owner{
			name:    conf.Name,
			metrics: conf.Metrics,
		},
	}
	if conf.Registry != nil {
		conf.Registry.Register(conf.Namespace, conf.Name, p)
	}
	return p
}

// Name 池名称
func (p *HashPool[I, C, R]) Name() string {
	return p.cfg.Name
}

// findOrCreate 查找描述对应的 bucket，不存在则创建，是唯一修改 buckets 的地方
func (p *HashPool[I, C, R]) findOrCreate(info I) *bucket[R] {
	if b, ok := p.buckets.Get(info); ok {
		return b
	}
	return p.buckets.Upsert(info, nil, func(exist bool, valueInMap *bucket[R], _ *bucket[R]) *bucket[R] {
		if exist && valueInMap != nil {
			return valueInMap
		}
		return newBucket[R](p.cfg.BucketCap)
	})
}

// TryLease 借出一个资源，优先复用空闲资源，否则在锁外调用 info.Create 新建。
// 创建失败时返回包装了 ErrCreate 的错误，bucket 内容不变。
func (p *HashPool[I, C, R]) TryLease(info I, ctx C) (*Lease[R], error) {
	b := p.findOrCreate(info)
	if res, ok := b.pop(); ok {
		p.owner.leaseOut(true)
		return newLease(res, b, p.owner, p.cfg.TrackLeaks), nil
	}

	res, err := info.Create(ctx)
	if err != nil {
		p.owner.createFailed()
		err = newCreateError(p.cfg.Name, info, err)
		logs.DefaultLogger().Error("[hashpool] create error:", err.Error())
		return nil, err
	}
	p.owner.leaseOut(false)
	return newLease(res, b, p.owner, p.cfg.TrackLeaks), nil
}

// Lease 同 TryLease，创建失败直接 panic
func (p *HashPool[I, C, R]) Lease(info I, ctx C) *Lease[R] {
	l, err := p.TryLease(info, ctx)
	if err != nil {
		panic(err)
	}
	return l
}

// With 借出资源执行 fun，无论 fun 返回错误还是 panic，资源都会归还
func (p *HashPool[I, C, R]) With(info I, ctx C, fun func(res R) error) error {
	l, err := p.TryLease(info, ctx)
	if err != nil {
		return err
	}
	defer l.Release()
	return fun(l.Get())
}

// Warm 并发预先创建 n 个资源放入 bucket，创建在锁外进行，ctx 需要支持并发使用。
// 部分失败时，成功创建的资源仍然会放入，返回第一个错误。
func (p *HashPool[I, C, R]) Warm(info I, ctx C, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWarm, n)
	}
	if n == 0 {
		return nil
	}
	b := p.findOrCreate(info)

	built := make([]R, n)
	done := make([]bool, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			res, err := info.Create(ctx)
			if err != nil {
				return err
			}
			built[i], done[i] = res, true
			return nil
		})
	}
	err := g.Wait()

	list := lo.Filter(built, func(_ R, i int) bool {
		return done[i]
	})
	b.pushAll(list)
	p.owner.created.Add(int64(len(list)))
	p.owner.metrics.observeWarm(p.cfg.Name, len(list))

	if err != nil {
		failed := n - len(list)
		p.owner.failures.Add(int64(failed))
		for j := 0; j < failed; j++ {
			p.owner.metrics.observeCreateFailure(p.cfg.Name)
		}
		return newCreateError(p.cfg.Name, info, err)
	}
	return nil
}

// Idle 某个描述下当前空闲资源数，不会创建 bucket
func (p *HashPool[I, C, R]) Idle(info I) int {
	if b, ok := p.buckets.Get(info); ok {
		return b.len()
	}
	return 0
}

// Len 已出现过的描述数量
func (p *HashPool[I, C, R]) Len() int {
	return p.buckets.Count()
}

// Stats 统计快照，各字段分别读取，并发时不保证彼此一致
func (p *HashPool[I, C, R]) Stats() Stats {
	st := p.owner.snapshot()
	list := lo.Values(p.buckets.Items())
	st.Buckets = len(list)
	st.Idle = lo.SumBy(list, func(b *bucket[R]) int {
		return b.len()
	})
	return st
}

// Infos 已出现过的所有描述
func (p *HashPool[I, C, R]) Infos() []I {
	return p.buckets.Keys()
}

func (p *HashPool[I, C, R]) String() string {
	st := p.Stats()
	return fmt.Sprintf("HashPool{name: %s, buckets: %d, idle: %d, outstanding: %d}",
		p.cfg.Name, st.Buckets, st.Idle, st.Outstanding)
}
