package hashpool

import (
	"github.com/magic-lib/go-plat-utils/logs"
	"sync/atomic"
)

// Stats 资源池的统计快照
type Stats struct {
	Buckets        int   // 已出现过的描述数量
	Idle           int   // 所有描述下的空闲资源总数
	Hits           int64 // 复用空闲资源的次数
	Misses         int64 // 需要新建资源的次数
	Created        int64 // 成功创建的资源数量，包含预热
	CreateFailures int64 // 创建失败次数
	Returns        int64 // 归还次数
	Outstanding    int64 // 当前借出未归还的租约数
	Leaked         int64 // 未归还就被回收的租约数
}

// owner 池与租约共享的统计信息
type owner struct {
	name     string
	metrics  *Metrics
	hits     atomic.Int64
	misses   atomic.Int64
	created  atomic.Int64
	failures atomic.Int64
	returns  atomic.Int64
	leased   atomic.Int64
	leaked   atomic.Int64
}

func (o *owner) leaseOut(hit bool) {
	if hit {
		o.hits.Add(1)
	} else {
		o.misses.Add(1)
		o.created.Add(1)
	}
	o.leased.Add(1)
	o.metrics.observeLease(o.name, hit)
}

func (o *owner) createFailed() {
	o.misses.Add(1)
	o.failures.Add(1)
	o.metrics.observeLease(o.name, false)
	o.metrics.observeCreateFailure(o.name)
}

func (o *owner) returned() {
	o.returns.Add(1)
	o.leased.Add(-1)
	o.metrics.observeReturn(o.name)
}

// leak 由 runtime cleanup 调用，此时租约已不可达，资源随之丢失
func (o *owner) leak() {
	o.leaked.Add(1)
	o.leased.Add(-1)
	o.metrics.observeLeak(o.name)
	logs.DefaultLogger().Warn("[hashpool] lease collected without Release, resource dropped:", o.name)
}

func (o *owner) snapshot() Stats {
	return Stats{
		Hits:           o.hits.Load(),
		Misses:         o.misses.Load(),
		Created:        o.created.Load(),
		CreateFailures: o.failures.Load(),
		Returns:        o.returns.Load(),
		Outstanding:    o.leased.Load(),
		Leaked:         o.leaked.Load(),
	}
}
