package hashpool

import (
	"runtime"
	"sync/atomic"
)

// Lease 借出的资源句柄，独占一个资源，直到 Release 时清理并放回来源的 bucket。
// 一个 Lease 只应在一个 goroutine 中使用。
type Lease[R Resource] struct {
	resource R
	bucket   *bucket[R]
	owner    *owner
	released atomic.Bool
	tracked  bool
	cleanup  runtime.Cleanup
}

func newLease[R Resource](res R, b *bucket[R], o *owner, trackLeaks bool) *Lease[R] {
	l := &Lease[R]{
		resource: res,
		bucket:   b,
		owner:    o,
	}
	if trackLeaks {
		l.tracked = true
		l.cleanup = runtime.AddCleanup(l, func(o *owner) {
			o.leak()
		}, o)
	}
	return l
}

// Get 返回借出的资源，归还后调用会 panic
func (l *Lease[R]) Get() R {
	if l.released.Load() {
		panic(ErrLeaseReleased)
	}
	return l.resource
}

// Released 是否已经归还
func (l *Lease[R]) Released() bool {
	return l.released.Load()
}

// Release 清理资源并放回 bucket，只有第一次调用生效，之后的调用直接返回
func (l *Lease[R]) Release() {
	if l == nil || !l.released.CompareAndSwap(false, true) {
		return
	}
	if l.tracked {
		l.cleanup.Stop()
	}

	res := l.resource
	var zero R
	l.resource = zero

	res.Clear()
	l.bucket.push(res)
	l.owner.returned()
}
