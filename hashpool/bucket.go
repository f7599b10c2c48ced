package hashpool

import (
	"sync"
)

// bucket 同一个描述下的空闲资源列表，由池和从它借出的所有租约共享
type bucket[R Resource] struct {
	mu   sync.Mutex
	idle []R
}

func newBucket[R Resource](capacity int) *bucket[R] {
	return &bucket[R]{
		idle: make([]R, 0, capacity),
	}
}

// pop 取出最近归还的一个资源
func (b *bucket[R]) pop() (R, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.idle)
	if n == 0 {
		var zero R
		return zero, false
	}
	res := b.idle[n-1]
	var zero R
	b.idle[n-1] = zero
	b.idle = b.idle[:n-1]
	return res, true
}

// push 放回一个已清理的资源
func (b *bucket[R]) push(res R) {
	b.mu.Lock()
	b.idle = append(b.idle, res)
	b.mu.Unlock()
}

func (b *bucket[R]) len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.idle)
}

// pushAll 一次性放回多个资源，只加一次锁
func (b *bucket[R]) pushAll(list []R) {
	if len(list) == 0 {
		return
	}
	b.mu.Lock()
	b.idle = append(b.idle, list...)
	b.mu.Unlock()
}
