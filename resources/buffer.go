package resources

import (
	"errors"
	"fmt"
	"github.com/magic-lib/go-plat-pool/hashpool"
)

var (
	_ hashpool.Resource              = (*Buffer)(nil)
	_ hashpool.Info[Limits, *Buffer] = BufferInfo{}
)

// ErrCapacityExceeded 请求的容量超过上下文限制
var ErrCapacityExceeded = errors.New("resources: buffer capacity exceeded")

// Limits 创建 Buffer 时的限制，MaxCap 为 0 表示不限制，不参与缓存key
type Limits struct {
	MaxCap int
}

// BufferInfo 按容量区分的 Buffer 描述
type BufferInfo struct {
	Cap int
}

// Buffer 可复用的字节缓冲
type Buffer struct {
	Data []byte
}

// Create 创建一个长度为0、容量为 Cap 的 Buffer
func (i BufferInfo) Create(limits Limits) (*Buffer, error) {
	if i.Cap < 0 {
		return nil, fmt.Errorf("resources: negative buffer capacity %d", i.Cap)
	}
	if limits.MaxCap > 0 && i.Cap > limits.MaxCap {
		return nil, fmt.Errorf("%w: %d > %d", ErrCapacityExceeded, i.Cap, limits.MaxCap)
	}
	return &Buffer{
		Data: make([]byte, 0, i.Cap),
	}, nil
}

// Clear 长度清零，保留容量
func (b *Buffer) Clear() {
	b.Data = b.Data[:0]
}

// Write 实现 io.Writer
func (b *Buffer) Write(p []byte) (int, error) {
	b.Data = append(b.Data, p...)
	return len(p), nil
}

func (b *Buffer) Len() int {
	return len(b.Data)
}

func (b *Buffer) Cap() int {
	return cap(b.Data)
}
