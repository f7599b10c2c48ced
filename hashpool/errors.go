package hashpool

import (
	"errors"
	"fmt"
	"github.com/magic-lib/go-plat-utils/conv"
)

var (
	// ErrCreate 资源创建失败，会同时包装调用方返回的原始错误
	ErrCreate = errors.New("hashpool: create resource failed")
	// ErrLeaseReleased 租约已经归还，不能再使用
	ErrLeaseReleased = errors.New("hashpool: lease already released")
	// ErrInvalidWarm 预热数量不合法
	ErrInvalidWarm = errors.New("hashpool: warm count must not be negative")
)

func newCreateError(poolName string, info any, err error) error {
	return fmt.Errorf("%w: pool %s, info %s: %w", ErrCreate, poolName, conv.String(info), err)
}
