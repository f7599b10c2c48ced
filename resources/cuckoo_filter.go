package resources

import (
	"fmt"
	"github.com/magic-lib/go-plat-pool/hashpool"
	cuckoo "github.com/seiflotfy/cuckoofilter"
)

var (
	_ hashpool.Resource                = (*Filter)(nil)
	_ hashpool.Info[struct{}, *Filter] = FilterInfo{}
)

// FilterInfo 按容量区分的布谷鸟过滤器描述
type FilterInfo struct {
	Capacity uint
}

// Filter 可复用的布谷鸟过滤器
type Filter struct {
	*cuckoo.Filter
}

// Create 容量为0时返回错误
func (i FilterInfo) Create(_ struct{}) (*Filter, error) {
	if i.Capacity == 0 {
		return nil, fmt.Errorf("resources: cuckoo filter capacity is zero")
	}
	return &Filter{
		Filter: cuckoo.NewFilter(i.Capacity),
	}, nil
}

// Clear 清空过滤器，保留桶数组
func (f *Filter) Clear() {
	f.Reset()
}
