package hashpool

// Resource 可池化的资源
type Resource interface {
	// Clear 将资源恢复到可复用的干净状态，保留已分配的底层存储。
	// 必须幂等、不能失败、不能有外部IO，每次归还时都会调用。
	Clear()
}

// Info 资源描述，同时作为缓存的key
// comparable 提供相等与哈希，值拷贝即为克隆；context 不参与key，也不会被保存
// 注意：含有不等于自身的字段值（如 float 的 NaN）的描述永远命中不了已有的桶，
// 每次租借都会新建一个桶并构造资源，且桶不会被回收，使用前应先规整这类字段
type Info[C any, R Resource] interface {
	comparable
	// Create 根据描述和上下文创建一个新资源
	Create(ctx C) (R, error)
}
