// Package hashpool 按描述(Info)分桶复用资源的对象池。
//
// 调用方给出一个可比较的描述和创建所需的上下文，池优先从该描述对应的 bucket 中取出空闲资源，
// 没有时调用 Info.Create 新建。借出的资源包装在 Lease 中，Release 时先 Clear 再放回原来的 bucket。
//
//	pool := hashpool.New[BufferInfo, Limits, *Buffer](nil)
//	lease := pool.Lease(BufferInfo{Cap: 10}, Limits{})
//	defer lease.Release()
//
// 推荐用 With 限定作用域，避免忘记归还：
//
//	err := pool.With(info, ctx, func(buf *Buffer) error { ... })
package hashpool
