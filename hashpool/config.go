package hashpool

const (
	defaultPoolName  = "default"
	defaultBucketCap = 1
)

// Config 资源池配置，零值字段使用默认值
type Config struct {
	Namespace  string    // 命名空间，注册到 Registry 时使用
	Name       string    // 池名称，用于日志和监控
	BucketCap  int       // 每个描述下空闲列表的初始容量
	Metrics    *Metrics  // 监控指标，为空则不统计
	Registry   *Registry // 不为空时，创建后自动注册
	TrackLeaks bool      // 是否检测未归还就被回收的租约
}

// withDefaults 返回补全默认值后的配置拷贝，不修改入参
func withDefaults(cfg *Config) Config {
	if cfg == nil {
		return Config{
			Name:      defaultPoolName,
			BucketCap: defaultBucketCap,
		}
	}
	out := *cfg
	if out.Name == "" {
		out.Name = defaultPoolName
	}
	if out.BucketCap <= 0 {
		out.BucketCap = defaultBucketCap
	}
	return out
}
