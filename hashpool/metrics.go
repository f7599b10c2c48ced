package hashpool

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultHit  = "hit"
	resultMiss = "miss"
)

// Metrics 资源池的 Prometheus 指标，多个池共用，以 pool 标签区分
type Metrics struct {
	leases         *prometheus.CounterVec // 租借次数，按命中与否区分
	createFailures *prometheus.CounterVec // 创建失败次数
	returns        *prometheus.CounterVec // 归还次数
	leaked         *prometheus.CounterVec // 未归还就被回收的租约
	idle           *prometheus.GaugeVec   // 当前空闲资源数
}

// NewMetrics 创建指标并注册，reg 为空时使用默认注册器
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		leases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hashpool",
			Name:      "leases_total",
			Help:      "Total number of leases, labeled by pool and cache result.",
		}, []string{"pool", "result"}),
		createFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hashpool",
			Name:      "create_failures_total",
			Help:      "Total number of failed resource constructions.",
		}, []string{"pool"}),
		returns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hashpool",
			Name:      "returns_total",
			Help:      "Total number of resources cleared and returned to their cache.",
		}, []string{"pool"}),
		leaked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hashpool",
			Name:      "leaked_total",
			Help:      "Total number of leases garbage collected without being released.",
		}, []string{"pool"}),
		idle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "hashpool",
			Name:      "idle",
			Help:      "Number of idle resources held across all caches of a pool.",
		}, []string{"pool"}),
	}
	reg.MustRegister(m.leases, m.createFailures, m.returns, m.leaked, m.idle)
	return m
}

func (m *Metrics) observeLease(pool string, hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.leases.WithLabelValues(pool, resultHit).Inc()
		m.idle.WithLabelValues(pool).Dec()
		return
	}
	m.leases.WithLabelValues(pool, resultMiss).Inc()
}

func (m *Metrics) observeCreateFailure(pool string) {
	if m == nil {
		return
	}
	m.createFailures.WithLabelValues(pool).Inc()
}

func (m *Metrics) observeReturn(pool string) {
	if m == nil {
		return
	}
	m.returns.WithLabelValues(pool).Inc()
	m.idle.WithLabelValues(pool).Inc()
}

func (m *Metrics) observeWarm(pool string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.idle.WithLabelValues(pool).Add(float64(n))
}

func (m *Metrics) observeLeak(pool string) {
	if m == nil {
		return
	}
	m.leaked.WithLabelValues(pool).Inc()
}
