// Package metrics 提供基于Prometheus的指标收集
//
// 指标设计：
// - http_requests_total: HTTP请求总数（按方法/路径/状态码）
// - http_request_duration_seconds: HTTP请求耗时分布
// - orders_placed_total: 下单成功总数
// - order_amount_fen: 订单金额分布（分）
// - puborders_confirmed_total: 进货单确认总数
//
// 通过GET /metrics暴露，由Prometheus Server定期抓取
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal HTTP请求总数
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookshop_http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration HTTP请求耗时（秒）
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookshop_http_request_duration_seconds",
			Help:    "HTTP请求耗时分布",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// OrdersPlacedTotal 下单成功总数
	OrdersPlacedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookshop_orders_placed_total",
			Help: "下单成功总数",
		},
	)

	// OrderAmountFen 订单金额分布（分）
	OrderAmountFen = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bookshop_order_amount_fen",
			Help:    "订单金额分布（单位：分）",
			Buckets: []float64{500, 1000, 2500, 5000, 10000, 25000, 50000, 100000},
		},
	)

	// PubOrdersConfirmedTotal 进货单确认总数
	PubOrdersConfirmedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookshop_puborders_confirmed_total",
			Help: "进货单确认总数",
		},
	)
)

// InitMetrics 注册所有指标
// 必须在服务启动时调用一次（重复注册会panic）
func InitMetrics() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		OrdersPlacedTotal,
		OrderAmountFen,
		PubOrdersConfirmedTotal,
	)
}

// Handler 返回/metrics端点的HTTP处理器
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// GinMiddleware HTTP指标采集中间件
// 使用c.FullPath()而非c.Request.URL.Path，避免路径参数导致标签爆炸
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unknown" // 未匹配到路由（404）
		}

		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}
