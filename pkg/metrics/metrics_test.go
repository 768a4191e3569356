package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// TestCounters 测试业务Counter递增
// 指标注册(InitMetrics)只影响/metrics暴露,不影响计数本身
func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(OrdersPlacedTotal)

	OrdersPlacedTotal.Inc()
	OrdersPlacedTotal.Inc()

	assert.Equal(t, before+2, testutil.ToFloat64(OrdersPlacedTotal))

	before = testutil.ToFloat64(PubOrdersConfirmedTotal)
	PubOrdersConfirmedTotal.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(PubOrdersConfirmedTotal))
}

// TestHTTPRequestsTotal 测试带标签的请求计数
func TestHTTPRequestsTotal(t *testing.T) {
	counter := HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/books", "200")
	before := testutil.ToFloat64(counter)

	counter.Inc()
	counter.Inc()

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
