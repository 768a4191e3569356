package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIsLowStock 测试低库存判定
// 业务规则:库存严格小于阈值才算低库存,等于阈值不算
func TestIsLowStock(t *testing.T) {
	tests := []struct {
		name      string
		stockQty  int
		threshold int
		want      bool
	}{
		{"库存低于阈值", 3, 5, true},
		{"库存等于阈值", 5, 5, false},
		{"库存高于阈值", 10, 5, false},
		{"零库存", 0, 1, true},
		{"阈值为零", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Book{StockQty: tt.stockQty, Threshold: tt.threshold}
			assert.Equal(t, tt.want, b.IsLowStock())
		})
	}
}

// TestApply 测试部分更新叠加
// nil字段保留原值,非nil字段覆盖
func TestApply(t *testing.T) {
	b := NewBook("9787111213826", "《Go程序设计》", "入门教程", 2020, 8900, "计算机", 10, 5, nil)

	newPrice := int64(9900)
	newStock := 20
	b.Apply(UpdateParams{
		Price:    &newPrice,
		StockQty: &newStock,
	})

	assert.Equal(t, int64(9900), b.Price, "价格应被覆盖")
	assert.Equal(t, 20, b.StockQty, "库存应被覆盖")
	assert.Equal(t, "《Go程序设计》", b.Title, "未指定字段应保留原值")
	assert.Equal(t, "计算机", b.Category, "未指定字段应保留原值")
	assert.Equal(t, 5, b.Threshold, "未指定字段应保留原值")
}

// TestApplyPublisherID 测试出版社ID的覆盖
func TestApplyPublisherID(t *testing.T) {
	b := NewBook("9787111213826", "《Go程序设计》", "", 2020, 8900, "计算机", 10, 5, nil)
	assert.Nil(t, b.PublisherID)

	pubID := uint(3)
	b.Apply(UpdateParams{PublisherID: &pubID})

	assert.NotNil(t, b.PublisherID)
	assert.Equal(t, uint(3), *b.PublisherID)
}
