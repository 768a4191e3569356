package puborder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPublisherOrder 测试进货单创建
func TestNewPublisherOrder(t *testing.T) {
	po := NewPublisherOrder("9787111213826", 50)

	assert.Equal(t, "9787111213826", po.ISBN)
	assert.Equal(t, 50, po.Quantity)
	assert.Equal(t, StatusPending, po.Status, "新建进货单应为Pending状态")
	assert.True(t, po.IsPending())
	assert.False(t, po.OrderDate.IsZero())
}

// TestConfirm 测试进货单确认
// 状态机只有一条单向边:Pending -> Confirmed,重复确认被拒绝
func TestConfirm(t *testing.T) {
	po := NewPublisherOrder("9787111213826", 50)

	// 第一次确认成功
	err := po.Confirm()
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, po.Status)
	assert.False(t, po.IsPending())

	// 重复确认被拒绝(否则会重复加库存)
	err = po.Confirm()
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)
	assert.Equal(t, StatusConfirmed, po.Status, "状态不应被改变")
}

// TestStatusString 测试状态文本
func TestStatusString(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.String())
	assert.Equal(t, "Confirmed", StatusConfirmed.String())
	assert.Equal(t, "Unknown", Status(99).String())
}
