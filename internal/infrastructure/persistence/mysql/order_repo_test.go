package mysql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrUint(v uint) *uint       { return &v }
func ptrString(v string) *string { return &v }
func ptrInt(v int) *int          { return &v }
func ptrInt64(v int64) *int64    { return &v }

// TestGroupOrderRows 测试平铺联表行到嵌套订单的组装
// 一笔订单N行明细在SQL结果中产生N行,组装后应合并为一个订单
func TestGroupOrderRows(t *testing.T) {
	date := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	rows := []orderRow{
		{ID: 1, CustomerID: 7, Username: "zhangsan", OrderDate: date, Total: 23700,
			ItemID: ptrUint(10), ISBN: ptrString("9787111213826"), Quantity: ptrInt(2), UnitPrice: ptrInt64(8900)},
		{ID: 1, CustomerID: 7, Username: "zhangsan", OrderDate: date, Total: 23700,
			ItemID: ptrUint(11), ISBN: ptrString("9787115428028"), Quantity: ptrInt(1), UnitPrice: ptrInt64(5900)},
		{ID: 2, CustomerID: 8, Username: "lisi", OrderDate: date, Total: 5900,
			ItemID: ptrUint(12), ISBN: ptrString("9787115428028"), Quantity: ptrInt(1), UnitPrice: ptrInt64(5900)},
	}

	orders := groupOrderRows(rows)

	require.Len(t, orders, 2, "3行应组装为2个订单")

	first := orders[0]
	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, "zhangsan", first.CustomerName)
	assert.Equal(t, int64(23700), first.Total)
	require.Len(t, first.Items, 2)
	assert.Equal(t, "9787111213826", first.Items[0].ISBN)
	assert.Equal(t, uint(1), first.Items[0].OrderID)
	assert.Equal(t, int64(8900), first.Items[0].UnitPrice)

	second := orders[1]
	assert.Equal(t, uint(2), second.ID)
	require.Len(t, second.Items, 1)
}

// TestGroupOrderRowsPreservesOrder 测试组装保持SQL返回的先后顺序
func TestGroupOrderRowsPreservesOrder(t *testing.T) {
	rows := []orderRow{
		{ID: 3, CustomerID: 1, Username: "a", ItemID: ptrUint(1), ISBN: ptrString("x"), Quantity: ptrInt(1), UnitPrice: ptrInt64(100)},
		{ID: 1, CustomerID: 1, Username: "a", ItemID: ptrUint(2), ISBN: ptrString("y"), Quantity: ptrInt(1), UnitPrice: ptrInt64(100)},
		{ID: 2, CustomerID: 1, Username: "a", ItemID: ptrUint(3), ISBN: ptrString("z"), Quantity: ptrInt(1), UnitPrice: ptrInt64(100)},
	}

	orders := groupOrderRows(rows)

	require.Len(t, orders, 3)
	assert.Equal(t, uint(3), orders[0].ID, "排序由SQL决定,组装不重排")
	assert.Equal(t, uint(1), orders[1].ID)
	assert.Equal(t, uint(2), orders[2].ID)
}

// TestGroupOrderRowsNullItem 测试无明细订单(LEFT JOIN产生NULL明细列)
func TestGroupOrderRowsNullItem(t *testing.T) {
	rows := []orderRow{
		{ID: 1, CustomerID: 7, Username: "zhangsan", Total: 0},
	}

	orders := groupOrderRows(rows)

	require.Len(t, orders, 1)
	assert.Empty(t, orders[0].Items, "NULL明细列不应产生明细项")
}

// TestGroupOrderRowsEmpty 测试空结果
func TestGroupOrderRowsEmpty(t *testing.T) {
	assert.Empty(t, groupOrderRows(nil))
}

// TestDisplayName 测试顾客显示名口径(与user.DisplayName一致)
func TestDisplayName(t *testing.T) {
	assert.Equal(t, "zhangsan", displayName("zhangsan", "", ""), "姓名均空回退到用户名")
	assert.Equal(t, "三 张", displayName("zhangsan", "三", "张"))
	assert.Equal(t, "三", displayName("zhangsan", "三", ""), "去除首尾空格")
}
