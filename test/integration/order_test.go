package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 订单模块集成测试
// 核心路径:加购 -> 结算下单 -> 历史订单
// 关键验证点:
// 1. 金额按数据库当前价格计算,明细写入价格快照
// 2. 下单与清空购物车在同一事务
// 3. 下单不扣减库存
// 4. 卡号在响应中脱敏

// TestCartFlow 测试购物车的增改删
func TestCartFlow(t *testing.T) {
	adminToken := LoginTestAdmin(t)
	_, token := RegisterTestUser(t, "cart")
	isbn := CreateTestBook(t, adminToken, "《购物车测试》", 5900, 10)

	t.Run("空车查询报错", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/cart", token)
		assert.NotEqual(t, 0, resp.Code, "空车应返回错误")
	})

	t.Run("加购与合并", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/cart/items", map[string]interface{}{
			"isbn":     isbn,
			"quantity": 2,
		}, token)
		require.Equal(t, 0, resp.Code, "加购失败: %s", resp.Message)

		// 同一本书再次加购:合并累加,不新增行
		resp = PostJSON(t, BaseURL+"/cart/items", map[string]interface{}{
			"isbn":     isbn,
			"quantity": 3,
		}, token)
		require.Equal(t, 0, resp.Code, "二次加购失败: %s", resp.Message)

		cartResp := GetJSON(t, BaseURL+"/cart", token)
		require.Equal(t, 0, cartResp.Code)

		var cart CartData
		err := json.Unmarshal(cartResp.Data, &cart)
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1, "同一本书应合并为一行")
		assert.Equal(t, 5, cart.Lines[0].Quantity, "数量应累加为2+3=5")
		assert.Equal(t, int64(5900*5), cart.Total)
		assert.Equal(t, "295.00", cart.TotalYuan)
	})

	t.Run("修改数量与删除", func(t *testing.T) {
		cartResp := GetJSON(t, BaseURL+"/cart", token)
		var cart CartData
		err := json.Unmarshal(cartResp.Data, &cart)
		require.NoError(t, err)
		cartID := cart.Lines[0].CartID

		resp := PutJSON(t, fmt.Sprintf("%s/cart/items/%d", BaseURL, cartID), map[string]interface{}{
			"quantity": 1,
		}, token)
		require.Equal(t, 0, resp.Code, "修改数量失败: %s", resp.Message)

		resp = DeleteJSON(t, fmt.Sprintf("%s/cart/items/%d", BaseURL, cartID), token)
		require.Equal(t, 0, resp.Code, "删除条目失败: %s", resp.Message)

		check := GetJSON(t, BaseURL+"/cart", token)
		assert.NotEqual(t, 0, check.Code, "删除后购物车应为空")
	})
}

// TestPlaceOrder 测试结算下单主流程
func TestPlaceOrder(t *testing.T) {
	adminToken := LoginTestAdmin(t)
	_, token := RegisterTestUser(t, "order")

	isbn1 := CreateTestBook(t, adminToken, "《下单测试A》", 1000, 10)
	isbn2 := CreateTestBook(t, adminToken, "《下单测试B》", 500, 10)

	addItem := func(isbn string, qty int) {
		resp := PostJSON(t, BaseURL+"/cart/items", map[string]interface{}{
			"isbn":     isbn,
			"quantity": qty,
		}, token)
		require.Equal(t, 0, resp.Code, "加购失败: %s", resp.Message)
	}
	addItem(isbn1, 2)
	addItem(isbn2, 1)

	resp := PostJSON(t, BaseURL+"/orders", map[string]string{
		"cc_number": "4111111111111111",
		"cc_expiry": "12/27",
	}, token)
	require.Equal(t, 0, resp.Code, "下单失败: %s", resp.Message)

	var data OrderData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err)

	// 金额:1000*2 + 500*1 = 2500分
	assert.NotZero(t, data.ID)
	assert.Equal(t, int64(2500), data.Total)
	assert.Equal(t, "25.00", data.TotalYuan)
	assert.Len(t, data.Items, 2)
	assert.Equal(t, "**** **** **** 1111", data.CCNumber, "卡号应脱敏")

	t.Logf("✓ 下单成功: id=%d total=%s元", data.ID, data.TotalYuan)

	t.Run("下单后购物车被清空", func(t *testing.T) {
		cartResp := GetJSON(t, BaseURL+"/cart", token)
		assert.NotEqual(t, 0, cartResp.Code)
	})

	t.Run("下单不扣减库存", func(t *testing.T) {
		bookResp := GetJSON(t, BaseURL+"/books/"+isbn1, "")
		var book BookData
		err := json.Unmarshal(bookResp.Data, &book)
		require.NoError(t, err)
		assert.Equal(t, 10, book.StockQty, "库存只在进货确认时变动")
	})

	t.Run("空购物车不能下单", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/orders", map[string]string{
			"cc_number": "4111111111111111",
			"cc_expiry": "12/27",
		}, token)
		assert.NotEqual(t, 0, resp.Code, "空车下单应被拒绝")
	})

	t.Run("历史订单可查询", func(t *testing.T) {
		listResp := GetJSON(t, BaseURL+"/orders", token)
		require.Equal(t, 0, listResp.Code, "查询历史订单失败: %s", listResp.Message)

		var orders []OrderData
		err := json.Unmarshal(listResp.Data, &orders)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, data.ID, orders[0].ID)
	})

	t.Run("不能查看他人订单", func(t *testing.T) {
		_, otherToken := RegisterTestUser(t, "peeker")

		resp := GetJSON(t, fmt.Sprintf("%s/orders/%d", BaseURL, data.ID), otherToken)
		assert.NotEqual(t, 0, resp.Code, "他人订单应拒绝访问")
	})
}

// TestPriceSnapshot 测试价格快照
// 下单后商家改价,历史订单的明细单价与总额不变
func TestPriceSnapshot(t *testing.T) {
	adminToken := LoginTestAdmin(t)
	_, token := RegisterTestUser(t, "snapshot")

	isbn := CreateTestBook(t, adminToken, "《快照测试》", 5900, 10)

	resp := PostJSON(t, BaseURL+"/cart/items", map[string]interface{}{
		"isbn":     isbn,
		"quantity": 1,
	}, token)
	require.Equal(t, 0, resp.Code)

	orderResp := PostJSON(t, BaseURL+"/orders", map[string]string{
		"cc_number": "4111111111111111",
		"cc_expiry": "12/27",
	}, token)
	require.Equal(t, 0, orderResp.Code, "下单失败: %s", orderResp.Message)

	var placed OrderData
	err := json.Unmarshal(orderResp.Data, &placed)
	require.NoError(t, err)

	// 改价
	updateResp := PutJSON(t, BaseURL+"/books/"+isbn, map[string]interface{}{
		"price": 9900,
	}, adminToken)
	require.Equal(t, 0, updateResp.Code, "改价失败: %s", updateResp.Message)

	// 历史订单金额不受改价影响
	check := GetJSON(t, fmt.Sprintf("%s/orders/%d", BaseURL, placed.ID), token)
	require.Equal(t, 0, check.Code)

	var after OrderData
	err = json.Unmarshal(check.Data, &after)
	require.NoError(t, err)
	assert.Equal(t, int64(5900), after.Total, "历史订单总额不应随改价变化")
	require.Len(t, after.Items, 1)
	assert.Equal(t, int64(5900), after.Items[0].UnitPrice, "明细单价是下单时的快照")
}
