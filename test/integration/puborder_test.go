package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 进货模块集成测试
// 关键验证点:
// 1. 进货单创建后处于Pending状态,不影响库存
// 2. 确认到货后状态翻转为Confirmed,库存增加进货数量
// 3. 重复确认被拒绝(防止重复加库存)

// TestPubOrderConfirmFlow 测试进货单创建与确认全流程
func TestPubOrderConfirmFlow(t *testing.T) {
	adminToken := LoginTestAdmin(t)
	isbn := CreateTestBook(t, adminToken, "《进货测试》", 5900, 10)

	// 创建进货单
	createResp := PostJSON(t, BaseURL+"/admin/puborders", map[string]interface{}{
		"isbn":     isbn,
		"quantity": 50,
	}, adminToken)
	require.Equal(t, 0, createResp.Code, "创建进货单失败: %s", createResp.Message)

	var po PubOrderData
	err := json.Unmarshal(createResp.Data, &po)
	require.NoError(t, err)
	assert.NotZero(t, po.ID)
	assert.Equal(t, "Pending", po.Status)
	assert.Equal(t, "《进货测试》", po.BookTitle)

	t.Run("创建进货单不影响库存", func(t *testing.T) {
		bookResp := GetJSON(t, BaseURL+"/books/"+isbn, "")
		var book BookData
		err := json.Unmarshal(bookResp.Data, &book)
		require.NoError(t, err)
		assert.Equal(t, 10, book.StockQty)
	})

	t.Run("确认到货后库存增加", func(t *testing.T) {
		confirmResp := PostJSON(t, fmt.Sprintf("%s/admin/puborders/%d/confirm", BaseURL, po.ID), nil, adminToken)
		require.Equal(t, 0, confirmResp.Code, "确认进货单失败: %s", confirmResp.Message)

		var confirmed PubOrderData
		err := json.Unmarshal(confirmResp.Data, &confirmed)
		require.NoError(t, err)
		assert.Equal(t, "Confirmed", confirmed.Status)

		// 库存:10 + 50 = 60
		bookResp := GetJSON(t, BaseURL+"/books/"+isbn, "")
		var book BookData
		err = json.Unmarshal(bookResp.Data, &book)
		require.NoError(t, err)
		assert.Equal(t, 60, book.StockQty, "确认到货应把进货数量加进库存")

		t.Logf("✓ 进货确认成功,库存 10 -> %d", book.StockQty)
	})

	t.Run("重复确认被拒绝", func(t *testing.T) {
		resp := PostJSON(t, fmt.Sprintf("%s/admin/puborders/%d/confirm", BaseURL, po.ID), nil, adminToken)
		assert.NotEqual(t, 0, resp.Code, "重复确认应失败")

		// 库存不应再次增加
		bookResp := GetJSON(t, BaseURL+"/books/"+isbn, "")
		var book BookData
		err := json.Unmarshal(bookResp.Data, &book)
		require.NoError(t, err)
		assert.Equal(t, 60, book.StockQty, "重复确认不应重复加库存")
	})
}

// TestPubOrderValidation 测试进货单参数校验
func TestPubOrderValidation(t *testing.T) {
	adminToken := LoginTestAdmin(t)

	t.Run("不存在的图书", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/admin/puborders", map[string]interface{}{
			"isbn":     "9780000000000",
			"quantity": 10,
		}, adminToken)
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("非法数量", func(t *testing.T) {
		isbn := CreateTestBook(t, adminToken, "《数量校验》", 5900, 10)
		resp := PostJSON(t, BaseURL+"/admin/puborders", map[string]interface{}{
			"isbn":     isbn,
			"quantity": 0,
		}, adminToken)
		assert.NotEqual(t, 0, resp.Code)
	})
}

// TestPendingPubOrderFilter 测试待确认进货单过滤
func TestPendingPubOrderFilter(t *testing.T) {
	adminToken := LoginTestAdmin(t)
	isbn := CreateTestBook(t, adminToken, "《待确认过滤》", 5900, 10)

	createResp := PostJSON(t, BaseURL+"/admin/puborders", map[string]interface{}{
		"isbn":     isbn,
		"quantity": 5,
	}, adminToken)
	require.Equal(t, 0, createResp.Code)

	var po PubOrderData
	err := json.Unmarshal(createResp.Data, &po)
	require.NoError(t, err)

	resp := GetJSON(t, BaseURL+"/admin/puborders?status=pending", adminToken)
	require.Equal(t, 0, resp.Code, "查询待确认进货单失败: %s", resp.Message)

	var orders []PubOrderData
	err = json.Unmarshal(resp.Data, &orders)
	require.NoError(t, err)

	for _, o := range orders {
		assert.Equal(t, "Pending", o.Status, "过滤结果应全部为Pending")
	}

	found := false
	for _, o := range orders {
		if o.ID == po.ID {
			found = true
		}
	}
	assert.True(t, found, "新建的进货单应出现在待确认列表")
}
