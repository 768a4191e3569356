package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 运行前提:
// 1. 服务已在本地启动(go run ./cmd/api)
// 2. MySQL/Redis可用
// 3. 管理员相关用例需要预置管理员账号(见AdminUsername/AdminPassword)

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second

	// AdminUsername 预置管理员账号(注册接口只能创建Customer,管理员需预先入库)
	AdminUsername = "admin"
	AdminPassword = "Admin12345"
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// RegisterData 注册响应数据
type RegisterData struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginData 登录响应数据
type LoginData struct {
	User struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// BookData 图书响应数据
type BookData struct {
	ISBN      string `json:"isbn"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	PriceYuan string `json:"price_yuan"`
	StockQty  int    `json:"stock_qty"`
	Threshold int    `json:"threshold"`
	LowStock  bool   `json:"low_stock"`
}

// CartData 购物车响应数据
type CartData struct {
	Lines []struct {
		CartID    uint   `json:"cart_id"`
		ISBN      string `json:"isbn"`
		Title     string `json:"title"`
		Quantity  int    `json:"quantity"`
		UnitPrice int64  `json:"unit_price"`
		LineTotal int64  `json:"line_total"`
	} `json:"lines"`
	Total     int64  `json:"total"`
	TotalYuan string `json:"total_yuan"`
}

// OrderData 订单响应数据
type OrderData struct {
	ID        uint   `json:"id"`
	Total     int64  `json:"total"`
	TotalYuan string `json:"total_yuan"`
	CCNumber  string `json:"cc_number"`
	Items     []struct {
		ISBN      string `json:"isbn"`
		Quantity  int    `json:"quantity"`
		UnitPrice int64  `json:"unit_price"`
	} `json:"items"`
}

// PubOrderData 进货单响应数据
type PubOrderData struct {
	ID        uint   `json:"id"`
	ISBN      string `json:"isbn"`
	BookTitle string `json:"book_title"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
}

// doJSON 发送带JSON体的请求并解析统一响应
func doJSON(t *testing.T, method, url string, data interface{}, token string) *Response {
	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(respBody, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(respBody))

	return &result
}

// PostJSON 发送POST请求并解析JSON响应
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, "POST", url, data, token)
}

// PutJSON 发送PUT请求并解析JSON响应
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, "PUT", url, data, token)
}

// GetJSON 发送GET请求并解析JSON响应
func GetJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, "GET", url, nil, token)
}

// DeleteJSON 发送DELETE请求并解析JSON响应
func DeleteJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, "DELETE", url, nil, token)
}

// GenerateTestUsername 生成唯一的测试用户名
// 使用时间戳避免测试重复运行时用户名冲突
func GenerateTestUsername(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano()%1000000000)
}

// GenerateTestISBN 生成唯一的测试ISBN(978前缀+10位数字)
func GenerateTestISBN() string {
	timestamp := time.Now().UnixNano()
	return fmt.Sprintf("978%010d", timestamp%10000000000)
}

// RegisterTestUser 注册测试顾客并返回Token
func RegisterTestUser(t *testing.T, prefix string) (username string, token string) {
	username = GenerateTestUsername(prefix)
	registerReq := map[string]string{
		"username":   username,
		"password":   "Test1234",
		"first_name": "测试",
		"last_name":  "用户",
		"email":      username + "@test.com",
	}

	registerResp := PostJSON(t, BaseURL+"/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "注册失败: %s", registerResp.Message)

	loginReq := map[string]string{
		"username": username,
		"password": "Test1234",
	}

	loginResp := PostJSON(t, BaseURL+"/login", loginReq, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var loginData LoginData
	err := json.Unmarshal(loginResp.Data, &loginData)
	require.NoError(t, err, "解析登录响应失败")

	return username, loginData.AccessToken
}

// LoginTestAdmin 登录预置管理员并返回Token
// 管理员账号不存在时跳过用例(注册接口不能创建管理员)
func LoginTestAdmin(t *testing.T) string {
	loginReq := map[string]string{
		"username": AdminUsername,
		"password": AdminPassword,
	}

	loginResp := PostJSON(t, BaseURL+"/login", loginReq, "")
	if loginResp.Code != 0 {
		t.Skipf("管理员账号未预置,跳过: %s", loginResp.Message)
	}

	var loginData LoginData
	err := json.Unmarshal(loginResp.Data, &loginData)
	require.NoError(t, err, "解析登录响应失败")
	require.Equal(t, "Admin", loginData.User.Role, "预置账号必须是管理员")

	return loginData.AccessToken
}

// CreateTestBook 上架测试图书并返回ISBN(需要管理员Token)
func CreateTestBook(t *testing.T, adminToken string, title string, price int64, stock int) string {
	isbn := GenerateTestISBN()
	bookReq := map[string]interface{}{
		"isbn":        isbn,
		"title":       title,
		"description": "集成测试用图书",
		"pub_year":    2024,
		"price":       price,
		"category":    "测试",
		"stock_qty":   stock,
		"threshold":   5,
	}

	bookResp := PostJSON(t, BaseURL+"/books", bookReq, adminToken)
	require.Equal(t, 0, bookResp.Code, "图书上架失败: %s", bookResp.Message)

	return isbn
}
