package dto

import (
	"github.com/xiebiao/bookshop/internal/domain/order"
)

// PlaceOrderRequest HTTP结算下单请求
// 订单内容来自服务端购物车,前端只提交支付信息
type PlaceOrderRequest struct {
	CCNumber string `json:"cc_number" binding:"required,min=12,max=19" example:"4111111111111111"`
	CCExpiry string `json:"cc_expiry" binding:"required,len=5" example:"12/27"`
}

// OrderItemResponse HTTP订单明细响应
// UnitPrice是下单时的价格快照
type OrderItemResponse struct {
	ISBN      string `json:"isbn" example:"9787115428028"`
	Quantity  int    `json:"quantity" example:"2"`
	UnitPrice int64  `json:"unit_price" example:"5900"`
	LineTotal int64  `json:"line_total" example:"11800"`
}

// OrderResponse HTTP订单响应
// 卡号脱敏后返回,绝不回传完整卡号
type OrderResponse struct {
	ID           uint                `json:"id" example:"1"`
	CustomerID   uint                `json:"customer_id" example:"1"`
	CustomerName string              `json:"customer_name,omitempty" example:"张三"`
	OrderDate    string              `json:"order_date" example:"2024-11-06 10:30:00"`
	Total        int64               `json:"total" example:"11800"`
	TotalYuan    string              `json:"total_yuan" example:"118.00"`
	CCNumber     string              `json:"cc_number" example:"**** **** **** 1111"`
	Items        []OrderItemResponse `json:"items"`
}

// ToOrderResponse 领域实体 → HTTP响应
func ToOrderResponse(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ISBN:      item.ISBN,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.UnitPrice * int64(item.Quantity),
		}
	}

	return &OrderResponse{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		OrderDate:    o.OrderDate.Format("2006-01-02 15:04:05"),
		Total:        o.Total,
		TotalYuan:    FormatPriceYuan(o.Total),
		CCNumber:     o.MaskedCCNumber(),
		Items:        items,
	}
}

// ToOrderResponses 领域实体列表 → HTTP响应列表
func ToOrderResponses(orders []*order.Order) []*OrderResponse {
	result := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		result[i] = ToOrderResponse(o)
	}
	return result
}
