package dto

import (
	"github.com/xiebiao/bookshop/internal/domain/cart"
)

// AddCartItemRequest HTTP加入购物车请求
// 同一本书重复加入时数量合并,不产生新条目
type AddCartItemRequest struct {
	ISBN     string `json:"isbn" binding:"required,max=20" example:"9787115428028"`
	Quantity int    `json:"quantity" binding:"required,min=1,max=999" example:"2"`
}

// UpdateCartItemRequest HTTP修改购物车条目请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=999" example:"3"`
}

// CartLineResponse HTTP购物车行响应
// UnitPrice是图书当前价格,下单时以结算时刻的价格为准
type CartLineResponse struct {
	CartID    uint   `json:"cart_id" example:"1"`
	ISBN      string `json:"isbn" example:"9787115428028"`
	Title     string `json:"title" example:"Go语言实战"`
	Quantity  int    `json:"quantity" example:"2"`
	UnitPrice int64  `json:"unit_price" example:"5900"`
	LineTotal int64  `json:"line_total" example:"11800"`
	YuanTotal string `json:"yuan_total" example:"118.00"`
}

// CartResponse HTTP购物车响应
type CartResponse struct {
	Lines     []CartLineResponse `json:"lines"`
	Total     int64              `json:"total" example:"11800"`
	TotalYuan string             `json:"total_yuan" example:"118.00"`
}

// ToCartResponse 领域购物车行 → HTTP响应(含整车合计)
func ToCartResponse(lines []*cart.Line) *CartResponse {
	resp := &CartResponse{
		Lines: make([]CartLineResponse, len(lines)),
	}

	for i, line := range lines {
		lineTotal := line.LineTotal()
		resp.Lines[i] = CartLineResponse{
			CartID:    line.ID,
			ISBN:      line.ISBN,
			Title:     line.Title,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: lineTotal,
			YuanTotal: FormatPriceYuan(lineTotal),
		}
		resp.Total += lineTotal
	}

	resp.TotalYuan = FormatPriceYuan(resp.Total)
	return resp
}
