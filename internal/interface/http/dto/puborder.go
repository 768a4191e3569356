package dto

import (
	"github.com/xiebiao/bookshop/internal/domain/puborder"
)

// CreatePubOrderRequest HTTP创建进货单请求
type CreatePubOrderRequest struct {
	ISBN     string `json:"isbn" binding:"required,max=20" example:"9787115428028"`
	Quantity int    `json:"quantity" binding:"required,min=1,max=9999" example:"50"`
}

// PubOrderResponse HTTP进货单响应
type PubOrderResponse struct {
	ID        uint   `json:"id" example:"1"`
	ISBN      string `json:"isbn" example:"9787115428028"`
	BookTitle string `json:"book_title,omitempty" example:"Go语言实战"`
	Quantity  int    `json:"quantity" example:"50"`
	Status    string `json:"status" example:"Pending"`
	OrderDate string `json:"order_date" example:"2024-11-06 10:30:00"`
}

// ToPubOrderResponse 领域实体 → HTTP响应
func ToPubOrderResponse(po *puborder.PublisherOrder) *PubOrderResponse {
	return &PubOrderResponse{
		ID:        po.ID,
		ISBN:      po.ISBN,
		BookTitle: po.BookTitle,
		Quantity:  po.Quantity,
		Status:    po.Status.String(),
		OrderDate: po.OrderDate.Format("2006-01-02 15:04:05"),
	}
}

// ToPubOrderResponses 领域实体列表 → HTTP响应列表
func ToPubOrderResponses(orders []*puborder.PublisherOrder) []*PubOrderResponse {
	result := make([]*PubOrderResponse, len(orders))
	for i, po := range orders {
		result[i] = ToPubOrderResponse(po)
	}
	return result
}
