package dto

import (
	"fmt"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// CreateBookRequest HTTP创建图书请求
// Price单位为分(5900=59.00元),避免浮点数精度问题
type CreateBookRequest struct {
	ISBN        string `json:"isbn" binding:"required,max=20" example:"9787115428028"`
	Title       string `json:"title" binding:"required,max=200" example:"Go语言实战"`
	Description string `json:"description" binding:"max=5000" example:"一本关于Go语言的实战书籍"`
	PubYear     int    `json:"pub_year" binding:"omitempty,min=1000,max=9999" example:"2017"`
	Price       int64  `json:"price" binding:"required,min=1,max=99999999" example:"5900"` // 价格(分)
	Category    string `json:"category" binding:"max=50" example:"编程"`
	StockQty    int    `json:"stock_qty" binding:"min=0" example:"100"`
	Threshold   int    `json:"threshold" binding:"min=0" example:"10"`
	PublisherID *uint  `json:"publisher_id" example:"1"`
}

// UpdateBookRequest HTTP更新图书请求
// 所有字段可选,只更新请求中出现的字段(部分更新)
type UpdateBookRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	PubYear     *int    `json:"pub_year" binding:"omitempty,min=1000,max=9999"`
	Price       *int64  `json:"price" binding:"omitempty,min=1,max=99999999"`
	Category    *string `json:"category" binding:"omitempty,max=50"`
	StockQty    *int    `json:"stock_qty" binding:"omitempty,min=0"`
	Threshold   *int    `json:"threshold" binding:"omitempty,min=0"`
	PublisherID *uint   `json:"publisher_id"`
}

// ToUpdateParams HTTP请求 → 领域层更新参数
func (r *UpdateBookRequest) ToUpdateParams() book.UpdateParams {
	return book.UpdateParams{
		Title:       r.Title,
		Description: r.Description,
		PubYear:     r.PubYear,
		Price:       r.Price,
		Category:    r.Category,
		StockQty:    r.StockQty,
		Threshold:   r.Threshold,
		PublisherID: r.PublisherID,
	}
}

// SearchBooksRequest HTTP组合查询请求(query string绑定)
type SearchBooksRequest struct {
	Title      string `form:"title" binding:"omitempty,max=200"`
	Category   string `form:"category" binding:"omitempty,max=50"`
	AuthorName string `form:"author" binding:"omitempty,max=100"`
	MinPrice   *int64 `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice   *int64 `form:"max_price" binding:"omitempty,min=0"`
	MinYear    *int   `form:"min_year" binding:"omitempty,min=1000,max=9999"`
	MaxYear    *int   `form:"max_year" binding:"omitempty,min=1000,max=9999"`
}

// ToSearchParams HTTP请求 → 领域层查询参数
func (r *SearchBooksRequest) ToSearchParams() book.SearchParams {
	return book.SearchParams{
		Title:      r.Title,
		Category:   r.Category,
		AuthorName: r.AuthorName,
		MinPrice:   r.MinPrice,
		MaxPrice:   r.MaxPrice,
		MinYear:    r.MinYear,
		MaxYear:    r.MaxYear,
	}
}

// BookResponse HTTP图书响应
// 不返回Photo二进制,封面走独立的photo端点
type BookResponse struct {
	ISBN        string `json:"isbn" example:"9787115428028"`
	Title       string `json:"title" example:"Go语言实战"`
	Description string `json:"description,omitempty"`
	PubYear     int    `json:"pub_year" example:"2017"`
	Price       int64  `json:"price" example:"5900"`       // 价格(分)
	PriceYuan   string `json:"price_yuan" example:"59.00"` // 价格(元),方便前端显示
	Category    string `json:"category" example:"编程"`
	StockQty    int    `json:"stock_qty" example:"100"`
	Threshold   int    `json:"threshold" example:"10"`
	PublisherID *uint  `json:"publisher_id,omitempty"`
	LowStock    bool   `json:"low_stock" example:"false"`
}

// ToBookResponse 领域实体 → HTTP响应
func ToBookResponse(b *book.Book) *BookResponse {
	return &BookResponse{
		ISBN:        b.ISBN,
		Title:       b.Title,
		Description: b.Description,
		PubYear:     b.PubYear,
		Price:       b.Price,
		PriceYuan:   FormatPriceYuan(b.Price),
		Category:    b.Category,
		StockQty:    b.StockQty,
		Threshold:   b.Threshold,
		PublisherID: b.PublisherID,
		LowStock:    b.IsLowStock(),
	}
}

// ToBookResponses 领域实体列表 → HTTP响应列表
func ToBookResponses(books []*book.Book) []*BookResponse {
	result := make([]*BookResponse, len(books))
	for i, b := range books {
		result[i] = ToBookResponse(b)
	}
	return result
}

// BookAuthorsRequest 图书作者关联请求(添加/移除共用)
type BookAuthorsRequest struct {
	AuthorIDs []uint `json:"author_ids" binding:"required,min=1"`
}

// FormatPriceYuan 格式化价格(分→元)
// 例如:5900分 → "59.00"
func FormatPriceYuan(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
