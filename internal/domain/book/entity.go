package book

import (
	"time"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. ISBN作为业务主键(书号全局唯一,数据库层保证唯一性)
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. PublisherID可为空(进货渠道未录入的旧书)
// 4. Photo为封面图片字节(上传接口限制5MB、jpeg/png/webp)
type Book struct {
	ISBN        string // ISBN号(业务主键)
	Title       string // 书名
	Description string // 图书描述
	PubYear     int    // 出版年份
	Price       int64  // 价格(单位:分,1元=100分)
	Category    string // 分类
	StockQty    int    // 库存数量
	Threshold   int    // 低库存阈值
	PublisherID *uint  // 出版社ID(可为空)
	Photo       []byte // 封面图片
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书(工厂方法)
func NewBook(isbn, title, description string, pubYear int, price int64, category string, stockQty, threshold int, publisherID *uint) *Book {
	now := time.Now()
	return &Book{
		ISBN:        isbn,
		Title:       title,
		Description: description,
		PubYear:     pubYear,
		Price:       price,
		Category:    category,
		StockQty:    stockQty,
		Threshold:   threshold,
		PublisherID: publisherID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsLowStock 是否低库存
// 业务规则:库存严格小于阈值才算低库存(StockQty == Threshold不算)
func (b *Book) IsLowStock() bool {
	return b.StockQty < b.Threshold
}

// UpdateParams 图书部分更新参数
// 字段为指针:nil表示"不修改",非nil表示"覆盖为新值"
type UpdateParams struct {
	Title       *string
	Description *string
	PubYear     *int
	Price       *int64
	Category    *string
	StockQty    *int
	Threshold   *int
	PublisherID *uint
}

// Apply 将部分更新参数叠加到实体上(last-write-wins)
func (b *Book) Apply(p UpdateParams) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.PubYear != nil {
		b.PubYear = *p.PubYear
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.StockQty != nil {
		b.StockQty = *p.StockQty
	}
	if p.Threshold != nil {
		b.Threshold = *p.Threshold
	}
	if p.PublisherID != nil {
		b.PublisherID = p.PublisherID
	}
	b.UpdatedAt = time.Now()
}
