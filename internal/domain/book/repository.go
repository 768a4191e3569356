package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建图书
	// 如果ISBN已存在,返回ErrISBNDuplicate
	Create(ctx context.Context, book *Book) error

	// FindByISBN 根据ISBN查找图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// FindAll 查询全部图书
	FindAll(ctx context.Context) ([]*Book, error)

	// FindByCategory 按分类查询
	FindByCategory(ctx context.Context, category string) ([]*Book, error)

	// SearchByTitle 按书名模糊查询(LIKE %title%)
	SearchByTitle(ctx context.Context, title string) ([]*Book, error)

	// FindLowStock 查询低库存图书(stock_qty < threshold,严格小于)
	FindLowStock(ctx context.Context) ([]*Book, error)

	// Search 组合条件查询(书名/分类/作者名/价格区间/年份区间)
	Search(ctx context.Context, params SearchParams) ([]*Book, error)

	// Update 更新图书信息(全字段保存,部分更新的叠加在Service层完成)
	Update(ctx context.Context, book *Book) error

	// UpdatePhoto 更新封面图片
	UpdatePhoto(ctx context.Context, isbn string, photo []byte) error

	// Delete 删除图书
	// 影响0行时返回ErrBookNotFound
	Delete(ctx context.Context, isbn string) error

	// LockByISBN 悲观锁查询图书(SELECT FOR UPDATE)
	// 下单时锁定图书行,保证金额计算与价格快照读到同一份价格
	LockByISBN(ctx context.Context, isbn string) (*Book, error)

	// UpdateStock 更新库存(原子操作)
	// delta为正数表示增加(进货确认),负数表示减少
	// 库存不会被扣成负数,不足时返回ErrInvalidStock
	UpdateStock(ctx context.Context, isbn string, delta int) error
}

// SearchParams 组合查询参数
// 指针字段为nil表示该条件不参与过滤
type SearchParams struct {
	Title      string // 书名关键词
	Category   string // 分类
	AuthorName string // 作者名关键词(走book_authors联表)
	MinPrice   *int64 // 最低价(分)
	MaxPrice   *int64 // 最高价(分)
	MinYear    *int   // 最早出版年份
	MaxYear    *int   // 最晚出版年份
}
