package publisher

import (
	"context"
)

// Repository 出版社仓储接口
type Repository interface {
	// Create 创建出版社
	Create(ctx context.Context, publisher *Publisher) error

	// FindByID 根据ID查找出版社
	FindByID(ctx context.Context, id uint) (*Publisher, error)

	// FindAll 查询全部出版社
	FindAll(ctx context.Context) ([]*Publisher, error)

	// Update 更新出版社
	Update(ctx context.Context, publisher *Publisher) error

	// Delete 删除出版社
	// 影响0行时返回ErrPublisherNotFound
	// 注意:不级联处理图书的PublisherID(外键列允许悬空为NULL,与原系统一致)
	Delete(ctx context.Context, id uint) error
}
