package author

import (
	"context"
)

// Repository 作者仓储接口
// 作者与图书的联表操作也定义在这里(联表以作者为主体维护)
type Repository interface {
	// Create 创建作者
	Create(ctx context.Context, author *Author) error

	// FindByID 根据ID查找作者
	FindByID(ctx context.Context, id uint) (*Author, error)

	// FindAll 查询全部作者
	FindAll(ctx context.Context) ([]*Author, error)

	// Update 更新作者
	Update(ctx context.Context, author *Author) error

	// Delete 删除作者
	// 影响0行时返回ErrAuthorNotFound
	Delete(ctx context.Context, id uint) error

	// LinkBook 建立图书-作者关联(插入联表行)
	// 不做去重检查,重复关联由数据库唯一约束兜底
	LinkBook(ctx context.Context, isbn string, authorID uint) error

	// UnlinkBook 解除图书-作者关联
	// 关联不存在时静默返回nil(与原系统策略一致,删除0行不算错误)
	UnlinkBook(ctx context.Context, isbn string, authorID uint) error

	// FindByBookISBN 查询某图书的全部作者
	FindByBookISBN(ctx context.Context, isbn string) ([]*Author, error)
}
