package cart

import (
	"context"
)

// Repository 购物车仓储接口
type Repository interface {
	// Create 插入购物车条目
	Create(ctx context.Context, item *Item) error

	// FindByID 根据条目ID查找
	// 不存在时返回ErrCartItemNotFound
	FindByID(ctx context.Context, id uint) (*Item, error)

	// FindByCustomerAndISBN 查找顾客购物车中某本书的条目
	// 不存在时返回ErrCartItemNotFound(AddItem据此判断插入还是合并)
	FindByCustomerAndISBN(ctx context.Context, customerID uint, isbn string) (*Item, error)

	// FindItemsByCustomer 查询顾客的全部购物车条目(裸条目,下单用)
	FindItemsByCustomer(ctx context.Context, customerID uint) ([]*Item, error)

	// FindLinesByCustomer 查询顾客的购物车展示行(联books取书名与当前价格)
	FindLinesByCustomer(ctx context.Context, customerID uint) ([]*Line, error)

	// Update 更新条目(覆盖数量)
	Update(ctx context.Context, item *Item) error

	// Delete 删除条目
	// 影响0行时返回ErrCartItemNotFound
	Delete(ctx context.Context, id uint) error

	// Clear 清空顾客的购物车(无条件删除,空车也返回nil)
	Clear(ctx context.Context, customerID uint) error
}
