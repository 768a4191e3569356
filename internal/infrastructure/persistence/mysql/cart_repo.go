package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/cart"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// cartRepository 购物车仓储实现(MySQL)
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

// Create 插入购物车条目
func (r *cartRepository) Create(ctx context.Context, item *cart.Item) error {
	model := toCartItemModel(item)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "添加购物车条目失败")
	}

	item.ID = model.ID
	return nil
}

// FindByID 根据条目ID查找
func (r *cartRepository) FindByID(ctx context.Context, id uint) (*cart.Item, error) {
	var model CartItemModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车条目失败")
	}

	return toCartItemEntity(&model), nil
}

// FindByCustomerAndISBN 查找顾客购物车中某本书的条目
// AddItem据此判断插入还是合并
func (r *cartRepository) FindByCustomerAndISBN(ctx context.Context, customerID uint, isbn string) (*cart.Item, error) {
	var model CartItemModel
	err := getDB(ctx, r.db).
		Where("customer_id = ? AND isbn = ?", customerID, isbn).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车条目失败")
	}

	return toCartItemEntity(&model), nil
}

// FindItemsByCustomer 查询顾客的全部购物车条目(裸条目,下单用)
func (r *cartRepository) FindItemsByCustomer(ctx context.Context, customerID uint) ([]*cart.Item, error) {
	var models []CartItemModel
	err := getDB(ctx, r.db).
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	items := make([]*cart.Item, len(models))
	for i := range models {
		items[i] = toCartItemEntity(&models[i])
	}
	return items, nil
}

// FindLinesByCustomer 查询顾客的购物车展示行(联books取书名与当前价格)
func (r *cartRepository) FindLinesByCustomer(ctx context.Context, customerID uint) ([]*cart.Line, error) {
	var lines []*cart.Line
	err := getDB(ctx, r.db).Model(&CartItemModel{}).
		Select("cart_items.id, cart_items.customer_id, cart_items.isbn, books.title, cart_items.quantity, books.price AS unit_price").
		Joins("JOIN books ON books.isbn = cart_items.isbn").
		Where("cart_items.customer_id = ?", customerID).
		Order("cart_items.id ASC").
		Scan(&lines).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}
	return lines, nil
}

// Update 更新条目(覆盖数量)
func (r *cartRepository) Update(ctx context.Context, item *cart.Item) error {
	result := getDB(ctx, r.db).Model(&CartItemModel{}).
		Where("id = ?", item.ID).
		Update("quantity", item.Quantity)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新购物车条目失败")
	}
	if result.RowsAffected == 0 {
		return cart.ErrCartItemNotFound
	}
	return nil
}

// Delete 删除条目
func (r *cartRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&CartItemModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除购物车条目失败")
	}
	if result.RowsAffected == 0 {
		return cart.ErrCartItemNotFound
	}
	return nil
}

// Clear 清空顾客的购物车
// 空车删除0行也返回nil(下单事务内调用时购物车一定非空)
func (r *cartRepository) Clear(ctx context.Context, customerID uint) error {
	err := getDB(ctx, r.db).
		Where("customer_id = ?", customerID).
		Delete(&CartItemModel{}).Error

	if err != nil {
		return apperrors.Wrap(err, "清空购物车失败")
	}
	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toCartItemModel(item *cart.Item) *CartItemModel {
	return &CartItemModel{
		ID:         item.ID,
		CustomerID: item.CustomerID,
		ISBN:       item.ISBN,
		Quantity:   item.Quantity,
	}
}

func toCartItemEntity(model *CartItemModel) *cart.Item {
	return &cart.Item{
		ID:         model.ID,
		CustomerID: model.CustomerID,
		ISBN:       model.ISBN,
		Quantity:   model.Quantity,
	}
}
