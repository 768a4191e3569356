package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/puborder"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// pubOrderRepository 进货单仓储实现(MySQL)
// 读取时联books表填充BookTitle
type pubOrderRepository struct {
	db *gorm.DB
}

// NewPubOrderRepository 创建进货单仓储
func NewPubOrderRepository(db *gorm.DB) puborder.Repository {
	return &pubOrderRepository{db: db}
}

// Create 创建进货单
func (r *pubOrderRepository) Create(ctx context.Context, o *puborder.PublisherOrder) error {
	model := &PublisherOrderModel{
		ISBN:      o.ISBN,
		Quantity:  o.Quantity,
		Status:    int(o.Status),
		OrderDate: o.OrderDate,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建进货单失败")
	}

	o.ID = model.ID
	o.CreatedAt = model.CreatedAt
	o.UpdatedAt = model.UpdatedAt
	return nil
}

// pubOrderRow 联表查询行(进货单+书名)
type pubOrderRow struct {
	PublisherOrderModel
	BookTitle string
}

const pubOrderSelect = "publisher_orders.*, books.title AS book_title"

func (r *pubOrderRepository) baseQuery(ctx context.Context) *gorm.DB {
	// LEFT JOIN:图书被删除后进货单仍可读出(书名为空)
	return getDB(ctx, r.db).Model(&PublisherOrderModel{}).
		Select(pubOrderSelect).
		Joins("LEFT JOIN books ON books.isbn = publisher_orders.isbn")
}

// FindByID 按ID查询进货单
func (r *pubOrderRepository) FindByID(ctx context.Context, id uint) (*puborder.PublisherOrder, error) {
	var row pubOrderRow
	err := r.baseQuery(ctx).Where("publisher_orders.id = ?", id).First(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, puborder.ErrPubOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询进货单失败")
	}

	return toPubOrderEntity(&row), nil
}

// FindAll 查询全部进货单(按下单时间倒序)
func (r *pubOrderRepository) FindAll(ctx context.Context) ([]*puborder.PublisherOrder, error) {
	var rows []pubOrderRow
	err := r.baseQuery(ctx).
		Order("publisher_orders.order_date DESC, publisher_orders.id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询进货单列表失败")
	}
	return toPubOrderEntities(rows), nil
}

// FindPending 查询待确认的进货单
func (r *pubOrderRepository) FindPending(ctx context.Context) ([]*puborder.PublisherOrder, error) {
	var rows []pubOrderRow
	err := r.baseQuery(ctx).
		Where("publisher_orders.status = ?", int(puborder.StatusPending)).
		Order("publisher_orders.order_date DESC, publisher_orders.id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询待确认进货单失败")
	}
	return toPubOrderEntities(rows), nil
}

// UpdateStatus 更新进货单状态
// 条件更新:只有仍处于待确认状态的单据才会流转,并发确认时
// 后到的请求影响行数为0,按已确认报错,事务随之回滚,库存不会重复累加
func (r *pubOrderRepository) UpdateStatus(ctx context.Context, id uint, status puborder.Status) error {
	result := getDB(ctx, r.db).Model(&PublisherOrderModel{}).
		Where("id = ? AND status = ?", id, int(puborder.StatusPending)).
		Update("status", int(status))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新进货单状态失败")
	}
	if result.RowsAffected == 0 {
		// 区分"单据不存在"与"已被别的请求确认"
		var count int64
		if err := getDB(ctx, r.db).Model(&PublisherOrderModel{}).
			Where("id = ?", id).Count(&count).Error; err != nil {
			return apperrors.Wrap(err, "更新进货单状态失败")
		}
		if count == 0 {
			return puborder.ErrPubOrderNotFound
		}
		return puborder.ErrAlreadyConfirmed
	}
	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toPubOrderEntity(row *pubOrderRow) *puborder.PublisherOrder {
	return &puborder.PublisherOrder{
		ID:        row.ID,
		ISBN:      row.ISBN,
		BookTitle: row.BookTitle,
		Quantity:  row.Quantity,
		Status:    puborder.Status(row.Status),
		OrderDate: row.OrderDate,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func toPubOrderEntities(rows []pubOrderRow) []*puborder.PublisherOrder {
	orders := make([]*puborder.PublisherOrder, len(rows))
	for i := range rows {
		orders[i] = toPubOrderEntity(&rows[i])
	}
	return orders
}
