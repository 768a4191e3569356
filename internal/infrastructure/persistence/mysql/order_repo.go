package mysql

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// orderRepository 订单仓储实现(MySQL)
// 设计说明:
//  1. Order和OrderItem是聚合关系,必须一起保存
//  2. 读取走一次平铺联表(orders × users × order_items),
//     由groupOrderRows组装成嵌套结构,避免N+1查询
//  3. 下单事务通过context传递
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建订单
// GORM通过foreignKey自动保存关联的Items,必须在事务中调用
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建订单失败")
	}

	// 回填自增ID
	o.ID = model.ID
	for i := range o.Items {
		o.Items[i].ID = model.Items[i].ID
		o.Items[i].OrderID = model.ID
	}
	return nil
}

// orderRow 平铺联表查询的行结构
// 一笔N行明细的订单产生N行;没有明细的订单产生1行(item字段为NULL)
type orderRow struct {
	ID         uint
	CustomerID uint
	Username   string
	FirstName  string
	LastName   string
	OrderDate  time.Time
	Total      int64
	CCNumber   string
	CCExpiry   string
	ItemID     *uint
	ISBN       *string
	Quantity   *int
	UnitPrice  *int64
}

const orderSelect = `orders.id, orders.customer_id, users.username, users.first_name, users.last_name,
orders.order_date, orders.total, orders.cc_number, orders.cc_expiry,
order_items.id AS item_id, order_items.isbn, order_items.quantity, order_items.unit_price`

// baseQuery 订单平铺联表查询
// LEFT JOIN明细:保证无明细的脏数据订单也能被读出
func (r *orderRepository) baseQuery(ctx context.Context) *gorm.DB {
	return getDB(ctx, r.db).Model(&OrderModel{}).
		Select(orderSelect).
		Joins("JOIN users ON users.id = orders.customer_id").
		Joins("LEFT JOIN order_items ON order_items.order_id = orders.id")
}

// FindByID 按ID查询订单(含明细)
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var rows []orderRow
	err := r.baseQuery(ctx).
		Where("orders.id = ?", id).
		Order("order_items.id ASC").
		Scan(&rows).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "查询订单失败")
	}
	if len(rows) == 0 {
		return nil, order.ErrOrderNotFound
	}

	return groupOrderRows(rows)[0], nil
}

// FindAll 查询全部订单(含明细,按下单时间倒序)
func (r *orderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	var rows []orderRow
	err := r.baseQuery(ctx).
		Order("orders.order_date DESC, orders.id DESC, order_items.id ASC").
		Scan(&rows).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "查询订单列表失败")
	}
	return groupOrderRows(rows), nil
}

// FindByCustomer 查询指定顾客的全部订单(含明细)
func (r *orderRepository) FindByCustomer(ctx context.Context, customerID uint) ([]*order.Order, error) {
	var rows []orderRow
	err := r.baseQuery(ctx).
		Where("orders.customer_id = ?", customerID).
		Order("orders.order_date DESC, orders.id DESC, order_items.id ASC").
		Scan(&rows).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "查询订单列表失败")
	}
	return groupOrderRows(rows), nil
}

// groupOrderRows 将平铺联表行组装成嵌套的订单列表
// 行按订单分组,保持SQL返回的先后顺序;item字段为NULL的行只产生空明细订单
func groupOrderRows(rows []orderRow) []*order.Order {
	var orders []*order.Order
	index := make(map[uint]*order.Order)

	for _, row := range rows {
		o, ok := index[row.ID]
		if !ok {
			o = &order.Order{
				ID:           row.ID,
				CustomerID:   row.CustomerID,
				CustomerName: displayName(row.Username, row.FirstName, row.LastName),
				OrderDate:    row.OrderDate,
				Total:        row.Total,
				CCNumber:     row.CCNumber,
				CCExpiry:     row.CCExpiry,
			}
			index[row.ID] = o
			orders = append(orders, o)
		}

		if row.ItemID != nil {
			o.Items = append(o.Items, order.Item{
				ID:        *row.ItemID,
				OrderID:   row.ID,
				ISBN:      *row.ISBN,
				Quantity:  *row.Quantity,
				UnitPrice: *row.UnitPrice,
			})
		}
	}
	return orders
}

// displayName 订单列表展示的顾客名(与user.DisplayName口径一致)
func displayName(username, firstName, lastName string) string {
	if firstName == "" && lastName == "" {
		return username
	}
	return strings.TrimSpace(firstName + " " + lastName)
}

// toOrderModel 领域实体 → GORM模型
func toOrderModel(o *order.Order) *OrderModel {
	items := make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemModel{
			ISBN:      item.ISBN,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return &OrderModel{
		CustomerID: o.CustomerID,
		OrderDate:  o.OrderDate,
		Total:      o.Total,
		CCNumber:   o.CCNumber,
		CCExpiry:   o.CCExpiry,
		Items:      items,
	}
}
