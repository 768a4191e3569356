package order

import "context"

// Repository 订单仓储接口
// 读操作返回的Order均已填充Items和CustomerName,
// 由基础设施层负责平铺行到嵌套结构的组装
type Repository interface {
	// Create 创建订单及其全部明细(需在事务上下文中调用)
	Create(ctx context.Context, order *Order) error
	// FindByID 按ID查询订单(含明细)
	FindByID(ctx context.Context, id uint) (*Order, error)
	// FindAll 查询全部订单(含明细,按下单时间倒序)
	FindAll(ctx context.Context) ([]*Order, error)
	// FindByCustomer 查询指定顾客的全部订单(含明细)
	FindByCustomer(ctx context.Context, customerID uint) ([]*Order, error)
}
