package order

import "context"

// Service 订单查询服务接口
// 下单(结算)属于跨聚合编排,由application层的PlaceOrderUseCase负责,
// 这里只提供订单的查询能力
type Service interface {
	// GetOrder 查询单个订单
	GetOrder(ctx context.Context, id uint) (*Order, error)
	// GetAllOrders 查询全部订单(管理员)
	GetAllOrders(ctx context.Context) ([]*Order, error)
	// GetCustomerOrders 查询指定顾客的订单历史
	GetCustomerOrders(ctx context.Context, customerID uint) ([]*Order, error)
}

type service struct {
	repo Repository
}

// NewService 创建订单查询服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetOrder(ctx context.Context, id uint) (*Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetAllOrders(ctx context.Context) ([]*Order, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNoOrdersFound
	}
	return orders, nil
}

func (s *service) GetCustomerOrders(ctx context.Context, customerID uint) ([]*Order, error) {
	orders, err := s.repo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNoOrdersFound
	}
	return orders, nil
}
