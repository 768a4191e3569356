package order

import (
	"context"
	"log"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/domain/user"
	"github.com/xiebiao/bookshop/pkg/metrics"
	"github.com/xiebiao/bookshop/pkg/mq"
)

// Transactor 事务执行器(由mysql.TxManager实现)
// 定义成接口便于用例测试时注入假实现
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher 事件发布器(由mq.Publisher实现)
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// PlaceOrderUseCase 结算下单用例
// 设计说明:这是整个系统最核心的用例
// 涉及:事务处理、悲观锁、价格快照、购物车清空
type PlaceOrderUseCase struct {
	orderRepo order.Repository
	cartRepo  cart.Repository
	bookRepo  book.Repository
	userRepo  user.Repository
	tx        Transactor
	publisher EventPublisher // 可为nil(未部署RabbitMQ时)
}

// NewPlaceOrderUseCase 创建下单用例
func NewPlaceOrderUseCase(
	orderRepo order.Repository,
	cartRepo cart.Repository,
	bookRepo book.Repository,
	userRepo user.Repository,
	tx Transactor,
	publisher EventPublisher,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		bookRepo:  bookRepo,
		userRepo:  userRepo,
		tx:        tx,
		publisher: publisher,
	}
}

// PlaceOrderRequest 下单请求
// CustomerID从JWT中提取,不信任前端传参
type PlaceOrderRequest struct {
	CustomerID uint
	CCNumber   string // 支付卡号(仅存储,不做真实扣款)
	CCExpiry   string // 卡有效期(MM/YY)
}

// Execute 执行结算下单
//
// 业务规则:
// 1. 整单按图书当前价格计算,写入订单明细作为价格快照
// 2. 下单不扣减库存(库存只在进货确认时增加,商家按需补货)
// 3. 订单创建与购物车清空在同一事务,要么全成功要么全失败
// 4. 购物车为空时拒绝下单
//
// 锁定图书行(FOR UPDATE)的目的:
// 防止计算金额与写入价格快照之间图书被改价,
// 保证订单Total与明细UnitPrice读到同一份价格
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, req PlaceOrderRequest) (*order.Order, error) {
	// 顾客必须存在(Token有效但用户被删除的场景)
	if _, err := uc.userRepo.FindByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	var result *order.Order
	err := uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 读取购物车
		items, err := uc.cartRepo.FindItemsByCustomer(txCtx, req.CustomerID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return order.ErrEmptyCart
		}

		// 2. 锁定图书行并快照价格
		var total int64
		orderItems := make([]order.Item, len(items))
		for i, item := range items {
			b, err := uc.bookRepo.LockByISBN(txCtx, item.ISBN)
			if err != nil {
				return err
			}

			orderItems[i] = order.Item{
				ISBN:      item.ISBN,
				Quantity:  item.Quantity,
				UnitPrice: b.Price, // 使用数据库中的当前价格,不信任前端
			}
			total += b.Price * int64(item.Quantity)
		}

		// 3. 创建订单(含明细)
		newOrder := order.NewOrder(req.CustomerID, req.CCNumber, req.CCExpiry, orderItems, total)
		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}

		// 4. 清空购物车(同一事务,失败则订单回滚)
		if err := uc.cartRepo.Clear(txCtx, req.CustomerID); err != nil {
			return err
		}

		result = newOrder
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 事务提交后发布事件、记录指标
	// 发布失败只记录日志,不影响下单结果
	metrics.OrdersPlacedTotal.Inc()
	metrics.OrderAmountFen.Observe(float64(result.Total))

	if uc.publisher != nil {
		event := mq.OrderPlacedEvent{
			OrderID:    result.ID,
			CustomerID: result.CustomerID,
			Total:      result.Total,
			ItemCount:  len(result.Items),
			PlacedAt:   time.Now().Unix(),
		}
		if err := uc.publisher.Publish(ctx, "order.placed", event); err != nil {
			log.Printf("发布order.placed事件失败: %v", err)
		}
	}

	return result, nil
}
