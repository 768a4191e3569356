package puborder

import "context"

// Repository 进货单仓储接口
// 读操作返回的PublisherOrder均已填充BookTitle
type Repository interface {
	Create(ctx context.Context, order *PublisherOrder) error
	FindByID(ctx context.Context, id uint) (*PublisherOrder, error)
	FindAll(ctx context.Context) ([]*PublisherOrder, error)
	FindPending(ctx context.Context) ([]*PublisherOrder, error)
	// UpdateStatus 更新进货单状态(需在事务上下文中与库存更新一起调用)
	// 只对待确认状态的单据生效:单据不存在返回ErrPubOrderNotFound,
	// 已确认返回ErrAlreadyConfirmed,保证Pending→Confirmed只发生一次
	UpdateStatus(ctx context.Context, id uint, status Status) error
}
