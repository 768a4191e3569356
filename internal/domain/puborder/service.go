package puborder

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// Service 进货单服务接口
// 确认到货属于跨聚合编排(改状态+加库存),由application层负责
type Service interface {
	// CreatePublisherOrder 新建进货单
	CreatePublisherOrder(ctx context.Context, isbn string, quantity int) (*PublisherOrder, error)
	// GetPublisherOrder 查询单个进货单
	GetPublisherOrder(ctx context.Context, id uint) (*PublisherOrder, error)
	// GetAllPublisherOrders 查询全部进货单
	GetAllPublisherOrders(ctx context.Context) ([]*PublisherOrder, error)
	// GetPendingPublisherOrders 查询待确认的进货单
	GetPendingPublisherOrders(ctx context.Context) ([]*PublisherOrder, error)
}

type service struct {
	repo     Repository
	bookRepo book.Repository
}

// NewService 创建进货单服务
func NewService(repo Repository, bookRepo book.Repository) Service {
	return &service{repo: repo, bookRepo: bookRepo}
}

func (s *service) CreatePublisherOrder(ctx context.Context, isbn string, quantity int) (*PublisherOrder, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	// 进货单必须针对已存在的图书
	b, err := s.bookRepo.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}

	order := NewPublisherOrder(isbn, quantity)
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	order.BookTitle = b.Title
	return order, nil
}

func (s *service) GetPublisherOrder(ctx context.Context, id uint) (*PublisherOrder, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetAllPublisherOrders(ctx context.Context) ([]*PublisherOrder, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNoPubOrdersFound
	}
	return orders, nil
}

func (s *service) GetPendingPublisherOrders(ctx context.Context) ([]*PublisherOrder, error) {
	orders, err := s.repo.FindPending(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNoPubOrdersFound
	}
	return orders, nil
}
