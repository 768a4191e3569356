package cart

import (
	"context"
	"errors"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// Service 购物车领域服务
// 设计说明:
//  1. AddItem实现"合并式加购":同一顾客同一本书已有条目时累加数量,
//     否则插入新条目,保证(customer, isbn)最多一行
//  2. 服务端不做库存校验(前端的库存上限提示不具权威性,与原系统一致;
//     库存约束只在进货确认的加库存路径上生效)
type Service interface {
	// GetCart 获取顾客购物车(联books取书名与当前价格;空车报错)
	GetCart(ctx context.Context, customerID uint) ([]*Line, error)

	// AddItem 加购(存在则合并累加数量,否则新建条目);返回条目ID
	AddItem(ctx context.Context, customerID uint, isbn string, quantity int) (uint, error)

	// UpdateItem 覆盖条目数量(条目必须存在且属于该顾客)
	UpdateItem(ctx context.Context, customerID, cartID uint, quantity int) error

	// RemoveItem 删除条目(条目必须存在且属于该顾客)
	RemoveItem(ctx context.Context, customerID, cartID uint) error

	// ClearCart 清空顾客购物车(空车也成功)
	ClearCart(ctx context.Context, customerID uint) error
}

type service struct {
	repo     Repository
	bookRepo book.Repository
}

// NewService 创建购物车领域服务
func NewService(repo Repository, bookRepo book.Repository) Service {
	return &service{repo: repo, bookRepo: bookRepo}
}

func (s *service) GetCart(ctx context.Context, customerID uint) ([]*Line, error) {
	lines, err := s.repo.FindLinesByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}
	return lines, nil
}

func (s *service) AddItem(ctx context.Context, customerID uint, isbn string, quantity int) (uint, error) {
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}

	// 图书必须存在
	if _, err := s.bookRepo.FindByISBN(ctx, isbn); err != nil {
		return 0, err
	}

	existing, err := s.repo.FindByCustomerAndISBN(ctx, customerID, isbn)
	if err != nil {
		if errors.Is(err, ErrCartItemNotFound) {
			// 没有现存条目,插入新行
			item := &Item{
				CustomerID: customerID,
				ISBN:       isbn,
				Quantity:   quantity,
			}
			if err := s.repo.Create(ctx, item); err != nil {
				return 0, err
			}
			return item.ID, nil
		}
		return 0, err
	}

	// 已有条目,合并累加数量
	existing.Quantity += quantity
	if err := s.repo.Update(ctx, existing); err != nil {
		return 0, err
	}
	return existing.ID, nil
}

func (s *service) UpdateItem(ctx context.Context, customerID, cartID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	item, err := s.repo.FindByID(ctx, cartID)
	if err != nil {
		return err
	}
	// 越权防护:他人的条目按不存在处理,不暴露条目归属
	if item.CustomerID != customerID {
		return ErrCartItemNotFound
	}

	item.Quantity = quantity
	return s.repo.Update(ctx, item)
}

func (s *service) RemoveItem(ctx context.Context, customerID, cartID uint) error {
	item, err := s.repo.FindByID(ctx, cartID)
	if err != nil {
		return err
	}
	if item.CustomerID != customerID {
		return ErrCartItemNotFound
	}
	return s.repo.Delete(ctx, cartID)
}

func (s *service) ClearCart(ctx context.Context, customerID uint) error {
	return s.repo.Clear(ctx, customerID)
}
