package report

import (
	"context"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// Service 销售报表服务接口(仅管理员可用)
type Service interface {
	GetTotalSalesPreviousMonth(ctx context.Context) (*TotalSales, error)
	GetTotalSalesForDate(ctx context.Context, date time.Time) (*TotalSales, error)
	GetTop5Customers(ctx context.Context) ([]*TopCustomer, error)
	GetTop10SellingBooks(ctx context.Context) ([]*TopSellingBook, error)
	GetBookOrderCount(ctx context.Context, isbn string) (*BookOrderCount, error)
}

type service struct {
	repo     Repository
	bookRepo book.Repository
}

// NewService 创建报表服务
func NewService(repo Repository, bookRepo book.Repository) Service {
	return &service{repo: repo, bookRepo: bookRepo}
}

func (s *service) GetTotalSalesPreviousMonth(ctx context.Context) (*TotalSales, error) {
	sales, err := s.repo.TotalSalesPreviousMonth(ctx)
	if err != nil {
		return nil, err
	}
	if sales.TotalOrders == 0 {
		return nil, ErrNoSalesData
	}
	return sales, nil
}

func (s *service) GetTotalSalesForDate(ctx context.Context, date time.Time) (*TotalSales, error) {
	sales, err := s.repo.TotalSalesForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if sales.TotalOrders == 0 {
		return nil, ErrNoSalesData
	}
	return sales, nil
}

func (s *service) GetTop5Customers(ctx context.Context) ([]*TopCustomer, error) {
	customers, err := s.repo.Top5Customers(ctx)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, ErrNoCustomers
	}
	return customers, nil
}

func (s *service) GetTop10SellingBooks(ctx context.Context) ([]*TopSellingBook, error) {
	books, err := s.repo.Top10SellingBooks(ctx)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrNoBooksSold
	}
	return books, nil
}

func (s *service) GetBookOrderCount(ctx context.Context, isbn string) (*BookOrderCount, error) {
	// 图书必须存在,不存在的ISBN返回404而不是计数0
	if _, err := s.bookRepo.FindByISBN(ctx, isbn); err != nil {
		return nil, err
	}
	return s.repo.BookOrderCount(ctx, isbn)
}
