package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// fakeRepository 返回预置报表数据
type fakeRepository struct {
	totalSales     *TotalSales
	topCustomers   []*TopCustomer
	topBooks       []*TopSellingBook
	bookOrderCount *BookOrderCount
}

func (r *fakeRepository) TotalSalesPreviousMonth(ctx context.Context) (*TotalSales, error) {
	return r.totalSales, nil
}

func (r *fakeRepository) TotalSalesForDate(ctx context.Context, date time.Time) (*TotalSales, error) {
	return r.totalSales, nil
}

func (r *fakeRepository) Top5Customers(ctx context.Context) ([]*TopCustomer, error) {
	return r.topCustomers, nil
}

func (r *fakeRepository) Top10SellingBooks(ctx context.Context) ([]*TopSellingBook, error) {
	return r.topBooks, nil
}

func (r *fakeRepository) BookOrderCount(ctx context.Context, isbn string) (*BookOrderCount, error) {
	return r.bookOrderCount, nil
}

// stubBookRepo 只提供FindByISBN
type stubBookRepo struct {
	books map[string]*book.Book
}

func (r *stubBookRepo) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	b, ok := r.books[isbn]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (r *stubBookRepo) Create(ctx context.Context, b *book.Book) error { return nil }
func (r *stubBookRepo) FindAll(ctx context.Context) ([]*book.Book, error) {
	return nil, nil
}
func (r *stubBookRepo) FindByCategory(ctx context.Context, category string) ([]*book.Book, error) {
	return nil, nil
}
func (r *stubBookRepo) SearchByTitle(ctx context.Context, title string) ([]*book.Book, error) {
	return nil, nil
}
func (r *stubBookRepo) FindLowStock(ctx context.Context) ([]*book.Book, error) {
	return nil, nil
}
func (r *stubBookRepo) Search(ctx context.Context, params book.SearchParams) ([]*book.Book, error) {
	return nil, nil
}
func (r *stubBookRepo) Update(ctx context.Context, b *book.Book) error { return nil }
func (r *stubBookRepo) UpdatePhoto(ctx context.Context, isbn string, photo []byte) error {
	return nil
}
func (r *stubBookRepo) Delete(ctx context.Context, isbn string) error { return nil }
func (r *stubBookRepo) LockByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	return r.FindByISBN(ctx, isbn)
}
func (r *stubBookRepo) UpdateStock(ctx context.Context, isbn string, delta int) error {
	return nil
}

// TestGetTotalSales 测试销售汇总
// 约定:时段内没有订单(TotalOrders==0)视为无数据,报错而不是返回全零
func TestGetTotalSales(t *testing.T) {
	bookRepo := &stubBookRepo{}

	t.Run("有数据时返回汇总", func(t *testing.T) {
		svc := NewService(&fakeRepository{
			totalSales: &TotalSales{TotalSales: 23700, TotalOrders: 2, TotalItemsSold: 3},
		}, bookRepo)

		sales, err := svc.GetTotalSalesPreviousMonth(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(23700), sales.TotalSales)
	})

	t.Run("无订单时报错", func(t *testing.T) {
		svc := NewService(&fakeRepository{
			totalSales: &TotalSales{},
		}, bookRepo)

		_, err := svc.GetTotalSalesPreviousMonth(context.Background())
		assert.ErrorIs(t, err, ErrNoSalesData)

		_, err = svc.GetTotalSalesForDate(context.Background(), time.Now())
		assert.ErrorIs(t, err, ErrNoSalesData)
	})
}

// TestGetTopRankings 测试排名查询的空结果约定
func TestGetTopRankings(t *testing.T) {
	svc := NewService(&fakeRepository{}, &stubBookRepo{})

	_, err := svc.GetTop5Customers(context.Background())
	assert.ErrorIs(t, err, ErrNoCustomers)

	_, err = svc.GetTop10SellingBooks(context.Background())
	assert.ErrorIs(t, err, ErrNoBooksSold)
}

// TestGetBookOrderCount 测试单书进货汇总
// 图书必须存在:不存在的ISBN返回404,而不是一行全零计数
func TestGetBookOrderCount(t *testing.T) {
	repo := &fakeRepository{
		bookOrderCount: &BookOrderCount{
			ISBN:                 "9787111213826",
			Title:                "《Go程序设计》",
			TotalTimesOrdered:    3,
			TotalQuantityOrdered: 150,
			PendingOrders:        1,
			ConfirmedOrders:      2,
		},
	}
	bookRepo := &stubBookRepo{books: map[string]*book.Book{
		"9787111213826": {ISBN: "9787111213826", Title: "《Go程序设计》"},
	}}
	svc := NewService(repo, bookRepo)

	t.Run("存在的图书返回汇总", func(t *testing.T) {
		count, err := svc.GetBookOrderCount(context.Background(), "9787111213826")
		require.NoError(t, err)
		assert.Equal(t, 3, count.TotalTimesOrdered)
		assert.Equal(t, 1, count.PendingOrders)
		assert.Equal(t, 2, count.ConfirmedOrders)
	})

	t.Run("不存在的图书报错", func(t *testing.T) {
		_, err := svc.GetBookOrderCount(context.Background(), "9780000000000")
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}
