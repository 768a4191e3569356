package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository 内存版订单仓储(只读场景)
type fakeRepository struct {
	orders []*Order
}

func (r *fakeRepository) Create(ctx context.Context, o *Order) error {
	r.orders = append(r.orders, o)
	return nil
}

func (r *fakeRepository) FindByID(ctx context.Context, id uint) (*Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *fakeRepository) FindAll(ctx context.Context) ([]*Order, error) {
	return r.orders, nil
}

func (r *fakeRepository) FindByCustomer(ctx context.Context, customerID uint) ([]*Order, error) {
	var result []*Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			result = append(result, o)
		}
	}
	return result, nil
}

// TestGetOrder 测试单个订单查询
func TestGetOrder(t *testing.T) {
	svc := NewService(&fakeRepository{orders: []*Order{{ID: 1, CustomerID: 7}}})

	o, err := svc.GetOrder(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(7), o.CustomerID)

	_, err = svc.GetOrder(context.Background(), 999)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

// TestGetAllOrdersEmpty 测试空结果报错
// 约定:列表为空时返回领域错误,不返回空数组
func TestGetAllOrdersEmpty(t *testing.T) {
	svc := NewService(&fakeRepository{})

	_, err := svc.GetAllOrders(context.Background())
	assert.ErrorIs(t, err, ErrNoOrdersFound)
}

// TestGetCustomerOrders 测试顾客订单历史
func TestGetCustomerOrders(t *testing.T) {
	svc := NewService(&fakeRepository{orders: []*Order{
		{ID: 1, CustomerID: 7},
		{ID: 2, CustomerID: 8},
		{ID: 3, CustomerID: 7},
	}})

	orders, err := svc.GetCustomerOrders(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	// 无订单的顾客返回空结果错误
	_, err = svc.GetCustomerOrders(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNoOrdersFound)
}
