package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// fakeRepository 内存版购物车仓储,用于领域服务单元测试
type fakeRepository struct {
	items  map[uint]*Item
	nextID uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{items: make(map[uint]*Item), nextID: 1}
}

func (r *fakeRepository) Create(ctx context.Context, item *Item) error {
	item.ID = r.nextID
	r.nextID++
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeRepository) FindByID(ctx context.Context, id uint) (*Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, ErrCartItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeRepository) FindByCustomerAndISBN(ctx context.Context, customerID uint, isbn string) (*Item, error) {
	for _, item := range r.items {
		if item.CustomerID == customerID && item.ISBN == isbn {
			copied := *item
			return &copied, nil
		}
	}
	return nil, ErrCartItemNotFound
}

func (r *fakeRepository) FindItemsByCustomer(ctx context.Context, customerID uint) ([]*Item, error) {
	var result []*Item
	for _, item := range r.items {
		if item.CustomerID == customerID {
			copied := *item
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeRepository) FindLinesByCustomer(ctx context.Context, customerID uint) ([]*Line, error) {
	var result []*Line
	for _, item := range r.items {
		if item.CustomerID == customerID {
			result = append(result, &Line{
				ID:         item.ID,
				CustomerID: item.CustomerID,
				ISBN:       item.ISBN,
				Quantity:   item.Quantity,
			})
		}
	}
	return result, nil
}

func (r *fakeRepository) Update(ctx context.Context, item *Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return ErrCartItemNotFound
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeRepository) Delete(ctx context.Context, id uint) error {
	if _, ok := r.items[id]; !ok {
		return ErrCartItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeRepository) Clear(ctx context.Context, customerID uint) error {
	for id, item := range r.items {
		if item.CustomerID == customerID {
			delete(r.items, id)
		}
	}
	return nil
}

// fakeBookRepo 只支持FindByISBN的图书仓储桩,其余方法不会被购物车服务调用
type fakeBookRepo struct {
	books map[string]*book.Book
}

func (r *fakeBookRepo) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	b, ok := r.books[isbn]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) error { return nil }
func (r *fakeBookRepo) FindAll(ctx context.Context) ([]*book.Book, error) {
	return nil, nil
}
func (r *fakeBookRepo) FindByCategory(ctx context.Context, category string) ([]*book.Book, error) {
	return nil, nil
}
func (r *fakeBookRepo) SearchByTitle(ctx context.Context, title string) ([]*book.Book, error) {
	return nil, nil
}
func (r *fakeBookRepo) FindLowStock(ctx context.Context) ([]*book.Book, error) {
	return nil, nil
}
func (r *fakeBookRepo) Search(ctx context.Context, params book.SearchParams) ([]*book.Book, error) {
	return nil, nil
}
func (r *fakeBookRepo) Update(ctx context.Context, b *book.Book) error { return nil }
func (r *fakeBookRepo) UpdatePhoto(ctx context.Context, isbn string, photo []byte) error {
	return nil
}
func (r *fakeBookRepo) Delete(ctx context.Context, isbn string) error { return nil }
func (r *fakeBookRepo) LockByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	return r.FindByISBN(ctx, isbn)
}
func (r *fakeBookRepo) UpdateStock(ctx context.Context, isbn string, delta int) error {
	return nil
}

func newTestService() (Service, *fakeRepository) {
	repo := newFakeRepository()
	bookRepo := &fakeBookRepo{books: map[string]*book.Book{
		"9787111213826": {ISBN: "9787111213826", Title: "《Go程序设计》", Price: 8900},
		"9787115428028": {ISBN: "9787115428028", Title: "《MySQL必知必会》", Price: 5900},
	}}
	return NewService(repo, bookRepo), repo
}

// TestAddItemMerge 测试合并式加购
// 同一顾客同一本书第二次加购时累加数量,不产生新条目
func TestAddItemMerge(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	// 第一次加购:插入新条目
	cartID1, err := svc.AddItem(ctx, 1, "9787111213826", 2)
	require.NoError(t, err)
	assert.NotZero(t, cartID1)

	// 第二次加购同一本书:合并累加
	cartID2, err := svc.AddItem(ctx, 1, "9787111213826", 3)
	require.NoError(t, err)
	assert.Equal(t, cartID1, cartID2, "应复用已有条目,不新建")

	item, err := repo.FindByID(ctx, cartID1)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity, "数量应累加为2+3=5")
	assert.Len(t, repo.items, 1, "购物车中应只有一个条目")
}

// TestAddItemDifferentCustomers 测试不同顾客的条目互不合并
func TestAddItemDifferentCustomers(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	id1, err := svc.AddItem(ctx, 1, "9787111213826", 1)
	require.NoError(t, err)
	id2, err := svc.AddItem(ctx, 2, "9787111213826", 1)
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	assert.Len(t, repo.items, 2)
}

// TestAddItemBookNotFound 测试加购不存在的图书
func TestAddItemBookNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddItem(context.Background(), 1, "9780000000000", 1)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

// TestAddItemInvalidQuantity 测试非法数量
func TestAddItemInvalidQuantity(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddItem(context.Background(), 1, "9787111213826", 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddItem(context.Background(), 1, "9787111213826", -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

// TestGetCartEmpty 测试空车报错
func TestGetCartEmpty(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetCart(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCartEmpty)
}

// TestUpdateItem 测试覆盖条目数量
func TestUpdateItem(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	cartID, err := svc.AddItem(ctx, 1, "9787111213826", 2)
	require.NoError(t, err)

	// 覆盖为新数量(不是累加)
	err = svc.UpdateItem(ctx, 1, cartID, 7)
	require.NoError(t, err)

	item, err := repo.FindByID(ctx, cartID)
	require.NoError(t, err)
	assert.Equal(t, 7, item.Quantity)

	// 非法数量
	err = svc.UpdateItem(ctx, 1, cartID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	// 条目不存在
	err = svc.UpdateItem(ctx, 1, 999, 1)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

// TestRemoveItem 测试删除条目
func TestRemoveItem(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	cartID, err := svc.AddItem(ctx, 1, "9787111213826", 1)
	require.NoError(t, err)

	err = svc.RemoveItem(ctx, 1, cartID)
	require.NoError(t, err)
	assert.Empty(t, repo.items)

	// 删除不存在的条目
	err = svc.RemoveItem(ctx, 1, cartID)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

// TestUpdateItemCrossCustomer 测试不能操作他人的购物车条目
func TestUpdateItemCrossCustomer(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	cartID, err := svc.AddItem(ctx, 1, "9787111213826", 2)
	require.NoError(t, err)

	// 顾客2拿着顾客1的条目ID修改数量,按条目不存在拒绝
	err = svc.UpdateItem(ctx, 2, cartID, 99)
	assert.ErrorIs(t, err, ErrCartItemNotFound)

	// 顾客2删除同样被拒绝
	err = svc.RemoveItem(ctx, 2, cartID)
	assert.ErrorIs(t, err, ErrCartItemNotFound)

	// 条目未被改动,仍归顾客1所有
	item, err := repo.FindByID(ctx, cartID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), item.CustomerID)
	assert.Equal(t, 2, item.Quantity)
}

// TestClearCart 测试清空购物车(空车也成功)
func TestClearCart(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, "9787111213826", 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, 1, "9787115428028", 2)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, 2, "9787111213826", 1)
	require.NoError(t, err)

	err = svc.ClearCart(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, repo.items, 1, "只清空顾客1的条目,顾客2不受影响")

	// 空车清空也返回成功
	err = svc.ClearCart(ctx, 1)
	assert.NoError(t, err)
}
