package puborder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/puborder"
)

// fakeTransactor 直接执行函数体,不开真实事务
type fakeTransactor struct {
	called bool
}

func (t *fakeTransactor) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.called = true
	return fn(ctx)
}

// fakePubOrderRepo 内存版进货单仓储
type fakePubOrderRepo struct {
	orders map[uint]*puborder.PublisherOrder
}

func (r *fakePubOrderRepo) Create(ctx context.Context, po *puborder.PublisherOrder) error {
	r.orders[po.ID] = po
	return nil
}

func (r *fakePubOrderRepo) FindByID(ctx context.Context, id uint) (*puborder.PublisherOrder, error) {
	po, ok := r.orders[id]
	if !ok {
		return nil, puborder.ErrPubOrderNotFound
	}
	copied := *po
	return &copied, nil
}

func (r *fakePubOrderRepo) FindAll(ctx context.Context) ([]*puborder.PublisherOrder, error) {
	return nil, nil
}

func (r *fakePubOrderRepo) FindPending(ctx context.Context) ([]*puborder.PublisherOrder, error) {
	return nil, nil
}

func (r *fakePubOrderRepo) UpdateStatus(ctx context.Context, id uint, status puborder.Status) error {
	// 与MySQL实现同语义:只有待确认状态的单据才会流转
	po, ok := r.orders[id]
	if !ok {
		return puborder.ErrPubOrderNotFound
	}
	if po.Status != puborder.StatusPending {
		return puborder.ErrAlreadyConfirmed
	}
	po.Status = status
	return nil
}

// fakeBookRepo 记录库存变动
type fakeBookRepo struct {
	books       map[string]*book.Book
	stockDeltas map[string]int
}

func (r *fakeBookRepo) UpdateStock(ctx context.Context, isbn string, delta int) error {
	if _, ok := r.books[isbn]; !ok {
		return book.ErrBookNotFound
	}
	if r.stockDeltas == nil {
		r.stockDeltas = make(map[string]int)
	}
	r.stockDeltas[isbn] += delta
	r.books[isbn].StockQty += delta
	return nil
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

// recordingPublisher 记录发布的事件
type recordingPublisher struct {
	routingKeys []string
}

func (p *recordingPublisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	p.routingKeys = append(p.routingKeys, routingKey)
	return nil
}

// TestConfirmPubOrder 测试进货单确认
// 验证:状态翻转为Confirmed、库存增加进货数量、事件被发布
func TestConfirmPubOrder(t *testing.T) {
	repo := &fakePubOrderRepo{orders: map[uint]*puborder.PublisherOrder{
		1: {ID: 1, ISBN: "9787111213826", Quantity: 50, Status: puborder.StatusPending},
	}}
	bookRepo := &fakeBookRepo{books: map[string]*book.Book{
		"9787111213826": {ISBN: "9787111213826", StockQty: 10},
	}}
	tx := &fakeTransactor{}
	publisher := &recordingPublisher{}
	uc := NewConfirmPubOrderUseCase(repo, bookRepo, tx, publisher)

	result, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, puborder.StatusConfirmed, result.Status)
	assert.Equal(t, puborder.StatusConfirmed, repo.orders[1].Status, "仓储中状态应被更新")
	assert.True(t, tx.called, "状态更新与加库存应在事务中执行")

	// 到货入库:10 + 50 = 60
	assert.Equal(t, 50, bookRepo.stockDeltas["9787111213826"])
	assert.Equal(t, 60, bookRepo.books["9787111213826"].StockQty)

	require.Len(t, publisher.routingKeys, 1)
	assert.Equal(t, "puborder.confirmed", publisher.routingKeys[0])
}

// TestConfirmPubOrderAlreadyConfirmed 测试重复确认被拒绝
// 重复确认会导致重复加库存,必须在进事务前拦截
func TestConfirmPubOrderAlreadyConfirmed(t *testing.T) {
	repo := &fakePubOrderRepo{orders: map[uint]*puborder.PublisherOrder{
		1: {ID: 1, ISBN: "9787111213826", Quantity: 50, Status: puborder.StatusConfirmed},
	}}
	bookRepo := &fakeBookRepo{books: map[string]*book.Book{
		"9787111213826": {ISBN: "9787111213826", StockQty: 10},
	}}
	tx := &fakeTransactor{}
	uc := NewConfirmPubOrderUseCase(repo, bookRepo, tx, nil)

	_, err := uc.Execute(context.Background(), 1)

	assert.ErrorIs(t, err, puborder.ErrAlreadyConfirmed)
	assert.False(t, tx.called, "已确认的进货单不应进入事务")
	assert.Empty(t, bookRepo.stockDeltas, "库存不应被改动")
}

// TestConfirmPubOrderConcurrent 测试并发确认只加一次库存
// 两个请求都读到Pending快照,后提交的在条件更新处失败并回滚,
// 数量50的进货单库存只累加50而不是100
func TestConfirmPubOrderConcurrent(t *testing.T) {
	repo := &fakePubOrderRepo{orders: map[uint]*puborder.PublisherOrder{
		1: {ID: 1, ISBN: "9787111213826", Quantity: 50, Status: puborder.StatusPending},
	}}
	bookRepo := &fakeBookRepo{books: map[string]*book.Book{
		"9787111213826": {ISBN: "9787111213826", StockQty: 10},
	}}
	uc := NewConfirmPubOrderUseCase(repo, bookRepo, &fakeTransactor{}, nil)
	ctx := context.Background()

	// 请求A先读出Pending快照
	snapshot, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, snapshot.Confirm())

	// 请求B完整地确认了这张单
	_, err = uc.Execute(ctx, 1)
	require.NoError(t, err)

	// 请求A带着过期快照继续走事务,条件更新拒绝流转
	err = uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.pubOrderRepo.UpdateStatus(txCtx, snapshot.ID, puborder.StatusConfirmed); err != nil {
			return err
		}
		return uc.bookRepo.UpdateStock(txCtx, snapshot.ISBN, snapshot.Quantity)
	})
	assert.ErrorIs(t, err, puborder.ErrAlreadyConfirmed)

	assert.Equal(t, 50, bookRepo.stockDeltas["9787111213826"], "同一进货单只应加一次库存")
	assert.Equal(t, 60, bookRepo.books["9787111213826"].StockQty)
}

// TestConfirmPubOrderNotFound 测试进货单不存在
func TestConfirmPubOrderNotFound(t *testing.T) {
	repo := &fakePubOrderRepo{orders: map[uint]*puborder.PublisherOrder{}}
	uc := NewConfirmPubOrderUseCase(repo, &fakeBookRepo{}, &fakeTransactor{}, nil)

	_, err := uc.Execute(context.Background(), 999)
	assert.ErrorIs(t, err, puborder.ErrPubOrderNotFound)
}
