package puborder

import (
	"context"
	"log"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/puborder"
	"github.com/xiebiao/bookshop/pkg/metrics"
	"github.com/xiebiao/bookshop/pkg/mq"
)

// Transactor 事务执行器(由mysql.TxManager实现)
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher 事件发布器(由mq.Publisher实现)
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// ConfirmPubOrderUseCase 进货单确认用例
// 确认到货时状态更新与库存增加在同一事务中完成,
// 库存增量由应用程序写入,不依赖数据库触发器
type ConfirmPubOrderUseCase struct {
	pubOrderRepo puborder.Repository
	bookRepo     book.Repository
	tx           Transactor
	publisher    EventPublisher // 可为nil
}

// NewConfirmPubOrderUseCase 创建进货单确认用例
func NewConfirmPubOrderUseCase(
	pubOrderRepo puborder.Repository,
	bookRepo book.Repository,
	tx Transactor,
	publisher EventPublisher,
) *ConfirmPubOrderUseCase {
	return &ConfirmPubOrderUseCase{
		pubOrderRepo: pubOrderRepo,
		bookRepo:     bookRepo,
		tx:           tx,
		publisher:    publisher,
	}
}

// Execute 确认进货单到货
//
// 业务规则:
// 1. 只有Pending状态的进货单可以确认(重复确认会导致重复加库存)
// 2. 状态翻转与库存增加在同一事务:要么都生效,要么都回滚
func (uc *ConfirmPubOrderUseCase) Execute(ctx context.Context, id uint) (*puborder.PublisherOrder, error) {
	po, err := uc.pubOrderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 幂等防护:已确认直接拒绝
	if err := po.Confirm(); err != nil {
		return nil, err
	}

	err = uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.pubOrderRepo.UpdateStatus(txCtx, po.ID, puborder.StatusConfirmed); err != nil {
			return err
		}
		// 到货入库:库存加上进货数量
		return uc.bookRepo.UpdateStock(txCtx, po.ISBN, po.Quantity)
	})
	if err != nil {
		return nil, err
	}

	metrics.PubOrdersConfirmedTotal.Inc()

	if uc.publisher != nil {
		event := mq.PubOrderConfirmedEvent{
			PubOrderID:  po.ID,
			ISBN:        po.ISBN,
			Quantity:    po.Quantity,
			ConfirmedAt: time.Now().Unix(),
		}
		if err := uc.publisher.Publish(ctx, "puborder.confirmed", event); err != nil {
			log.Printf("发布puborder.confirmed事件失败: %v", err)
		}
	}

	return po, nil
}
