package puborder

import "time"

// Status 进货单状态
// 状态机只有一条单向边: Pending -> Confirmed
type Status int

const (
	StatusPending   Status = 1 // 待确认
	StatusConfirmed Status = 2 // 已确认(到货)
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusConfirmed:
		return "Confirmed"
	default:
		return "Unknown"
	}
}

// PublisherOrder 向出版社的进货单实体
// BookTitle为读侧字段(联books表),写入时不存储
type PublisherOrder struct {
	ID        uint
	ISBN      string
	BookTitle string // 读侧:图书标题
	Quantity  int
	Status    Status
	OrderDate time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPublisherOrder 创建新进货单(初始状态Pending)
func NewPublisherOrder(isbn string, quantity int) *PublisherOrder {
	return &PublisherOrder{
		ISBN:      isbn,
		Quantity:  quantity,
		Status:    StatusPending,
		OrderDate: time.Now(),
	}
}

// Confirm 确认到货
// 幂等防护:已确认的进货单不允许重复确认(否则会重复加库存)
func (p *PublisherOrder) Confirm() error {
	if p.Status == StatusConfirmed {
		return ErrAlreadyConfirmed
	}
	p.Status = StatusConfirmed
	return nil
}

// IsPending 是否处于待确认状态
func (p *PublisherOrder) IsPending() bool {
	return p.Status == StatusPending
}
