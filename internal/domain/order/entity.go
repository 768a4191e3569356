package order

import (
	"time"
)

// Order 顾客订单实体(聚合根)
// 设计说明:
// 1. Order与OrderItem一对多,OrderItem只能通过Order访问
// 2. Total在下单时由服务端按购物车快照计算并冗余存储,不信任前端
// 3. 订单创建后不可变更、不可删除(生命周期与原系统一致)
// 4. CustomerName为读侧字段(联users表取显示名),写入时不存储
type Order struct {
	ID           uint
	CustomerID   uint
	CustomerName string // 读侧:顾客显示名
	OrderDate    time.Time
	Total        int64  // 订单总金额(分)
	CCNumber     string // 支付卡号(仅存储,不扣款)
	CCExpiry     string // 卡有效期(MM/YY)
	Items        []Item
}

// Item 订单明细项
// UnitPrice为下单时的价格快照,商家后续改价不影响历史订单
type Item struct {
	ID        uint
	OrderID   uint
	ISBN      string
	Quantity  int
	UnitPrice int64 // 下单时单价(分)
}

// NewOrder 创建新订单(工厂方法)
func NewOrder(customerID uint, ccNumber, ccExpiry string, items []Item, total int64) *Order {
	return &Order{
		CustomerID: customerID,
		OrderDate:  time.Now(),
		Total:      total,
		CCNumber:   ccNumber,
		CCExpiry:   ccExpiry,
		Items:      items,
	}
}

// CalculateTotal 按明细计算订单总金额(分)
// 用于校验冗余的Total字段与明细一致
func (o *Order) CalculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.UnitPrice * int64(item.Quantity)
	}
	return total
}

// IsOwnedBy 订单是否属于指定顾客(防止越权查看他人订单)
func (o *Order) IsOwnedBy(customerID uint) bool {
	return o.CustomerID == customerID
}

// MaskedCCNumber 脱敏卡号(仅保留后4位)
func (o *Order) MaskedCCNumber() string {
	if len(o.CCNumber) <= 4 {
		return o.CCNumber
	}
	return "**** **** **** " + o.CCNumber[len(o.CCNumber)-4:]
}
