package cart

// Item 购物车条目实体
// 一行代表一个(顾客,图书)组合;同一顾客同一本书最多一行,
// 合并逻辑由Service层的AddItem保证(数据库无联合唯一约束,与原系统一致)
type Item struct {
	ID         uint   // 购物车条目ID
	CustomerID uint   // 顾客用户ID
	ISBN       string // 图书ISBN
	Quantity   int    // 数量
}

// Line 购物车展示行(条目+图书信息)
// GetCart读取时与books联表得到书名与当前价格
type Line struct {
	ID         uint   `json:"cart_id"`
	CustomerID uint   `json:"customer_id"`
	ISBN       string `json:"isbn"`
	Title      string `json:"title"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unit_price"` // 图书当前价格(分),非快照
}

// LineTotal 行小计(分)
func (l *Line) LineTotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}
