package report

// 销售报表读模型
// 这些结构只用于承载聚合查询结果,不是聚合根,没有生命周期

// TotalSales 销售汇总(上月或指定日期)
type TotalSales struct {
	TotalSales     int64 // 销售总额(分)
	TotalOrders    int   // 订单数
	TotalItemsSold int   // 售出图书册数
}

// TopCustomer 消费额排名中的顾客(最近90天)
type TopCustomer struct {
	CustomerID   uint
	CustomerName string
	OrderCount   int
	TotalSpent   int64 // 累计消费(分)
}

// TopSellingBook 销量排名中的图书(最近90天)
type TopSellingBook struct {
	ISBN     string
	Title    string
	Category string
	Sold     int // 累计售出册数
}

// BookOrderCount 单本图书的进货情况汇总(按状态分组计数)
type BookOrderCount struct {
	ISBN                 string
	Title                string
	TotalTimesOrdered    int // 进货单笔数
	TotalQuantityOrdered int // 累计进货册数
	PendingOrders        int // 待确认笔数
	ConfirmedOrders      int // 已确认笔数
}
