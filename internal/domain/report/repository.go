package report

import (
	"context"
	"time"
)

// Repository 报表仓储接口
// 报表全部是聚合查询,由基础设施层用原生SQL实现
type Repository interface {
	// TotalSalesPreviousMonth 上一个自然月的销售汇总
	TotalSalesPreviousMonth(ctx context.Context) (*TotalSales, error)
	// TotalSalesForDate 指定日期当天的销售汇总
	TotalSalesForDate(ctx context.Context, date time.Time) (*TotalSales, error)
	// Top5Customers 最近90天消费额排名的前5名顾客
	Top5Customers(ctx context.Context) ([]*TopCustomer, error)
	// Top10SellingBooks 最近90天销量排名的前10本图书
	Top10SellingBooks(ctx context.Context) ([]*TopSellingBook, error)
	// BookOrderCount 单本图书的进货情况汇总(无进货记录时各计数为0)
	BookOrderCount(ctx context.Context, isbn string) (*BookOrderCount, error)
}
