package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/puborder"
	"github.com/xiebiao/bookshop/internal/domain/report"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// reportRepository 报表仓储实现(MySQL)
// 报表全部是聚合查询,直接用Raw SQL实现,不走GORM模型
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository 创建报表仓储
func NewReportRepository(db *gorm.DB) report.Repository {
	return &reportRepository{db: db}
}

// TotalSalesPreviousMonth 上一个自然月的销售汇总
// 时间窗口:[上月1日00:00, 本月1日00:00)
func (r *reportRepository) TotalSalesPreviousMonth(ctx context.Context) (*report.TotalSales, error) {
	// 金额与册数从明细快照汇总,订单数去重统计
	// 直接SUM(o.total)会被明细行数放大,必须从order_items算
	var result report.TotalSales
	err := getDB(ctx, r.db).Raw(`
		SELECT
			COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS total_sales,
			COUNT(DISTINCT o.id)                          AS total_orders,
			COALESCE(SUM(oi.quantity), 0)                 AS total_items_sold
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.order_date >= DATE_FORMAT(DATE_SUB(CURDATE(), INTERVAL 1 MONTH), '%Y-%m-01')
		  AND o.order_date <  DATE_FORMAT(CURDATE(), '%Y-%m-01')
	`).Scan(&result).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "查询上月销售汇总失败")
	}
	return &result, nil
}

// TotalSalesForDate 指定日期当天的销售汇总
func (r *reportRepository) TotalSalesForDate(ctx context.Context, date time.Time) (*report.TotalSales, error) {
	day := date.Format("2006-01-02")

	var result report.TotalSales
	err := getDB(ctx, r.db).Raw(`
		SELECT
			COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS total_sales,
			COUNT(DISTINCT o.id)                          AS total_orders,
			COALESCE(SUM(oi.quantity), 0)                 AS total_items_sold
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE DATE(o.order_date) = ?
	`, day).Scan(&result).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "查询当日销售汇总失败")
	}
	return &result, nil
}

// Top5Customers 最近90天消费额排名的前5名顾客
func (r *reportRepository) Top5Customers(ctx context.Context) ([]*report.TopCustomer, error) {
	var results []*report.TopCustomer
	err := getDB(ctx, r.db).Raw(`
		SELECT
			u.id AS customer_id,
			CASE WHEN u.first_name = '' AND u.last_name = ''
			     THEN u.username
			     ELSE TRIM(CONCAT(u.first_name, ' ', u.last_name))
			END AS customer_name,
			COUNT(o.id)           AS order_count,
			COALESCE(SUM(o.total), 0) AS total_spent
		FROM users u
		JOIN orders o ON o.customer_id = u.id
		WHERE o.order_date >= DATE_SUB(CURDATE(), INTERVAL 90 DAY)
		GROUP BY u.id, u.username, u.first_name, u.last_name
		ORDER BY total_spent DESC
		LIMIT 5
	`).Scan(&results).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "查询顾客消费排名失败")
	}
	return results, nil
}

// Top10SellingBooks 最近90天销量排名的前10本图书
func (r *reportRepository) Top10SellingBooks(ctx context.Context) ([]*report.TopSellingBook, error) {
	var results []*report.TopSellingBook
	err := getDB(ctx, r.db).Raw(`
		SELECT
			b.isbn,
			b.title,
			b.category,
			COALESCE(SUM(oi.quantity), 0) AS sold
		FROM books b
		JOIN order_items oi ON oi.isbn = b.isbn
		JOIN orders o ON o.id = oi.order_id
		WHERE o.order_date >= DATE_SUB(CURDATE(), INTERVAL 90 DAY)
		GROUP BY b.isbn, b.title, b.category
		ORDER BY sold DESC
		LIMIT 10
	`).Scan(&results).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书销量排名失败")
	}
	return results, nil
}

// BookOrderCount 单本图书的进货情况汇总(按状态分组计数)
// 图书存在性由Service层校验;无进货记录时各计数为0
func (r *reportRepository) BookOrderCount(ctx context.Context, isbn string) (*report.BookOrderCount, error) {
	var result report.BookOrderCount
	err := getDB(ctx, r.db).Raw(`
		SELECT
			b.isbn,
			b.title,
			COUNT(po.id)                  AS total_times_ordered,
			COALESCE(SUM(po.quantity), 0) AS total_quantity_ordered,
			COALESCE(SUM(po.status = ?), 0) AS pending_orders,
			COALESCE(SUM(po.status = ?), 0) AS confirmed_orders
		FROM books b
		LEFT JOIN publisher_orders po ON po.isbn = b.isbn
		WHERE b.isbn = ?
		GROUP BY b.isbn, b.title
	`, puborder.StatusPending, puborder.StatusConfirmed, isbn).Scan(&result).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书进货情况失败")
	}
	return &result, nil
}
