package dto

import (
	"github.com/xiebiao/bookshop/internal/domain/report"
)

// TotalSalesResponse HTTP销售汇总响应
type TotalSalesResponse struct {
	TotalSales     int64  `json:"total_sales" example:"125000"`
	TotalSalesYuan string `json:"total_sales_yuan" example:"1250.00"`
	TotalOrders    int    `json:"total_orders" example:"18"`
	TotalItemsSold int    `json:"total_items_sold" example:"42"`
}

// ToTotalSalesResponse 读模型 → HTTP响应
func ToTotalSalesResponse(s *report.TotalSales) *TotalSalesResponse {
	return &TotalSalesResponse{
		TotalSales:     s.TotalSales,
		TotalSalesYuan: FormatPriceYuan(s.TotalSales),
		TotalOrders:    s.TotalOrders,
		TotalItemsSold: s.TotalItemsSold,
	}
}

// TopCustomerResponse HTTP顾客消费排名响应
type TopCustomerResponse struct {
	CustomerID     uint   `json:"customer_id" example:"1"`
	CustomerName   string `json:"customer_name" example:"张三"`
	OrderCount     int    `json:"order_count" example:"5"`
	TotalSpent     int64  `json:"total_spent" example:"58800"`
	TotalSpentYuan string `json:"total_spent_yuan" example:"588.00"`
}

// ToTopCustomerResponses 读模型列表 → HTTP响应列表
func ToTopCustomerResponses(customers []*report.TopCustomer) []*TopCustomerResponse {
	result := make([]*TopCustomerResponse, len(customers))
	for i, c := range customers {
		result[i] = &TopCustomerResponse{
			CustomerID:     c.CustomerID,
			CustomerName:   c.CustomerName,
			OrderCount:     c.OrderCount,
			TotalSpent:     c.TotalSpent,
			TotalSpentYuan: FormatPriceYuan(c.TotalSpent),
		}
	}
	return result
}

// TopSellingBookResponse HTTP图书销量排名响应
type TopSellingBookResponse struct {
	ISBN     string `json:"isbn" example:"9787115428028"`
	Title    string `json:"title" example:"Go语言实战"`
	Category string `json:"category" example:"编程"`
	Sold     int    `json:"sold" example:"120"`
}

// ToTopSellingBookResponses 读模型列表 → HTTP响应列表
func ToTopSellingBookResponses(books []*report.TopSellingBook) []*TopSellingBookResponse {
	result := make([]*TopSellingBookResponse, len(books))
	for i, b := range books {
		result[i] = &TopSellingBookResponse{
			ISBN:     b.ISBN,
			Title:    b.Title,
			Category: b.Category,
			Sold:     b.Sold,
		}
	}
	return result
}

// BookOrderCountResponse HTTP单书进货情况响应
type BookOrderCountResponse struct {
	ISBN                 string `json:"isbn" example:"9787115428028"`
	Title                string `json:"title" example:"Go语言实战"`
	TotalTimesOrdered    int    `json:"total_times_ordered" example:"3"`
	TotalQuantityOrdered int    `json:"total_quantity_ordered" example:"150"`
	PendingOrders        int    `json:"pending_orders" example:"1"`
	ConfirmedOrders      int    `json:"confirmed_orders" example:"2"`
}

// ToBookOrderCountResponse 读模型 → HTTP响应
func ToBookOrderCountResponse(c *report.BookOrderCount) *BookOrderCountResponse {
	return &BookOrderCountResponse{
		ISBN:                 c.ISBN,
		Title:                c.Title,
		TotalTimesOrdered:    c.TotalTimesOrdered,
		TotalQuantityOrdered: c.TotalQuantityOrdered,
		PendingOrders:        c.PendingOrders,
		ConfirmedOrders:      c.ConfirmedOrders,
	}
}
