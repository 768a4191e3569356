package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshop/internal/domain/report"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// ReportHandler 销售报表HTTP处理器(全部管理员接口)
type ReportHandler struct {
	reportService report.Service
}

// NewReportHandler 创建报表处理器
func NewReportHandler(reportService report.Service) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetMonthlySales 上月销售汇总
// @Summary      上月销售汇总
// @Tags         报表
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=dto.TotalSalesResponse}
// @Failure      404 {object} response.Response "该时段没有销售数据"
// @Router       /api/v1/admin/reports/sales/monthly [get]
func (h *ReportHandler) GetMonthlySales(c *gin.Context) {
	sales, err := h.reportService.GetTotalSalesPreviousMonth(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToTotalSalesResponse(sales))
}

// GetDailySales 指定日期销售汇总
// @Summary      指定日期销售汇总
// @Tags         报表
// @Produce      json
// @Security     BearerAuth
// @Param        date query string true "日期(YYYY-MM-DD)"
// @Success      200 {object} response.Response{data=dto.TotalSalesResponse}
// @Failure      404 {object} response.Response "该时段没有销售数据"
// @Router       /api/v1/admin/reports/sales/daily [get]
func (h *ReportHandler) GetDailySales(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "日期格式应为YYYY-MM-DD")
		return
	}

	sales, err := h.reportService.GetTotalSalesForDate(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToTotalSalesResponse(sales))
}

// GetTopCustomers 最近90天顾客消费排名前5
// @Summary      顾客消费排名(最近90天)
// @Tags         报表
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]dto.TopCustomerResponse}
// @Failure      404 {object} response.Response "没有消费记录"
// @Router       /api/v1/admin/reports/top-customers [get]
func (h *ReportHandler) GetTopCustomers(c *gin.Context) {
	customers, err := h.reportService.GetTop5Customers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToTopCustomerResponses(customers))
}

// GetTopSellingBooks 最近90天图书销量排名前10
// @Summary      图书销量排名(最近90天)
// @Tags         报表
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]dto.TopSellingBookResponse}
// @Failure      404 {object} response.Response "没有销售记录"
// @Router       /api/v1/admin/reports/top-books [get]
func (h *ReportHandler) GetTopSellingBooks(c *gin.Context) {
	books, err := h.reportService.GetTop10SellingBooks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToTopSellingBookResponses(books))
}

// GetBookOrderCount 单本图书进货情况汇总
// @Summary      单本图书进货情况(按状态分组计数)
// @Description  图书必须存在,无进货记录时各计数为0
// @Tags         报表
// @Produce      json
// @Security     BearerAuth
// @Param        isbn path string true "ISBN"
// @Success      200 {object} response.Response{data=dto.BookOrderCountResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/admin/reports/books/{isbn} [get]
func (h *ReportHandler) GetBookOrderCount(c *gin.Context) {
	count, err := h.reportService.GetBookOrderCount(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToBookOrderCountResponse(count))
}
