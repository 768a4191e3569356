package report

import "github.com/xiebiao/bookshop/pkg/errors"

// 报表领域错误定义
var (
	ErrNoSalesData = errors.New(errors.ErrCodeNoResults, "该时段没有销售数据")
	ErrNoCustomers = errors.New(errors.ErrCodeNoResults, "没有找到任何顾客消费记录")
	ErrNoBooksSold = errors.New(errors.ErrCodeNoResults, "没有找到任何图书销售记录")
)
