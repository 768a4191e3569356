package order

import "github.com/xiebiao/bookshop/pkg/errors"

// 订单领域错误定义
var (
	ErrOrderNotFound = errors.New(errors.ErrCodeOrderNotFound, "订单不存在")
	ErrNoOrdersFound = errors.New(errors.ErrCodeNoResults, "没有找到任何订单")
	ErrEmptyCart     = errors.New(errors.ErrCodeEmptyCart, "购物车为空，无法下单")
	ErrForbidden     = errors.New(errors.ErrCodeForbidden, "无权查看该订单")
)
