package puborder

import "github.com/xiebiao/bookshop/pkg/errors"

// 进货单领域错误定义
var (
	ErrPubOrderNotFound = errors.New(errors.ErrCodePubOrderNotFound, "进货单不存在")
	ErrNoPubOrdersFound = errors.New(errors.ErrCodeNoResults, "没有找到任何进货单")
	ErrAlreadyConfirmed = errors.New(errors.ErrCodeAlreadyConfirmed, "进货单已确认，不能重复确认")
	ErrInvalidQuantity  = errors.New(errors.ErrCodeInvalidParams, "进货数量必须大于0")
)
