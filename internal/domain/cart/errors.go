package cart

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrCartItemNotFound 购物车条目不存在
	ErrCartItemNotFound = apperrors.New(apperrors.ErrCodeCartItemNotFound, "购物车条目不存在")

	// ErrCartEmpty 购物车为空
	ErrCartEmpty = apperrors.New(apperrors.ErrCodeEmptyCart, "购物车为空")

	// ErrInvalidQuantity 数量必须大于0
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须大于0")
)
