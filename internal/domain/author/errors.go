package author

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 作者领域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "作者不存在")

	// ErrNoAuthorsFound 查询结果为空
	ErrNoAuthorsFound = apperrors.New(apperrors.ErrCodeNoResults, "没有符合条件的作者")

	// ErrInvalidName 作者名不能为空
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "作者名不能为空")
)

// ErrAlreadyLinked 图书与作者已关联(联表唯一约束冲突)
var ErrAlreadyLinked = apperrors.New(apperrors.ErrCodeDuplicateEntry, "该作者已关联到此图书")
