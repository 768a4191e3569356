package publisher

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 出版社领域错误定义
var (
	// ErrPublisherNotFound 出版社不存在
	ErrPublisherNotFound = apperrors.New(apperrors.ErrCodePublisherNotFound, "出版社不存在")

	// ErrNoPublishersFound 查询结果为空
	ErrNoPublishersFound = apperrors.New(apperrors.ErrCodeNoResults, "没有符合条件的出版社")

	// ErrInvalidName 出版社名不能为空
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "出版社名不能为空")
)
