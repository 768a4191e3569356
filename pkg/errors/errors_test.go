package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHTTPStatus 测试错误码到HTTP状态码的映射
func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		code int
		want int
	}{
		{"内部错误", ErrCodeInternal, 500},
		{"数据库错误", ErrCodeDatabaseError, 500},
		{"资源不存在", ErrCodeBookNotFound, 404},
		{"查询结果为空", ErrCodeNoResults, 404},
		{"未登录", ErrCodeUnauthorized, 401},
		{"Token过期", ErrCodeTokenExpired, 401},
		{"无权限", ErrCodeForbidden, 403},
		{"业务错误", ErrCodeEmptyCart, 400},
		{"参数错误", ErrCodeInvalidParams, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(tt.code, "测试")
			assert.Equal(t, tt.want, e.HTTPStatus())
		})
	}
}

// TestWrap 测试错误包装与链路保留
func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	wrapped := Wrap(cause, "查询图书失败")

	assert.Equal(t, ErrCodeInternal, wrapped.Code)
	assert.ErrorIs(t, wrapped, cause, "包装后应保留原始错误链")
	assert.Contains(t, wrapped.Error(), "查询图书失败")
}

// TestGetAppError 测试从错误链提取AppError
func TestGetAppError(t *testing.T) {
	appErr := New(ErrCodeBookNotFound, "图书不存在")

	t.Run("直接的AppError", func(t *testing.T) {
		got := GetAppError(appErr)
		require.NotNil(t, got)
		assert.Equal(t, ErrCodeBookNotFound, got.Code)
	})

	t.Run("fmt.Errorf包装后仍可提取", func(t *testing.T) {
		wrapped := fmt.Errorf("查询失败: %w", appErr)
		assert.True(t, IsAppError(wrapped))

		got := GetAppError(wrapped)
		require.NotNil(t, got)
		assert.Equal(t, ErrCodeBookNotFound, got.Code)
	})

	t.Run("非AppError归为内部错误", func(t *testing.T) {
		got := GetAppError(stderrors.New("boom"))
		require.NotNil(t, got)
		assert.Equal(t, ErrCodeInternal, got.Code)
	})
}
