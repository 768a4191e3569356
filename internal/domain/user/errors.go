package user

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "用户不存在")

	// ErrNoUsersFound 查询结果为空
	ErrNoUsersFound = apperrors.New(apperrors.ErrCodeNoResults, "没有符合条件的用户")

	// ErrUsernameDuplicate 用户名已被注册
	ErrUsernameDuplicate = apperrors.New(apperrors.ErrCodeUsernameDuplicate, "用户名已被注册")

	// ErrWeakPassword 密码强度不足
	ErrWeakPassword = apperrors.New(apperrors.ErrCodeWeakPassword, "密码强度不足（需8-20位，包含字母和数字）")

	// ErrInvalidUsername 用户名不合法
	ErrInvalidUsername = apperrors.New(apperrors.ErrCodeInvalidParams, "用户名长度应为3-50个字符")

	// ErrInvalidRole 角色不合法
	ErrInvalidRole = apperrors.New(apperrors.ErrCodeInvalidParams, "角色必须为Customer或Admin")

	// ErrDeleteSelf 不能删除当前登录的账号
	ErrDeleteSelf = apperrors.New(apperrors.ErrCodeBusinessError, "不能删除当前登录的账号")
)
