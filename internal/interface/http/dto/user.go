package dto

import (
	"github.com/xiebiao/bookshop/internal/domain/user"
)

// RegisterRequest HTTP注册请求
// 密码强度的业务校验(字母+数字)在领域服务里,这里只做长度约束
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50" example:"zhangsan"`
	Password  string `json:"password" binding:"required,min=8,max=20" example:"pass1234"`
	FirstName string `json:"first_name" binding:"max=50" example:"三"`
	LastName  string `json:"last_name" binding:"max=50" example:"张"`
	Email     string `json:"email" binding:"omitempty,email,max=100" example:"zhangsan@example.com"`
	Phone     string `json:"phone" binding:"max=20" example:"13800138000"`
	Address   string `json:"address" binding:"max=255" example:"北京市海淀区"`
}

// LoginRequest HTTP登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"zhangsan"`
	Password string `json:"password" binding:"required" example:"pass1234"`
}

// ChangePasswordRequest HTTP修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required" example:"pass1234"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=20" example:"pass5678"`
}

// UpdateProfileRequest HTTP更新资料请求(部分更新)
// 不含用户名/密码/角色:登录名不可改,密码走修改密码接口,角色不受理
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=50"`
	LastName  *string `json:"last_name" binding:"omitempty,max=50"`
	Email     *string `json:"email" binding:"omitempty,email,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
	Address   *string `json:"address" binding:"omitempty,max=255"`
}

// ToUpdateParams HTTP请求 → 领域层更新参数
func (r *UpdateProfileRequest) ToUpdateParams() user.UpdateParams {
	return user.UpdateParams{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

// UserResponse HTTP用户响应(不含密码)
type UserResponse struct {
	ID        uint   `json:"id" example:"1"`
	Username  string `json:"username" example:"zhangsan"`
	FirstName string `json:"first_name" example:"三"`
	LastName  string `json:"last_name" example:"张"`
	Email     string `json:"email" example:"zhangsan@example.com"`
	Phone     string `json:"phone" example:"13800138000"`
	Address   string `json:"address" example:"北京市海淀区"`
	Role      string `json:"role" example:"Customer"`
}

// ToUserResponse 领域实体 → HTTP响应
func ToUserResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		Role:      u.Role,
	}
}

// ToUserResponses 领域实体列表 → HTTP响应列表
func ToUserResponses(users []*user.User) []*UserResponse {
	result := make([]*UserResponse, len(users))
	for i, u := range users {
		result[i] = ToUserResponse(u)
	}
	return result
}
