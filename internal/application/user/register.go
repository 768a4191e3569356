package user

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/user"
)

// RegisterUseCase 用户注册用例
// 注册规则(用户名唯一、密码强度、bcrypt加密)在领域服务里,
// 这一层只做编排,未来可扩展:发送欢迎邮件、记录审计日志等
type RegisterUseCase struct {
	userService user.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
	}
}

// RegisterRequest 注册请求
// Role不对外开放:注册接口只创建Customer,管理员账号走运维通道
type RegisterRequest struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}

// RegisterResponse 注册响应(不含密码字段)
type RegisterResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	u, err := uc.userService.Register(ctx, user.RegisterParams{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Role:      user.RoleCustomer,
	})
	if err != nil {
		return nil, err
	}

	return &RegisterResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
	}, nil
}
