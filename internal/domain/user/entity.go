package user

import (
	"time"
)

// 用户角色
const (
	RoleCustomer = "Customer" // 普通顾客
	RoleAdmin    = "Admin"    // 管理员
)

// User 用户实体(聚合根)
// 设计说明:
// 1. Password存储bcrypt哈希值,绝不存储明文
// 2. Role为Customer/Admin,权限校验在服务端(JWT claim),不信任前端
// 3. 领域实体不依赖GORM tag(infrastructure层的Repository实现时会处理映射)
type User struct {
	ID        uint
	Username  string // 登录名(全局唯一)
	Password  string // bcrypt哈希值
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Role      string // Customer | Admin
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户(工厂方法)
// hashedPassword必须是bcrypt加密后的密码
func NewUser(username, hashedPassword, firstName, lastName, email, phone, address, role string) *User {
	now := time.Now()
	if role == "" {
		role = RoleCustomer
	}
	return &User{
		Username:  username,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		Address:   address,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAdmin 是否管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// DisplayName 显示名(订单列表等处展示)
func (u *User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}

// UpdateParams 用户部分更新参数(nil字段不修改)
// 不包含Username/Password/Role:登录名不可改,密码走ChangePassword,角色由管理员单独设置
type UpdateParams struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Address   *string
}

// Apply 叠加部分更新参数
func (u *User) Apply(params UpdateParams) {
	if params.FirstName != nil {
		u.FirstName = *params.FirstName
	}
	if params.LastName != nil {
		u.LastName = *params.LastName
	}
	if params.Email != nil {
		u.Email = *params.Email
	}
	if params.Phone != nil {
		u.Phone = *params.Phone
	}
	if params.Address != nil {
		u.Address = *params.Address
	}
	u.UpdatedAt = time.Now()
}
