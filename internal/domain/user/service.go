package user

import (
	"context"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// RegisterParams 注册参数
type RegisterParams struct {
	Username  string
	Password  string // 明文,仅在内存中短暂存在
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Role      string // 为空时默认Customer
}

// Service 用户领域服务
// 设计说明:
//  1. 密码使用bcrypt加盐哈希(cost=12),对明文密码的唯一消费点
//     (原系统的明文存储是缺陷,此处按安全基线重做)
//  2. 用户名唯一性由数据库UNIQUE索引保证,Repository转换为ErrUsernameDuplicate
type Service interface {
	// Register 用户注册
	Register(ctx context.Context, params RegisterParams) (*User, error)

	// Login 用户登录(用户名+密码)
	Login(ctx context.Context, username, password string) (*User, error)

	// ChangePassword 修改密码(旧密码必须正确)
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error

	// UpdateUser 部分更新用户资料(nil字段保留原值)
	UpdateUser(ctx context.Context, id uint, params UpdateParams) (*User, error)

	// GetUserByID 根据ID获取用户
	GetUserByID(ctx context.Context, id uint) (*User, error)

	// GetAllUsers 获取全部用户(管理端)
	GetAllUsers(ctx context.Context) ([]*User, error)

	// DeleteUser 删除用户(管理端);actorID为操作者,不能删除自己
	DeleteUser(ctx context.Context, id, actorID uint) error
}

type service struct {
	repo Repository
}

// NewService 创建用户领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	if len(params.Username) < 3 || len(params.Username) > 50 {
		return nil, ErrInvalidUsername
	}
	if err := validatePasswordStrength(params.Password); err != nil {
		return nil, err
	}
	if params.Role != "" && params.Role != RoleCustomer && params.Role != RoleAdmin {
		return nil, ErrInvalidRole
	}

	// bcrypt自动加盐,cost=12平衡安全性与性能
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(params.Password), 12)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	u := NewUser(params.Username, string(hashedPassword),
		params.FirstName, params.LastName, params.Email, params.Phone, params.Address, params.Role)

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Login(ctx context.Context, username, password string) (*User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := s.validatePassword(u.Password, password); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	// 旧密码必须匹配
	if err := s.validatePassword(u.Password, oldPassword); err != nil {
		return err
	}

	if err := validatePasswordStrength(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), 12)
	if err != nil {
		return apperrors.Wrap(err, "密码加密失败")
	}

	u.Password = string(hashed)
	return s.repo.Update(ctx, u)
}

func (s *service) UpdateUser(ctx context.Context, id uint, params UpdateParams) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Apply(params)
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) GetUserByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetAllUsers(ctx context.Context) ([]*User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNoUsersFound
	}
	return users, nil
}

func (s *service) DeleteUser(ctx context.Context, id, actorID uint) error {
	// 管理员删掉自己会立刻失去会话,直接拒绝
	if id == actorID {
		return ErrDeleteSelf
	}
	return s.repo.Delete(ctx, id)
}

// validatePassword 验证明文密码与哈希值是否匹配
func (s *service) validatePassword(hashedPassword, plainPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	if err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return apperrors.ErrInvalidPassword
		}
		return apperrors.Wrap(err, "密码验证失败")
	}
	return nil
}

// validatePasswordStrength 密码强度校验
// 规则:8-20位,必须包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return ErrWeakPassword
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)

	if !hasLetter || !hasDigit {
		return ErrWeakPassword
	}

	return nil
}
