package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// fakeRepository 内存版用户仓储
type fakeRepository struct {
	users  map[uint]*User
	nextID uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: make(map[uint]*User), nextID: 1}
}

func (r *fakeRepository) Create(ctx context.Context, u *User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return ErrUsernameDuplicate
		}
	}
	u.ID = r.nextID
	r.nextID++
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeRepository) FindByID(ctx context.Context, id uint) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeRepository) FindAll(ctx context.Context) ([]*User, error) {
	var result []*User
	for _, u := range r.users {
		copied := *u
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeRepository) Update(ctx context.Context, u *User) error {
	if _, ok := r.users[u.ID]; !ok {
		return ErrUserNotFound
	}
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeRepository) Delete(ctx context.Context, id uint) error {
	if _, ok := r.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// TestRegister 测试用户注册
// 密码必须经过bcrypt哈希后入库,明文不落库
func TestRegister(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterParams{
		Username:  "zhangsan",
		Password:  "Pass1234",
		FirstName: "三",
		LastName:  "张",
		Email:     "zhangsan@example.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, RoleCustomer, u.Role, "未指定角色时默认为Customer")

	// 入库的是bcrypt哈希,不是明文
	stored, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Pass1234", stored.Password, "明文密码不允许落库")
	err = bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("Pass1234"))
	assert.NoError(t, err, "哈希应能验证原密码")
}

// TestRegisterValidation 测试注册参数校验
func TestRegisterValidation(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	t.Run("用户名过短", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterParams{Username: "ab", Password: "Pass1234"})
		assert.ErrorIs(t, err, ErrInvalidUsername)
	})

	t.Run("密码过短", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterParams{Username: "zhangsan", Password: "Ab1"})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("密码缺少数字", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterParams{Username: "zhangsan", Password: "OnlyLetters"})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("密码缺少字母", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterParams{Username: "zhangsan", Password: "1234567890"})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("非法角色", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterParams{Username: "zhangsan", Password: "Pass1234", Role: "SuperUser"})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

// TestRegisterDuplicateUsername 测试用户名重复
func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterParams{Username: "zhangsan", Password: "Pass1234"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterParams{Username: "zhangsan", Password: "Pass5678"})
	assert.ErrorIs(t, err, ErrUsernameDuplicate)
}

// TestLogin 测试用户登录
func TestLogin(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterParams{Username: "zhangsan", Password: "Pass1234"})
	require.NoError(t, err)

	t.Run("正确密码登录成功", func(t *testing.T) {
		u, err := svc.Login(ctx, "zhangsan", "Pass1234")
		require.NoError(t, err)
		assert.Equal(t, "zhangsan", u.Username)
	})

	t.Run("错误密码被拒绝", func(t *testing.T) {
		_, err := svc.Login(ctx, "zhangsan", "Wrong123")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("用户不存在", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody", "Pass1234")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

// TestChangePassword 测试修改密码
// 旧密码必须正确,新密码必须满足强度要求
func TestChangePassword(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterParams{Username: "zhangsan", Password: "Pass1234"})
	require.NoError(t, err)

	t.Run("旧密码错误被拒绝", func(t *testing.T) {
		err := svc.ChangePassword(ctx, "zhangsan", "Wrong123", "NewPass99")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("新密码强度不足被拒绝", func(t *testing.T) {
		err := svc.ChangePassword(ctx, "zhangsan", "Pass1234", "weak")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("修改成功后新密码可登录", func(t *testing.T) {
		err := svc.ChangePassword(ctx, "zhangsan", "Pass1234", "NewPass99")
		require.NoError(t, err)

		_, err = svc.Login(ctx, "zhangsan", "NewPass99")
		assert.NoError(t, err, "新密码应能登录")

		_, err = svc.Login(ctx, "zhangsan", "Pass1234")
		assert.Error(t, err, "旧密码应失效")
	})
}

// TestDeleteUser 测试删除用户(管理端)
func TestDeleteUser(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	admin, err := svc.Register(ctx, RegisterParams{
		Username: "storeadmin", Password: "Admin1234", Role: RoleAdmin,
	})
	require.NoError(t, err)
	customer, err := svc.Register(ctx, RegisterParams{
		Username: "lisi", Password: "Pass1234",
	})
	require.NoError(t, err)

	err = svc.DeleteUser(ctx, customer.ID, admin.ID)
	require.NoError(t, err)
	_, err = repo.FindByID(ctx, customer.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	// 删除不存在的用户
	err = svc.DeleteUser(ctx, customer.ID, admin.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	// 不允许删除自己
	err = svc.DeleteUser(ctx, admin.ID, admin.ID)
	assert.ErrorIs(t, err, ErrDeleteSelf)
	_, err = repo.FindByID(ctx, admin.ID)
	assert.NoError(t, err, "操作者账号不应被删除")
}

// TestDisplayName 测试显示名口径
// 姓名均为空时回退到用户名
func TestDisplayName(t *testing.T) {
	u := &User{Username: "zhangsan"}
	assert.Equal(t, "zhangsan", u.DisplayName())

	u.FirstName = "三"
	u.LastName = "张"
	assert.Equal(t, "三 张", u.DisplayName())
}
