package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

const testSecret = "test-secret-key"

// TestGenerateAndParseToken 测试Token生成与解析往返
func TestGenerateAndParseToken(t *testing.T) {
	manager := NewManager(testSecret, 2*time.Hour, 7*24*time.Hour)

	pair, err := manager.GenerateToken(42, "zhangsan", "Admin")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(7200), pair.ExpiresIn)

	// 解析Access Token,角色等Claims应完整还原
	claims, err := manager.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "zhangsan", claims.Username)
	assert.Equal(t, "Admin", claims.Role)
	assert.Equal(t, "bookshop", claims.Issuer)
}

// TestParseExpiredToken 测试过期Token被拒绝
func TestParseExpiredToken(t *testing.T) {
	// 有效期为负,Token生成即过期
	manager := NewManager(testSecret, -time.Hour, -time.Hour)

	pair, err := manager.GenerateToken(1, "zhangsan", "Customer")
	require.NoError(t, err)

	_, err = manager.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

// TestParseTokenWrongSecret 测试密钥不匹配时签名验证失败
func TestParseTokenWrongSecret(t *testing.T) {
	manager := NewManager(testSecret, 2*time.Hour, 7*24*time.Hour)
	other := NewManager("another-secret", 2*time.Hour, 7*24*time.Hour)

	pair, err := manager.GenerateToken(1, "zhangsan", "Customer")
	require.NoError(t, err)

	_, err = other.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

// TestParseMalformedToken 测试畸形Token
func TestParseMalformedToken(t *testing.T) {
	manager := NewManager(testSecret, 2*time.Hour, 7*24*time.Hour)

	_, err := manager.ParseToken("not-a-jwt")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

// TestRefreshAccessToken 测试用Refresh Token刷新Access Token
func TestRefreshAccessToken(t *testing.T) {
	manager := NewManager(testSecret, 2*time.Hour, 7*24*time.Hour)

	pair, err := manager.GenerateToken(42, "zhangsan", "Customer")
	require.NoError(t, err)

	newAccess, err := manager.RefreshAccessToken(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := manager.ParseToken(newAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}
