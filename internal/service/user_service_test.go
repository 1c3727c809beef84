package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tshirt-design-api/internal/domain"
)

func TestRegisterAndLogin(t *testing.T) {
	s := NewUserService(newMemUserRepo())

	u, err := s.Register(RegisterInput{
		Firstname: "Ada", Lastname: "Lovelace",
		Email: " Ada@Example.com ", Password: "super-secret",
	})
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", u.Email) // 邮箱归一化
	require.Equal(t, domain.RoleUser, u.Role)
	require.NotEqual(t, "super-secret", u.PasswordHash)

	got, err := s.Login("ada@example.com", "super-secret")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = s.Login("ada@example.com", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = s.Login("nobody@example.com", "super-secret")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := NewUserService(newMemUserRepo())

	_, err := s.Register(RegisterInput{Firstname: "A", Lastname: "B", Email: "a@b.com", Password: "12345678"})
	require.NoError(t, err)

	_, err = s.Register(RegisterInput{Firstname: "C", Lastname: "D", Email: "A@B.com", Password: "12345678"})
	require.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestBan(t *testing.T) {
	repo := newMemUserRepo()
	s := NewUserService(repo)

	u, err := s.Register(RegisterInput{Firstname: "A", Lastname: "B", Email: "a@b.com", Password: "12345678"})
	require.NoError(t, err)

	require.NoError(t, s.Ban(u.ID))
	require.ErrorIs(t, s.Ban(u.ID), domain.ErrNotFound) // 已封禁再封禁

	_, err = s.Get(u.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// 默认列表看不到已封禁用户
	items, total, err := s.List(0, 20, "", false)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, items)

	items, total, err = s.List(0, 20, "", true)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, items, 1)
}
