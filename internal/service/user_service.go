package service

import (
	"strings"

	"tshirt-design-api/internal/domain"
	"tshirt-design-api/pkg/utils"
)

type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

type RegisterInput struct {
	Firstname string
	Lastname  string
	Email     string
	Password  string
}

func (s *UserService) Register(in RegisterInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Firstname:    strings.TrimSpace(in.Firstname),
		Lastname:     strings.TrimSpace(in.Lastname),
		Email:        email,
		PasswordHash: utils.HashPassword(in.Password),
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(u); err != nil {
		// 并发注册兜底：唯一冲突按"邮箱已占用"返回
		if isDupKey(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) Login(email, password string) (*domain.User, error) {
	u, err := s.users.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) Get(id string) (*domain.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (s *UserService) List(offset, limit int, q string, withDeleted bool) ([]domain.User, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.users.List(offset, limit, q, withDeleted)
}

// Ban 软删用户
func (s *UserService) Ban(id string) error {
	ok, err := s.users.SoftDelete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// 不依赖 gorm.ErrDuplicatedKey，避免驱动差异
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}
