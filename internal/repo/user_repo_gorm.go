package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"tshirt-design-api/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

func (r *UserRepo) FindByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) List(offset, limit int, q string, withDeleted bool) ([]domain.User, int64, error) {
	tx := r.db.Model(&domain.User{})
	if withDeleted {
		tx = tx.Unscoped()
	}
	if s := strings.TrimSpace(q); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("email LIKE ? OR firstname LIKE ? OR lastname LIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []domain.User
	if err := tx.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepo) SoftDelete(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.User{})
	return res.RowsAffected > 0, res.Error
}
