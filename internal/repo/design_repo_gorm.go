package repo

import (
	"errors"

	"gorm.io/gorm"

	"tshirt-design-api/internal/domain"
)

type DesignRepo struct{ db *gorm.DB }

func NewDesignRepo(db *gorm.DB) *DesignRepo { return &DesignRepo{db: db} }

func (r *DesignRepo) Create(d *domain.Design) error { return r.db.Create(d).Error }

func (r *DesignRepo) FindByID(id string) (*domain.Design, error) {
	var d domain.Design
	err := r.db.First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DesignRepo) FindByOwner(ownerID string) ([]domain.Design, error) {
	var ds []domain.Design
	err := r.db.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&ds).Error
	return ds, err
}

// FindAll 管理端列表：带归属主信息，可按状态精确过滤
func (r *DesignRepo) FindAll(status domain.Status) ([]domain.Design, error) {
	q := r.db.Model(&domain.Design{}).Preload("Owner")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var ds []domain.Design
	err := q.Order("created_at DESC").Find(&ds).Error
	return ds, err
}

func (r *DesignRepo) Update(d *domain.Design) error { return r.db.Save(d).Error }

func (r *DesignRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Design{}).Error
}
