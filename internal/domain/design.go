package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Status 设计评审状态机：draft/submitted 归属主可自切，approved/rejected 仅管理员可达
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// DefaultTshirtColor 未指定颜色时的兜底值
const DefaultTshirtColor = "#FFFFFF"

type Design struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	OwnerID     string `gorm:"size:36;index;not null" json:"ownerId"`
	Owner       *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Title       string `gorm:"size:191;not null" json:"title"`
	Description string `gorm:"size:1024" json:"description"`
	TshirtColor string `gorm:"size:32" json:"tshirtColor"`

	// 前后两面画布：渲染图引用（可空）+ 客户端矢量对象原样存储
	FrontImageURL *string        `gorm:"size:255" json:"frontImageUrl"`
	BackImageURL  *string        `gorm:"size:255" json:"backImageUrl"`
	FrontObjects  datatypes.JSON `gorm:"type:json" json:"frontObjects"`
	BackObjects   datatypes.JSON `gorm:"type:json" json:"backObjects"`

	Status    Status    `gorm:"size:16;not null;default:draft" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Design) TableName() string { return "designs" }

type DesignRepository interface {
	Create(d *Design) error
	FindByID(id string) (*Design, error) // 未找到返回 (nil, nil)
	FindByOwner(ownerID string) ([]Design, error)
	FindAll(status Status) ([]Design, error) // status 为空则不过滤；带 Owner
	Update(d *Design) error
	Delete(id string) error
}
