package domain

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	Firstname    string         `gorm:"size:64;not null" json:"firstname"`
	Lastname     string         `gorm:"size:64;not null" json:"lastname"`
	Email        string         `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string         `gorm:"size:100;not null" json:"-"`
	Role         string         `gorm:"size:16;not null;default:user" json:"role"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// Identity 鉴权边界注入的调用者身份，核心只读不改
type Identity struct {
	ID   string
	Role string
}

func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)    // 未找到返回 (nil, nil)
	FindByEmail(email string) (*User, error)
	List(offset, limit int, q string, withDeleted bool) ([]User, int64, error)
	SoftDelete(id string) (bool, error) // 返回是否真的删了
}
