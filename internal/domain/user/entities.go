package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrNoPlatform = errors.New("platform account not configured")
)

type User struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	UserID       string         `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_users_user_id_active" json:"user_id"`
	Email        string         `gorm:"column:email;size:200;not null;uniqueIndex:ux_users_email_active" json:"email"`
	PasswordHash string         `gorm:"column:password_hash;size:100;not null" json:"-"`
	IsAdmin      bool           `gorm:"column:is_admin;default:false" json:"is_admin"`
	// IsPlatform marks the single escrow account principal disbursements are
	// drawn against. Exactly one row carries it.
	IsPlatform bool           `gorm:"column:is_platform;default:false" json:"-"`
	IsActive   bool           `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"-"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (User) TableName() string { return "users" }
