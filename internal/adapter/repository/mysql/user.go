package mysql

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/user"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return translate(r.db.WithContext(ctx).Create(u).Error, domain.ErrNotFound)
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	var out domain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	var out domain.User
	res := r.db.WithContext(ctx).First(&out, id)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *UserRepository) GetPlatform(ctx context.Context) (*domain.User, error) {
	var out domain.User
	res := r.db.WithContext(ctx).Where("is_platform = ?", true).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNoPlatform)
	}
	return &out, nil
}
