package auth

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByEmployeeNumber(ctx context.Context, number string) (*Account, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var a Account
	if err := r.db.WithContext(ctx).First(&a, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByEmployeeNumber(ctx context.Context, number string) (*Account, error) {
	var a Account
	if err := r.db.WithContext(ctx).First(&a, "employee_number = ?", number).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
