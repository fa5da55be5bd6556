package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"restroomfinder/internal/domain"
)

type OwnerRepository struct {
	db *gorm.DB
}

func NewOwnerRepository(db *gorm.DB) *OwnerRepository {
	return &OwnerRepository{db: db}
}

func (r *OwnerRepository) Create(ctx context.Context, o *domain.Owner) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OwnerRepository) Update(ctx context.Context, o *domain.Owner) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *OwnerRepository) GetByID(ctx context.Context, id int64) (*domain.Owner, error) {
	var o domain.Owner
	err := r.db.WithContext(ctx).First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OwnerRepository) GetByEmail(ctx context.Context, email string) (*domain.Owner, error) {
	var o domain.Owner
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}
