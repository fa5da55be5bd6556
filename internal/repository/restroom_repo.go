package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"restroomfinder/internal/domain"
)

type RestroomRepository struct {
	db *gorm.DB
}

func NewRestroomRepository(db *gorm.DB) *RestroomRepository {
	return &RestroomRepository{db: db}
}

func (r *RestroomRepository) Create(ctx context.Context, rr *domain.Restroom) error {
	return r.db.WithContext(ctx).Create(rr).Error
}

func (r *RestroomRepository) Update(ctx context.Context, rr *domain.Restroom) error {
	return r.db.WithContext(ctx).Save(rr).Error
}

func (r *RestroomRepository) GetByID(ctx context.Context, id int64) (*domain.Restroom, error) {
	var rr domain.Restroom
	err := r.db.WithContext(ctx).First(&rr, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rr, nil
}

func (r *RestroomRepository) List(ctx context.Context) ([]domain.Restroom, error) {
	var out []domain.Restroom
	err := r.db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}

func (r *RestroomRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Restroom, error) {
	var out []domain.Restroom
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id asc").Find(&out).Error
	return out, err
}

func (r *RestroomRepository) IncrementCurrentUsers(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.Restroom{}).
		Where("id = ?", id).
		Update("current_users", gorm.Expr("current_users + 1")).Error
}

// DecrementCurrentUsers never takes the counter below zero.
func (r *RestroomRepository) DecrementCurrentUsers(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.Restroom{}).
		Where("id = ? AND current_users > 0", id).
		Update("current_users", gorm.Expr("current_users - 1")).Error
}

func (r *RestroomRepository) SetRatingAggregate(ctx context.Context, id int64, rating float64, totalReviews int) error {
	return r.db.WithContext(ctx).Model(&domain.Restroom{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":        rating,
			"total_reviews": totalReviews,
		}).Error
}
