package repository

import (
	"context"

	"gorm.io/gorm"

	"restroomfinder/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) ListByRestroom(ctx context.Context, restroomID int64, limit int) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.WithContext(ctx).
		Where("restroom_id = ?", restroomID).
		Order("created_at desc").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.WithContext(ctx).
		Preload("Restroom").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// Aggregate returns the review count and rating sum for a restroom.
func (r *ReviewRepository) Aggregate(ctx context.Context, restroomID int64) (count int64, sum int64, err error) {
	type row struct {
		Count int64
		Sum   int64
	}
	var res row
	err = r.db.WithContext(ctx).Model(&domain.Review{}).
		Select("COUNT(*) AS count, COALESCE(SUM(rating), 0) AS sum").
		Where("restroom_id = ?", restroomID).
		Scan(&res).Error
	return res.Count, res.Sum, err
}
