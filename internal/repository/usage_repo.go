package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"restroomfinder/internal/domain"
)

type UsageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

func (r *UsageRepository) Create(ctx context.Context, rec *domain.UsageRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// GetOpen returns the open record (end_time IS NULL) for the pair, if any.
func (r *UsageRepository) GetOpen(ctx context.Context, userID, restroomID int64) (*domain.UsageRecord, error) {
	var rec domain.UsageRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND restroom_id = ? AND end_time IS NULL", userID, restroomID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *UsageRepository) Close(ctx context.Context, id int64, endTime time.Time, durationMinutes int) error {
	return r.db.WithContext(ctx).Model(&domain.UsageRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"end_time":         endTime,
			"duration_minutes": durationMinutes,
		}).Error
}

func (r *UsageRepository) ListByUser(ctx context.Context, userID int64) ([]domain.UsageRecord, error) {
	var out []domain.UsageRecord
	err := r.db.WithContext(ctx).
		Preload("Restroom").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}
