package usage

import (
	"context"
	"time"

	"restroomfinder/internal/domain"
)

type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	StartUsing(ctx context.Context, userID, restroomID int64, start time.Time) error
	StopUsing(ctx context.Context, userID int64) error
}

type RestroomRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Restroom, error)
	IncrementCurrentUsers(ctx context.Context, id int64) error
	DecrementCurrentUsers(ctx context.Context, id int64) error
}

type UsageRepositoryInterface interface {
	Create(ctx context.Context, rec *domain.UsageRecord) error
	GetOpen(ctx context.Context, userID, restroomID int64) (*domain.UsageRecord, error)
	Close(ctx context.Context, id int64, endTime time.Time, durationMinutes int) error
	ListByUser(ctx context.Context, userID int64) ([]domain.UsageRecord, error)
}

// PaymentGate answers whether a confirmed payment exists for the pair.
type PaymentGate interface {
	LatestWithStatus(ctx context.Context, userID, restroomID int64, status domain.PaymentStatus) (*domain.Payment, error)
}

type ReviewReader interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Review, error)
}
