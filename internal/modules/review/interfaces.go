package review

import (
	"context"

	"restroomfinder/internal/domain"
)

type ReviewRepositoryInterface interface {
	Create(ctx context.Context, rv *domain.Review) error
	ListByRestroom(ctx context.Context, restroomID int64, limit int) ([]domain.Review, error)
	Aggregate(ctx context.Context, restroomID int64) (count int64, sum int64, err error)
}

type RestroomRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Restroom, error)
	SetRatingAggregate(ctx context.Context, id int64, rating float64, totalReviews int) error
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type Notifier interface {
	Create(ctx context.Context, n *domain.Notification) error
}
