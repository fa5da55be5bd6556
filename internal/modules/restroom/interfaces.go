package restroom

import (
	"context"

	"restroomfinder/internal/domain"
)

type RestroomRepositoryInterface interface {
	Create(ctx context.Context, rr *domain.Restroom) error
	Update(ctx context.Context, rr *domain.Restroom) error
	GetByID(ctx context.Context, id int64) (*domain.Restroom, error)
	List(ctx context.Context) ([]domain.Restroom, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Restroom, error)
}

type OwnerRepositoryInterface interface {
	Create(ctx context.Context, o *domain.Owner) error
	Update(ctx context.Context, o *domain.Owner) error
	GetByEmail(ctx context.Context, email string) (*domain.Owner, error)
}

// ReviewReader supplies the recent reviews embedded in a detail response.
type ReviewReader interface {
	ListByRestroom(ctx context.Context, restroomID int64, limit int) ([]domain.Review, error)
}
