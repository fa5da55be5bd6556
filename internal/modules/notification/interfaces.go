package notification

import (
	"context"

	"restroomfinder/internal/domain"
)

type NotificationRepositoryInterface interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByOwner(ctx context.Context, ownerID int64, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id int64) error
}

type RestroomReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Restroom, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type OwnerReader interface {
	GetByEmail(ctx context.Context, email string) (*domain.Owner, error)
}
