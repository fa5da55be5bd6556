package payment

import (
	"context"
	"time"

	"restroomfinder/internal/domain"
)

type PaymentRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	SetStatus(ctx context.Context, id int64, status domain.PaymentStatus, confirmedAt *time.Time) error
	LatestWithStatus(ctx context.Context, userID, restroomID int64, status domain.PaymentStatus) (*domain.Payment, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Payment, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error)
}

type RestroomReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Restroom, error)
}

type OwnerReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Owner, error)
	GetByEmail(ctx context.Context, email string) (*domain.Owner, error)
}

// Notifier records owner/user facing notifications for payment events.
type Notifier interface {
	Create(ctx context.Context, n *domain.Notification) error
}
