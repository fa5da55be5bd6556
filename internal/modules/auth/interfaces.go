package auth

import (
	"context"

	"restroomfinder/internal/domain"
)

// UserRepositoryInterface lists only the methods the auth service touches.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

type OwnerRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*domain.Owner, error)
}
