package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"restroomfinder/internal/domain"
	"restroomfinder/internal/repository"
)

type jwtService interface {
	GenerateToken(ownerID int64, email string) (string, error)
}

type Service struct {
	users  UserRepositoryInterface
	owners OwnerRepositoryInterface
	jwt    jwtService
}

// LoginResult carries either a regular user or an owner session.
// Token is only set for owners.
type LoginResult struct {
	User  *domain.User
	Owner *domain.Owner
	Token string
}

func NewService(users UserRepositoryInterface, owners OwnerRepositoryInterface, jwt jwtService) *Service {
	return &Service{users: users, owners: owners, jwt: jwt}
}

// CreateRandomUser registers an auto-generated guest account. The client
// invents the username; the server only guarantees uniqueness.
func (s *Service) CreateRandomUser(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrValidation
	}

	u := &domain.User{
		Username:     username,
		Role:         domain.RoleUser,
		IsRandomUser: true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		IsRandomUser: false,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}

// Login resolves the credential against users first, then owners by email.
// Owners additionally get a signed token for the management endpoints.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, ErrValidation
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
			return nil, ErrInvalidCredentials
		}
		return &LoginResult{User: u}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	o, err := s.owners.GetByEmail(ctx, strings.ToLower(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(o.ID, o.Email)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Owner: o, Token: token}, nil
}

func (s *Service) CheckUsername(ctx context.Context, username string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, ErrValidation
	}
	exists, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// sqlite (tests) has no SQLSTATE, only the message.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
