package restroom

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"restroomfinder/internal/domain"
	"restroomfinder/internal/repository"
)

// Default coordinates for restrooms registered without a pin (Dĩ An, Bình Dương).
const (
	defaultLatitude  = 10.8800
	defaultLongitude = 106.7900
)

type Service struct {
	restrooms RestroomRepositoryInterface
	owners    OwnerRepositoryInterface
	reviews   ReviewReader
}

func NewService(restrooms RestroomRepositoryInterface, owners OwnerRepositoryInterface, reviews ReviewReader) *Service {
	return &Service{restrooms: restrooms, owners: owners, reviews: reviews}
}

func (s *Service) List(ctx context.Context) ([]domain.Restroom, error) {
	return s.restrooms.List(ctx)
}

// Get returns a restroom with its ten most recent reviews.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Restroom, []domain.Review, error) {
	rr, err := s.restrooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	reviews, err := s.reviews.ListByRestroom(ctx, id, 10)
	if err != nil {
		return nil, nil, err
	}
	return rr, reviews, nil
}

// RegisterOwner upserts the owner by email and creates their initial
// restrooms. Repeated registrations update contact details in place.
func (s *Service) RegisterOwner(ctx context.Context, req RegisterOwnerRequest) (int64, error) {
	email := strings.ToLower(strings.TrimSpace(req.Owner.Email))
	if email == "" || req.Owner.Name == "" {
		return 0, ErrValidation
	}

	owner, err := s.owners.GetByEmail(ctx, email)
	switch {
	case err == nil:
		owner.Name = req.Owner.Name
		owner.Phone = req.Owner.Phone
		if req.Owner.Password != "" {
			hash, herr := bcrypt.GenerateFromPassword([]byte(req.Owner.Password), bcrypt.DefaultCost)
			if herr != nil {
				return 0, herr
			}
			owner.PasswordHash = string(hash)
		}
		if err := s.owners.Update(ctx, owner); err != nil {
			return 0, err
		}
	case errors.Is(err, repository.ErrNotFound):
		owner = &domain.Owner{
			Name:  req.Owner.Name,
			Email: email,
			Phone: req.Owner.Phone,
		}
		if req.Owner.Password != "" {
			hash, herr := bcrypt.GenerateFromPassword([]byte(req.Owner.Password), bcrypt.DefaultCost)
			if herr != nil {
				return 0, herr
			}
			owner.PasswordHash = string(hash)
		}
		if err := s.owners.Create(ctx, owner); err != nil {
			return 0, err
		}
	default:
		return 0, err
	}

	for i, info := range req.Restrooms {
		ownerID := owner.ID
		rr := &domain.Restroom{
			Name:         info.Name,
			Address:      info.Address,
			Latitude:     defaultLatitude + float64(i)*0.001,
			Longitude:    defaultLongitude + float64(i)*0.001,
			OwnerID:      &ownerID,
			IsFree:       true,
			Rating:       5.0,
			TotalReviews: 0,
			AdminContact: email,
		}
		if err := s.restrooms.Create(ctx, rr); err != nil {
			return 0, err
		}
	}
	return owner.ID, nil
}

func (s *Service) ListByOwnerID(ctx context.Context, ownerID int64) ([]domain.Restroom, error) {
	return s.restrooms.ListByOwner(ctx, ownerID)
}

func (s *Service) ListByOwnerEmail(ctx context.Context, email string) ([]domain.Restroom, error) {
	owner, err := s.owners.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	return s.restrooms.ListByOwner(ctx, owner.ID)
}

// Create registers a new restroom under the owner identified by the
// admin_contact email.
func (s *Service) Create(ctx context.Context, req CreateRestroomRequest) (int64, error) {
	if req.Name == "" || req.Address == "" {
		return 0, ErrValidation
	}
	if req.AdminContact == "" {
		return 0, ErrValidation
	}

	owner, err := s.owners.GetByEmail(ctx, strings.ToLower(req.AdminContact))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrOwnerNotFound
		}
		return 0, err
	}

	ownerID := owner.ID
	rr := &domain.Restroom{
		Name:         req.Name,
		Address:      req.Address,
		Latitude:     defaultLatitude,
		Longitude:    defaultLongitude,
		OwnerID:      &ownerID,
		IsFree:       true,
		Price:        req.Price,
		AdminContact: req.AdminContact,
		Images:       req.Images,
	}
	if req.Latitude != nil {
		rr.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		rr.Longitude = *req.Longitude
	}
	if req.IsFree != nil {
		rr.IsFree = *req.IsFree
	}
	if req.MaleToilets != nil {
		rr.MaleStanding = req.MaleToilets.Standing
		rr.MaleSitting = req.MaleToilets.Sitting
	}
	if req.FemaleToilets != nil {
		rr.FemaleSitting = req.FemaleToilets.Sitting
	}
	if req.DisabledAccess != nil {
		rr.DisabledAccess = *req.DisabledAccess
	}

	if err := s.restrooms.Create(ctx, rr); err != nil {
		return 0, err
	}
	return rr.ID, nil
}

// Update applies only the fields present in the request.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRestroomRequest) error {
	rr, err := s.restrooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if req.Name != nil {
		rr.Name = *req.Name
	}
	if req.Address != nil {
		rr.Address = *req.Address
	}
	if req.Latitude != nil {
		rr.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		rr.Longitude = *req.Longitude
	}
	if req.IsFree != nil {
		rr.IsFree = *req.IsFree
	}
	if req.AdminContact != nil {
		rr.AdminContact = *req.AdminContact
	}
	if req.DisabledAccess != nil {
		rr.DisabledAccess = *req.DisabledAccess
	}
	if req.MaleToilets != nil {
		rr.MaleStanding = req.MaleToilets.Standing
		rr.MaleSitting = req.MaleToilets.Sitting
	}
	if req.FemaleToilets != nil {
		rr.FemaleSitting = req.FemaleToilets.Sitting
	}
	if req.Images != nil {
		rr.Images = *req.Images
	}

	return s.restrooms.Update(ctx, rr)
}
