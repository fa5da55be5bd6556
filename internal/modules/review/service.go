package review

import (
	"context"
	"errors"
	"fmt"

	"restroomfinder/internal/domain"
	"restroomfinder/internal/repository"
)

type Service struct {
	reviews       ReviewRepositoryInterface
	restrooms     RestroomRepositoryInterface
	users         UserReader
	notifications Notifier
}

func NewService(reviews ReviewRepositoryInterface, restrooms RestroomRepositoryInterface, users UserReader, notifications Notifier) *Service {
	return &Service{
		reviews:       reviews,
		restrooms:     restrooms,
		users:         users,
		notifications: notifications,
	}
}

// Create stores the review, recomputes the restroom's rating aggregate
// and, when the restroom has an owner, leaves them a notification.
func (s *Service) Create(ctx context.Context, req CreateReviewRequest) error {
	if req.RestroomID <= 0 || req.UserID <= 0 || req.Rating < 1 || req.Rating > 5 {
		return ErrValidation
	}

	restroom, err := s.restrooms.GetByID(ctx, req.RestroomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRestroomNotFound
		}
		return err
	}

	rv := &domain.Review{
		RestroomID: req.RestroomID,
		UserID:     req.UserID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		ImagePath:  req.ImagePath,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return err
	}

	count, sum, err := s.reviews.Aggregate(ctx, req.RestroomID)
	if err != nil {
		return err
	}
	if count > 0 {
		rating := float64(sum) / float64(count)
		if err := s.restrooms.SetRatingAggregate(ctx, req.RestroomID, rating, int(count)); err != nil {
			return err
		}
	}

	if restroom.OwnerID != nil {
		username := "Khách"
		if user, err := s.users.GetByID(ctx, req.UserID); err == nil {
			username = user.Username
		}
		userID := req.UserID
		n := &domain.Notification{
			OwnerID:    *restroom.OwnerID,
			RestroomID: req.RestroomID,
			UserID:     &userID,
			Type:       domain.NotifReview,
			Message:    fmt.Sprintf("%s đã đánh giá %d sao cho %s", username, req.Rating, restroom.Name),
		}
		if err := s.notifications.Create(ctx, n); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) ListByRestroom(ctx context.Context, restroomID int64, limit int) ([]domain.Review, error) {
	return s.reviews.ListByRestroom(ctx, restroomID, limit)
}
