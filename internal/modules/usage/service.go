package usage

import (
	"context"
	"errors"
	"time"

	"restroomfinder/internal/domain"
	"restroomfinder/internal/repository"
)

type Service struct {
	users     UserRepositoryInterface
	restrooms RestroomRepositoryInterface
	usage     UsageRepositoryInterface
	payments  PaymentGate
	reviews   ReviewReader
}

func NewService(
	users UserRepositoryInterface,
	restrooms RestroomRepositoryInterface,
	usage UsageRepositoryInterface,
	payments PaymentGate,
	reviews ReviewReader,
) *Service {
	return &Service{
		users:     users,
		restrooms: restrooms,
		usage:     usage,
		payments:  payments,
		reviews:   reviews,
	}
}

// StartUsing opens a usage session. Paid restrooms require a confirmed
// payment on record before the session may begin.
func (s *Service) StartUsing(ctx context.Context, userID, restroomID int64) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	restroom, err := s.restrooms.GetByID(ctx, restroomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRestroomNotFound
		}
		return err
	}

	if !restroom.IsFree {
		_, err := s.payments.LatestWithStatus(ctx, userID, restroomID, domain.PaymentConfirmed)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrPaymentRequired
			}
			return err
		}
	}

	now := time.Now().UTC()
	if err := s.users.StartUsing(ctx, userID, restroomID, now); err != nil {
		return err
	}
	if err := s.restrooms.IncrementCurrentUsers(ctx, restroomID); err != nil {
		return err
	}
	return s.usage.Create(ctx, &domain.UsageRecord{
		UserID:     userID,
		RestroomID: restroomID,
		StartTime:  now,
	})
}

// StopUsing closes the open session if one exists. It is safe to call
// when the user is not marked as using anything.
func (s *Service) StopUsing(ctx context.Context, userID int64) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.CurrentRestroomID != nil {
		restroomID := *user.CurrentRestroomID
		if err := s.restrooms.DecrementCurrentUsers(ctx, restroomID); err != nil {
			return err
		}

		if user.StartTime != nil {
			rec, err := s.usage.GetOpen(ctx, userID, restroomID)
			if err == nil {
				end := time.Now().UTC()
				minutes := int(end.Sub(rec.StartTime).Minutes())
				if err := s.usage.Close(ctx, rec.ID, end, minutes); err != nil {
					return err
				}
			} else if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
		}
	}

	return s.users.StopUsing(ctx, userID)
}

type HistoryEntry struct {
	ID              int64      `json:"id"`
	Type            string     `json:"type"`
	RestroomName    string     `json:"restroom_name"`
	RestroomAddress string     `json:"restroom_address"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Rating          int        `json:"rating,omitempty"`
	Comment         string     `json:"comment,omitempty"`
	ImagePath       string     `json:"image_path,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type History struct {
	UsageHistory []HistoryEntry `json:"usage_history"`
	Reviews      []HistoryEntry `json:"reviews"`
}

// History returns past sessions and the user's reviews, newest first.
func (s *Service) History(ctx context.Context, userID int64) (*History, error) {
	records, err := s.usage.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	h := &History{
		UsageHistory: make([]HistoryEntry, 0, len(records)),
		Reviews:      make([]HistoryEntry, 0, len(reviews)),
	}
	for _, rec := range records {
		start := rec.StartTime
		entry := HistoryEntry{
			ID:              rec.ID,
			Type:            "usage",
			StartTime:       &start,
			EndTime:         rec.EndTime,
			DurationMinutes: rec.DurationMinutes,
			CreatedAt:       rec.CreatedAt,
		}
		if rec.Restroom != nil {
			entry.RestroomName = rec.Restroom.Name
			entry.RestroomAddress = rec.Restroom.Address
		}
		h.UsageHistory = append(h.UsageHistory, entry)
	}
	for _, rv := range reviews {
		entry := HistoryEntry{
			ID:        rv.ID,
			Type:      "review",
			Rating:    rv.Rating,
			Comment:   rv.Comment,
			ImagePath: rv.ImagePath,
			CreatedAt: rv.CreatedAt,
		}
		if rv.Restroom != nil {
			entry.RestroomName = rv.Restroom.Name
			entry.RestroomAddress = rv.Restroom.Address
		}
		h.Reviews = append(h.Reviews, entry)
	}
	return h, nil
}
