package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"restroomfinder/internal/domain"
)

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

func (m *mockReviewRepo) ListByRestroom(ctx context.Context, restroomID int64, limit int) ([]domain.Review, error) {
	args := m.Called(ctx, restroomID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepo) Aggregate(ctx context.Context, restroomID int64) (int64, int64, error) {
	args := m.Called(ctx, restroomID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

type mockRestroomRepo struct {
	mock.Mock
}

func (m *mockRestroomRepo) GetByID(ctx context.Context, id int64) (*domain.Restroom, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restroom), args.Error(1)
}

func (m *mockRestroomRepo) SetRatingAggregate(ctx context.Context, id int64, rating float64, totalReviews int) error {
	args := m.Called(ctx, id, rating, totalReviews)
	return args.Error(0)
}

type mockUserReader struct {
	mock.Mock
}

func (m *mockUserReader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func TestCreate_RecomputesAggregateAndNotifies(t *testing.T) {
	reviews := new(mockReviewRepo)
	restrooms := new(mockRestroomRepo)
	users := new(mockUserReader)
	notifier := new(mockNotifier)
	svc := NewService(reviews, restrooms, users, notifier)

	ownerID := int64(3)
	restrooms.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.Restroom{ID: 2, Name: "Market WC", OwnerID: &ownerID}, nil)
	reviews.On("Create", mock.Anything, mock.MatchedBy(func(rv *domain.Review) bool {
		return rv.Rating == 4 && rv.RestroomID == 2
	})).Return(nil)
	// Three reviews totaling 13 stars after this one lands.
	reviews.On("Aggregate", mock.Anything, int64(2)).Return(int64(3), int64(13), nil)
	restrooms.On("SetRatingAggregate", mock.Anything, int64(2), 13.0/3.0, 3).Return(nil)
	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Username: "SwiftPanda42"}, nil)
	notifier.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == domain.NotifReview && n.Message == "SwiftPanda42 đã đánh giá 4 sao cho Market WC"
	})).Return(nil)

	err := svc.Create(context.Background(), CreateReviewRequest{
		RestroomID: 2, UserID: 1, Rating: 4, Comment: "sạch sẽ",
	})
	assert.NoError(t, err)
	restrooms.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreate_OwnerlessRestroomSkipsNotification(t *testing.T) {
	reviews := new(mockReviewRepo)
	restrooms := new(mockRestroomRepo)
	notifier := new(mockNotifier)
	svc := NewService(reviews, restrooms, new(mockUserReader), notifier)

	restrooms.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.Restroom{ID: 2, Name: "Public WC"}, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)
	reviews.On("Aggregate", mock.Anything, int64(2)).Return(int64(1), int64(5), nil)
	restrooms.On("SetRatingAggregate", mock.Anything, int64(2), 5.0, 1).Return(nil)

	err := svc.Create(context.Background(), CreateReviewRequest{
		RestroomID: 2, UserID: 1, Rating: 5,
	})
	assert.NoError(t, err)
	notifier.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_RatingOutOfRange(t *testing.T) {
	svc := NewService(new(mockReviewRepo), new(mockRestroomRepo), new(mockUserReader), new(mockNotifier))

	err := svc.Create(context.Background(), CreateReviewRequest{RestroomID: 2, UserID: 1, Rating: 6})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Create(context.Background(), CreateReviewRequest{RestroomID: 2, UserID: 1, Rating: 0})
	assert.ErrorIs(t, err, ErrValidation)
}
