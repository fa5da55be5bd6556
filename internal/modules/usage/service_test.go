package usage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"restroomfinder/internal/domain"
	"restroomfinder/internal/repository"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) StartUsing(ctx context.Context, userID, restroomID int64, start time.Time) error {
	args := m.Called(ctx, userID, restroomID, start)
	return args.Error(0)
}

func (m *mockUserRepo) StopUsing(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
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

func (m *mockRestroomRepo) IncrementCurrentUsers(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRestroomRepo) DecrementCurrentUsers(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockUsageRepo struct {
	mock.Mock
}

func (m *mockUsageRepo) Create(ctx context.Context, rec *domain.UsageRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockUsageRepo) GetOpen(ctx context.Context, userID, restroomID int64) (*domain.UsageRecord, error) {
	args := m.Called(ctx, userID, restroomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UsageRecord), args.Error(1)
}

func (m *mockUsageRepo) Close(ctx context.Context, id int64, endTime time.Time, durationMinutes int) error {
	args := m.Called(ctx, id, endTime, durationMinutes)
	return args.Error(0)
}

func (m *mockUsageRepo) ListByUser(ctx context.Context, userID int64) ([]domain.UsageRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UsageRecord), args.Error(1)
}

type mockPaymentGate struct {
	mock.Mock
}

func (m *mockPaymentGate) LatestWithStatus(ctx context.Context, userID, restroomID int64, status domain.PaymentStatus) (*domain.Payment, error) {
	args := m.Called(ctx, userID, restroomID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

type mockReviewReader struct {
	mock.Mock
}

func (m *mockReviewReader) ListByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func newTestService() (*Service, *mockUserRepo, *mockRestroomRepo, *mockUsageRepo, *mockPaymentGate, *mockReviewReader) {
	users := new(mockUserRepo)
	restrooms := new(mockRestroomRepo)
	usageRepo := new(mockUsageRepo)
	payments := new(mockPaymentGate)
	reviews := new(mockReviewReader)
	return NewService(users, restrooms, usageRepo, payments, reviews), users, restrooms, usageRepo, payments, reviews
}

func TestStartUsing_FreeRestroom(t *testing.T) {
	svc, users, restrooms, usageRepo, payments, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	restrooms.On("GetByID", mock.Anything, int64(2)).Return(&domain.Restroom{ID: 2, IsFree: true}, nil)
	users.On("StartUsing", mock.Anything, int64(1), int64(2), mock.Anything).Return(nil)
	restrooms.On("IncrementCurrentUsers", mock.Anything, int64(2)).Return(nil)
	usageRepo.On("Create", mock.Anything, mock.MatchedBy(func(rec *domain.UsageRecord) bool {
		return rec.UserID == 1 && rec.RestroomID == 2 && rec.EndTime == nil
	})).Return(nil)

	err := svc.StartUsing(context.Background(), 1, 2)
	assert.NoError(t, err)
	payments.AssertNotCalled(t, "LatestWithStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	usageRepo.AssertExpectations(t)
}

func TestStartUsing_PaidWithoutConfirmedPayment(t *testing.T) {
	svc, users, restrooms, usageRepo, payments, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	restrooms.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.Restroom{ID: 2, IsFree: false, Price: 5000}, nil)
	payments.On("LatestWithStatus", mock.Anything, int64(1), int64(2), domain.PaymentConfirmed).
		Return(nil, repository.ErrNotFound)

	err := svc.StartUsing(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrPaymentRequired)
	users.AssertNotCalled(t, "StartUsing", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	usageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStartUsing_PaidWithConfirmedPayment(t *testing.T) {
	svc, users, restrooms, usageRepo, payments, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	restrooms.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.Restroom{ID: 2, IsFree: false, Price: 5000}, nil)
	payments.On("LatestWithStatus", mock.Anything, int64(1), int64(2), domain.PaymentConfirmed).
		Return(&domain.Payment{ID: 9, Status: domain.PaymentConfirmed}, nil)
	users.On("StartUsing", mock.Anything, int64(1), int64(2), mock.Anything).Return(nil)
	restrooms.On("IncrementCurrentUsers", mock.Anything, int64(2)).Return(nil)
	usageRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	err := svc.StartUsing(context.Background(), 1, 2)
	assert.NoError(t, err)
}

func TestStartUsing_UnknownRestroom(t *testing.T) {
	svc, users, restrooms, _, _, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	restrooms.On("GetByID", mock.Anything, int64(99)).Return(nil, repository.ErrNotFound)

	err := svc.StartUsing(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrRestroomNotFound)
}

func TestStopUsing_ClosesOpenRecord(t *testing.T) {
	svc, users, restrooms, usageRepo, _, _ := newTestService()

	restroomID := int64(2)
	start := time.Now().UTC().Add(-10 * time.Minute)
	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{
		ID:                1,
		CurrentRestroomID: &restroomID,
		IsUsing:           true,
		StartTime:         &start,
	}, nil)
	restrooms.On("DecrementCurrentUsers", mock.Anything, restroomID).Return(nil)
	usageRepo.On("GetOpen", mock.Anything, int64(1), restroomID).
		Return(&domain.UsageRecord{ID: 4, UserID: 1, RestroomID: restroomID, StartTime: start}, nil)
	usageRepo.On("Close", mock.Anything, int64(4), mock.Anything, mock.MatchedBy(func(minutes int) bool {
		return minutes >= 9 && minutes <= 11
	})).Return(nil)
	users.On("StopUsing", mock.Anything, int64(1)).Return(nil)

	err := svc.StopUsing(context.Background(), 1)
	assert.NoError(t, err)
	usageRepo.AssertExpectations(t)
}

func TestStopUsing_NoActiveSession(t *testing.T) {
	svc, users, restrooms, usageRepo, _, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	users.On("StopUsing", mock.Anything, int64(1)).Return(nil)

	err := svc.StopUsing(context.Background(), 1)
	assert.NoError(t, err)
	restrooms.AssertNotCalled(t, "DecrementCurrentUsers", mock.Anything, mock.Anything)
	usageRepo.AssertNotCalled(t, "Close", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHistory_MergesUsageAndReviews(t *testing.T) {
	svc, _, _, usageRepo, _, reviews := newTestService()

	dur := 12
	end := time.Now().UTC()
	usageRepo.On("ListByUser", mock.Anything, int64(1)).Return([]domain.UsageRecord{
		{
			ID:              4,
			UserID:          1,
			RestroomID:      2,
			StartTime:       end.Add(-12 * time.Minute),
			EndTime:         &end,
			DurationMinutes: &dur,
			Restroom:        &domain.Restroom{ID: 2, Name: "Central WC", Address: "1 Main St"},
		},
	}, nil)
	reviews.On("ListByUser", mock.Anything, int64(1)).Return([]domain.Review{
		{ID: 7, UserID: 1, RestroomID: 2, Rating: 5, Comment: "clean",
			Restroom: &domain.Restroom{ID: 2, Name: "Central WC", Address: "1 Main St"}},
	}, nil)

	h, err := svc.History(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, h.UsageHistory, 1)
	assert.Len(t, h.Reviews, 1)
	assert.Equal(t, "usage", h.UsageHistory[0].Type)
	assert.Equal(t, "Central WC", h.UsageHistory[0].RestroomName)
	assert.Equal(t, 12, *h.UsageHistory[0].DurationMinutes)
	assert.Equal(t, "review", h.Reviews[0].Type)
	assert.Equal(t, 5, h.Reviews[0].Rating)
}
