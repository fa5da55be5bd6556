package restroom

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"restroomfinder/internal/domain"
	"restroomfinder/internal/repository"
)

type mockRestroomRepo struct {
	mock.Mock
}

func (m *mockRestroomRepo) Create(ctx context.Context, rr *domain.Restroom) error {
	args := m.Called(ctx, rr)
	return args.Error(0)
}

func (m *mockRestroomRepo) Update(ctx context.Context, rr *domain.Restroom) error {
	args := m.Called(ctx, rr)
	return args.Error(0)
}

func (m *mockRestroomRepo) GetByID(ctx context.Context, id int64) (*domain.Restroom, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restroom), args.Error(1)
}

func (m *mockRestroomRepo) List(ctx context.Context) ([]domain.Restroom, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Restroom), args.Error(1)
}

func (m *mockRestroomRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Restroom, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Restroom), args.Error(1)
}

type mockOwnerRepo struct {
	mock.Mock
}

func (m *mockOwnerRepo) Create(ctx context.Context, o *domain.Owner) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOwnerRepo) Update(ctx context.Context, o *domain.Owner) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOwnerRepo) GetByEmail(ctx context.Context, email string) (*domain.Owner, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Owner), args.Error(1)
}

type mockReviewReader struct {
	mock.Mock
}

func (m *mockReviewReader) ListByRestroom(ctx context.Context, restroomID int64, limit int) ([]domain.Review, error) {
	args := m.Called(ctx, restroomID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func TestGet_IncludesRecentReviews(t *testing.T) {
	restrooms := new(mockRestroomRepo)
	reviews := new(mockReviewReader)
	svc := NewService(restrooms, new(mockOwnerRepo), reviews)

	restrooms.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Restroom{ID: 5, Name: "Central Park WC"}, nil)
	reviews.On("ListByRestroom", mock.Anything, int64(5), 10).
		Return([]domain.Review{{ID: 1, Rating: 4}}, nil)

	rr, revs, err := svc.Get(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, "Central Park WC", rr.Name)
	assert.Len(t, revs, 1)
}

func TestGet_NotFound(t *testing.T) {
	restrooms := new(mockRestroomRepo)
	svc := NewService(restrooms, new(mockOwnerRepo), new(mockReviewReader))

	restrooms.On("GetByID", mock.Anything, int64(99)).Return(nil, repository.ErrNotFound)

	_, _, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegisterOwner_CreatesOwnerAndRestrooms(t *testing.T) {
	restrooms := new(mockRestroomRepo)
	owners := new(mockOwnerRepo)
	svc := NewService(restrooms, owners, new(mockReviewReader))

	owners.On("GetByEmail", mock.Anything, "lan@example.com").Return(nil, repository.ErrNotFound)
	owners.On("Create", mock.Anything, mock.MatchedBy(func(o *domain.Owner) bool {
		return o.Email == "lan@example.com" && o.Name == "Lan"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Owner).ID = 3
	}).Return(nil)

	var created []*domain.Restroom
	restrooms.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = append(created, args.Get(1).(*domain.Restroom))
		}).Return(nil)

	ownerID, err := svc.RegisterOwner(context.Background(), RegisterOwnerRequest{
		Owner: OwnerInfo{Name: "Lan", Email: "Lan@Example.com", Phone: "0901234567"},
		Restrooms: []OwnerRestroomInfo{
			{Name: "WC 1", Address: "12 Tran Hung Dao"},
			{Name: "WC 2", Address: "34 Le Loi"},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), ownerID)
	assert.Len(t, created, 2)
	assert.Equal(t, int64(3), *created[0].OwnerID)
	assert.Equal(t, 5.0, created[0].Rating)
	// Each additional restroom is offset slightly so map pins do not stack.
	assert.InDelta(t, created[0].Latitude+0.001, created[1].Latitude, 1e-9)
}

func TestRegisterOwner_UpdatesExisting(t *testing.T) {
	restrooms := new(mockRestroomRepo)
	owners := new(mockOwnerRepo)
	svc := NewService(restrooms, owners, new(mockReviewReader))

	owners.On("GetByEmail", mock.Anything, "lan@example.com").
		Return(&domain.Owner{ID: 3, Name: "Old Name", Email: "lan@example.com"}, nil)
	owners.On("Update", mock.Anything, mock.MatchedBy(func(o *domain.Owner) bool {
		return o.Name == "Lan" && o.Phone == "0909"
	})).Return(nil)

	ownerID, err := svc.RegisterOwner(context.Background(), RegisterOwnerRequest{
		Owner: OwnerInfo{Name: "Lan", Email: "lan@example.com", Phone: "0909"},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), ownerID)
}

func TestCreate_ResolvesOwnerByEmail(t *testing.T) {
	restrooms := new(mockRestroomRepo)
	owners := new(mockOwnerRepo)
	svc := NewService(restrooms, owners, new(mockReviewReader))

	owners.On("GetByEmail", mock.Anything, "lan@example.com").
		Return(&domain.Owner{ID: 3, Email: "lan@example.com"}, nil)
	restrooms.On("Create", mock.Anything, mock.MatchedBy(func(rr *domain.Restroom) bool {
		return *rr.OwnerID == 3 && rr.MaleStanding == 2 && rr.FemaleSitting == 3 && !rr.IsFree
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Restroom).ID = 11
	}).Return(nil)

	isFree := false
	id, err := svc.Create(context.Background(), CreateRestroomRequest{
		Name:          "Market WC",
		Address:       "56 Nguyen Hue",
		AdminContact:  "lan@example.com",
		IsFree:        &isFree,
		Price:         5000,
		MaleToilets:   &ToiletCounts{Standing: 2, Sitting: 1},
		FemaleToilets: &ToiletCounts{Sitting: 3},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestCreate_UnknownOwner(t *testing.T) {
	restrooms := new(mockRestroomRepo)
	owners := new(mockOwnerRepo)
	svc := NewService(restrooms, owners, new(mockReviewReader))

	owners.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrNotFound)

	_, err := svc.Create(context.Background(), CreateRestroomRequest{
		Name:         "WC",
		Address:      "Somewhere",
		AdminContact: "ghost@example.com",
	})
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestUpdate_PartialFields(t *testing.T) {
	restrooms := new(mockRestroomRepo)
	svc := NewService(restrooms, new(mockOwnerRepo), new(mockReviewReader))

	restrooms.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Restroom{ID: 5, Name: "Old", Address: "Old Addr", MaleStanding: 1}, nil)

	var saved *domain.Restroom
	restrooms.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*domain.Restroom)
		}).Return(nil)

	name := "New Name"
	err := svc.Update(context.Background(), 5, UpdateRestroomRequest{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, "New Name", saved.Name)
	assert.Equal(t, "Old Addr", saved.Address)
	assert.Equal(t, 1, saved.MaleStanding)
}
