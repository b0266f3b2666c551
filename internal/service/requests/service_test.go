package requests

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
	requestRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/request"
	userRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/user"
	"github.com/m04kA/ShareIt-RentalService/internal/service/requests/models"
	"github.com/m04kA/ShareIt-RentalService/pkg/ptr"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type fakeClock struct{}

func (fakeClock) Now() time.Time { return fixedNow }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRequestRepo struct {
	requests map[int64]*domain.ItemRequest
	nextID   int64
}

func newFakeRequestRepo(reqs ...*domain.ItemRequest) *fakeRequestRepo {
	r := &fakeRequestRepo{requests: make(map[int64]*domain.ItemRequest), nextID: 100}
	for _, req := range reqs {
		r.requests[req.ID] = req
	}
	return r
}

func (r *fakeRequestRepo) Create(_ context.Context, req *domain.ItemRequest) (*domain.ItemRequest, error) {
	r.nextID++
	created := *req
	created.ID = r.nextID
	r.requests[created.ID] = &created
	return &created, nil
}

func (r *fakeRequestRepo) GetByID(_ context.Context, id int64) (*domain.ItemRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, requestRepo.ErrRequestNotFound
	}
	return req, nil
}

func (r *fakeRequestRepo) GetByRequesterID(_ context.Context, requesterID int64) ([]*domain.ItemRequest, error) {
	var out []*domain.ItemRequest
	for _, req := range r.requests {
		if req.Requester.ID == requesterID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) GetAllExcept(_ context.Context, userID int64, _, _ int) ([]*domain.ItemRequest, error) {
	var out []*domain.ItemRequest
	for _, req := range r.requests {
		if req.Requester.ID != userID {
			out = append(out, req)
		}
	}
	return out, nil
}

type fakeUserDir struct {
	users map[int64]*domain.User
}

func (d *fakeUserDir) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := d.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type fakeItemCatalog struct {
	byRequest map[int64][]*domain.Item
}

func (c *fakeItemCatalog) GetByRequestID(_ context.Context, requestID int64) ([]*domain.Item, error) {
	return c.byRequest[requestID], nil
}

func newTestService(repo *fakeRequestRepo, catalog *fakeItemCatalog) *Service {
	users := &fakeUserDir{users: map[int64]*domain.User{
		1: {ID: 1, Name: "requester", Email: "requester@example.com"},
		2: {ID: 2, Name: "owner", Email: "owner@example.com"},
	}}
	if catalog == nil {
		catalog = &fakeItemCatalog{byRequest: map[int64][]*domain.Item{}}
	}
	svc := NewService(repo, users, catalog, nopLogger{})
	svc.timeProvider = fakeClock{}
	return svc
}

func testRequest(id, requesterID int64) *domain.ItemRequest {
	return &domain.ItemRequest{
		ID:          id,
		Description: "нужна дрель",
		Requester:   domain.User{ID: requesterID, Name: "requester"},
		CreatedAt:   fixedNow.Add(-24 * time.Hour),
	}
}

func TestCreateRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("creates request", func(t *testing.T) {
		svc := newTestService(newFakeRequestRepo(), nil)

		resp, err := svc.Create(ctx, &models.CreateRequestRequest{UserID: 1, Description: "нужна дрель"})
		require.NoError(t, err)
		assert.NotZero(t, resp.ID)
		assert.Equal(t, int64(1), resp.RequesterID)
		assert.Equal(t, fixedNow, resp.Created)
		assert.Empty(t, resp.Items)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newTestService(newFakeRequestRepo(), nil)

		_, err := svc.Create(ctx, &models.CreateRequestRequest{UserID: 99, Description: "нужна дрель"})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("blank description", func(t *testing.T) {
		svc := newTestService(newFakeRequestRepo(), nil)

		_, err := svc.Create(ctx, &models.CreateRequestRequest{UserID: 1, Description: "   "})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("too long description", func(t *testing.T) {
		svc := newTestService(newFakeRequestRepo(), nil)

		_, err := svc.Create(ctx, &models.CreateRequestRequest{
			UserID:      1,
			Description: strings.Repeat("a", domain.MaxRequestLength+1),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetOwnRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("returns only own requests with items", func(t *testing.T) {
		repo := newFakeRequestRepo(testRequest(10, 1), testRequest(11, 2))
		catalog := &fakeItemCatalog{byRequest: map[int64][]*domain.Item{
			10: {{ID: 5, Name: "дрель", OwnerID: 2, Status: domain.ItemAvailable, RequestID: ptr.Ptr(int64(10))}},
		}}
		svc := newTestService(repo, catalog)

		resp, err := svc.GetOwn(ctx, 1)
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, int64(10), resp[0].ID)
		require.Len(t, resp[0].Items, 1)
		assert.Equal(t, int64(5), resp[0].Items[0].ID)
		assert.True(t, resp[0].Items[0].Available)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newTestService(newFakeRequestRepo(), nil)

		_, err := svc.GetOwn(ctx, 99)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestGetAllRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("excludes own requests", func(t *testing.T) {
		repo := newFakeRequestRepo(testRequest(10, 1), testRequest(11, 2))
		svc := newTestService(repo, nil)

		resp, err := svc.GetAll(ctx, 1, 0, 10)
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, int64(11), resp[0].ID)
	})
}

func TestGetRequestByID(t *testing.T) {
	ctx := context.Background()

	t.Run("any existing user can view", func(t *testing.T) {
		repo := newFakeRequestRepo(testRequest(10, 1))
		svc := newTestService(repo, nil)

		resp, err := svc.GetByID(ctx, 10, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
		assert.NotNil(t, resp.Items)
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestService(newFakeRequestRepo(), nil)

		_, err := svc.GetByID(ctx, 99, 1)
		assert.ErrorIs(t, err, ErrRequestNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newTestService(newFakeRequestRepo(testRequest(10, 1)), nil)

		_, err := svc.GetByID(ctx, 10, 99)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
