package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/booking"
	itemRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/item"
	userRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/user"
	"github.com/m04kA/ShareIt-RentalService/internal/service/bookings/models"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	nextID   int64
	updated  map[int64]domain.BookingStatus
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{
		bookings: make(map[int64]*domain.Booking),
		nextID:   100,
		updated:  make(map[int64]domain.BookingStatus),
	}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.nextID++
	created := *b
	created.ID = r.nextID
	created.CreatedAt = fixedNow
	created.UpdatedAt = fixedNow
	r.bookings[created.ID] = &created
	return &created, nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) GetByBookerID(_ context.Context, bookerID int64, filter domain.BookingSearchFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.Booker.ID == bookerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByOwnerID(_ context.Context, ownerID int64, filter domain.BookingSearchFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.Item.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByItemID(_ context.Context, itemID int64) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.Item.ID == itemID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	r.updated[id] = status
	return nil
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
	items map[int64]*domain.Item
}

func (c *fakeItemCatalog) GetByID(_ context.Context, id int64) (*domain.Item, error) {
	item, ok := c.items[id]
	if !ok {
		return nil, itemRepo.ErrItemNotFound
	}
	return item, nil
}

func (c *fakeItemCatalog) GetByOwnerID(_ context.Context, ownerID int64, page, size int) ([]*domain.Item, error) {
	var out []*domain.Item
	for _, item := range c.items {
		if item.OwnerID == ownerID {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Тестовые данные: пользователь 1 владеет вещью 10,
// пользователь 2 бронирует её

func testUsers() *fakeUserDir {
	return &fakeUserDir{users: map[int64]*domain.User{
		1: {ID: 1, Name: "owner", Email: "owner@example.com"},
		2: {ID: 2, Name: "booker", Email: "booker@example.com"},
		3: {ID: 3, Name: "stranger", Email: "stranger@example.com"},
	}}
}

func testItems() *fakeItemCatalog {
	return &fakeItemCatalog{items: map[int64]*domain.Item{
		10: {ID: 10, Name: "дрель", Description: "аккумуляторная дрель", Status: domain.ItemAvailable, OwnerID: 1},
		11: {ID: 11, Name: "лестница", Description: "стремянка", Status: domain.ItemUnavailable, OwnerID: 1},
	}}
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:     42,
		Start:  fixedNow.Add(24 * time.Hour),
		End:    fixedNow.Add(48 * time.Hour),
		Item:   domain.Item{ID: 10, Name: "дрель", Status: domain.ItemAvailable, OwnerID: 1},
		Booker: domain.User{ID: 2, Name: "booker", Email: "booker@example.com"},
		Status: status,
	}
}

func newTestService(repo *fakeBookingRepo) *Service {
	svc := NewService(repo, testUsers(), testItems(), fakeTxManager{}, nopLogger{})
	svc.timeProvider = &fakeClock{now: fixedNow}
	return svc
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates booking in WAITING status", func(t *testing.T) {
		repo := newFakeBookingRepo()
		svc := newTestService(repo)

		resp, err := svc.Create(ctx, &models.CreateBookingRequest{
			UserID: 2,
			ItemID: 10,
			Start:  fixedNow.Add(time.Hour),
			End:    fixedNow.Add(2 * time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusWaiting), resp.Status)
		assert.Equal(t, int64(10), resp.Item.ID)
		assert.Equal(t, int64(2), resp.Booker.ID)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo())

		_, err := svc.Create(ctx, &models.CreateBookingRequest{
			UserID: 99,
			ItemID: 10,
			Start:  fixedNow.Add(time.Hour),
			End:    fixedNow.Add(2 * time.Hour),
		})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo())

		_, err := svc.Create(ctx, &models.CreateBookingRequest{
			UserID: 2,
			ItemID: 99,
			Start:  fixedNow.Add(time.Hour),
			End:    fixedNow.Add(2 * time.Hour),
		})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("owner cannot book own item", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo())

		_, err := svc.Create(ctx, &models.CreateBookingRequest{
			UserID: 1,
			ItemID: 10,
			Start:  fixedNow.Add(time.Hour),
			End:    fixedNow.Add(2 * time.Hour),
		})
		assert.ErrorIs(t, err, ErrOwnerBooking)
	})

	t.Run("unavailable item", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo())

		_, err := svc.Create(ctx, &models.CreateBookingRequest{
			UserID: 2,
			ItemID: 11,
			Start:  fixedNow.Add(time.Hour),
			End:    fixedNow.Add(2 * time.Hour),
		})
		assert.ErrorIs(t, err, ErrItemUnavailable)
	})

	t.Run("start equal to end", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo())
		start := fixedNow.Add(time.Hour)

		_, err := svc.Create(ctx, &models.CreateBookingRequest{
			UserID: 2,
			ItemID: 10,
			Start:  start,
			End:    start,
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("start after end", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo())

		_, err := svc.Create(ctx, &models.CreateBookingRequest{
			UserID: 2,
			ItemID: 10,
			Start:  fixedNow.Add(2 * time.Hour),
			End:    fixedNow.Add(time.Hour),
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})
}

func TestDecide(t *testing.T) {
	ctx := context.Background()

	t.Run("owner approves waiting booking", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(domain.StatusWaiting))
		svc := newTestService(repo)

		resp, err := svc.Decide(ctx, 42, 1, true)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusApproved), resp.Status)
		assert.Equal(t, domain.StatusApproved, repo.updated[42])
	})

	t.Run("owner rejects waiting booking", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(domain.StatusWaiting))
		svc := newTestService(repo)

		resp, err := svc.Decide(ctx, 42, 1, false)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusRejected), resp.Status)
	})

	t.Run("booker cancels waiting booking", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(domain.StatusWaiting))
		svc := newTestService(repo)

		resp, err := svc.Decide(ctx, 42, 2, false)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCanceled), resp.Status)
	})

	t.Run("booker cancels approved booking", func(t *testing.T) {
		// Отмена бронирующим не требует статуса WAITING
		repo := newFakeBookingRepo(testBooking(domain.StatusApproved))
		svc := newTestService(repo)

		resp, err := svc.Decide(ctx, 42, 2, false)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCanceled), resp.Status)
	})

	t.Run("booker cannot approve own booking", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(domain.StatusWaiting))
		svc := newTestService(repo)

		_, err := svc.Decide(ctx, 42, 2, true)
		assert.ErrorIs(t, err, ErrSelfApprove)
		assert.Empty(t, repo.updated)
	})

	t.Run("owner cannot decide on canceled booking", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(domain.StatusCanceled))
		svc := newTestService(repo)

		_, err := svc.Decide(ctx, 42, 1, true)
		assert.ErrorIs(t, err, ErrBookingCanceled)
	})

	t.Run("owner cannot decide twice", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(domain.StatusApproved))
		svc := newTestService(repo)

		_, err := svc.Decide(ctx, 42, 1, false)
		assert.ErrorIs(t, err, ErrDecisionAlreadyMade)
	})

	t.Run("stranger cannot decide", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(domain.StatusWaiting))
		svc := newTestService(repo)

		_, err := svc.Decide(ctx, 42, 3, true)
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("stranger on canceled booking", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(domain.StatusCanceled))
		svc := newTestService(repo)

		_, err := svc.Decide(ctx, 42, 3, true)
		assert.ErrorIs(t, err, ErrBookingCanceled)
	})

	t.Run("expired booking rejected before role check", func(t *testing.T) {
		b := testBooking(domain.StatusWaiting)
		b.Start = fixedNow.Add(-48 * time.Hour)
		b.End = fixedNow.Add(-24 * time.Hour)
		repo := newFakeBookingRepo(b)
		svc := newTestService(repo)

		// Даже бронирующий не может отменить истекшее бронирование
		_, err := svc.Decide(ctx, 42, 2, false)
		assert.ErrorIs(t, err, ErrBookingExpired)

		_, err = svc.Decide(ctx, 42, 1, true)
		assert.ErrorIs(t, err, ErrBookingExpired)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo())

		_, err := svc.Decide(ctx, 99, 1, true)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(domain.StatusWaiting))
		svc := newTestService(repo)

		_, err := svc.Decide(ctx, 42, 99, true)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("booker sees own booking", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo(testBooking(domain.StatusWaiting)))

		resp, err := svc.GetByID(ctx, 42, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
	})

	t.Run("owner sees booking of own item", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo(testBooking(domain.StatusWaiting)))

		resp, err := svc.GetByID(ctx, 42, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
	})

	t.Run("stranger gets access denied", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo(testBooking(domain.StatusWaiting)))

		_, err := svc.GetByID(ctx, 42, 3)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestGetForBooker(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo())

		_, err := svc.GetForBooker(ctx, &models.ListBookingsRequest{UserID: 99, State: domain.SearchAll})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("returns bookings of the user", func(t *testing.T) {
		svc := newTestService(newFakeBookingRepo(testBooking(domain.StatusWaiting)))

		resp, err := svc.GetForBooker(ctx, &models.ListBookingsRequest{UserID: 2, State: domain.SearchAll})
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, int64(42), resp[0].ID)
	})
}
