package comments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
	itemRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/item"
	userRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/user"
	"github.com/m04kA/ShareIt-RentalService/internal/service/comments/models"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCommentRepo struct {
	comments []*domain.Comment
	nextID   int64
}

func (r *fakeCommentRepo) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	r.nextID++
	created := *c
	created.ID = r.nextID
	r.comments = append(r.comments, &created)
	return &created, nil
}

func (r *fakeCommentRepo) GetByItemID(_ context.Context, itemID int64) ([]*domain.Comment, error) {
	var out []*domain.Comment
	for _, c := range r.comments {
		if c.ItemID == itemID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeUserDir struct{ users map[int64]*domain.User }

func (d *fakeUserDir) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := d.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type fakeItemCatalog struct{ items map[int64]*domain.Item }

func (c *fakeItemCatalog) GetByID(_ context.Context, id int64) (*domain.Item, error) {
	item, ok := c.items[id]
	if !ok {
		return nil, itemRepo.ErrItemNotFound
	}
	return item, nil
}

type fakeBookingLister struct {
	bookings []*domain.Booking
}

func (l *fakeBookingLister) GetByBookerID(_ context.Context, bookerID int64, filter domain.BookingSearchFilter) ([]*domain.Booking, error) {
	// Имитирует выборку PAST на стороне хранилища
	var out []*domain.Booking
	for _, b := range l.bookings {
		if b.Booker.ID == bookerID && b.End.Before(filter.Now) {
			out = append(out, b)
		}
	}
	return out, nil
}

func newTestService(lister *fakeBookingLister) (*Service, *fakeCommentRepo) {
	repo := &fakeCommentRepo{}
	svc := NewService(
		repo,
		&fakeUserDir{users: map[int64]*domain.User{
			2: {ID: 2, Name: "booker", Email: "booker@example.com"},
		}},
		&fakeItemCatalog{items: map[int64]*domain.Item{
			10: {ID: 10, Name: "дрель", Status: domain.ItemAvailable, OwnerID: 1},
		}},
		lister,
		nopLogger{},
	)
	svc.timeProvider = &fakeClock{now: fixedNow}
	return svc, repo
}

func pastBooking(bookerID, itemID int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:     1,
		Start:  fixedNow.Add(-48 * time.Hour),
		End:    fixedNow.Add(-24 * time.Hour),
		Item:   domain.Item{ID: itemID, OwnerID: 1},
		Booker: domain.User{ID: bookerID, Name: "booker"},
		Status: status,
	}
}

func TestCreateComment(t *testing.T) {
	ctx := context.Background()

	t.Run("booker with finished booking can comment", func(t *testing.T) {
		svc, repo := newTestService(&fakeBookingLister{
			bookings: []*domain.Booking{pastBooking(2, 10, domain.StatusApproved)},
		})

		resp, err := svc.Create(ctx, &models.CreateCommentRequest{UserID: 2, ItemID: 10, Text: "отличная дрель"})
		require.NoError(t, err)
		assert.Equal(t, "отличная дрель", resp.Text)
		assert.Equal(t, "booker", resp.AuthorName)
		assert.Len(t, repo.comments, 1)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _ := newTestService(&fakeBookingLister{})

		_, err := svc.Create(ctx, &models.CreateCommentRequest{UserID: 99, ItemID: 10, Text: "текст"})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("blank text", func(t *testing.T) {
		svc, _ := newTestService(&fakeBookingLister{
			bookings: []*domain.Booking{pastBooking(2, 10, domain.StatusApproved)},
		})

		_, err := svc.Create(ctx, &models.CreateCommentRequest{UserID: 2, ItemID: 10, Text: "   "})
		assert.ErrorIs(t, err, ErrEmptyText)
	})

	t.Run("unknown item", func(t *testing.T) {
		svc, _ := newTestService(&fakeBookingLister{})

		_, err := svc.Create(ctx, &models.CreateCommentRequest{UserID: 2, ItemID: 99, Text: "текст"})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("no finished booking", func(t *testing.T) {
		svc, _ := newTestService(&fakeBookingLister{})

		_, err := svc.Create(ctx, &models.CreateCommentRequest{UserID: 2, ItemID: 10, Text: "текст"})
		assert.ErrorIs(t, err, ErrNoPastRent)
	})

	t.Run("future booking does not allow comment", func(t *testing.T) {
		b := pastBooking(2, 10, domain.StatusApproved)
		b.Start = fixedNow.Add(24 * time.Hour)
		b.End = fixedNow.Add(48 * time.Hour)
		svc, _ := newTestService(&fakeBookingLister{bookings: []*domain.Booking{b}})

		_, err := svc.Create(ctx, &models.CreateCommentRequest{UserID: 2, ItemID: 10, Text: "текст"})
		assert.ErrorIs(t, err, ErrNoPastRent)
	})

	t.Run("canceled past booking still allows comment", func(t *testing.T) {
		svc, repo := newTestService(&fakeBookingLister{
			bookings: []*domain.Booking{pastBooking(2, 10, domain.StatusCanceled)},
		})

		resp, err := svc.Create(ctx, &models.CreateCommentRequest{UserID: 2, ItemID: 10, Text: "текст"})
		require.NoError(t, err)
		assert.Equal(t, "текст", resp.Text)
		assert.Len(t, repo.comments, 1)
	})

	t.Run("finished booking of another item does not allow comment", func(t *testing.T) {
		svc, _ := newTestService(&fakeBookingLister{
			bookings: []*domain.Booking{pastBooking(2, 55, domain.StatusApproved)},
		})

		_, err := svc.Create(ctx, &models.CreateCommentRequest{UserID: 2, ItemID: 10, Text: "текст"})
		assert.ErrorIs(t, err, ErrNoPastRent)
	})
}
