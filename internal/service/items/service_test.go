package items

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
	itemRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/item"
	userRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/user"
	"github.com/m04kA/ShareIt-RentalService/internal/service/items/models"
	"github.com/m04kA/ShareIt-RentalService/pkg/ptr"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeItemRepo struct {
	items  map[int64]*domain.Item
	nextID int64
}

func newFakeItemRepo(items ...*domain.Item) *fakeItemRepo {
	r := &fakeItemRepo{items: make(map[int64]*domain.Item), nextID: 100}
	for _, item := range items {
		r.items[item.ID] = item
	}
	return r
}

func (r *fakeItemRepo) Create(_ context.Context, item *domain.Item) (*domain.Item, error) {
	r.nextID++
	created := *item
	created.ID = r.nextID
	r.items[created.ID] = &created
	return &created, nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id int64) (*domain.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, itemRepo.ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeItemRepo) GetByOwnerID(_ context.Context, ownerID int64, page, size int) ([]*domain.Item, error) {
	var out []*domain.Item
	for _, item := range r.items {
		if item.OwnerID == ownerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Search(_ context.Context, text string, page, size int) ([]*domain.Item, error) {
	var out []*domain.Item
	for _, item := range r.items {
		if item.IsAvailable() {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *domain.Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return itemRepo.ErrItemNotFound
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, ownerID, itemID int64) error {
	if _, ok := r.items[itemID]; !ok {
		return itemRepo.ErrItemNotFound
	}
	delete(r.items, itemID)
	return nil
}

type fakeUserDir struct{ users map[int64]*domain.User }

func (d *fakeUserDir) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := d.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type fakeBookingLister struct{ bookings []*domain.Booking }

func (l *fakeBookingLister) GetForItem(_ context.Context, itemID int64) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range l.bookings {
		if b.Item.ID == itemID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeCommentRepo struct{ comments []*domain.Comment }

func (r *fakeCommentRepo) GetByItemID(_ context.Context, itemID int64) ([]*domain.Comment, error) {
	var out []*domain.Comment
	for _, c := range r.comments {
		if c.ItemID == itemID {
			out = append(out, c)
		}
	}
	return out, nil
}

func booking(id, itemID int64, start, end time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:     id,
		Start:  start,
		End:    end,
		Item:   domain.Item{ID: itemID, OwnerID: 1},
		Booker: domain.User{ID: 2},
		Status: status,
	}
}

func newTestService(repo *fakeItemRepo, lister *fakeBookingLister, comments *fakeCommentRepo) *Service {
	svc := NewService(
		repo,
		&fakeUserDir{users: map[int64]*domain.User{
			1: {ID: 1, Name: "owner"},
			2: {ID: 2, Name: "booker"},
		}},
		lister,
		comments,
		nopLogger{},
	)
	svc.timeProvider = &fakeClock{now: fixedNow}
	return svc
}

func testItem() *domain.Item {
	return &domain.Item{ID: 10, Name: "дрель", Description: "аккумуляторная", Status: domain.ItemAvailable, OwnerID: 1}
}

func TestCreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("creates item", func(t *testing.T) {
		svc := newTestService(newFakeItemRepo(), &fakeBookingLister{}, &fakeCommentRepo{})

		resp, err := svc.Create(ctx, &models.CreateItemRequest{
			UserID:      1,
			Name:        "дрель",
			Description: "аккумуляторная",
			Available:   ptr.Ptr(true),
		})
		require.NoError(t, err)
		assert.True(t, resp.Available)
		assert.Equal(t, int64(1), resp.OwnerID)
	})

	t.Run("missing available flag", func(t *testing.T) {
		svc := newTestService(newFakeItemRepo(), &fakeBookingLister{}, &fakeCommentRepo{})

		_, err := svc.Create(ctx, &models.CreateItemRequest{
			UserID:      1,
			Name:        "дрель",
			Description: "аккумуляторная",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("blank name", func(t *testing.T) {
		svc := newTestService(newFakeItemRepo(), &fakeBookingLister{}, &fakeCommentRepo{})

		_, err := svc.Create(ctx, &models.CreateItemRequest{
			UserID:      1,
			Name:        "  ",
			Description: "аккумуляторная",
			Available:   ptr.Ptr(true),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newTestService(newFakeItemRepo(), &fakeBookingLister{}, &fakeCommentRepo{})

		_, err := svc.Create(ctx, &models.CreateItemRequest{
			UserID:      99,
			Name:        "дрель",
			Description: "аккумуляторная",
			Available:   ptr.Ptr(true),
		})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("owner patches fields", func(t *testing.T) {
		svc := newTestService(newFakeItemRepo(testItem()), &fakeBookingLister{}, &fakeCommentRepo{})

		resp, err := svc.Update(ctx, &models.UpdateItemRequest{
			UserID:    1,
			ItemID:    10,
			Name:      ptr.Ptr("перфоратор"),
			Available: ptr.Ptr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, "перфоратор", resp.Name)
		assert.False(t, resp.Available)
		// Описание не менялось
		assert.Equal(t, "аккумуляторная", resp.Description)
	})

	t.Run("non-owner denied", func(t *testing.T) {
		svc := newTestService(newFakeItemRepo(testItem()), &fakeBookingLister{}, &fakeCommentRepo{})

		_, err := svc.Update(ctx, &models.UpdateItemRequest{
			UserID: 2,
			ItemID: 10,
			Name:   ptr.Ptr("перфоратор"),
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestGetItemByID(t *testing.T) {
	ctx := context.Background()

	lister := &fakeBookingLister{bookings: []*domain.Booking{
		// Прошедшее подтвержденное
		booking(1, 10, fixedNow.Add(-72*time.Hour), fixedNow.Add(-48*time.Hour), domain.StatusApproved),
		// Текущее подтвержденное: началось позже первого
		booking(2, 10, fixedNow.Add(-time.Hour), fixedNow.Add(time.Hour), domain.StatusApproved),
		// Будущее ожидающее
		booking(3, 10, fixedNow.Add(24*time.Hour), fixedNow.Add(48*time.Hour), domain.StatusWaiting),
		// Будущее, но раньше третьего и отклонено - не должно учитываться
		booking(4, 10, fixedNow.Add(12*time.Hour), fixedNow.Add(18*time.Hour), domain.StatusRejected),
	}}

	t.Run("owner sees last and next bookings", func(t *testing.T) {
		svc := newTestService(newFakeItemRepo(testItem()), lister, &fakeCommentRepo{})

		resp, err := svc.GetByID(ctx, 10, 1)
		require.NoError(t, err)
		require.NotNil(t, resp.LastBooking)
		require.NotNil(t, resp.NextBooking)
		assert.Equal(t, int64(2), resp.LastBooking.ID)
		assert.Equal(t, int64(3), resp.NextBooking.ID)
	})

	t.Run("non-owner does not see bookings", func(t *testing.T) {
		svc := newTestService(newFakeItemRepo(testItem()), lister, &fakeCommentRepo{})

		resp, err := svc.GetByID(ctx, 10, 2)
		require.NoError(t, err)
		assert.Nil(t, resp.LastBooking)
		assert.Nil(t, resp.NextBooking)
	})

	t.Run("comments attached for everyone", func(t *testing.T) {
		comments := &fakeCommentRepo{comments: []*domain.Comment{
			{ID: 1, Text: "хорошая вещь", ItemID: 10, AuthorID: 2, AuthorName: "booker", CreatedAt: fixedNow},
		}}
		svc := newTestService(newFakeItemRepo(testItem()), lister, comments)

		resp, err := svc.GetByID(ctx, 10, 2)
		require.NoError(t, err)
		require.Len(t, resp.Comments, 1)
		assert.Equal(t, "хорошая вещь", resp.Comments[0].Text)
	})

	t.Run("unknown item", func(t *testing.T) {
		svc := newTestService(newFakeItemRepo(), &fakeBookingLister{}, &fakeCommentRepo{})

		_, err := svc.GetByID(ctx, 99, 1)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestSearchItems(t *testing.T) {
	ctx := context.Background()

	t.Run("blank text returns empty list", func(t *testing.T) {
		svc := newTestService(newFakeItemRepo(testItem()), &fakeBookingLister{}, &fakeCommentRepo{})

		resp, err := svc.Search(ctx, "   ", 0, 10)
		require.NoError(t, err)
		assert.Empty(t, resp)
	})

	t.Run("finds available items", func(t *testing.T) {
		svc := newTestService(newFakeItemRepo(testItem()), &fakeBookingLister{}, &fakeCommentRepo{})

		resp, err := svc.Search(ctx, "дрель", 0, 10)
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, int64(10), resp[0].ID)
	})
}

func TestDeleteItem(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes item", func(t *testing.T) {
		repo := newFakeItemRepo(testItem())
		svc := newTestService(repo, &fakeBookingLister{}, &fakeCommentRepo{})

		require.NoError(t, svc.Delete(ctx, 10, 1))
		assert.Empty(t, repo.items)
	})

	t.Run("non-owner denied", func(t *testing.T) {
		svc := newTestService(newFakeItemRepo(testItem()), &fakeBookingLister{}, &fakeCommentRepo{})

		err := svc.Delete(ctx, 10, 2)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
