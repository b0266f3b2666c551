package items

import (
	"context"
	"time"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
)

// ItemRepository интерфейс репозитория вещей
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	GetByOwnerID(ctx context.Context, ownerID int64, page, size int) ([]*domain.Item, error)
	Search(ctx context.Context, text string, page, size int) ([]*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, ownerID, itemID int64) error
}

// UserDirectory проверка существования пользователей
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// BookingLister доступ к бронированиям вещи для вычисления
// последнего и следующего бронирования
type BookingLister interface {
	GetForItem(ctx context.Context, itemID int64) ([]*domain.Booking, error)
}

// CommentRepository доступ к комментариям вещи
type CommentRepository interface {
	GetByItemID(ctx context.Context, itemID int64) ([]*domain.Comment, error)
}

// TimeProvider абстракция времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider возвращает реальное системное время
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
