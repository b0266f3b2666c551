package comments

import (
	"context"
	"time"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
)

// CommentRepository интерфейс репозитория комментариев
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	GetByItemID(ctx context.Context, itemID int64) ([]*domain.Comment, error)
}

// UserDirectory проверка существования пользователей
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ItemCatalog проверка существования вещей
type ItemCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
}

// BookingLister выборка завершившихся бронирований автора
// для проверки права на комментарий
type BookingLister interface {
	GetByBookerID(ctx context.Context, bookerID int64, filter domain.BookingSearchFilter) ([]*domain.Booking, error)
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
