package bookings

import (
	"context"
	"time"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований.
// Сервис бронирований - единственный, кто меняет статусы.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByBookerID(ctx context.Context, bookerID int64, filter domain.BookingSearchFilter) ([]*domain.Booking, error)
	GetByOwnerID(ctx context.Context, ownerID int64, filter domain.BookingSearchFilter) ([]*domain.Booking, error)
	GetByItemID(ctx context.Context, itemID int64) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// UserDirectory интерфейс справочника пользователей.
// Сервису нужна только проверка существования вызывающего.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ItemCatalog интерфейс каталога вещей: поиск по id и владение.
// При size = 0 выборка по владельцу возвращается целиком.
type ItemCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	GetByOwnerID(ctx context.Context, ownerID int64, page, size int) ([]*domain.Item, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
