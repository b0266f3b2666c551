package requests

import (
	"context"
	"time"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
)

// RequestRepository интерфейс репозитория запросов вещей
type RequestRepository interface {
	Create(ctx context.Context, req *domain.ItemRequest) (*domain.ItemRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	GetByRequesterID(ctx context.Context, requesterID int64) ([]*domain.ItemRequest, error)
	GetAllExcept(ctx context.Context, userID int64, page, size int) ([]*domain.ItemRequest, error)
}

// UserDirectory проверка существования пользователей
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ItemCatalog доступ к вещам, добавленным в ответ на запрос
type ItemCatalog interface {
	GetByRequestID(ctx context.Context, requestID int64) ([]*domain.Item, error)
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
