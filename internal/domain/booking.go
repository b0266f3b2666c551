package domain

import (
	"fmt"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
	StatusCanceled BookingStatus = "CANCELED"
)

// Booking represents a reservation of an item by a user
// for a half-open time interval [Start, End)
type Booking struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Item   Item
	Booker User
	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWaiting returns true if no decision has been made on the booking yet
func (b *Booking) IsWaiting() bool {
	return b.Status == StatusWaiting
}

// IsCanceled returns true if the booking was cancelled by the booker
func (b *Booking) IsCanceled() bool {
	return b.Status == StatusCanceled
}

// IsTerminal returns true if the booking is in a terminal state.
// No transition leaves a terminal state.
func (b *Booking) IsTerminal() bool {
	return b.Status != StatusWaiting
}

// IsExpired возвращает true, если время бронирования уже истекло
func (b *Booking) IsExpired(now time.Time) bool {
	return b.End.Before(now)
}

// SearchStatus именованный предикат выборки бронирований.
// Не хранится в базе, используется только при запросах списков.
type SearchStatus string

const (
	SearchAll      SearchStatus = "ALL"
	SearchCurrent  SearchStatus = "CURRENT"
	SearchPast     SearchStatus = "PAST"
	SearchFuture   SearchStatus = "FUTURE"
	SearchWaiting  SearchStatus = "WAITING"
	SearchRejected SearchStatus = "REJECTED"
)

// ParseSearchStatus разбирает значение query-параметра state.
// Сравнение регистрозависимое, неизвестное значение - ошибка.
func ParseSearchStatus(s string) (SearchStatus, error) {
	switch SearchStatus(s) {
	case SearchAll, SearchCurrent, SearchPast, SearchFuture, SearchWaiting, SearchRejected:
		return SearchStatus(s), nil
	default:
		return "", fmt.Errorf("unknown search status %q", s)
	}
}

// BookingSearchFilter параметры выборки списка бронирований.
// Page и Size применяются только для SearchAll, остальные предикаты
// возвращают полный результат. Все варианты сортируются по start_date DESC.
type BookingSearchFilter struct {
	State SearchStatus
	Now   time.Time // момент, относительно которого считаются CURRENT/PAST/FUTURE
	Page  int       // индекс страницы (offset / size)
	Size  int
}
