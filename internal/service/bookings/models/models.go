package models

import (
	"time"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
)

// Request модели

// CreateBookingRequest запрос на создание бронирования
type CreateBookingRequest struct {
	UserID int64     `json:"userId"`
	ItemID int64     `json:"itemId"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// ListBookingsRequest запрос на получение списка бронирований.
// Page - индекс страницы (offset / size), вычисляется на границе HTTP.
// Пагинация применяется только для State = ALL.
type ListBookingsRequest struct {
	UserID int64
	State  domain.SearchStatus
	Page   int
	Size   int
}

// Response модели

// UserResponse данные пользователя внутри бронирования
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ItemResponse данные вещи внутри бронирования
type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID     int64        `json:"id"`
	Start  time.Time    `json:"start"`
	End    time.Time    `json:"end"`
	Item   ItemResponse `json:"item"`
	Booker UserResponse `json:"booker"`
	Status string       `json:"status"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:    b.ID,
		Start: b.Start,
		End:   b.End,
		Item: ItemResponse{
			ID:          b.Item.ID,
			Name:        b.Item.Name,
			Description: b.Item.Description,
			Available:   b.Item.IsAvailable(),
			OwnerID:     b.Item.OwnerID,
			RequestID:   b.Item.RequestID,
		},
		Booker: UserResponse{
			ID:    b.Booker.ID,
			Name:  b.Booker.Name,
			Email: b.Booker.Email,
		},
		Status: string(b.Status),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		if bookingResp := FromDomainBooking(b); bookingResp != nil {
			resp = append(resp, *bookingResp)
		}
	}
	return resp
}
