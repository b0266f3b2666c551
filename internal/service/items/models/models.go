package models

import (
	"time"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
)

// Request модели

// CreateItemRequest запрос на создание вещи
type CreateItemRequest struct {
	UserID      int64  `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// UpdateItemRequest запрос на частичное обновление вещи.
// Обновляются только заполненные поля.
type UpdateItemRequest struct {
	UserID      int64   `json:"-"`
	ItemID      int64   `json:"-"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

// Response модели

// BookingBrief краткие сведения о бронировании внутри карточки вещи
type BookingBrief struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Status   string    `json:"status"`
}

// CommentResponse комментарий к вещи
type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// ItemResponse ответ с данными вещи. LastBooking и NextBooking
// заполняются только для владельца вещи.
type ItemResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	OwnerID     int64             `json:"ownerId"`
	RequestID   *int64            `json:"requestId,omitempty"`
	LastBooking *BookingBrief     `json:"lastBooking,omitempty"`
	NextBooking *BookingBrief     `json:"nextBooking,omitempty"`
	Comments    []CommentResponse `json:"comments"`
}

// Методы конвертации

// FromDomainItem конвертирует domain модель в DTO
func FromDomainItem(item *domain.Item) *ItemResponse {
	if item == nil {
		return nil
	}

	return &ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.IsAvailable(),
		OwnerID:     item.OwnerID,
		RequestID:   item.RequestID,
		Comments:    []CommentResponse{},
	}
}

// BriefFromDomainBooking конвертирует бронирование в краткую форму
func BriefFromDomainBooking(b *domain.Booking) *BookingBrief {
	if b == nil {
		return nil
	}

	return &BookingBrief{
		ID:       b.ID,
		BookerID: b.Booker.ID,
		Start:    b.Start,
		End:      b.End,
		Status:   string(b.Status),
	}
}

// FromDomainComment конвертирует комментарий в DTO
func FromDomainComment(c *domain.Comment) *CommentResponse {
	if c == nil {
		return nil
	}

	return &CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    c.CreatedAt,
	}
}

// FromDomainCommentList конвертирует список комментариев в DTO
func FromDomainCommentList(comments []*domain.Comment) []CommentResponse {
	resp := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		if commentResp := FromDomainComment(c); commentResp != nil {
			resp = append(resp, *commentResp)
		}
	}
	return resp
}
