package models

import (
	"time"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
)

// Request модели

// CreateRequestRequest запрос на создание запроса вещи
type CreateRequestRequest struct {
	UserID      int64  `json:"-"`
	Description string `json:"description"`
}

// Response модели

// ItemBrief вещь, добавленная в ответ на запрос
type ItemBrief struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// RequestResponse ответ с данными запроса вещи
type RequestResponse struct {
	ID          int64       `json:"id"`
	Description string      `json:"description"`
	RequesterID int64       `json:"requesterId"`
	Created     time.Time   `json:"created"`
	Items       []ItemBrief `json:"items"`
}

// Методы конвертации

// FromDomainRequest конвертирует domain модель в DTO
func FromDomainRequest(req *domain.ItemRequest, items []*domain.Item) *RequestResponse {
	if req == nil {
		return nil
	}

	briefs := make([]ItemBrief, 0, len(items))
	for _, item := range items {
		briefs = append(briefs, ItemBrief{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Available:   item.IsAvailable(),
			OwnerID:     item.OwnerID,
			RequestID:   item.RequestID,
		})
	}

	return &RequestResponse{
		ID:          req.ID,
		Description: req.Description,
		RequesterID: req.Requester.ID,
		Created:     req.CreatedAt,
		Items:       briefs,
	}
}
