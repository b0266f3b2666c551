package models

import (
	"time"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
)

// CreateCommentRequest запрос на добавление комментария
type CreateCommentRequest struct {
	UserID int64  `json:"-"`
	ItemID int64  `json:"-"`
	Text   string `json:"text"`
}

// CommentResponse ответ с данными комментария
type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	ItemID     int64     `json:"itemId"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// FromDomainComment конвертирует domain модель в DTO
func FromDomainComment(c *domain.Comment) *CommentResponse {
	if c == nil {
		return nil
	}

	return &CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		ItemID:     c.ItemID,
		AuthorName: c.AuthorName,
		Created:    c.CreatedAt,
	}
}

// FromDomainCommentList конвертирует список domain моделей в DTO
func FromDomainCommentList(comments []*domain.Comment) []CommentResponse {
	resp := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		if commentResp := FromDomainComment(c); commentResp != nil {
			resp = append(resp, *commentResp)
		}
	}
	return resp
}
