package domain

import "time"

// ItemRequest запрос пользователя на вещь, которой еще нет в каталоге.
// Владельцы могут добавлять вещи в ответ на запрос (Item.RequestID).
type ItemRequest struct {
	ID          int64
	Description string
	Requester   User
	CreatedAt   time.Time
}
