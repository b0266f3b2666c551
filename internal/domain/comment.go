package domain

import "time"

// Comment отзыв о вещи после состоявшейся аренды.
// Оставить комментарий может только пользователь, бравший вещь в прошлом.
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	CreatedAt  time.Time
}
