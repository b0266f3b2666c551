package comments

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrItemNotFound = errors.New("item not found")
	// ErrEmptyText пустой текст комментария трактуется как отсутствие
	// сущности, а не как ошибка валидации
	ErrEmptyText  = errors.New("comment text is empty")
	ErrNoPastRent = errors.New("user has no finished booking of the item")
	ErrInternal   = errors.New("internal service error")
)
