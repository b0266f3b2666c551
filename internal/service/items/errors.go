package items

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrItemNotFound = errors.New("item not found")
	ErrAccessDenied = errors.New("user is not the owner of the item")
	ErrInvalidInput = errors.New("invalid input data")
	ErrInternal     = errors.New("internal service error")
)
