package requests

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrRequestNotFound = errors.New("item request not found")
	ErrInvalidInput    = errors.New("invalid input data")
	ErrInternal        = errors.New("internal service error")
)
