package domain

// Default pagination values for booking and request listings
const (
	DefaultPageFrom = 0
	DefaultPageSize = 10
)

// Business validation constants
const (
	MaxItemNameLength        = 255
	MaxItemDescriptionLength = 2000
	MaxCommentLength         = 2000
	MaxRequestLength         = 2000
)
