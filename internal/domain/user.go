package domain

// User represents a registered user
type User struct {
	ID    int64
	Name  string
	Email string
}
