package list_users

import (
	"context"

	"github.com/m04kA/ShareIt-RentalService/internal/service/users/models"
)

type UserService interface {
	GetAll(ctx context.Context) ([]models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
