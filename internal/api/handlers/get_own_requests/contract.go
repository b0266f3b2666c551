package get_own_requests

import (
	"context"

	"github.com/m04kA/ShareIt-RentalService/internal/service/requests/models"
)

type RequestService interface {
	GetOwn(ctx context.Context, userID int64) ([]models.RequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
