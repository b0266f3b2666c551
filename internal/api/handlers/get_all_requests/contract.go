package get_all_requests

import (
	"context"

	"github.com/m04kA/ShareIt-RentalService/internal/service/requests/models"
)

type RequestService interface {
	GetAll(ctx context.Context, userID int64, page, size int) ([]models.RequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
