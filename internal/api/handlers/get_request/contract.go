package get_request

import (
	"context"

	"github.com/m04kA/ShareIt-RentalService/internal/service/requests/models"
)

type RequestService interface {
	GetByID(ctx context.Context, requestID, userID int64) (*models.RequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
