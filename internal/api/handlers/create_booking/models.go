package create_booking

import (
	"time"

	"github.com/m04kA/ShareIt-RentalService/internal/service/bookings/models"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ItemID int64     `json:"itemId"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBookingRequest) ToServiceRequest(userID int64) *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		UserID: userID,
		ItemID: r.ItemID,
		Start:  r.Start,
		End:    r.End,
	}
}
