package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/ShareIt-RentalService/internal/api/handlers"
	"github.com/m04kA/ShareIt-RentalService/internal/api/middleware"
	"github.com/m04kA/ShareIt-RentalService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "не удалось определить пользователя"
	msgUserNotFound       = "пользователь не найден"
	msgItemNotFound       = "вещь не найдена"
	msgItemUnavailable    = "вещь недоступна для бронирования"
	msgInvalidTimeRange   = "дата начала должна быть раньше даты окончания"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, bookings.ErrItemNotFound):
			h.logger.Warn("POST /bookings - Item not found: user_id=%d, item_id=%d", userID, req.ItemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		// Бронирование собственной вещи не различимо снаружи
		// от бронирования несуществующей
		case errors.Is(err, bookings.ErrOwnerBooking):
			h.logger.Warn("POST /bookings - Owner books own item: user_id=%d, item_id=%d", userID, req.ItemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, bookings.ErrItemUnavailable):
			h.logger.Warn("POST /bookings - Item unavailable: user_id=%d, item_id=%d", userID, req.ItemID)
			handlers.RespondBadRequest(w, msgItemUnavailable)

		case errors.Is(err, bookings.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings - Invalid time range: user_id=%d, item_id=%d", userID, req.ItemID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, item_id=%d, error=%v",
				userID, req.ItemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, item_id=%d",
		result.ID, userID, req.ItemID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
