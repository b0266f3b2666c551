package decide_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ShareIt-RentalService/internal/api/handlers"
	"github.com/m04kA/ShareIt-RentalService/internal/api/middleware"
	"github.com/m04kA/ShareIt-RentalService/internal/service/bookings"
)

const (
	msgMissingUserID    = "не удалось определить пользователя"
	msgInvalidBookingID = "некорректный ID бронирования"
	msgInvalidApproved  = "некорректный параметр approved, ожидается true или false"
	msgBookingNotFound  = "бронирование не найдено"
	msgNotOwner         = "принять решение по бронированию может только владелец вещи"
	msgBookingExpired   = "время бронирования истекло"
	msgDecisionMade     = "решение по бронированию уже принято"
	msgBookingCanceled  = "бронирование отменено"
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

// Handle PATCH /api/v1/bookings/{bookingId}?approved={bool}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	bookingID, err := handlers.ParseID(mux.Vars(r), "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{bookingId} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	approved, err := strconv.ParseBool(r.URL.Query().Get("approved"))
	if err != nil {
		h.logger.Warn("PATCH /bookings/{bookingId} - Invalid approved param: booking_id=%d", bookingID)
		handlers.RespondBadRequest(w, msgInvalidApproved)
		return
	}

	result, err := h.service.Decide(r.Context(), bookingID, userID, approved)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUserNotFound),
			errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{bookingId} - Booking not found: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		// Попытка бронирующего подтвердить свое бронирование не
		// различима снаружи от отсутствия бронирования
		case errors.Is(err, bookings.ErrSelfApprove):
			h.logger.Warn("PATCH /bookings/{bookingId} - Self approve denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrNotOwner):
			h.logger.Warn("PATCH /bookings/{bookingId} - Caller is not the item owner: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondBadRequest(w, msgNotOwner)

		case errors.Is(err, bookings.ErrBookingExpired):
			h.logger.Warn("PATCH /bookings/{bookingId} - Booking expired: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgBookingExpired)

		case errors.Is(err, bookings.ErrDecisionAlreadyMade):
			h.logger.Warn("PATCH /bookings/{bookingId} - Decision already made: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgDecisionMade)

		case errors.Is(err, bookings.ErrBookingCanceled):
			h.logger.Warn("PATCH /bookings/{bookingId} - Booking canceled: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgBookingCanceled)

		default:
			h.logger.Error("PATCH /bookings/{bookingId} - Failed to decide: booking_id=%d, user_id=%d, error=%v",
				bookingID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{bookingId} - Decision applied: booking_id=%d, user_id=%d, status=%s",
		bookingID, userID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
