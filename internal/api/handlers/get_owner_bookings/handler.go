package get_owner_bookings

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/ShareIt-RentalService/internal/api/handlers"
	"github.com/m04kA/ShareIt-RentalService/internal/api/middleware"
	"github.com/m04kA/ShareIt-RentalService/internal/domain"
	"github.com/m04kA/ShareIt-RentalService/internal/service/bookings"
	"github.com/m04kA/ShareIt-RentalService/internal/service/bookings/models"
)

const (
	msgMissingUserID     = "не удалось определить пользователя"
	msgInvalidPagination = "некорректные параметры пагинации"
	msgUserNotFound      = "пользователь не найден"
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

// Handle GET /api/v1/bookings/owner?state={state}&from={from}&size={size}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	rawState := r.URL.Query().Get("state")
	if rawState == "" {
		rawState = string(domain.SearchAll)
	}

	state, err := domain.ParseSearchStatus(rawState)
	if err != nil {
		h.logger.Warn("GET /bookings/owner - Unknown state: user_id=%d, state=%s", userID, rawState)
		handlers.RespondBadRequest(w, fmt.Sprintf("Unknown state: %s", rawState))
		return
	}

	page, size, err := handlers.ParsePagination(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /bookings/owner - Invalid pagination: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}

	result, err := h.service.GetForOwner(r.Context(), &models.ListBookingsRequest{
		UserID: userID,
		State:  state,
		Page:   page,
		Size:   size,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUserNotFound):
			h.logger.Warn("GET /bookings/owner - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /bookings/owner - Failed to list bookings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
