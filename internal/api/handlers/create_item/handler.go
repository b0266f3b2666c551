package create_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/ShareIt-RentalService/internal/api/handlers"
	"github.com/m04kA/ShareIt-RentalService/internal/api/middleware"
	"github.com/m04kA/ShareIt-RentalService/internal/service/items"
	"github.com/m04kA/ShareIt-RentalService/internal/service/items/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "не удалось определить пользователя"
	msgUserNotFound       = "пользователь не найден"
	msgInvalidItemData    = "некорректные данные вещи"
)

type Handler struct {
	service ItemService
	logger  Logger
}

func NewHandler(service ItemService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, items.ErrUserNotFound):
			h.logger.Warn("POST /items - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, items.ErrInvalidInput):
			h.logger.Warn("POST /items - Invalid item data: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidItemData)

		default:
			h.logger.Error("POST /items - Failed to create item: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /items - Item created: item_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
