package update_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/ShareIt-RentalService/internal/api/handlers"
	"github.com/m04kA/ShareIt-RentalService/internal/api/middleware"
	"github.com/m04kA/ShareIt-RentalService/internal/service/items"
	"github.com/m04kA/ShareIt-RentalService/internal/service/items/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "не удалось определить пользователя"
	msgInvalidItemID      = "некорректный ID вещи"
	msgUserNotFound       = "пользователь не найден"
	msgItemNotFound       = "вещь не найдена"
	msgNotOwner           = "изменять вещь может только владелец"
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

// Handle PATCH /api/v1/items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	itemID, err := handlers.ParseID(mux.Vars(r), "itemId")
	if err != nil {
		h.logger.Warn("PATCH /items/{itemId} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	var req models.UpdateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /items/{itemId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID
	req.ItemID = itemID

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, items.ErrUserNotFound):
			h.logger.Warn("PATCH /items/{itemId} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, items.ErrItemNotFound):
			h.logger.Warn("PATCH /items/{itemId} - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, items.ErrAccessDenied):
			h.logger.Warn("PATCH /items/{itemId} - Not the owner: item_id=%d, user_id=%d", itemID, userID)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, items.ErrInvalidInput):
			h.logger.Warn("PATCH /items/{itemId} - Invalid item data: item_id=%d, error=%v", itemID, err)
			handlers.RespondBadRequest(w, msgInvalidItemData)

		default:
			h.logger.Error("PATCH /items/{itemId} - Failed to update item: item_id=%d, user_id=%d, error=%v",
				itemID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /items/{itemId} - Item updated: item_id=%d, user_id=%d", itemID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
