package delete_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/ShareIt-RentalService/internal/api/handlers"
	"github.com/m04kA/ShareIt-RentalService/internal/api/middleware"
	"github.com/m04kA/ShareIt-RentalService/internal/service/items"
)

const (
	msgMissingUserID = "не удалось определить пользователя"
	msgInvalidItemID = "некорректный ID вещи"
	msgUserNotFound  = "пользователь не найден"
	msgItemNotFound  = "вещь не найдена"
	msgNotOwner      = "удалять вещь может только владелец"
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

// Handle DELETE /api/v1/items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	itemID, err := handlers.ParseID(mux.Vars(r), "itemId")
	if err != nil {
		h.logger.Warn("DELETE /items/{itemId} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	if err := h.service.Delete(r.Context(), itemID, userID); err != nil {
		switch {
		case errors.Is(err, items.ErrUserNotFound):
			h.logger.Warn("DELETE /items/{itemId} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, items.ErrItemNotFound):
			h.logger.Warn("DELETE /items/{itemId} - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, items.ErrAccessDenied):
			h.logger.Warn("DELETE /items/{itemId} - Not the owner: item_id=%d, user_id=%d", itemID, userID)
			handlers.RespondForbidden(w, msgNotOwner)

		default:
			h.logger.Error("DELETE /items/{itemId} - Failed to delete item: item_id=%d, user_id=%d, error=%v",
				itemID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /items/{itemId} - Item deleted: item_id=%d, user_id=%d", itemID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
