package add_comment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/ShareIt-RentalService/internal/api/handlers"
	"github.com/m04kA/ShareIt-RentalService/internal/api/middleware"
	"github.com/m04kA/ShareIt-RentalService/internal/service/comments"
	"github.com/m04kA/ShareIt-RentalService/internal/service/comments/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "не удалось определить пользователя"
	msgInvalidItemID      = "некорректный ID вещи"
	msgUserNotFound       = "пользователь не найден"
	msgItemNotFound       = "вещь не найдена"
	msgEmptyText          = "комментарий не найден"
	msgNoPastRent         = "Бронь не найдена"
)

type Handler struct {
	service CommentService
	logger  Logger
}

func NewHandler(service CommentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/items/{itemId}/comment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	itemID, err := handlers.ParseID(mux.Vars(r), "itemId")
	if err != nil {
		h.logger.Warn("POST /items/{itemId}/comment - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	var req models.CreateCommentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /items/{itemId}/comment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID
	req.ItemID = itemID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, comments.ErrUserNotFound):
			h.logger.Warn("POST /items/{itemId}/comment - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, comments.ErrItemNotFound):
			h.logger.Warn("POST /items/{itemId}/comment - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		// Пустой текст трактуется как отсутствие комментария
		case errors.Is(err, comments.ErrEmptyText):
			h.logger.Warn("POST /items/{itemId}/comment - Empty comment text: user_id=%d, item_id=%d", userID, itemID)
			handlers.RespondNotFound(w, msgEmptyText)

		case errors.Is(err, comments.ErrNoPastRent):
			h.logger.Warn("POST /items/{itemId}/comment - No finished booking: user_id=%d, item_id=%d", userID, itemID)
			handlers.RespondBadRequest(w, msgNoPastRent)

		default:
			h.logger.Error("POST /items/{itemId}/comment - Failed to add comment: user_id=%d, item_id=%d, error=%v",
				userID, itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /items/{itemId}/comment - Comment added: comment_id=%d, item_id=%d, user_id=%d",
		result.ID, itemID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
