package search_items

import (
	"net/http"

	"github.com/m04kA/ShareIt-RentalService/internal/api/handlers"
)

const (
	msgInvalidPagination = "некорректные параметры пагинации"
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

// Handle GET /api/v1/items/search?text={text}&from={from}&size={size}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")

	page, size, err := handlers.ParsePagination(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /items/search - Invalid pagination: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}

	result, err := h.service.Search(r.Context(), text, page, size)
	if err != nil {
		h.logger.Error("GET /items/search - Failed to search items: text=%q, error=%v", text, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
