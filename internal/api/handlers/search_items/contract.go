package search_items

import (
	"context"

	"github.com/m04kA/ShareIt-RentalService/internal/service/items/models"
)

type ItemService interface {
	Search(ctx context.Context, text string, page, size int) ([]models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
