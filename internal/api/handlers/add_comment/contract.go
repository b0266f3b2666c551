package add_comment

import (
	"context"

	"github.com/m04kA/ShareIt-RentalService/internal/service/comments/models"
)

type CommentService interface {
	Create(ctx context.Context, req *models.CreateCommentRequest) (*models.CommentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
