package comments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
	itemRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/item"
	userRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/user"
	"github.com/m04kA/ShareIt-RentalService/internal/service/comments/models"
)

// Service сервис комментариев: отзыв о вещи может оставить только
// пользователь, у которого была завершившаяся аренда этой вещи
type Service struct {
	commentRepo   CommentRepository
	userDir       UserDirectory
	itemCatalog   ItemCatalog
	bookingLister BookingLister
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса комментариев
func NewService(
	commentRepo CommentRepository,
	userDir UserDirectory,
	itemCatalog ItemCatalog,
	bookingLister BookingLister,
	logger Logger,
) *Service {
	return &Service{
		commentRepo:   commentRepo,
		userDir:       userDir,
		itemCatalog:   itemCatalog,
		bookingLister: bookingLister,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Create добавляет комментарий к вещи
func (s *Service) Create(ctx context.Context, req *models.CreateCommentRequest) (*models.CommentResponse, error) {
	s.logger.Info("Create: user=%d comments item=%d", req.UserID, req.ItemID)

	author, err := s.getUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Text) == "" || len(req.Text) > domain.MaxCommentLength {
		s.logger.Warn("Create: empty or too long comment from user=%d", req.UserID)
		return nil, ErrEmptyText
	}

	if _, err := s.itemCatalog.GetByID(ctx, req.ItemID); err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			s.logger.Warn("Create: item id=%d not found", req.ItemID)
			return nil, ErrItemNotFound
		}
		s.logger.Error("Create: failed to get item id=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: Create - failed to get item: %v", ErrInternal, err)
	}

	eligible, err := s.hasFinishedBooking(ctx, req.UserID, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		s.logger.Warn("Create: user=%d has no finished booking of item=%d", req.UserID, req.ItemID)
		return nil, ErrNoPastRent
	}

	comment := &domain.Comment{
		Text:       req.Text,
		ItemID:     req.ItemID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		CreatedAt:  s.timeProvider.Now(),
	}

	created, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: comment id=%d created for item=%d", created.ID, req.ItemID)
	return models.FromDomainComment(created), nil
}

// GetByItemID получает комментарии к вещи по возрастанию даты
func (s *Service) GetByItemID(ctx context.Context, itemID int64) ([]models.CommentResponse, error) {
	comments, err := s.commentRepo.GetByItemID(ctx, itemID)
	if err != nil {
		s.logger.Error("GetByItemID: repository error for item=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: GetByItemID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCommentList(comments), nil
}

// Вспомогательные методы

func (s *Service) getUser(ctx context.Context, userID int64) (*domain.User, error) {
	u, err := s.userDir.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("failed to get user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	return u, nil
}

// hasFinishedBooking проверяет, что у пользователя есть завершившееся
// бронирование этой вещи. Право на комментарий выводится только из
// выборки прошедших бронирований пользователя, статус брони не
// учитывается.
func (s *Service) hasFinishedBooking(ctx context.Context, userID, itemID int64) (bool, error) {
	filter := domain.BookingSearchFilter{
		State: domain.SearchPast,
		Now:   s.timeProvider.Now(),
	}

	bookings, err := s.bookingLister.GetByBookerID(ctx, userID, filter)
	if err != nil {
		s.logger.Error("hasFinishedBooking: failed to get bookings for user=%d: %v", userID, err)
		return false, fmt.Errorf("%w: failed to get past bookings: %v", ErrInternal, err)
	}

	for _, b := range bookings {
		if b.Item.ID == itemID {
			return true, nil
		}
	}
	return false, nil
}
