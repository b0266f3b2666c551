package items

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
	itemRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/item"
	userRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/user"
	"github.com/m04kA/ShareIt-RentalService/internal/service/items/models"
)

// Service сервис вещей: каталог, поиск и карточка вещи
// с последним/следующим бронированием и комментариями
type Service struct {
	itemRepo      ItemRepository
	userDir       UserDirectory
	bookingLister BookingLister
	commentRepo   CommentRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса вещей
func NewService(
	itemRepo ItemRepository,
	userDir UserDirectory,
	bookingLister BookingLister,
	commentRepo CommentRepository,
	logger Logger,
) *Service {
	return &Service{
		itemRepo:      itemRepo,
		userDir:       userDir,
		bookingLister: bookingLister,
		commentRepo:   commentRepo,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Create создает новую вещь
func (s *Service) Create(ctx context.Context, req *models.CreateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("Create: user=%d creates item %q", req.UserID, req.Name)

	if _, err := s.getUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: invalid input from user=%d: %v", req.UserID, err)
		return nil, err
	}

	item := &domain.Item{
		Name:        req.Name,
		Description: req.Description,
		Status:      domain.ItemStatusFromBool(*req.Available),
		OwnerID:     req.UserID,
		RequestID:   req.RequestID,
	}

	created, err := s.itemRepo.Create(ctx, item)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: item id=%d created for user=%d", created.ID, req.UserID)
	return models.FromDomainItem(created), nil
}

// Update частично обновляет вещь. Обновлять может только владелец.
func (s *Service) Update(ctx context.Context, req *models.UpdateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("Update: user=%d updates item id=%d", req.UserID, req.ItemID)

	if _, err := s.getUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	item, err := s.getItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	if !item.IsOwnedBy(req.UserID) {
		s.logger.Warn("Update: user=%d is not the owner of item id=%d", req.UserID, req.ItemID)
		return nil, ErrAccessDenied
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" || len(*req.Name) > domain.MaxItemNameLength {
			return nil, fmt.Errorf("%w: name must be non-empty and at most %d characters", ErrInvalidInput, domain.MaxItemNameLength)
		}
		item.Name = *req.Name
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" || len(*req.Description) > domain.MaxItemDescriptionLength {
			return nil, fmt.Errorf("%w: description must be non-empty and at most %d characters", ErrInvalidInput, domain.MaxItemDescriptionLength)
		}
		item.Description = *req.Description
	}
	if req.Available != nil {
		item.Status = domain.ItemStatusFromBool(*req.Available)
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("Update: repository error for item id=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: item id=%d updated", req.ItemID)
	return models.FromDomainItem(item), nil
}

// GetByID получает карточку вещи с комментариями. Последнее и следующее
// бронирования заполняются только для владельца вещи.
func (s *Service) GetByID(ctx context.Context, itemID, userID int64) (*models.ItemResponse, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}

	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainItem(item)

	if item.IsOwnedBy(userID) {
		if err := s.attachBookings(ctx, resp); err != nil {
			return nil, err
		}
	}

	if err := s.attachComments(ctx, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// GetByOwnerID получает список вещей владельца, каждая с последним
// и следующим бронированием и комментариями, по возрастанию id
func (s *Service) GetByOwnerID(ctx context.Context, ownerID int64, page, size int) ([]models.ItemResponse, error) {
	s.logger.Info("GetByOwnerID: user=%d, page=%d, size=%d", ownerID, page, size)

	if _, err := s.getUser(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.GetByOwnerID(ctx, ownerID, page, size)
	if err != nil {
		s.logger.Error("GetByOwnerID: repository error for user=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: GetByOwnerID - repository error: %v", ErrInternal, err)
	}

	resp := make([]models.ItemResponse, 0, len(items))
	for _, item := range items {
		itemResp := models.FromDomainItem(item)
		if err := s.attachBookings(ctx, itemResp); err != nil {
			return nil, err
		}
		if err := s.attachComments(ctx, itemResp); err != nil {
			return nil, err
		}
		resp = append(resp, *itemResp)
	}

	return resp, nil
}

// Search ищет доступные вещи по подстроке в названии или описании.
// Пустой или пробельный запрос всегда возвращает пустой список.
func (s *Service) Search(ctx context.Context, text string, page, size int) ([]models.ItemResponse, error) {
	s.logger.Info("Search: text=%q, page=%d, size=%d", text, page, size)

	if strings.TrimSpace(text) == "" {
		return []models.ItemResponse{}, nil
	}

	items, err := s.itemRepo.Search(ctx, text, page, size)
	if err != nil {
		s.logger.Error("Search: repository error for text=%q: %v", text, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	resp := make([]models.ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, *models.FromDomainItem(item))
	}
	return resp, nil
}

// Delete удаляет вещь. Удалять может только владелец.
func (s *Service) Delete(ctx context.Context, itemID, userID int64) error {
	s.logger.Info("Delete: user=%d deletes item id=%d", userID, itemID)

	if _, err := s.getUser(ctx, userID); err != nil {
		return err
	}

	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return err
	}

	if !item.IsOwnedBy(userID) {
		s.logger.Warn("Delete: user=%d is not the owner of item id=%d", userID, itemID)
		return ErrAccessDenied
	}

	if err := s.itemRepo.Delete(ctx, userID, itemID); err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			return ErrItemNotFound
		}
		s.logger.Error("Delete: repository error for item id=%d: %v", itemID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: item id=%d deleted", itemID)
	return nil
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

func (s *Service) getItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			s.logger.Warn("item id=%d not found", itemID)
			return nil, ErrItemNotFound
		}
		s.logger.Error("failed to get item id=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
	}
	return item, nil
}

// attachBookings заполняет последнее и следующее бронирования вещи.
// Последнее - с самым поздним стартом из уже начавшихся, следующее -
// с самым ранним стартом из будущих; отклоненные и отмененные
// бронирования не учитываются.
func (s *Service) attachBookings(ctx context.Context, item *models.ItemResponse) error {
	bookings, err := s.bookingLister.GetForItem(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("%w: failed to get bookings for item id=%d: %v", ErrInternal, item.ID, err)
	}

	now := s.timeProvider.Now()

	var last, next *domain.Booking
	for _, b := range bookings {
		if b.Status == domain.StatusRejected || b.Status == domain.StatusCanceled {
			continue
		}
		if !b.Start.After(now) {
			if last == nil || b.Start.After(last.Start) {
				last = b
			}
		} else {
			if next == nil || b.Start.Before(next.Start) {
				next = b
			}
		}
	}

	item.LastBooking = models.BriefFromDomainBooking(last)
	item.NextBooking = models.BriefFromDomainBooking(next)
	return nil
}

func (s *Service) attachComments(ctx context.Context, item *models.ItemResponse) error {
	comments, err := s.commentRepo.GetByItemID(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("%w: failed to get comments for item id=%d: %v", ErrInternal, item.ID, err)
	}
	item.Comments = models.FromDomainCommentList(comments)
	return nil
}

func validateCreate(req *models.CreateItemRequest) error {
	if strings.TrimSpace(req.Name) == "" || len(req.Name) > domain.MaxItemNameLength {
		return fmt.Errorf("%w: name must be non-empty and at most %d characters", ErrInvalidInput, domain.MaxItemNameLength)
	}
	if strings.TrimSpace(req.Description) == "" || len(req.Description) > domain.MaxItemDescriptionLength {
		return fmt.Errorf("%w: description must be non-empty and at most %d characters", ErrInvalidInput, domain.MaxItemDescriptionLength)
	}
	if req.Available == nil {
		return fmt.Errorf("%w: available flag is required", ErrInvalidInput)
	}
	return nil
}
