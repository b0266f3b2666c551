package requests

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
	requestRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/request"
	userRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/user"
	"github.com/m04kA/ShareIt-RentalService/internal/service/requests/models"
)

// Service сервис запросов вещей: пользователь описывает, что хотел бы
// взять в аренду, владельцы добавляют вещи в ответ на запрос
type Service struct {
	requestRepo  RequestRepository
	userDir      UserDirectory
	itemCatalog  ItemCatalog
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса запросов
func NewService(
	requestRepo RequestRepository,
	userDir UserDirectory,
	itemCatalog ItemCatalog,
	logger Logger,
) *Service {
	return &Service{
		requestRepo:  requestRepo,
		userDir:      userDir,
		itemCatalog:  itemCatalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает новый запрос вещи
func (s *Service) Create(ctx context.Context, req *models.CreateRequestRequest) (*models.RequestResponse, error) {
	s.logger.Info("Create: user=%d creates item request", req.UserID)

	requester, err := s.getUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Description) == "" || len(req.Description) > domain.MaxRequestLength {
		s.logger.Warn("Create: invalid description from user=%d", req.UserID)
		return nil, fmt.Errorf("%w: description must be non-empty and at most %d characters", ErrInvalidInput, domain.MaxRequestLength)
	}

	request := &domain.ItemRequest{
		Description: req.Description,
		Requester:   *requester,
		CreatedAt:   s.timeProvider.Now(),
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: request id=%d created for user=%d", created.ID, req.UserID)
	return models.FromDomainRequest(created, nil), nil
}

// GetOwn получает запросы пользователя вместе с вещами, добавленными
// в ответ на них, новые первыми
func (s *Service) GetOwn(ctx context.Context, userID int64) ([]models.RequestResponse, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}

	reqs, err := s.requestRepo.GetByRequesterID(ctx, userID)
	if err != nil {
		s.logger.Error("GetOwn: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetOwn - repository error: %v", ErrInternal, err)
	}

	return s.withItems(ctx, reqs)
}

// GetAll получает запросы других пользователей постранично, новые первыми
func (s *Service) GetAll(ctx context.Context, userID int64, page, size int) ([]models.RequestResponse, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}

	reqs, err := s.requestRepo.GetAllExcept(ctx, userID, page, size)
	if err != nil {
		s.logger.Error("GetAll: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	return s.withItems(ctx, reqs)
}

// GetByID получает запрос по ID вместе с вещами, добавленными в ответ.
// Посмотреть любой запрос может любой существующий пользователь.
func (s *Service) GetByID(ctx context.Context, requestID, userID int64) (*models.RequestResponse, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}

	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("GetByID: request id=%d not found", requestID)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetByID: repository error for request id=%d: %v", requestID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	items, err := s.itemCatalog.GetByRequestID(ctx, requestID)
	if err != nil {
		s.logger.Error("GetByID: failed to get items for request id=%d: %v", requestID, err)
		return nil, fmt.Errorf("%w: GetByID - failed to get items: %v", ErrInternal, err)
	}

	return models.FromDomainRequest(req, items), nil
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

func (s *Service) withItems(ctx context.Context, reqs []*domain.ItemRequest) ([]models.RequestResponse, error) {
	resp := make([]models.RequestResponse, 0, len(reqs))
	for _, req := range reqs {
		items, err := s.itemCatalog.GetByRequestID(ctx, req.ID)
		if err != nil {
			s.logger.Error("failed to get items for request id=%d: %v", req.ID, err)
			return nil, fmt.Errorf("%w: failed to get items for request: %v", ErrInternal, err)
		}
		resp = append(resp, *models.FromDomainRequest(req, items))
	}
	return resp, nil
}
