package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/booking"
	itemRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/item"
	userRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/user"
	"github.com/m04kA/ShareIt-RentalService/internal/service/bookings/models"
)

// callerRole роль вызывающего по отношению к бронированию.
// Классифицируется один раз за вызов, дальше ветвление идет по тегу.
type callerRole int

const (
	roleNone callerRole = iota
	roleBooker
	roleOwner
)

// Service сервис бронирований: создание, решение по бронированию
// (подтверждение/отклонение владельцем, отмена бронирующим) и выборки.
// Единственный писатель переходов статуса.
type Service struct {
	bookingRepo  BookingRepository
	userDir      UserDirectory
	itemCatalog  ItemCatalog
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	userDir UserDirectory,
	itemCatalog ItemCatalog,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		userDir:      userDir,
		itemCatalog:  itemCatalog,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает новое бронирование со статусом WAITING.
// Доступность вещи при этом не меняется: бронирование не блокирует вещь,
// пересечения интервалов не проверяются.
func (s *Service) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Create: user=%d books item=%d for [%s, %s)",
		req.UserID, req.ItemID, req.Start.Format("2006-01-02T15:04:05"), req.End.Format("2006-01-02T15:04:05"))

	booker, err := s.getUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	item, err := s.itemCatalog.GetByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			s.logger.Warn("Create: item id=%d not found", req.ItemID)
			return nil, ErrItemNotFound
		}
		s.logger.Error("Create: failed to get item id=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: Create - failed to get item: %v", ErrInternal, err)
	}

	if item.IsOwnedBy(booker.ID) {
		s.logger.Warn("Create: user=%d tried to book own item=%d", req.UserID, req.ItemID)
		return nil, ErrOwnerBooking
	}

	if !item.IsAvailable() {
		s.logger.Warn("Create: item id=%d is not available", req.ItemID)
		return nil, ErrItemUnavailable
	}

	if req.Start.After(req.End) || req.Start.Equal(req.End) {
		s.logger.Warn("Create: invalid time range for user=%d, item=%d", req.UserID, req.ItemID)
		return nil, ErrInvalidTimeRange
	}

	booking := &domain.Booking{
		Start:  req.Start,
		End:    req.End,
		Item:   *item,
		Booker: *booker,
		Status: domain.StatusWaiting,
	}

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: booking id=%d created with status=%s", created.ID, created.Status)
	return models.FromDomainBooking(created), nil
}

// Decide выполняет переход статуса бронирования. Один вызов обслуживает
// две роли, различаемые только по идентификатору: бронирующий может
// отменить (approved=false), владелец вещи - подтвердить или отклонить.
// Чтение и запись статуса выполняются в одной транзакции; конкурирующие
// решения по одному бронированию не сериализуются, побеждает последняя
// запись.
func (s *Service) Decide(ctx context.Context, bookingID, userID int64, approved bool) (*models.BookingResponse, error) {
	s.logger.Info("Decide: booking id=%d, user=%d, approved=%t", bookingID, userID, approved)

	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}

	var result *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, bookingID)
		if err != nil {
			return err
		}

		// Проверка истечения идет до ветвления по ролям: даже бронирующий
		// не может отменить истекшее бронирование
		if booking.IsExpired(s.timeProvider.Now()) {
			s.logger.Warn("Decide: booking id=%d has expired", bookingID)
			return ErrBookingExpired
		}

		role, err := s.classifyCaller(txCtx, booking, userID)
		if err != nil {
			return err
		}

		var newStatus domain.BookingStatus

		switch role {
		case roleBooker:
			if approved {
				s.logger.Warn("Decide: booker=%d tried to approve booking id=%d", userID, bookingID)
				return ErrSelfApprove
			}
			newStatus = domain.StatusCanceled

		case roleOwner:
			if booking.IsCanceled() {
				s.logger.Warn("Decide: booking id=%d was already canceled", bookingID)
				return ErrBookingCanceled
			}
			if !booking.IsWaiting() {
				s.logger.Warn("Decide: decision already made on booking id=%d, status=%s", bookingID, booking.Status)
				return ErrDecisionAlreadyMade
			}
			if approved {
				newStatus = domain.StatusApproved
			} else {
				newStatus = domain.StatusRejected
			}

		default:
			if booking.IsCanceled() {
				s.logger.Warn("Decide: booking id=%d was canceled", bookingID)
				return ErrBookingCanceled
			}
			s.logger.Warn("Decide: user=%d is neither booker nor owner for booking id=%d", userID, bookingID)
			return ErrNotOwner
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Decide: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Decide - repository error: %v", ErrInternal, err)
		}

		booking.Status = newStatus
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Decide: booking id=%d transitioned to status=%s", bookingID, result.Status)
	return models.FromDomainBooking(result), nil
}

// GetByID получает бронирование по ID.
// Видеть бронирование может только бронирующий или владелец вещи.
func (s *Service) GetByID(ctx context.Context, bookingID, userID int64) (*models.BookingResponse, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	role, err := s.classifyCaller(ctx, booking, userID)
	if err != nil {
		return nil, err
	}
	if role == roleNone {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, bookingID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetForBooker получает бронирования, сделанные пользователем,
// с применением фильтра, новые первыми
func (s *Service) GetForBooker(ctx context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error) {
	s.logger.Info("GetForBooker: user=%d, state=%s, page=%d, size=%d", req.UserID, req.State, req.Page, req.Size)

	if _, err := s.getUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.GetByBookerID(ctx, req.UserID, s.toFilter(req))
	if err != nil {
		s.logger.Error("GetForBooker: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetForBooker - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetForOwner получает бронирования вещей, принадлежащих пользователю,
// с применением фильтра, новые первыми
func (s *Service) GetForOwner(ctx context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error) {
	s.logger.Info("GetForOwner: user=%d, state=%s, page=%d, size=%d", req.UserID, req.State, req.Page, req.Size)

	if _, err := s.getUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.GetByOwnerID(ctx, req.UserID, s.toFilter(req))
	if err != nil {
		s.logger.Error("GetForOwner: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetForOwner - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetForItem получает все бронирования вещи без фильтрации и без
// проверки прав. Используется каталогом вещей (последнее/следующее
// бронирование) и сервисом комментариев; авторизация на стороне
// потребителя.
func (s *Service) GetForItem(ctx context.Context, itemID int64) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.GetByItemID(ctx, itemID)
	if err != nil {
		s.logger.Error("GetForItem: repository error for item=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: GetForItem - repository error: %v", ErrInternal, err)
	}
	return bookings, nil
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

func (s *Service) getBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("failed to get booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

// classifyCaller определяет роль вызывающего по отношению к бронированию.
// Владение выводится через каталог: вызывающий - владелец, если среди его
// вещей есть вещь бронирования.
func (s *Service) classifyCaller(ctx context.Context, booking *domain.Booking, userID int64) (callerRole, error) {
	if booking.Booker.ID == userID {
		return roleBooker, nil
	}

	items, err := s.itemCatalog.GetByOwnerID(ctx, userID, 0, 0)
	if err != nil {
		s.logger.Error("classifyCaller: failed to get items for user=%d: %v", userID, err)
		return roleNone, fmt.Errorf("%w: classifyCaller - failed to get items: %v", ErrInternal, err)
	}

	for _, item := range items {
		if item.ID == booking.Item.ID {
			return roleOwner, nil
		}
	}

	return roleNone, nil
}

func (s *Service) toFilter(req *models.ListBookingsRequest) domain.BookingSearchFilter {
	return domain.BookingSearchFilter{
		State: req.State,
		Now:   s.timeProvider.Now(),
		Page:  req.Page,
		Size:  req.Size,
	}
}
