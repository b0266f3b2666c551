package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
	"github.com/m04kA/ShareIt-RentalService/pkg/dbmetrics"
	"github.com/m04kA/ShareIt-RentalService/pkg/psqlbuilder"
)

// bookingColumns колонки, которые читаются при любой выборке бронирований.
// Вещь и бронирующий пользователь всегда подтягиваются join-ом, потому что
// наружу бронирование отдается вместе с ними.
var bookingColumns = []string{
	"b.id",
	"b.start_date",
	"b.end_date",
	"b.status",
	"b.created_at",
	"b.updated_at",
	"i.id",
	"i.name",
	"i.description",
	"i.status",
	"i.owner_id",
	"i.request_id",
	"u.id",
	"u.name",
	"u.email",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция (через context.Value),
// использует её, иначе выполняет обычный запрос без транзакции.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"start_date",
			"end_date",
			"item_id",
			"booker_id",
			"status",
		).
		Values(
			b.Start,
			b.End,
			b.Item.ID,
			b.Booker.ID,
			b.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID вместе с вещью и бронирующим
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return bookings[0], nil
}

// GetByBookerID получает бронирования, сделанные пользователем,
// с применением предиката фильтра
func (r *Repository) GetByBookerID(ctx context.Context, bookerID int64, filter domain.BookingSearchFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectBookings().
		Where(squirrel.Eq{"b.booker_id": bookerID})

	query, args, err := applyFilter(selectBuilder, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByOwnerID получает бронирования вещей, принадлежащих пользователю,
// с применением предиката фильтра
func (r *Repository) GetByOwnerID(ctx context.Context, ownerID int64, filter domain.BookingSearchFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectBookings().
		Where(squirrel.Eq{"i.owner_id": ownerID})

	query, args, err := applyFilter(selectBuilder, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByItemID получает все бронирования вещи без фильтрации.
// Используется для вычисления последнего/следующего бронирования
// и проверки права на комментарий.
func (r *Repository) GetByItemID(ctx context.Context, itemID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBookings().
		Where(squirrel.Eq{"b.item_id": itemID}).
		OrderBy("b.start_date DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByItemID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByItemID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// selectBookings базовый SELECT с join-ами вещи и бронирующего
func (r *Repository) selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("items i ON i.id = b.item_id").
		Join("users u ON u.id = b.booker_id")
}

// applyFilter навешивает предикат фильтра на запрос.
// CURRENT: start < now AND end > now; PAST: end < now; FUTURE: start > now;
// WAITING/REJECTED: по статусу; ALL: без предиката, с пагинацией.
// Все варианты сортируются по start_date DESC.
func applyFilter(selectBuilder squirrel.SelectBuilder, filter domain.BookingSearchFilter) squirrel.SelectBuilder {
	switch filter.State {
	case domain.SearchCurrent:
		selectBuilder = selectBuilder.
			Where(squirrel.Lt{"b.start_date": filter.Now}).
			Where(squirrel.Gt{"b.end_date": filter.Now})
	case domain.SearchPast:
		selectBuilder = selectBuilder.Where(squirrel.Lt{"b.end_date": filter.Now})
	case domain.SearchFuture:
		selectBuilder = selectBuilder.Where(squirrel.Gt{"b.start_date": filter.Now})
	case domain.SearchWaiting:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": domain.StatusWaiting})
	case domain.SearchRejected:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": domain.StatusRejected})
	default:
		// ALL: без предиката, единственный вариант с пагинацией
		if filter.Size > 0 {
			selectBuilder = selectBuilder.
				Offset(uint64(filter.Page * filter.Size)).
				Limit(uint64(filter.Size))
		}
	}

	return selectBuilder.OrderBy("b.start_date DESC")
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.Start,
			&b.End,
			&b.Status,
			&createdAt,
			&updatedAt,
			&b.Item.ID,
			&b.Item.Name,
			&b.Item.Description,
			&b.Item.Status,
			&b.Item.OwnerID,
			&b.Item.RequestID,
			&b.Booker.ID,
			&b.Booker.Name,
			&b.Booker.Email,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
