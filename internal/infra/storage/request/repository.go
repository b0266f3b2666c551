package request

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
	"github.com/m04kA/ShareIt-RentalService/pkg/dbmetrics"
	"github.com/m04kA/ShareIt-RentalService/pkg/psqlbuilder"
)

var requestColumns = []string{
	"r.id",
	"r.description",
	"r.created_at",
	"u.id",
	"u.name",
	"u.email",
}

// Repository репозиторий для работы с запросами на вещи
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория запросов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый запрос на вещь
func (r *Repository) Create(ctx context.Context, req *domain.ItemRequest) (*domain.ItemRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("requests").
		Columns("description", "requester_id", "created_at").
		Values(req.Description, req.Requester.ID, req.CreatedAt).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&req.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return req, nil
}

// GetByID получает запрос по ID вместе с автором
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectRequests().
		Where(squirrel.Eq{"r.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var req domain.ItemRequest
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&req.ID,
		&req.Description,
		&req.CreatedAt,
		&req.Requester.ID,
		&req.Requester.Name,
		&req.Requester.Email,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	return &req, nil
}

// GetByRequesterID получает запросы пользователя, новые первыми
func (r *Repository) GetByRequesterID(ctx context.Context, requesterID int64) ([]*domain.ItemRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectRequests().
		Where(squirrel.Eq{"r.requester_id": requesterID}).
		OrderBy("r.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRequesterID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRequesterID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRequests(rows)
}

// GetAllExcept получает постранично запросы всех пользователей, кроме
// указанного, новые первыми
func (r *Repository) GetAllExcept(ctx context.Context, userID int64, page, size int) ([]*domain.ItemRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectRequests().
		Where(squirrel.NotEq{"r.requester_id": userID}).
		OrderBy("r.created_at DESC")

	if size > 0 {
		selectBuilder = selectBuilder.
			Offset(uint64(page * size)).
			Limit(uint64(size))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllExcept - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllExcept - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRequests(rows)
}

func (r *Repository) selectRequests() squirrel.SelectBuilder {
	return psqlbuilder.Select(requestColumns...).
		From("requests r").
		Join("users u ON u.id = r.requester_id")
}

func (r *Repository) scanRequests(rows *sql.Rows) ([]*domain.ItemRequest, error) {
	requests := make([]*domain.ItemRequest, 0)

	for rows.Next() {
		var req domain.ItemRequest
		err := rows.Scan(
			&req.ID,
			&req.Description,
			&req.CreatedAt,
			&req.Requester.ID,
			&req.Requester.Name,
			&req.Requester.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRequests - scan row: %v", ErrScanRow, err)
		}
		requests = append(requests, &req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRequests - rows error: %v", ErrScanRow, err)
	}

	return requests, nil
}
