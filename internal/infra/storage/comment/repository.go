package comment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
	"github.com/m04kA/ShareIt-RentalService/pkg/dbmetrics"
	"github.com/m04kA/ShareIt-RentalService/pkg/psqlbuilder"
)

var commentColumns = []string{
	"c.id",
	"c.text",
	"c.item_id",
	"c.author_id",
	"u.name",
	"c.created_at",
}

// Repository репозиторий для работы с комментариями
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория комментариев
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый комментарий
func (r *Repository) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("comments").
		Columns("text", "item_id", "author_id", "created_at").
		Values(c.Text, c.ItemID, c.AuthorID, c.CreatedAt).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&c.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return c, nil
}

// GetByItemID получает комментарии к вещи вместе с именами авторов,
// старые первыми
func (r *Repository) GetByItemID(ctx context.Context, itemID int64) ([]*domain.Comment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(commentColumns...).
		From("comments c").
		Join("users u ON u.id = c.author_id").
		Where(squirrel.Eq{"c.item_id": itemID}).
		OrderBy("c.created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByItemID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByItemID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanComments(rows)
}

func (r *Repository) scanComments(rows *sql.Rows) ([]*domain.Comment, error) {
	comments := make([]*domain.Comment, 0)

	for rows.Next() {
		var c domain.Comment
		err := rows.Scan(
			&c.ID,
			&c.Text,
			&c.ItemID,
			&c.AuthorID,
			&c.AuthorName,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanComments - scan row: %v", ErrScanRow, err)
		}
		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanComments - rows error: %v", ErrScanRow, err)
	}

	return comments, nil
}
