package cart

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
	"github.com/gaadimech/GaadiMech-PWA-sub001/pkg/dbmetrics"
	"github.com/gaadimech/GaadiMech-PWA-sub001/pkg/psqlbuilder"
)

// Repository репозиторий для хранения снапшотов корзин
// Бэкенд-копия корзины является advisory: локальное состояние сессии -
// единственный источник истины, записи сюда best-effort
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория корзин
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ReplaceSnapshot полностью заменяет снапшот корзины сессии
// Должен вызываться внутри транзакции (delete + insert атомарно),
// активная транзакция берется из контекста
func (r *Repository) ReplaceSnapshot(ctx context.Context, snapshot *domain.CartSnapshot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("cart_items").
		Where(squirrel.Eq{"session_id": snapshot.SessionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSnapshot - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceSnapshot - execute delete: %v", ErrExecQuery, err)
	}

	if len(snapshot.Items) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("cart_items").
		Columns(
			"session_id",
			"service_id",
			"quantity",
			"unit_price",
			"line_total",
			"added_at",
		)

	for _, line := range snapshot.Items {
		insertBuilder = insertBuilder.Values(
			snapshot.SessionID,
			line.ServiceID,
			line.Quantity,
			line.Service.Price,
			line.LineTotal,
			line.AddedAt,
		)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSnapshot - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceSnapshot - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetBySessionID получает сохраненные позиции корзины сессии
// Используется для последующего восстановления корзины
func (r *Repository) GetBySessionID(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"service_id",
		"quantity",
		"added_at",
	).
		From("cart_items").
		Where(squirrel.Eq{"session_id": sessionID}).
		OrderBy("added_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySessionID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySessionID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]domain.CartItem, 0)
	for rows.Next() {
		var item domain.CartItem
		var addedAt sql.NullTime

		if err := rows.Scan(&item.ServiceID, &item.Quantity, &addedAt); err != nil {
			return nil, fmt.Errorf("%w: GetBySessionID - scan row: %v", ErrScanRow, err)
		}

		item.AddedAt = addedAt.Time
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBySessionID - rows error: %v", ErrScanRow, err)
	}

	if len(items) == 0 {
		return nil, ErrCartNotFound
	}

	return items, nil
}
