package guest

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

var guestColumns = []string{
	"id",
	"name",
	"document",
	"age",
	"nationality",
	"phone",
	"check_in",
	"check_out",
	"room_label",
	"signature",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с карточками постояльцев
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория постояльцев
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает карточку постояльца
func (r *Repository) Create(ctx context.Context, g *domain.Guest) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("guests").
		Columns(
			"name",
			"document",
			"age",
			"nationality",
			"phone",
			"check_in",
			"check_out",
			"room_label",
			"signature",
		).
		Values(
			g.Name,
			g.Document,
			g.Age,
			g.Nationality,
			g.Phone,
			g.CheckIn,
			g.CheckOut,
			g.RoomLabel,
			g.Signature,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&g.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	g.CreatedAt = createdAt.Time
	g.UpdatedAt = updatedAt.Time

	return g, nil
}

// GetByID получает карточку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(guestColumns...).
		From("guests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	g, err := scanGuest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrGuestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan guest: %v", ErrScanRow, err)
	}

	return g, nil
}

// List получает все карточки, сначала новые
func (r *Repository) List(ctx context.Context) ([]*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(guestColumns...).
		From("guests").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		guests = append(guests, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return guests, nil
}

// Update частично обновляет карточку и возвращает обновлённую запись
func (r *Repository) Update(ctx context.Context, id int64, upd domain.GuestUpdate) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("guests").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.Name != nil {
		updateBuilder = updateBuilder.Set("name", *upd.Name)
	}
	if upd.Document != nil {
		updateBuilder = updateBuilder.Set("document", *upd.Document)
	}
	if upd.Age != nil {
		updateBuilder = updateBuilder.Set("age", *upd.Age)
	}
	if upd.Nationality != nil {
		updateBuilder = updateBuilder.Set("nationality", *upd.Nationality)
	}
	if upd.Phone != nil {
		updateBuilder = updateBuilder.Set("phone", *upd.Phone)
	}
	if upd.CheckIn != nil {
		updateBuilder = updateBuilder.Set("check_in", *upd.CheckIn)
	}
	if upd.CheckOut != nil {
		updateBuilder = updateBuilder.Set("check_out", *upd.CheckOut)
	}
	if upd.RoomLabel != nil {
		updateBuilder = updateBuilder.Set("room_label", *upd.RoomLabel)
	}
	if upd.Signature != nil {
		updateBuilder = updateBuilder.Set("signature", *upd.Signature)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(guestColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	g, err := scanGuest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrGuestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan guest: %v", ErrScanRow, err)
	}

	return g, nil
}

// Delete удаляет карточку постояльца
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("guests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrGuestNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGuest(row rowScanner) (*domain.Guest, error) {
	var g domain.Guest
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Document,
		&g.Age,
		&g.Nationality,
		&g.Phone,
		&g.CheckIn,
		&g.CheckOut,
		&g.RoomLabel,
		&g.Signature,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	g.CreatedAt = createdAt.Time
	g.UpdatedAt = updatedAt.Time

	return &g, nil
}
