package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

var paymentColumns = []string{
	"id",
	"mp_payment_id",
	"preference_id",
	"reservation_id",
	"amount",
	"status",
	"status_detail",
	"payment_method",
	"payment_type",
	"payer_email",
	"raw_data",
	"created_at",
	"updated_at",
}

// ProviderUpdate данные о платеже, пришедшие от провайдера вместе с webhook
type ProviderUpdate struct {
	MPPaymentID   string
	Status        domain.PaymentStatus
	StatusDetail  *string
	PaymentMethod *string
	PaymentType   *string
	PayerEmail    *string
	RawData       []byte
}

// Repository репозиторий для работы с платежами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует платёж в статусе pending при создании преференции
func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"mp_payment_id",
			"preference_id",
			"reservation_id",
			"amount",
			"status",
			"status_detail",
			"payment_method",
			"payment_type",
			"payer_email",
			"raw_data",
		).
		Values(
			p.MPPaymentID,
			p.PreferenceID,
			p.ReservationID,
			p.Amount,
			p.Status,
			p.StatusDetail,
			p.PaymentMethod,
			p.PaymentType,
			p.PayerEmail,
			p.RawData,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicatePreference
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByPreferenceID получает платёж по ID преференции.
// Внутри транзакции строка блокируется (FOR UPDATE): параллельные доставки
// одного webhook сериализуются на этой блокировке.
func (r *Repository) GetByPreferenceID(ctx context.Context, preferenceID string) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"preference_id": preferenceID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPreferenceID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPayment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPreferenceID - scan payment: %v", ErrScanRow, err)
	}

	return p, nil
}

// GetByReservationID получает платёж, из которого была создана бронь
func (r *Repository) GetByReservationID(ctx context.Context, reservationID int64) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPayment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - scan payment: %v", ErrScanRow, err)
	}

	return p, nil
}

// LinkReservation связывает платёж с созданной бронью и записывает данные
// провайдера. Условие reservation_id IS NULL делает операцию compare-and-set:
// повторная доставка webhook получает ErrAlreadyLinked и не создаёт вторую бронь.
func (r *Repository) LinkReservation(ctx context.Context, paymentID, reservationID int64, upd ProviderUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payments").
		Set("reservation_id", reservationID).
		Set("mp_payment_id", upd.MPPaymentID).
		Set("status", upd.Status).
		Set("status_detail", upd.StatusDetail).
		Set("payment_method", upd.PaymentMethod).
		Set("payment_type", upd.PaymentType).
		Set("payer_email", upd.PayerEmail).
		Set("raw_data", upd.RawData).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": paymentID}).
		Where(squirrel.Eq{"reservation_id": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: LinkReservation - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: LinkReservation - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: LinkReservation - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAlreadyLinked
	}

	return nil
}

// UpdateStatus обновляет статус платежа без привязки к брони
// (rejected, cancelled и прочие неуспешные исходы)
func (r *Repository) UpdateStatus(ctx context.Context, paymentID int64, upd ProviderUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payments").
		Set("mp_payment_id", upd.MPPaymentID).
		Set("status", upd.Status).
		Set("status_detail", upd.StatusDetail).
		Set("payment_method", upd.PaymentMethod).
		Set("payment_type", upd.PaymentType).
		Set("payer_email", upd.PayerEmail).
		Set("raw_data", upd.RawData).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": paymentID}).
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
		return ErrPaymentNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var p domain.Payment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.MPPaymentID,
		&p.PreferenceID,
		&p.ReservationID,
		&p.Amount,
		&p.Status,
		&p.StatusDetail,
		&p.PaymentMethod,
		&p.PaymentType,
		&p.PayerEmail,
		&p.RawData,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}
