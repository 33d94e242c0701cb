package process_payment_webhook

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-HotelService/internal/integrations/mercadopago"
)

type fakePaymentRepo struct {
	payment *domain.Payment
	getErr  error

	linkErr     error
	linkedWith  *int64
	statusCalls []paymentRepo.ProviderUpdate
}

func (f *fakePaymentRepo) GetByPreferenceID(ctx context.Context, preferenceID string) (*domain.Payment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.payment, nil
}

func (f *fakePaymentRepo) LinkReservation(ctx context.Context, paymentID, reservationID int64, upd paymentRepo.ProviderUpdate) error {
	if f.linkErr != nil {
		return f.linkErr
	}
	f.linkedWith = &reservationID
	return nil
}

func (f *fakePaymentRepo) UpdateStatus(ctx context.Context, paymentID int64, upd paymentRepo.ProviderUpdate) error {
	f.statusCalls = append(f.statusCalls, upd)
	return nil
}

type fakeReservationRepo struct {
	overlapping []*domain.Reservation
	created     []*domain.Reservation
	nextID      int64
}

func (f *fakeReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.nextID++
	created := *res
	created.ID = f.nextID
	f.created = append(f.created, &created)
	return &created, nil
}

func (f *fakeReservationRepo) GetOverlapping(ctx context.Context, checkIn, checkOut time.Time) ([]*domain.Reservation, error) {
	return f.overlapping, nil
}

func (f *fakeReservationRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return false, nil
}

type fakeRoomRepo struct{}

func (fakeRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return &domain.Room{ID: id, Title: "Suite"}, nil
}

type fakeMPClient struct {
	payment *mercadopago.Payment
	err     error
}

func (f *fakeMPClient) GetPayment(ctx context.Context, paymentID string) (*mercadopago.Payment, []byte, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	raw, _ := json.Marshal(f.payment)
	return f.payment, raw, nil
}

type nopMailer struct{}

func (nopMailer) SendReservationConfirmation(res domain.Reservation, roomTitle string) error {
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func completeDraft() mercadopago.ReservationDraft {
	return mercadopago.ReservationDraft{
		CustomerName:  "Juan Pérez",
		CustomerEmail: "juan@example.com",
		CustomerPhone: "+54 11 5555-0100",
		RoomID:        1,
		Adults:        2,
		Children:      0,
		CheckIn:       "2026-03-10",
		CheckOut:      "2026-03-15",
		TotalPrice:    450.50,
	}
}

func approvedPayment() *mercadopago.Payment {
	return &mercadopago.Payment{
		ID:              json.Number("12345"),
		Status:          "approved",
		StatusDetail:    "accredited",
		PreferenceID:    "pref-123",
		PaymentMethodID: "visa",
		PaymentTypeID:   "credit_card",
		Payer:           mercadopago.Payer{Email: "juan@example.com"},
		Metadata:        completeDraft(),
	}
}

func newTestUseCase(payments *fakePaymentRepo, reservations *fakeReservationRepo, mpClient *fakeMPClient) *UseCase {
	uc := NewUseCase(payments, reservations, fakeRoomRepo{}, mpClient, nopMailer{}, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func TestExecute_IgnoresNonPaymentNotifications(t *testing.T) {
	uc := newTestUseCase(&fakePaymentRepo{}, &fakeReservationRepo{}, &fakeMPClient{})

	resp, err := uc.Execute(context.Background(), &Request{Type: "merchant_order", PaymentID: "12345"})
	require.NoError(t, err)
	assert.False(t, resp.Processed)
	assert.Nil(t, resp.Reservation)
}

func TestExecute_IgnoresEmptyPaymentID(t *testing.T) {
	uc := newTestUseCase(&fakePaymentRepo{}, &fakeReservationRepo{}, &fakeMPClient{})

	resp, err := uc.Execute(context.Background(), &Request{Type: "payment"})
	require.NoError(t, err)
	assert.False(t, resp.Processed)
}

func TestExecute_PaymentNotFoundAtProvider(t *testing.T) {
	uc := newTestUseCase(&fakePaymentRepo{}, &fakeReservationRepo{},
		&fakeMPClient{err: mercadopago.ErrPaymentNotFound})

	_, err := uc.Execute(context.Background(), &Request{Type: "payment", PaymentID: "12345"})
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestExecute_ApprovedCreatesConfirmedReservation(t *testing.T) {
	payments := &fakePaymentRepo{
		payment: &domain.Payment{ID: 1, PreferenceID: "pref-123", Status: domain.PaymentPending},
	}
	reservations := &fakeReservationRepo{}
	uc := newTestUseCase(payments, reservations, &fakeMPClient{payment: approvedPayment()})

	resp, err := uc.Execute(context.Background(), &Request{Type: "payment", PaymentID: "12345"})
	require.NoError(t, err)

	require.True(t, resp.Processed)
	require.NotNil(t, resp.Reservation)
	assert.Equal(t, domain.StatusConfirmed, resp.Reservation.Status)
	assert.Equal(t, int64(1), resp.Reservation.RoomID)
	assert.Equal(t, "Juan Pérez", resp.Reservation.CustomerName)
	assert.Regexp(t, `^RES-202603-[A-Z0-9]{6}$`, resp.Reservation.Code)

	// Платёж привязан к созданной брони
	require.NotNil(t, payments.linkedWith)
	assert.Equal(t, resp.Reservation.ID, *payments.linkedWith)
}

func TestExecute_AlreadyReconciledIsNoop(t *testing.T) {
	reservationID := int64(42)
	payments := &fakePaymentRepo{
		payment: &domain.Payment{
			ID:            1,
			PreferenceID:  "pref-123",
			Status:        domain.PaymentApproved,
			ReservationID: &reservationID,
		},
	}
	reservations := &fakeReservationRepo{}
	uc := newTestUseCase(payments, reservations, &fakeMPClient{payment: approvedPayment()})

	resp, err := uc.Execute(context.Background(), &Request{Type: "payment", PaymentID: "12345"})
	require.NoError(t, err)

	// Повторное уведомление: новая бронь не создаётся
	assert.False(t, resp.Processed)
	assert.Nil(t, resp.Reservation)
	assert.Empty(t, reservations.created)
	assert.Nil(t, payments.linkedWith)
}

func TestExecute_ConcurrentLinkIsIdempotent(t *testing.T) {
	payments := &fakePaymentRepo{
		payment: &domain.Payment{ID: 1, PreferenceID: "pref-123", Status: domain.PaymentPending},
		linkErr: paymentRepo.ErrAlreadyLinked,
	}
	uc := newTestUseCase(payments, &fakeReservationRepo{}, &fakeMPClient{payment: approvedPayment()})

	resp, err := uc.Execute(context.Background(), &Request{Type: "payment", PaymentID: "12345"})
	require.NoError(t, err)
	assert.False(t, resp.Processed)
	assert.Nil(t, resp.Reservation)
}

func TestExecute_NonApprovedRecordsStatusOnly(t *testing.T) {
	payments := &fakePaymentRepo{
		payment: &domain.Payment{ID: 1, PreferenceID: "pref-123", Status: domain.PaymentPending},
	}
	reservations := &fakeReservationRepo{}

	payment := approvedPayment()
	payment.Status = "rejected"
	payment.StatusDetail = "cc_rejected_insufficient_amount"

	uc := newTestUseCase(payments, reservations, &fakeMPClient{payment: payment})

	resp, err := uc.Execute(context.Background(), &Request{Type: "payment", PaymentID: "12345"})
	require.NoError(t, err)

	assert.False(t, resp.Processed)
	assert.Empty(t, reservations.created)
	require.Len(t, payments.statusCalls, 1)
	assert.Equal(t, domain.PaymentRejected, payments.statusCalls[0].Status)
	require.NotNil(t, payments.statusCalls[0].StatusDetail)
	assert.Equal(t, "cc_rejected_insufficient_amount", *payments.statusCalls[0].StatusDetail)
}

func TestExecute_UnknownPreference(t *testing.T) {
	payments := &fakePaymentRepo{getErr: paymentRepo.ErrPaymentNotFound}
	uc := newTestUseCase(payments, &fakeReservationRepo{}, &fakeMPClient{payment: approvedPayment()})

	_, err := uc.Execute(context.Background(), &Request{Type: "payment", PaymentID: "12345"})
	assert.ErrorIs(t, err, ErrUnknownPreference)
}

func TestExecute_MissingMetadata(t *testing.T) {
	payments := &fakePaymentRepo{
		payment: &domain.Payment{ID: 1, PreferenceID: "pref-123", Status: domain.PaymentPending},
	}

	payment := approvedPayment()
	payment.Metadata = mercadopago.ReservationDraft{}

	uc := newTestUseCase(payments, &fakeReservationRepo{}, &fakeMPClient{payment: payment})

	_, err := uc.Execute(context.Background(), &Request{Type: "payment", PaymentID: "12345"})
	assert.ErrorIs(t, err, ErrMissingMetadata)
}

func TestExecute_InvalidDraftDates(t *testing.T) {
	payments := &fakePaymentRepo{
		payment: &domain.Payment{ID: 1, PreferenceID: "pref-123", Status: domain.PaymentPending},
	}

	payment := approvedPayment()
	payment.Metadata.CheckIn = "2026-03-15"
	payment.Metadata.CheckOut = "2026-03-10"

	uc := newTestUseCase(payments, &fakeReservationRepo{}, &fakeMPClient{payment: payment})

	_, err := uc.Execute(context.Background(), &Request{Type: "payment", PaymentID: "12345"})
	assert.ErrorIs(t, err, ErrMissingMetadata)
}

func TestExecute_PaidRoomConflict(t *testing.T) {
	payments := &fakePaymentRepo{
		payment: &domain.Payment{ID: 1, PreferenceID: "pref-123", Status: domain.PaymentPending},
	}
	reservations := &fakeReservationRepo{
		overlapping: []*domain.Reservation{
			{ID: 9, RoomID: 1, Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(payments, reservations, &fakeMPClient{payment: approvedPayment()})

	_, err := uc.Execute(context.Background(), &Request{Type: "payment", PaymentID: "12345"})
	assert.ErrorIs(t, err, ErrRoomConflict)

	// Бронь не создана, но статус платежа обновлён для оператора
	assert.Empty(t, reservations.created)
	require.Len(t, payments.statusCalls, 1)
	assert.Equal(t, domain.PaymentApproved, payments.statusCalls[0].Status)
}
