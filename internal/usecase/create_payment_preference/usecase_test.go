package create_payment_preference

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/integrations/mercadopago"
)

type fakePaymentRepo struct {
	created *domain.Payment
	err     error
}

func (f *fakePaymentRepo) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := *p
	created.ID = 1
	f.created = &created
	return &created, nil
}

type fakeRoomRepo struct {
	room *domain.Room
	err  error
}

func (f *fakeRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.room, nil
}

type fakeMPClient struct {
	pref   *mercadopago.Preference
	err    error
	title  string
	amount float64
	draft  mercadopago.ReservationDraft
}

func (f *fakeMPClient) CreatePreference(ctx context.Context, title string, amount float64, draft mercadopago.ReservationDraft) (*mercadopago.Preference, error) {
	f.title = title
	f.amount = amount
	f.draft = draft
	if f.err != nil {
		return nil, f.err
	}
	return f.pref, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func date(value string) time.Time {
	t, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		panic(err)
	}
	return t
}

func validRequest() *Request {
	return &Request{
		CustomerName:  "Juan Pérez",
		CustomerEmail: "juan@example.com",
		CustomerPhone: "+54 11 5555-0100",
		RoomID:        1,
		Adults:        2,
		Children:      0,
		CheckIn:       date("2026-03-10"),
		CheckOut:      date("2026-03-15"),
		TotalPrice:    450.505,
	}
}

func TestExecute_Success(t *testing.T) {
	paymentRepo := &fakePaymentRepo{}
	mpClient := &fakeMPClient{
		pref: &mercadopago.Preference{ID: "pref-123", InitPoint: "https://mp.example/init/pref-123"},
	}
	uc := NewUseCase(paymentRepo, &fakeRoomRepo{room: &domain.Room{ID: 1, Title: "Suite Premium"}}, mpClient, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "pref-123", resp.PreferenceID)
	assert.Equal(t, "https://mp.example/init/pref-123", resp.InitPoint)

	// Сумма округлена до двух знаков
	assert.Equal(t, 450.51, mpClient.amount)
	assert.Equal(t, "Reserva: Suite Premium", mpClient.title)

	// Черновик уехал в metadata целиком
	assert.Equal(t, "Juan Pérez", mpClient.draft.CustomerName)
	assert.Equal(t, "2026-03-10", mpClient.draft.CheckIn)
	assert.Equal(t, "2026-03-15", mpClient.draft.CheckOut)
	assert.NotEmpty(t, mpClient.draft.Correlation)
	assert.True(t, mpClient.draft.IsComplete())

	// Платёж зарегистрирован локально как pending
	require.NotNil(t, paymentRepo.created)
	assert.Equal(t, "pref-123", paymentRepo.created.PreferenceID)
	assert.Equal(t, domain.PaymentPending, paymentRepo.created.Status)
	assert.Equal(t, 450.51, paymentRepo.created.Amount)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := NewUseCase(&fakePaymentRepo{}, &fakeRoomRepo{err: roomRepo.ErrRoomNotFound}, &fakeMPClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_UpstreamError(t *testing.T) {
	mpClient := &fakeMPClient{err: errors.New("circuit breaker is open")}
	uc := NewUseCase(&fakePaymentRepo{}, &fakeRoomRepo{room: &domain.Room{ID: 1, Title: "Suite"}}, mpClient, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestExecute_RegisterFailure(t *testing.T) {
	mpClient := &fakeMPClient{pref: &mercadopago.Preference{ID: "pref-123", InitPoint: "https://mp.example"}}
	uc := NewUseCase(&fakePaymentRepo{err: errors.New("connection refused")},
		&fakeRoomRepo{room: &domain.Room{ID: 1, Title: "Suite"}}, mpClient, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakePaymentRepo{}, &fakeRoomRepo{room: &domain.Room{ID: 1}}, &fakeMPClient{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"пустое имя", func(req *Request) { req.CustomerName = "" }},
		{"некорректный email", func(req *Request) { req.CustomerEmail = "not-an-email" }},
		{"пустой телефон", func(req *Request) { req.CustomerPhone = "" }},
		{"нулевой roomID", func(req *Request) { req.RoomID = 0 }},
		{"без взрослых", func(req *Request) { req.Adults = 0 }},
		{"checkIn после checkOut", func(req *Request) { req.CheckIn, req.CheckOut = req.CheckOut, req.CheckIn }},
		{"нулевая цена", func(req *Request) { req.TotalPrice = 0 }},
		{"отрицательная цена", func(req *Request) { req.TotalPrice = -10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
