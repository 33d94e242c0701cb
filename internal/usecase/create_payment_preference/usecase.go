package create_payment_preference

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/mail"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/integrations/mercadopago"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
)

// UseCase use case для создания платёжной преференции Mercado Pago.
// Бронь на этом шаге НЕ создаётся: черновик уезжает провайдеру как metadata
// и превращается в бронь только после approved-платежа в вебхуке.
type UseCase struct {
	paymentRepo PaymentRepository
	roomRepo    RoomRepository
	mpClient    MercadoPagoClient
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	paymentRepo PaymentRepository,
	roomRepo RoomRepository,
	mpClient MercadoPagoClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		paymentRepo: paymentRepo,
		roomRepo:    roomRepo,
		mpClient:    mpClient,
		logger:      logger,
	}
}

// Execute выполняет use case создания преференции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePaymentPreference: room=%d, amount=%.2f", req.RoomID, req.TotalPrice)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreatePaymentPreference: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование номера, название идёт в item преференции
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreatePaymentPreference: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreatePaymentPreference: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Провайдер отклоняет суммы с дробной частью длиннее двух знаков
	amount := math.Round(req.TotalPrice*100) / 100

	// 4. Собираем черновик брони для metadata
	draft := mercadopago.ReservationDraft{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		RoomID:        req.RoomID,
		Adults:        req.Adults,
		Children:      req.Children,
		CheckIn:       req.CheckIn.Format(domain.DateFormat),
		CheckOut:      req.CheckOut.Format(domain.DateFormat),
		TotalPrice:    amount,
		Correlation:   uuid.NewString(),
	}

	// 5. Создаём преференцию у провайдера
	title := fmt.Sprintf("Reserva: %s", room.Title)
	pref, err := uc.mpClient.CreatePreference(ctx, title, amount, draft)
	if err != nil {
		uc.logger.Error("CreatePaymentPreference: provider error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	// 6. Регистрируем платёж локально со статусом pending
	if _, err := uc.paymentRepo.Create(ctx, &domain.Payment{
		PreferenceID: pref.ID,
		Amount:       amount,
		Status:       domain.PaymentPending,
	}); err != nil {
		uc.logger.Error("CreatePaymentPreference: failed to register payment: %v", err)
		return nil, fmt.Errorf("%w: failed to register payment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreatePaymentPreference: created preference id=%s", pref.ID)
	return &Response{
		PreferenceID: pref.ID,
		InitPoint:    pref.InitPoint,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if _, err := mail.ParseAddress(req.CustomerEmail); err != nil {
		return fmt.Errorf("%w: invalid customer email", ErrInvalidInput)
	}

	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Adults < domain.MinAdults {
		return fmt.Errorf("%w: at least %d adult is required", ErrInvalidInput, domain.MinAdults)
	}

	if req.Children < domain.MinChildren {
		return fmt.Errorf("%w: children must not be negative", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if !req.CheckIn.Before(req.CheckOut) {
		return fmt.Errorf("%w: check-in must be before check-out", ErrInvalidInput)
	}

	if req.TotalPrice <= 0 {
		return fmt.Errorf("%w: totalPrice must be positive", ErrInvalidInput)
	}

	return nil
}
