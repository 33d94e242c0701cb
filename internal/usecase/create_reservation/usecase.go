package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
)

// UseCase use case для прямого создания брони (без оплаты)
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	mailer          Mailer
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	mailer Mailer,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		mailer:          mailer,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания брони.
// Проверка занятости номера и генерация кода выполняются в сериализуемой
// транзакции, чтобы исключить двойное бронирование при одновременных запросах.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: room=%d, checkIn=%s, checkOut=%s",
		req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование номера
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateReservation: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateReservation: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	var result *domain.Reservation

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Проверяем занятость номера с блокировкой пересекающихся броней
		overlapping, err := uc.reservationRepo.GetOverlapping(txCtx, req.CheckIn, req.CheckOut)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get overlapping reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		for _, existing := range overlapping {
			if existing.RoomID == req.RoomID {
				uc.logger.Warn("CreateReservation: room id=%d occupied by reservation id=%d",
					req.RoomID, existing.ID)
				return ErrRoomUnavailable
			}
		}

		// 3.2. Генерируем уникальный код и создаём бронь.
		// Коллизия кода возможна и при вставке (уникальный индекс), поэтому
		// повторяем попытку и на ErrCodeTaken.
		now := uc.timeProvider.Now()
		for attempt := 0; attempt < domain.MaxCodeAttempts; attempt++ {
			code, err := domain.NewReservationCode(now)
			if err != nil {
				uc.logger.Error("CreateReservation: failed to generate code: %v", err)
				return fmt.Errorf("%w: failed to generate code: %v", ErrInternal, err)
			}

			exists, err := uc.reservationRepo.ExistsByCode(txCtx, code)
			if err != nil {
				uc.logger.Error("CreateReservation: failed to check code uniqueness: %v", err)
				return fmt.Errorf("%w: failed to check code: %v", ErrInternal, err)
			}
			if exists {
				uc.logger.Warn("CreateReservation: code %s already taken, retrying", code)
				continue
			}

			created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
				Code:          code,
				CustomerName:  req.CustomerName,
				CustomerEmail: req.CustomerEmail,
				CustomerPhone: req.CustomerPhone,
				RoomID:        req.RoomID,
				Adults:        req.Adults,
				Children:      req.Children,
				CheckIn:       req.CheckIn,
				CheckOut:      req.CheckOut,
				Status:        domain.StatusPending,
				TotalPrice:    req.TotalPrice,
			})
			if err != nil {
				if errors.Is(err, reservationRepo.ErrCodeTaken) {
					uc.logger.Warn("CreateReservation: code %s collided on insert, retrying", code)
					continue
				}
				uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
				return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
			}

			result = created
			return nil
		}

		return ErrCodeGenerationExhausted
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%d, code=%s", result.ID, result.Code)

	// 4. Отправляем подтверждение после коммита. Ошибка отправки бронь не откатывает.
	go uc.sendConfirmation(*result, room.Title)

	return &Response{Reservation: result}, nil
}

func (uc *UseCase) sendConfirmation(res domain.Reservation, roomTitle string) {
	if err := uc.mailer.SendReservationConfirmation(res, roomTitle); err != nil {
		uc.logger.Warn("CreateReservation: confirmation email for %s failed: %v", res.Code, err)
	}
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

	if req.TotalPrice < 0 {
		return fmt.Errorf("%w: totalPrice must not be negative", ErrInvalidInput)
	}

	return nil
}
