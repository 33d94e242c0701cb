package process_payment_webhook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/payment"
	reservationRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HotelService/internal/integrations/mercadopago"
)

const notificationTypePayment = "payment"

// UseCase use case обработки webhook-уведомлений Mercado Pago.
// Уведомления могут приходить повторно и в любом порядке, поэтому обработка
// идемпотентна: бронь из одного платежа создаётся ровно один раз.
type UseCase struct {
	paymentRepo     PaymentRepository
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	mpClient        MercadoPagoClient
	mailer          Mailer
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	paymentRepo PaymentRepository,
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	mpClient MercadoPagoClient,
	mailer Mailer,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		mpClient:        mpClient,
		mailer:          mailer,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute обрабатывает уведомление. Ошибки обработки не мешают подтверждению
// приёма уведомления: провайдер всегда получает 200, иначе он отключит webhook.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Обрабатываем только уведомления о платежах
	if req.Type != notificationTypePayment {
		uc.logger.Info("ProcessPaymentWebhook: ignoring notification type=%s", req.Type)
		return &Response{}, nil
	}

	if req.PaymentID == "" {
		uc.logger.Warn("ProcessPaymentWebhook: notification without payment id")
		return &Response{}, nil
	}

	uc.logger.Info("ProcessPaymentWebhook: processing payment=%s", req.PaymentID)

	// 2. Запрашиваем актуальное состояние платежа у провайдера.
	// Статусу из уведомления не доверяем: провайдер требует перечитать платёж.
	payment, raw, err := uc.mpClient.GetPayment(ctx, req.PaymentID)
	if err != nil {
		if errors.Is(err, mercadopago.ErrPaymentNotFound) {
			uc.logger.Warn("ProcessPaymentWebhook: payment=%s not found at provider", req.PaymentID)
			return nil, ErrPaymentNotFound
		}
		uc.logger.Error("ProcessPaymentWebhook: provider error for payment=%s: %v", req.PaymentID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	status := domain.PaymentStatus(payment.Status)
	if !domain.ValidPaymentStatus(status) {
		uc.logger.Warn("ProcessPaymentWebhook: payment=%s has unknown status=%s", req.PaymentID, payment.Status)
	}

	upd := paymentRepo.ProviderUpdate{
		MPPaymentID:   payment.ID.String(),
		Status:        status,
		StatusDetail:  optional(payment.StatusDetail),
		PaymentMethod: optional(payment.PaymentMethodID),
		PaymentType:   optional(payment.PaymentTypeID),
		PayerEmail:    optional(payment.Payer.Email),
		RawData:       raw,
	}

	// 3. Неодобренные платежи только обновляют локальный регистр
	if status != domain.PaymentApproved {
		uc.logger.Info("ProcessPaymentWebhook: payment=%s status=%s, no reservation to create",
			req.PaymentID, status)
		return uc.recordStatus(ctx, payment.PreferenceID, req.PaymentID, upd)
	}

	// 4. Одобренный платёж: создаём бронь из черновика в metadata
	return uc.reconcile(ctx, payment, upd)
}

// recordStatus обновляет статус локального платежа без создания брони
func (uc *UseCase) recordStatus(ctx context.Context, preferenceID, mpPaymentID string, upd paymentRepo.ProviderUpdate) (*Response, error) {
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		local, err := uc.paymentRepo.GetByPreferenceID(txCtx, preferenceID)
		if err != nil {
			if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
				uc.logger.Warn("ProcessPaymentWebhook: preference=%s is not registered locally", preferenceID)
				return ErrUnknownPreference
			}
			return fmt.Errorf("%w: failed to get payment: %v", ErrInternal, err)
		}

		if err := uc.paymentRepo.UpdateStatus(txCtx, local.ID, upd); err != nil {
			return fmt.Errorf("%w: failed to update payment status: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ProcessPaymentWebhook: recorded status=%s for payment=%s", upd.Status, mpPaymentID)
	return &Response{}, nil
}

// reconcile создаёт confirmed-бронь из одобренного платежа.
// Повторное уведомление по уже обработанному платежу завершается без изменений.
func (uc *UseCase) reconcile(ctx context.Context, payment *mercadopago.Payment, upd paymentRepo.ProviderUpdate) (*Response, error) {
	draft := payment.Metadata

	var (
		result   *domain.Reservation
		conflict bool
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		result = nil
		conflict = false

		// 4.1. Берём локальный платёж под блокировку строки
		local, err := uc.paymentRepo.GetByPreferenceID(txCtx, payment.PreferenceID)
		if err != nil {
			if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
				uc.logger.Warn("ProcessPaymentWebhook: preference=%s is not registered locally", payment.PreferenceID)
				return ErrUnknownPreference
			}
			return fmt.Errorf("%w: failed to get payment: %v", ErrInternal, err)
		}

		// 4.2. Уже обработан - идемпотентный no-op
		if local.IsReconciled() {
			uc.logger.Info("ProcessPaymentWebhook: payment id=%d already reconciled with reservation id=%d",
				local.ID, *local.ReservationID)
			return nil
		}

		// 4.3. Черновик брони обязан приехать в metadata платежа
		if !draft.IsComplete() {
			uc.logger.Error("ProcessPaymentWebhook: payment id=%d has incomplete metadata", local.ID)
			return ErrMissingMetadata
		}

		checkIn, checkOut, err := parseDraftDates(draft)
		if err != nil {
			uc.logger.Error("ProcessPaymentWebhook: payment id=%d has invalid dates in metadata: %v", local.ID, err)
			return ErrMissingMetadata
		}

		// 4.4. Проверяем, что номер всё ещё свободен. Деньги уже списаны,
		// поэтому конфликт фиксируем в статусе платежа и отдаём оператору.
		overlapping, err := uc.reservationRepo.GetOverlapping(txCtx, checkIn, checkOut)
		if err != nil {
			return fmt.Errorf("%w: failed to get overlapping reservations: %v", ErrInternal, err)
		}
		// Ошибку конфликта нельзя вернуть из транзакции: откат стёр бы
		// обновление статуса, которое нужно оператору для разбора.
		for _, existing := range overlapping {
			if existing.RoomID == draft.RoomID {
				uc.logger.Error("ProcessPaymentWebhook: paid room id=%d occupied by reservation id=%d",
					draft.RoomID, existing.ID)
				if err := uc.paymentRepo.UpdateStatus(txCtx, local.ID, upd); err != nil {
					return fmt.Errorf("%w: failed to update payment status: %v", ErrInternal, err)
				}
				conflict = true
				return nil
			}
		}

		// 4.5. Генерируем уникальный код и создаём подтверждённую бронь
		created, err := uc.createReservation(txCtx, draft, checkIn, checkOut)
		if err != nil {
			return err
		}

		// 4.6. Привязываем платёж к брони. CAS-условие гарантирует,
		// что из одного платежа не получится двух броней.
		if err := uc.paymentRepo.LinkReservation(txCtx, local.ID, created.ID, upd); err != nil {
			if errors.Is(err, paymentRepo.ErrAlreadyLinked) {
				uc.logger.Warn("ProcessPaymentWebhook: payment id=%d linked concurrently", local.ID)
				return paymentRepo.ErrAlreadyLinked
			}
			return fmt.Errorf("%w: failed to link payment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Параллельный webhook успел первым - считаем платёж обработанным
		if errors.Is(err, paymentRepo.ErrAlreadyLinked) {
			return &Response{}, nil
		}
		return nil, err
	}

	if conflict {
		return nil, ErrRoomConflict
	}

	if result == nil {
		return &Response{}, nil
	}

	uc.logger.Info("ProcessPaymentWebhook: created reservation id=%d, code=%s from payment preference=%s",
		result.ID, result.Code, payment.PreferenceID)

	// 5. Подтверждение после коммита, отказ почты бронь не трогает
	go uc.sendConfirmation(*result, draft.RoomID)

	return &Response{Processed: true, Reservation: result}, nil
}

func (uc *UseCase) createReservation(ctx context.Context, draft mercadopago.ReservationDraft, checkIn, checkOut time.Time) (*domain.Reservation, error) {
	now := uc.timeProvider.Now()

	for attempt := 0; attempt < domain.MaxCodeAttempts; attempt++ {
		code, err := domain.NewReservationCode(now)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to generate code: %v", ErrInternal, err)
		}

		exists, err := uc.reservationRepo.ExistsByCode(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to check code: %v", ErrInternal, err)
		}
		if exists {
			uc.logger.Warn("ProcessPaymentWebhook: code %s already taken, retrying", code)
			continue
		}

		created, err := uc.reservationRepo.Create(ctx, &domain.Reservation{
			Code:          code,
			CustomerName:  draft.CustomerName,
			CustomerEmail: draft.CustomerEmail,
			CustomerPhone: draft.CustomerPhone,
			RoomID:        draft.RoomID,
			Adults:        draft.Adults,
			Children:      draft.Children,
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			Status:        domain.StatusConfirmed,
			TotalPrice:    draft.TotalPrice,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrCodeTaken) {
				uc.logger.Warn("ProcessPaymentWebhook: code %s collided on insert, retrying", code)
				continue
			}
			return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		return created, nil
	}

	return nil, ErrCodeGenerationExhausted
}

func (uc *UseCase) sendConfirmation(res domain.Reservation, roomID int64) {
	roomTitle := fmt.Sprintf("Habitación %d", roomID)
	if room, err := uc.roomRepo.GetByID(context.Background(), roomID); err == nil {
		roomTitle = room.Title
	}

	if err := uc.mailer.SendReservationConfirmation(res, roomTitle); err != nil {
		uc.logger.Warn("ProcessPaymentWebhook: confirmation email for %s failed: %v", res.Code, err)
	}
}

// parseDraftDates разбирает даты заезда и выезда из черновика
func parseDraftDates(draft mercadopago.ReservationDraft) (time.Time, time.Time, error) {
	checkIn, err := time.Parse(domain.DateFormat, draft.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err := time.Parse(domain.DateFormat, draft.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !checkIn.Before(checkOut) {
		return time.Time{}, time.Time{}, fmt.Errorf("check-in %s is not before check-out %s", draft.CheckIn, draft.CheckOut)
	}
	return checkIn, checkOut, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
