package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/integrations/mercadopago"
	paymentRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-HotelService/internal/service/payments/models"
)

// Service сервис для чтения состояния платежей
type Service struct {
	paymentRepo PaymentRepository
	mpClient    MercadoPagoClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(paymentRepo PaymentRepository, mpClient MercadoPagoClient, logger Logger) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		mpClient:    mpClient,
		logger:      logger,
	}
}

// QueryPayment запрашивает актуальное состояние платежа у провайдера
func (s *Service) QueryPayment(ctx context.Context, paymentID string) (*models.ProviderPaymentResponse, error) {
	s.logger.Info("QueryPayment: querying provider for payment=%s", paymentID)

	payment, _, err := s.mpClient.GetPayment(ctx, paymentID)
	if err != nil {
		if errors.Is(err, mercadopago.ErrPaymentNotFound) {
			s.logger.Warn("QueryPayment: payment=%s not found at provider", paymentID)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("QueryPayment: provider error for payment=%s: %v", paymentID, err)
		return nil, fmt.Errorf("%w: QueryPayment - provider error: %v", ErrUpstream, err)
	}

	return models.FromProviderPayment(payment), nil
}

// GetByReservationID получает платёж, привязанный к брони
func (s *Service) GetByReservationID(ctx context.Context, reservationID int64) (*models.PaymentResponse, error) {
	payment, err := s.paymentRepo.GetByReservationID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("GetByReservationID: no payment for reservation id=%d", reservationID)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("GetByReservationID: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: GetByReservationID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPayment(payment), nil
}
