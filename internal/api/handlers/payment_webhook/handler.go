package payment_webhook

import (
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/integrations/mercadopago"
	processPaymentWebhook "github.com/m04kA/SMC-HotelService/internal/usecase/process_payment_webhook"
)

type Handler struct {
	useCase ProcessPaymentWebhookUseCase
	logger  Logger
}

func NewHandler(useCase ProcessPaymentWebhookUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /pagos/webhook
//
// Провайдер отключает webhook после серии неуспешных ответов, поэтому любой
// исход обработки подтверждается статусом 200. Ошибки только логируются:
// провайдер повторит уведомление, и обработка идемпотентна.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	notifType, paymentID := parseNotification(r)

	result, err := h.useCase.Execute(r.Context(), &processPaymentWebhook.Request{
		Type:      notifType,
		PaymentID: paymentID,
	})
	if err != nil {
		h.logger.Error("POST /pagos/webhook - Processing failed: payment_id=%s, error=%v",
			paymentID, err)
		handlers.RespondJSON(w, http.StatusOK, nil)
		return
	}

	if result.Processed {
		h.logger.Info("POST /pagos/webhook - Reservation created: reservation_id=%d, code=%s",
			result.Reservation.ID, result.Reservation.Code)
	}

	handlers.RespondJSON(w, http.StatusOK, nil)
}

// parseNotification читает уведомление из тела запроса, а при пустом или
// нечитаемом теле - из query-параметров: IPN-уведомления провайдера приходят
// как ?type=payment&data.id=... без тела.
func parseNotification(r *http.Request) (notifType, paymentID string) {
	var notification mercadopago.WebhookNotification
	if err := handlers.DecodeJSON(r, &notification); err == nil && notification.Data.ID.String() != "" {
		return notification.Type, notification.Data.ID.String()
	}

	q := r.URL.Query()
	return q.Get("type"), q.Get("data.id")
}
