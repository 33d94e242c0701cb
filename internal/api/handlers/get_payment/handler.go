package get_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	paymentsService "github.com/m04kA/SMC-HotelService/internal/service/payments"
)

const (
	msgInvalidPaymentID = "id de pago inválido"
	msgPaymentNotFound  = "pago no encontrado"
)

type Handler struct {
	service PaymentsService
	logger  Logger
}

func NewHandler(service PaymentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /pagos/pago/{paymentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	paymentID := mux.Vars(r)["paymentId"]
	if paymentID == "" {
		h.logger.Warn("GET /pagos/pago/{paymentId} - Empty payment id")
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return
	}

	result, err := h.service.QueryPayment(r.Context(), paymentID)
	if err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrPaymentNotFound):
			h.logger.Warn("GET /pagos/pago/{paymentId} - Payment not found: payment_id=%s", paymentID)
			handlers.RespondNotFound(w, msgPaymentNotFound)
		case errors.Is(err, paymentsService.ErrUpstream):
			h.logger.Error("GET /pagos/pago/{paymentId} - Provider error: payment_id=%s, error=%v", paymentID, err)
			handlers.RespondInternalError(w)
		default:
			h.logger.Error("GET /pagos/pago/{paymentId} - Failed to query payment: payment_id=%s, error=%v", paymentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
