package get_payment_by_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	paymentsService "github.com/m04kA/SMC-HotelService/internal/service/payments"
)

const (
	msgInvalidReservationID = "id de reserva inválido"
	msgPaymentNotFound      = "pago no encontrado"
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

// Handle GET /pagos/reserva/{reservaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["reservaId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /pagos/reserva/{reservaId} - Invalid reservation id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.service.GetByReservationID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrPaymentNotFound):
			h.logger.Warn("GET /pagos/reserva/{reservaId} - Payment not found: reservation_id=%d", id)
			handlers.RespondNotFound(w, msgPaymentNotFound)
		default:
			h.logger.Error("GET /pagos/reserva/{reservaId} - Failed to get payment: reservation_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
