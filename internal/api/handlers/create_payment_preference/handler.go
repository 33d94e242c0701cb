package create_payment_preference

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	createPaymentPreference "github.com/m04kA/SMC-HotelService/internal/usecase/create_payment_preference"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgInvalidDates       = "fechas inválidas, se espera formato YYYY-MM-DD"
	msgInvalidPayment     = "datos del pago inválidos"
	msgRoomNotFound       = "habitación no encontrada"
)

type Handler struct {
	useCase CreatePaymentPreferenceUseCase
	logger  Logger
}

func NewHandler(useCase CreatePaymentPreferenceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /pagos/crear-preferencia
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePreferenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pagos/crear-preferencia - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /pagos/crear-preferencia - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createPaymentPreference.ErrRoomNotFound):
			h.logger.Warn("POST /pagos/crear-preferencia - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createPaymentPreference.ErrInvalidInput):
			h.logger.Warn("POST /pagos/crear-preferencia - Invalid payment data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPayment)

		case errors.Is(err, createPaymentPreference.ErrUpstream):
			h.logger.Error("POST /pagos/crear-preferencia - Provider error: %v", err)
			handlers.RespondInternalError(w)

		default:
			h.logger.Error("POST /pagos/crear-preferencia - Failed to create preference: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pagos/crear-preferencia - Preference created successfully: preference_id=%s", result.PreferenceID)
	handlers.RespondJSON(w, http.StatusCreated, CreatePreferenceResponse{
		PreferenceID: result.PreferenceID,
		InitPoint:    result.InitPoint,
	})
}
