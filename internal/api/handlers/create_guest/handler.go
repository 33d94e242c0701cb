package create_guest

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	guestsService "github.com/m04kA/SMC-HotelService/internal/service/guests"
	"github.com/m04kA/SMC-HotelService/internal/service/guests/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgInvalidGuestData   = "datos del pasajero inválidos"
)

type Handler struct {
	service GuestsService
	logger  Logger
}

func NewHandler(service GuestsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /pasajeros
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGuestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pasajeros - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, guestsService.ErrInvalidInput):
			h.logger.Warn("POST /pasajeros - Invalid guest data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGuestData)
		default:
			h.logger.Error("POST /pasajeros - Failed to create guest: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pasajeros - Guest created successfully: guest_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
