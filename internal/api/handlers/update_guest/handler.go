package update_guest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	guestsService "github.com/m04kA/SMC-HotelService/internal/service/guests"
	"github.com/m04kA/SMC-HotelService/internal/service/guests/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgInvalidGuestID     = "id de pasajero inválido"
	msgInvalidGuestData   = "datos del pasajero inválidos"
	msgGuestNotFound      = "pasajero no encontrado"
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

// Handle PUT /pasajeros/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /pasajeros/{id} - Invalid guest id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	var req models.UpdateGuestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /pasajeros/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, guestsService.ErrGuestNotFound):
			h.logger.Warn("PUT /pasajeros/{id} - Guest not found: guest_id=%d", id)
			handlers.RespondNotFound(w, msgGuestNotFound)
		case errors.Is(err, guestsService.ErrInvalidInput):
			h.logger.Warn("PUT /pasajeros/{id} - Invalid guest data: guest_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidGuestData)
		default:
			h.logger.Error("PUT /pasajeros/{id} - Failed to update guest: guest_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /pasajeros/{id} - Guest updated successfully: guest_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
