package get_guest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	guestsService "github.com/m04kA/SMC-HotelService/internal/service/guests"
)

const (
	msgInvalidGuestID = "id de pasajero inválido"
	msgGuestNotFound  = "pasajero no encontrado"
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

// Handle GET /pasajeros/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /pasajeros/{id} - Invalid guest id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, guestsService.ErrGuestNotFound):
			h.logger.Warn("GET /pasajeros/{id} - Guest not found: guest_id=%d", id)
			handlers.RespondNotFound(w, msgGuestNotFound)
		default:
			h.logger.Error("GET /pasajeros/{id} - Failed to get guest: guest_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
