package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomModels "github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
	checkAvailability "github.com/m04kA/SMC-HotelService/internal/usecase/check_availability"
)

const (
	msgInvalidDates     = "fechas inválidas, se espera formato YYYY-MM-DD"
	msgInvalidRange     = "la fecha de check-in debe ser anterior al check-out"
	msgInvalidNumPeople = "número de personas inválido"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /habitaciones/disponibilidad?fechaCheckIn=...&fechaCheckOut=...&numPersonas=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	checkIn, err := time.Parse(domain.DateFormat, query.Get("fechaCheckIn"))
	if err != nil {
		h.logger.Warn("GET /habitaciones/disponibilidad - Invalid fechaCheckIn: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	checkOut, err := time.Parse(domain.DateFormat, query.Get("fechaCheckOut"))
	if err != nil {
		h.logger.Warn("GET /habitaciones/disponibilidad - Invalid fechaCheckOut: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	numPeople := 0
	if raw := query.Get("numPersonas"); raw != "" {
		numPeople, err = strconv.Atoi(raw)
		if err != nil || numPeople < 0 {
			h.logger.Warn("GET /habitaciones/disponibilidad - Invalid numPersonas: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidNumPeople)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		NumPeople: numPeople,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidRange):
			h.logger.Warn("GET /habitaciones/disponibilidad - Invalid date range: checkIn=%s, checkOut=%s",
				query.Get("fechaCheckIn"), query.Get("fechaCheckOut"))
			handlers.RespondBadRequest(w, msgInvalidRange)
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /habitaciones/disponibilidad - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDates)
		default:
			h.logger.Error("GET /habitaciones/disponibilidad - Failed to check availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, roomModels.FromDomainRoomList(result.Rooms))
}
