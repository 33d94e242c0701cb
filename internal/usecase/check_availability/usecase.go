package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// UseCase use case для поиска свободных номеров на диапазон дат
type UseCase struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет поиск свободных номеров.
// Номер считается занятым, если есть активная бронь с пересечением
// полуоткрытых интервалов: existing.checkIn < checkOut && existing.checkOut > checkIn.
// День выезда совпадающий с днём заезда пересечением не считается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: checkIn=%s, checkOut=%s, people=%d",
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.NumPeople)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем все включённые номера (уже отсортированы по цене)
	rooms, err := uc.roomRepo.ListAvailable(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 3. Получаем активные брони, пересекающие диапазон
	overlapping, err := uc.reservationRepo.GetOverlapping(ctx, req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get overlapping reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	occupied := make(map[int64]struct{}, len(overlapping))
	for _, res := range overlapping {
		occupied[res.RoomID] = struct{}{}
	}

	// 4. Фильтруем занятые номера и номера с недостаточной вместимостью
	free := make([]*domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if _, taken := occupied[room.ID]; taken {
			continue
		}
		if req.NumPeople > 0 && !room.FitsCapacity(req.NumPeople) {
			continue
		}
		free = append(free, room)
	}

	uc.logger.Info("CheckAvailability: %d of %d rooms available", len(free), len(rooms))
	return &Response{Rooms: free}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if !req.CheckIn.Before(req.CheckOut) {
		return ErrInvalidRange
	}

	if req.NumPeople < 0 {
		return fmt.Errorf("%w: numPeople must not be negative", ErrInvalidInput)
	}

	return nil
}
