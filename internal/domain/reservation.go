package domain

import "time"

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a hotel room reservation
type Reservation struct {
	ID            int64
	Code          string // человекочитаемый код вида RES-YYYYMM-XXXXXX, уникальный
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	RoomID        int64
	Adults        int
	Children      int
	CheckIn       time.Time
	CheckOut      time.Time
	Status        ReservationStatus
	TotalPrice    float64
	PaymentID     *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation blocks the room's dates
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeDeleted returns true if the reservation may be physically removed
func (r *Reservation) CanBeDeleted() bool {
	return r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation may still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanTransitionTo проверяет допустимость перехода статуса:
// pending -> confirmed -> completed, pending|confirmed -> cancelled (терминальный)
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	switch r.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// Overlaps проверяет пересечение интервала брони с запрошенным интервалом.
// Интервалы полуоткрытые: день выезда совпадает с днём заезда другой брони — не конфликт.
func (r *Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	return r.CheckIn.Before(checkOut) && r.CheckOut.After(checkIn)
}

// ValidReservationStatus returns true if s is one of the known statuses
func ValidReservationStatus(s ReservationStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// ActiveStatuses статусы, блокирующие даты комнаты.
// Используются в запросах пересечения интервалов и проверках удаления.
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
