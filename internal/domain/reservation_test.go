package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestReservation_Overlaps(t *testing.T) {
	res := &Reservation{
		CheckIn:  date("2026-03-10"),
		CheckOut: date("2026-03-15"),
	}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{
			name:     "полное совпадение интервалов",
			checkIn:  "2026-03-10",
			checkOut: "2026-03-15",
			want:     true,
		},
		{
			name:     "запрошенный интервал внутри брони",
			checkIn:  "2026-03-11",
			checkOut: "2026-03-13",
			want:     true,
		},
		{
			name:     "бронь внутри запрошенного интервала",
			checkIn:  "2026-03-01",
			checkOut: "2026-03-31",
			want:     true,
		},
		{
			name:     "пересечение по левому краю",
			checkIn:  "2026-03-08",
			checkOut: "2026-03-11",
			want:     true,
		},
		{
			name:     "пересечение по правому краю",
			checkIn:  "2026-03-14",
			checkOut: "2026-03-20",
			want:     true,
		},
		{
			name:     "заезд в день выезда - не конфликт",
			checkIn:  "2026-03-15",
			checkOut: "2026-03-20",
			want:     false,
		},
		{
			name:     "выезд в день заезда - не конфликт",
			checkIn:  "2026-03-05",
			checkOut: "2026-03-10",
			want:     false,
		},
		{
			name:     "интервал целиком раньше",
			checkIn:  "2026-03-01",
			checkOut: "2026-03-05",
			want:     false,
		},
		{
			name:     "интервал целиком позже",
			checkIn:  "2026-03-20",
			checkOut: "2026-03-25",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := res.Overlaps(date(tt.checkIn), date(tt.checkOut))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReservation_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{"pending -> confirmed", StatusPending, StatusConfirmed, true},
		{"pending -> cancelled", StatusPending, StatusCancelled, true},
		{"pending -> completed запрещён", StatusPending, StatusCompleted, false},
		{"confirmed -> completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed -> cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed -> pending запрещён", StatusConfirmed, StatusPending, false},
		{"completed терминальный", StatusCompleted, StatusCancelled, false},
		{"cancelled терминальный", StatusCancelled, StatusPending, false},
		{"cancelled -> confirmed запрещён", StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &Reservation{Status: tt.from}
			assert.Equal(t, tt.want, res.CanTransitionTo(tt.to))
		})
	}
}

func TestReservation_Lifecycle(t *testing.T) {
	t.Run("активные статусы блокируют даты", func(t *testing.T) {
		assert.True(t, (&Reservation{Status: StatusPending}).IsActive())
		assert.True(t, (&Reservation{Status: StatusConfirmed}).IsActive())
		assert.False(t, (&Reservation{Status: StatusCompleted}).IsActive())
		assert.False(t, (&Reservation{Status: StatusCancelled}).IsActive())
	})

	t.Run("отменить можно только активную бронь", func(t *testing.T) {
		assert.True(t, (&Reservation{Status: StatusPending}).CanBeCancelled())
		assert.True(t, (&Reservation{Status: StatusConfirmed}).CanBeCancelled())
		assert.False(t, (&Reservation{Status: StatusCompleted}).CanBeCancelled())
		assert.False(t, (&Reservation{Status: StatusCancelled}).CanBeCancelled())
	})

	t.Run("удалить можно только отменённую бронь", func(t *testing.T) {
		assert.True(t, (&Reservation{Status: StatusCancelled}).CanBeDeleted())
		assert.False(t, (&Reservation{Status: StatusPending}).CanBeDeleted())
		assert.False(t, (&Reservation{Status: StatusConfirmed}).CanBeDeleted())
		assert.False(t, (&Reservation{Status: StatusCompleted}).CanBeDeleted())
	})
}

func TestValidReservationStatus(t *testing.T) {
	assert.True(t, ValidReservationStatus(StatusPending))
	assert.True(t, ValidReservationStatus(StatusConfirmed))
	assert.True(t, ValidReservationStatus(StatusCompleted))
	assert.True(t, ValidReservationStatus(StatusCancelled))
	assert.False(t, ValidReservationStatus("pendiente"))
	assert.False(t, ValidReservationStatus(""))
}
