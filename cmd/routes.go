package main

import (
	"net/http"

	"github.com/gorilla/mux"
)

// apiHandlers HTTP-обработчики всех маршрутов сервиса
type apiHandlers struct {
	listRooms       http.HandlerFunc
	createRoom      http.HandlerFunc
	getRoom         http.HandlerFunc
	updateRoom      http.HandlerFunc
	deleteRoom      http.HandlerFunc
	getAvailability http.HandlerFunc

	createReservation       http.HandlerFunc
	listReservations        http.HandlerFunc
	getReservation          http.HandlerFunc
	updateReservationStatus http.HandlerFunc
	cancelReservation       http.HandlerFunc
	deleteReservation       http.HandlerFunc

	createGuest http.HandlerFunc
	listGuests  http.HandlerFunc
	getGuest    http.HandlerFunc
	updateGuest http.HandlerFunc
	deleteGuest http.HandlerFunc

	createPaymentPreference http.HandlerFunc
	paymentWebhook          http.HandlerFunc
	getPayment              http.HandlerFunc
	getPaymentByReservation http.HandlerFunc
}

// registerRoutes регистрирует маршруты внешнего контракта.
// Пути монтируются в корне, без префикса.
func registerRoutes(r *mux.Router, h apiHandlers) {
	// --- Habitaciones ---
	// Статичный путь disponibilidad регистрируется раньше пути с {id}
	r.HandleFunc("/habitaciones/disponibilidad", h.getAvailability).Methods(http.MethodGet)
	r.HandleFunc("/habitaciones", h.listRooms).Methods(http.MethodGet)
	r.HandleFunc("/habitaciones", h.createRoom).Methods(http.MethodPost)
	r.HandleFunc("/habitaciones/{id}", h.getRoom).Methods(http.MethodGet)
	r.HandleFunc("/habitaciones/{id}", h.updateRoom).Methods(http.MethodPut)
	r.HandleFunc("/habitaciones/{id}", h.deleteRoom).Methods(http.MethodDelete)

	// --- Reservas ---
	r.HandleFunc("/reservas", h.createReservation).Methods(http.MethodPost)
	r.HandleFunc("/reservas", h.listReservations).Methods(http.MethodGet)
	r.HandleFunc("/reservas/{id}", h.getReservation).Methods(http.MethodGet)
	r.HandleFunc("/reservas/{id}/estado", h.updateReservationStatus).Methods(http.MethodPut)
	r.HandleFunc("/reservas/{id}/cancelar", h.cancelReservation).Methods(http.MethodPut)
	r.HandleFunc("/reservas/{id}", h.deleteReservation).Methods(http.MethodDelete)

	// --- Pasajeros ---
	r.HandleFunc("/pasajeros", h.createGuest).Methods(http.MethodPost)
	r.HandleFunc("/pasajeros", h.listGuests).Methods(http.MethodGet)
	r.HandleFunc("/pasajeros/{id}", h.getGuest).Methods(http.MethodGet)
	r.HandleFunc("/pasajeros/{id}", h.updateGuest).Methods(http.MethodPut)
	r.HandleFunc("/pasajeros/{id}", h.deleteGuest).Methods(http.MethodDelete)

	// --- Pagos ---
	r.HandleFunc("/pagos/crear-preferencia", h.createPaymentPreference).Methods(http.MethodPost)
	r.HandleFunc("/pagos/webhook", h.paymentWebhook).Methods(http.MethodPost)
	r.HandleFunc("/pagos/pago/{paymentId}", h.getPayment).Methods(http.MethodGet)
	r.HandleFunc("/pagos/reserva/{reservaId}", h.getPaymentByReservation).Methods(http.MethodGet)
}
