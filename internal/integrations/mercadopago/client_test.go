package mercadopago

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(baseURL string) *Client {
	return NewClient(Options{
		BaseURL:         baseURL,
		AccessToken:     "TEST-token",
		Timeout:         2 * time.Second,
		NotificationURL: "https://hotel.example/pagos/webhook",
		BackURLBase:     "https://hotel.example",
		StatementLabel:  "HOTEL RESERVA",
		CurrencyID:      "ARS",
	}, nopLogger{})
}

func testDraft() ReservationDraft {
	return ReservationDraft{
		CustomerName:  "Juan Pérez",
		CustomerEmail: "juan@example.com",
		CustomerPhone: "+54 11 5555-0100",
		RoomID:        1,
		Adults:        2,
		CheckIn:       "2026-03-10",
		CheckOut:      "2026-03-15",
		TotalPrice:    450.50,
		Correlation:   "corr-123",
	}
}

func TestCreatePreference(t *testing.T) {
	var got preferenceRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/checkout/preferences", r.URL.Path)
		require.Equal(t, "Bearer TEST-token", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Preference{
			ID:        "pref-123",
			InitPoint: "https://mp.example/init/pref-123",
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	pref, err := client.CreatePreference(context.Background(), "Reserva: Suite", 450.50, testDraft())
	require.NoError(t, err)

	assert.Equal(t, "pref-123", pref.ID)
	assert.Equal(t, "https://mp.example/init/pref-123", pref.InitPoint)

	require.Len(t, got.Items, 1)
	assert.Equal(t, "Reserva: Suite", got.Items[0].Title)
	assert.Equal(t, 450.50, got.Items[0].UnitPrice)
	assert.Equal(t, "ARS", got.Items[0].CurrencyID)
	assert.Equal(t, "https://hotel.example/pago/success", got.BackURLs.Success)
	assert.Equal(t, "https://hotel.example/pagos/webhook", got.NotificationURL)
	assert.Equal(t, "corr-123", got.ExternalReference)
	assert.Equal(t, "Juan Pérez", got.Metadata.CustomerName)
}

func TestCreatePreference_IncompleteResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"pref-123"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.CreatePreference(context.Background(), "Reserva: Suite", 100, testDraft())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payments/12345", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"id": 12345,
			"status": "approved",
			"status_detail": "accredited",
			"preference_id": "pref-123",
			"metadata": {"nombre_cliente": "Juan Pérez", "habitacion_id": 1}
		}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	payment, raw, err := client.GetPayment(context.Background(), "12345")
	require.NoError(t, err)

	assert.Equal(t, "12345", payment.ID.String())
	assert.Equal(t, "approved", payment.Status)
	assert.Equal(t, "pref-123", payment.PreferenceID)
	assert.Equal(t, int64(1), payment.Metadata.RoomID)
	assert.NotEmpty(t, raw, "сырой ответ сохраняется для аудита")
}

func TestGetPayment_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, _, err := client.GetPayment(context.Background(), "12345")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestCircuitBreakerOpensAfterProviderFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	for i := 0; i < 5; i++ {
		_, _, err := client.GetPayment(context.Background(), "12345")
		require.Error(t, err)
	}

	// После пяти подряд отказов breaker открыт и не ходит к провайдеру
	_, _, err := client.GetPayment(context.Background(), "12345")
	assert.ErrorIs(t, err, ErrUnavailable)
}
