package payment_webhook

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	processPaymentWebhook "github.com/m04kA/SMC-HotelService/internal/usecase/process_payment_webhook"
)

type fakeUseCase struct {
	req  *processPaymentWebhook.Request
	resp *processPaymentWebhook.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *processPaymentWebhook.Request) (*processPaymentWebhook.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func post(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/pagos/webhook", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_AlwaysRespondsOK(t *testing.T) {
	t.Run("успешная обработка", func(t *testing.T) {
		uc := &fakeUseCase{resp: &processPaymentWebhook.Response{
			Processed:   true,
			Reservation: &domain.Reservation{ID: 1, Code: "RES-202603-A1B2C3"},
		}}
		h := NewHandler(uc, nopLogger{})

		rec := post(t, h, `{"type":"payment","data":{"id":12345}}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ошибка usecase не меняет статус ответа", func(t *testing.T) {
		uc := &fakeUseCase{err: errors.New("provider unavailable")}
		h := NewHandler(uc, nopLogger{})

		rec := post(t, h, `{"type":"payment","data":{"id":12345}}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("битое тело не меняет статус ответа", func(t *testing.T) {
		uc := &fakeUseCase{resp: &processPaymentWebhook.Response{}}
		h := NewHandler(uc, nopLogger{})

		rec := post(t, h, `{not json`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, uc.req.PaymentID, "без id уведомление передаётся пустым и игнорируется")
	})
}

func TestHandle_QueryNotification(t *testing.T) {
	t.Run("IPN-уведомление без тела читается из query", func(t *testing.T) {
		uc := &fakeUseCase{resp: &processPaymentWebhook.Response{}}
		h := NewHandler(uc, nopLogger{})

		req := httptest.NewRequest(http.MethodPost, "/pagos/webhook?type=payment&data.id=12345", nil)
		rec := httptest.NewRecorder()
		h.Handle(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "payment", uc.req.Type)
		assert.Equal(t, "12345", uc.req.PaymentID)
	})

	t.Run("тело имеет приоритет над query", func(t *testing.T) {
		uc := &fakeUseCase{resp: &processPaymentWebhook.Response{}}
		h := NewHandler(uc, nopLogger{})

		req := httptest.NewRequest(http.MethodPost, "/pagos/webhook?type=payment&data.id=111",
			strings.NewReader(`{"type":"payment","data":{"id":222}}`))
		rec := httptest.NewRecorder()
		h.Handle(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "222", uc.req.PaymentID)
	})
}

func TestHandle_PassesNotificationFields(t *testing.T) {
	uc := &fakeUseCase{resp: &processPaymentWebhook.Response{}}
	h := NewHandler(uc, nopLogger{})

	post(t, h, `{"type":"payment","data":{"id":98765}}`)

	assert.Equal(t, "payment", uc.req.Type)
	assert.Equal(t, "98765", uc.req.PaymentID)
}

func TestHandle_StringPaymentID(t *testing.T) {
	// Провайдер присылает id и числом, и строкой
	uc := &fakeUseCase{resp: &processPaymentWebhook.Response{}}
	h := NewHandler(uc, nopLogger{})

	rec := post(t, h, `{"type":"payment","data":{"id":"12345"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "12345", uc.req.PaymentID)
}
