package create_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	createReservation "github.com/m04kA/SMC-HotelService/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	req  *createReservation.Request
	resp *createReservation.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
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

const validBody = `{
	"nombreCliente": "Ana García",
	"emailCliente": "ana@example.com",
	"habitacionId": 3,
	"numAdultos": 2,
	"fechaCheckIn": "2026-03-15",
	"fechaCheckOut": "2026-03-18",
	"precioTotal": 450.0
}`

func post(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/reservas", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_StatusMapping(t *testing.T) {
	t.Run("комната занята - 400", func(t *testing.T) {
		uc := &fakeUseCase{err: createReservation.ErrRoomUnavailable}
		h := NewHandler(uc, nopLogger{})

		rec := post(t, h, validBody)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"msg":"la habitación no está disponible para esas fechas"}`, rec.Body.String())
	})

	t.Run("исчерпаны попытки генерации кода - 500", func(t *testing.T) {
		uc := &fakeUseCase{err: createReservation.ErrCodeGenerationExhausted}
		h := NewHandler(uc, nopLogger{})

		rec := post(t, h, validBody)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"msg":"error interno del servidor"}`, rec.Body.String())
	})

	t.Run("комната не найдена - 404", func(t *testing.T) {
		uc := &fakeUseCase{err: createReservation.ErrRoomNotFound}
		h := NewHandler(uc, nopLogger{})

		rec := post(t, h, validBody)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("некорректные данные - 400", func(t *testing.T) {
		uc := &fakeUseCase{err: createReservation.ErrInvalidInput}
		h := NewHandler(uc, nopLogger{})

		rec := post(t, h, validBody)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
