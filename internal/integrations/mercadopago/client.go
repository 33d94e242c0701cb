package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Options параметры клиента Mercado Pago
type Options struct {
	BaseURL         string
	AccessToken     string
	Timeout         time.Duration // ограничивает каждый исходящий вызов
	NotificationURL string
	BackURLBase     string
	StatementLabel  string
	CurrencyID      string
}

// Client REST-клиент Mercado Pago (Checkout Pro).
// Вызовы идут через circuit breaker: после серии отказов провайдера запросы
// быстро завершаются ErrUnavailable вместо ожидания таймаута.
type Client struct {
	opts       Options
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	log        Logger
}

// NewClient создает новый экземпляр клиента Mercado Pago
func NewClient(opts Options, log Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "mercadopago",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Client{
		opts: opts,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		breaker: breaker,
		log:     log,
	}
}

// CreatePreference создает преференцию (intent) для оплаты брони.
// Черновик брони уезжает провайдеру как metadata и возвращается с платежом.
func (c *Client) CreatePreference(ctx context.Context, title string, amount float64, draft ReservationDraft) (*Preference, error) {
	reqBody := preferenceRequest{
		Items: []preferenceItem{
			{
				Title:      title,
				Quantity:   1,
				UnitPrice:  amount,
				CurrencyID: c.opts.CurrencyID,
			},
		},
		BackURLs: backURLs{
			Success: c.opts.BackURLBase + "/pago/success",
			Failure: c.opts.BackURLBase + "/pago/failure",
			Pending: c.opts.BackURLBase + "/pago/pending",
		},
		AutoReturn:          "approved",
		NotificationURL:     c.opts.NotificationURL,
		Metadata:            draft,
		StatementDescriptor: c.opts.StatementLabel,
		ExternalReference:   draft.Correlation,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal preference: %v", ErrInternal, err)
	}

	body, status, err := c.do(ctx, http.MethodPost, "/checkout/preferences", payload)
	if err != nil {
		return nil, err
	}

	if status != http.StatusCreated && status != http.StatusOK {
		return nil, c.asError(status, body)
	}

	var pref Preference
	if err := json.Unmarshal(body, &pref); err != nil {
		return nil, fmt.Errorf("%w: failed to decode preference: %v", ErrInvalidResponse, err)
	}
	if pref.ID == "" || pref.InitPoint == "" {
		return nil, fmt.Errorf("%w: preference without id or init_point", ErrInvalidResponse)
	}

	return &pref, nil
}

// GetPayment получает полное состояние платежа по его ID.
// Сырой ответ возвращается вторым значением и сохраняется для аудита.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*Payment, []byte, error) {
	body, status, err := c.do(ctx, http.MethodGet, "/v1/payments/"+paymentID, nil)
	if err != nil {
		return nil, nil, err
	}

	switch status {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, nil, ErrPaymentNotFound
	default:
		return nil, nil, c.asError(status, body)
	}

	var payment Payment
	if err := json.Unmarshal(body, &payment); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to decode payment: %v", ErrInvalidResponse, err)
	}

	return &payment, body, nil
}

// do выполняет запрос к провайдеру под circuit breaker
func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, int, error) {
	type result struct {
		body   []byte
		status int
	}

	res, err := c.breaker.Execute(func() (interface{}, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.opts.BaseURL+path, reader)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.opts.AccessToken)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
		}

		// 5xx считаем отказом провайдера, breaker должен их видеть
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: provider returned %d: %s", ErrInternal, resp.StatusCode, string(body))
		}

		return result{body: body, status: resp.StatusCode}, nil
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.Warn("MercadoPago: circuit breaker rejected %s %s", method, path)
			return nil, 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, 0, err
	}

	r := res.(result)
	return r.body, r.status, nil
}

// asError конвертирует неуспешный ответ провайдера в ошибку клиента
func (c *Client) asError(status int, body []byte) error {
	var provider errorResponse
	if err := json.Unmarshal(body, &provider); err == nil && provider.Message != "" {
		return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, status, provider.Message)
	}
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, status, string(body))
}
