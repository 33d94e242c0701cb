package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client отправляет письма гостям через SMTP.
// Отправка best-effort: ошибки логируются и не влияют на основной поток.
type Client struct {
	dialer *gomail.Dialer
	from   string
	log    Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(host string, port int, user, password, from string, log Logger) *Client {
	return &Client{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
		log:    log,
	}
}

// SendReservationConfirmation отправляет гостю подтверждение брони.
// Ошибка возвращается для логирования, вызывающая сторона её не пробрасывает.
func (c *Client) SendReservationConfirmation(res domain.Reservation, roomTitle string) error {
	nights := int(res.CheckOut.Sub(res.CheckIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", c.from)
	msg.SetHeader("To", res.CustomerEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Confirmación de reserva %s", res.Code))
	msg.SetBody("text/html", c.confirmationBody(res, roomTitle, nights))

	if err := c.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mailer: SendReservationConfirmation - failed to send to %s: %w", res.CustomerEmail, err)
	}

	c.log.Info("Mailer: confirmation %s sent to %s", res.Code, res.CustomerEmail)
	return nil
}

func (c *Client) confirmationBody(res domain.Reservation, roomTitle string, nights int) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2>¡Gracias por tu reserva, %s!</h2>
			<p>Tu reserva fue registrada con éxito. Estos son los detalles:</p>
			<table style="width: 100%%; border-collapse: collapse;">
				<tr><td style="padding: 6px; font-weight: bold;">Código</td><td style="padding: 6px;">%s</td></tr>
				<tr><td style="padding: 6px; font-weight: bold;">Habitación</td><td style="padding: 6px;">%s</td></tr>
				<tr><td style="padding: 6px; font-weight: bold;">Check-in</td><td style="padding: 6px;">%s</td></tr>
				<tr><td style="padding: 6px; font-weight: bold;">Check-out</td><td style="padding: 6px;">%s</td></tr>
				<tr><td style="padding: 6px; font-weight: bold;">Noches</td><td style="padding: 6px;">%d</td></tr>
				<tr><td style="padding: 6px; font-weight: bold;">Huéspedes</td><td style="padding: 6px;">%d adultos, %d niños</td></tr>
				<tr><td style="padding: 6px; font-weight: bold;">Total</td><td style="padding: 6px;">$%.2f</td></tr>
			</table>
			<p>Presentá el código <b>%s</b> al momento del check-in.</p>
			<p>¡Te esperamos!</p>
		</div>`,
		res.CustomerName,
		res.Code,
		roomTitle,
		res.CheckIn.Format(domain.DateFormat),
		res.CheckOut.Format(domain.DateFormat),
		nights,
		res.Adults,
		res.Children,
		res.TotalPrice,
		res.Code,
	)
}
