package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/crazydog22/sistema-gerenciamento-voos/internal/models"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer renders and sends passenger e-mails over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string

	confirmationTmpl *template.Template
	cancellationTmpl *template.Template
}

func New(cfg Config) *Mailer {
	return &Mailer{
		dialer:           gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:             cfg.From,
		confirmationTmpl: template.Must(template.New("confirmation").Parse(confirmationHTML)),
		cancellationTmpl: template.Must(template.New("cancellation").Parse(cancellationHTML)),
	}
}

func (m *Mailer) SendConfirmation(reservation *models.Reservation, flight *models.Flight) error {
	subject := fmt.Sprintf("Reservation Confirmed - Flight %s", flight.FlightNumber)
	return m.send(reservation.PassengerEmail, subject, m.confirmationTmpl, reservation, flight)
}

func (m *Mailer) SendCancellation(reservation *models.Reservation, flight *models.Flight) error {
	subject := fmt.Sprintf("Reservation Cancelled - Flight %s", flight.FlightNumber)
	return m.send(reservation.PassengerEmail, subject, m.cancellationTmpl, reservation, flight)
}

func (m *Mailer) send(to, subject string, tmpl *template.Template, reservation *models.Reservation, flight *models.Flight) error {
	var body bytes.Buffer
	data := struct {
		Reservation *models.Reservation
		Flight      *models.Flight
	}{reservation, flight}
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

const confirmationHTML = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h1 style="color: #2c3e50; text-align: center;">Reservation Confirmed</h1>

    <div style="background-color: #f8f9fa; padding: 20px; border-radius: 5px; margin: 20px 0;">
        <p style="font-size: 16px; color: #333;">Dear {{.Reservation.PassengerName}},</p>
        <p style="font-size: 16px; color: #333;">Your reservation is confirmed. Keep your reservation code handy for check-in.</p>
        <p><strong>Reservation Code:</strong> {{.Reservation.ReservationCode}}</p>
    </div>

    <div style="background-color: #f8f9fa; padding: 20px; border-radius: 5px;">
        <h2 style="color: #2c3e50;">Trip Details</h2>
        <p><strong>Flight:</strong> {{.Flight.FlightNumber}}</p>
        <p><strong>Origin:</strong> {{.Flight.Origin}}</p>
        <p><strong>Destination:</strong> {{.Flight.Destination}}</p>
        <p><strong>Departure:</strong> {{.Flight.DepartureDate.Format "02 Jan 2006 15:04 MST"}}</p>
        <p><strong>Seat:</strong> {{.Reservation.SeatNumber}}</p>
    </div>

    <div style="text-align: center; margin-top: 20px; color: #7f8c8d;">
        <p>Have a great trip!</p>
    </div>
</div>
`

const cancellationHTML = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h1 style="color: #2c3e50; text-align: center;">Reservation Cancelled</h1>

    <div style="background-color: #f8f9fa; padding: 20px; border-radius: 5px; margin: 20px 0;">
        <h2 style="color: #e74c3c;">Your reservation was cancelled</h2>
        <p><strong>Reservation Code:</strong> {{.Reservation.ReservationCode}}</p>
        <p><strong>Flight:</strong> {{.Flight.FlightNumber}}</p>
        <p><strong>Departure:</strong> {{.Flight.DepartureDate.Format "02 Jan 2006 15:04 MST"}}</p>
    </div>

    <div style="text-align: center; margin-top: 20px; color: #7f8c8d;">
        <p>We hope to serve you again soon.</p>
    </div>
</div>
`
