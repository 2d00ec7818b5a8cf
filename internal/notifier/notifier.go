package notifier

import (
	"log"

	"github.com/crazydog22/sistema-gerenciamento-voos/internal/models"
	"github.com/crazydog22/sistema-gerenciamento-voos/pkg/rabbitmq"
)

const (
	TypeConfirmation = "reservation.confirmed"
	TypeCancellation = "reservation.cancelled"
)

// Message is the payload handed to the mailer queue.
type Message struct {
	Type        string             `json:"type"`
	Reservation models.Reservation `json:"reservation"`
	Flight      models.Flight      `json:"flight"`
}

// Notifier delivers passenger notifications. Best effort: a false return
// means the notification was dropped, never that the reservation failed.
type Notifier interface {
	SendReservationConfirmation(reservation *models.Reservation, flight *models.Flight) bool
	SendReservationCancellation(reservation *models.Reservation, flight *models.Flight) bool
}

// AMQPNotifier publishes notification messages to the notifications exchange;
// the mailer consumer picks them up and sends the actual e-mail.
type AMQPNotifier struct {
	publisher *rabbitmq.Publisher
}

func NewAMQPNotifier(publisher *rabbitmq.Publisher) *AMQPNotifier {
	return &AMQPNotifier{publisher: publisher}
}

func (n *AMQPNotifier) SendReservationConfirmation(reservation *models.Reservation, flight *models.Flight) bool {
	return n.publish(TypeConfirmation, reservation, flight)
}

func (n *AMQPNotifier) SendReservationCancellation(reservation *models.Reservation, flight *models.Flight) bool {
	return n.publish(TypeCancellation, reservation, flight)
}

func (n *AMQPNotifier) publish(msgType string, reservation *models.Reservation, flight *models.Flight) bool {
	msg := Message{Type: msgType, Reservation: *reservation, Flight: *flight}
	if err := n.publisher.Publish(msgType, msg); err != nil {
		log.Printf("[Notifier] failed to publish %s for %s: %v", msgType, reservation.ReservationCode, err)
		return false
	}
	return true
}

// Noop is used in tests and when messaging is disabled.
type Noop struct{}

func (Noop) SendReservationConfirmation(*models.Reservation, *models.Flight) bool { return true }
func (Noop) SendReservationCancellation(*models.Reservation, *models.Flight) bool { return true }
