package mailer

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/crazydog22/sistema-gerenciamento-voos/internal/notifier"
)

// Consumer drains the notification queue and turns messages into e-mails.
type Consumer struct {
	mailer *Mailer
}

func NewConsumer(mailer *Mailer) *Consumer {
	return &Consumer{mailer: mailer}
}

func (c *Consumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			c.handleMessage(msg)
		}
		log.Println("[Mailer] channel closed, stopping consumer")
	}()
}

func (c *Consumer) handleMessage(msg amqp.Delivery) {
	var notification notifier.Message
	if err := json.Unmarshal(msg.Body, &notification); err != nil {
		log.Printf("[Mailer] failed to unmarshal: %v", err)
		msg.Nack(false, false)
		return
	}

	var err error
	switch notification.Type {
	case notifier.TypeCancellation:
		err = c.mailer.SendCancellation(&notification.Reservation, &notification.Flight)
	default:
		err = c.mailer.SendConfirmation(&notification.Reservation, &notification.Flight)
	}

	if err != nil {
		// Notifications are best effort: log and drop, never requeue forever
		log.Printf("[Mailer] failed to send %s for %s: %v",
			notification.Type, notification.Reservation.ReservationCode, err)
		msg.Nack(false, false)
		return
	}

	log.Printf("[Mailer] sent %s to %s", notification.Type, notification.Reservation.PassengerEmail)
	msg.Ack(false)
}
