package models

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	FlightID          uint              `gorm:"not null;index" json:"flight_id"`
	PassengerName     string            `gorm:"not null" json:"passenger_name"`
	PassengerEmail    string            `gorm:"not null" json:"passenger_email"`
	PassengerDocument string            `gorm:"not null" json:"passenger_document"`
	SeatNumber        string            `gorm:"not null" json:"seat_number"`
	Status            ReservationStatus `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	ReservationCode   string            `gorm:"uniqueIndex;not null" json:"reservation_code"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`

	// Weak reference: the reservation outlives its flight, so no FK constraint
	// is created (see pkg/database).
	Flight *Flight `gorm:"foreignKey:FlightID" json:"flight,omitempty"`
}
