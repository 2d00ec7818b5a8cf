package models

import (
	"time"

	"gorm.io/gorm"
)

type FlightStatus string

const (
	FlightScheduled FlightStatus = "scheduled"
	FlightDelayed   FlightStatus = "delayed"
	FlightCancelled FlightStatus = "cancelled"
	FlightCompleted FlightStatus = "completed"
)

// WeatherInfo is a best-effort snapshot of the weather at the destination,
// embedded in the flight row.
type WeatherInfo struct {
	Temperature *float64   `json:"temperature,omitempty"`
	Conditions  string     `json:"conditions,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type Flight struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	FlightNumber   string       `gorm:"uniqueIndex;not null" json:"flight_number"`
	Origin         string       `gorm:"not null" json:"origin"`
	Destination    string       `gorm:"not null" json:"destination"`
	DepartureDate  time.Time    `gorm:"not null" json:"departure_date"`
	TotalSeats     int          `gorm:"not null" json:"total_seats"`
	AvailableSeats int          `gorm:"not null" json:"available_seats"`
	Price          float64      `gorm:"not null" json:"price"`
	Status         FlightStatus `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`
	Weather        WeatherInfo  `gorm:"embedded;embeddedPrefix:weather_" json:"weather"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`

	ReservedSeats []SeatClaim `gorm:"foreignKey:FlightID" json:"-"`
}

// SeatClaim marks a single seat on a flight as taken. The unique
// (flight_id, seat_number) index is what makes a claim first-writer-wins.
type SeatClaim struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	FlightID   uint      `gorm:"not null;uniqueIndex:idx_seat_claim,priority:1" json:"-"`
	SeatNumber string    `gorm:"not null;uniqueIndex:idx_seat_claim,priority:2" json:"seat_number"`
	CreatedAt  time.Time `json:"-"`
}

// BeforeSave clamps available_seats into [0, total_seats]. The ledger never
// relies on this, it only guards direct flight updates.
func (f *Flight) BeforeSave(_ *gorm.DB) error {
	if f.AvailableSeats > f.TotalSeats {
		f.AvailableSeats = f.TotalSeats
	}
	if f.AvailableSeats < 0 {
		f.AvailableSeats = 0
	}
	return nil
}
