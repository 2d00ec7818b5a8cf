package dto

import (
	"time"

	"github.com/crazydog22/sistema-gerenciamento-voos/internal/models"
)

type CreateFlightRequest struct {
	FlightNumber  string    `json:"flight_number"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureDate time.Time `json:"departure_date"`
	TotalSeats    int       `json:"total_seats"`
	Price         float64   `json:"price"`
	Status        string    `json:"status"`
}

type UpdateFlightRequest struct {
	FlightNumber  *string    `json:"flight_number"`
	Origin        *string    `json:"origin"`
	Destination   *string    `json:"destination"`
	DepartureDate *time.Time `json:"departure_date"`
	TotalSeats    *int       `json:"total_seats"`
	Price         *float64   `json:"price"`
	Status        *string    `json:"status"`
}

type CreateReservationRequest struct {
	PassengerName     string `json:"passenger_name"`
	PassengerEmail    string `json:"passenger_email"`
	PassengerDocument string `json:"passenger_document"`
	SeatNumber        string `json:"seat_number"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ValidStatus reports whether s names a flight status.
func ValidStatus(s string) bool {
	switch models.FlightStatus(s) {
	case models.FlightScheduled, models.FlightDelayed, models.FlightCancelled, models.FlightCompleted:
		return true
	}
	return false
}
