package dto

import (
	"time"

	"github.com/crazydog22/sistema-gerenciamento-voos/internal/models"
	"github.com/crazydog22/sistema-gerenciamento-voos/internal/service"
)

type FlightResponse struct {
	ID             uint                `json:"id"`
	FlightNumber   string              `json:"flight_number"`
	Origin         string              `json:"origin"`
	Destination    string              `json:"destination"`
	DepartureDate  time.Time           `json:"departure_date"`
	TotalSeats     int                 `json:"total_seats"`
	AvailableSeats int                 `json:"available_seats"`
	Price          float64             `json:"price"`
	Status         models.FlightStatus `json:"status"`
	ReservedSeats  []string            `json:"reserved_seats,omitempty"`
	Weather        *models.WeatherInfo `json:"weather,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

type ReservationResponse struct {
	ID                uint                     `json:"id"`
	FlightID          uint                     `json:"flight_id"`
	PassengerName     string                   `json:"passenger_name"`
	PassengerEmail    string                   `json:"passenger_email"`
	PassengerDocument string                   `json:"passenger_document"`
	SeatNumber        string                   `json:"seat_number"`
	Status            models.ReservationStatus `json:"status"`
	ReservationCode   string                   `json:"reservation_code"`
	CreatedAt         time.Time                `json:"created_at"`
}

type UserResponse struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

type AuthResponse struct {
	User   UserResponse        `json:"user"`
	Tokens *service.AuthTokens `json:"tokens"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func ToFlightResponse(f *models.Flight, reservedSeats []string) FlightResponse {
	resp := FlightResponse{
		ID:             f.ID,
		FlightNumber:   f.FlightNumber,
		Origin:         f.Origin,
		Destination:    f.Destination,
		DepartureDate:  f.DepartureDate,
		TotalSeats:     f.TotalSeats,
		AvailableSeats: f.AvailableSeats,
		Price:          f.Price,
		Status:         f.Status,
		ReservedSeats:  reservedSeats,
		CreatedAt:      f.CreatedAt,
	}
	if f.Weather.UpdatedAt != nil {
		w := f.Weather
		resp.Weather = &w
	}
	return resp
}

func ToReservationResponse(r *models.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:                r.ID,
		FlightID:          r.FlightID,
		PassengerName:     r.PassengerName,
		PassengerEmail:    r.PassengerEmail,
		PassengerDocument: r.PassengerDocument,
		SeatNumber:        r.SeatNumber,
		Status:            r.Status,
		ReservationCode:   r.ReservationCode,
		CreatedAt:         r.CreatedAt,
	}
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
