package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/crazydog22/sistema-gerenciamento-voos/internal/models"
	"github.com/crazydog22/sistema-gerenciamento-voos/internal/repository"
	"gorm.io/gorm"
)

var ErrTotalSeatsBelowClaims = errors.New("total_seats cannot drop below the number of reserved seats")

// WeatherLookup is the outbound weather dependency of the flight service.
type WeatherLookup interface {
	CurrentForCity(ctx context.Context, city string) (*models.WeatherInfo, error)
}

// FlightUpdate lists the mutable flight fields. Seat inventory is not here:
// available_seats and the claimed-seat set only move through the ledger, and
// a total_seats change recomputes availability under the flight lock.
type FlightUpdate struct {
	FlightNumber  *string
	Origin        *string
	Destination   *string
	DepartureDate *time.Time
	TotalSeats    *int
	Price         *float64
	Status        *models.FlightStatus
}

type FlightService interface {
	CreateFlight(ctx context.Context, flight *models.Flight) error
	GetFlight(ctx context.Context, id uint) (*models.Flight, error)
	ListFlights(ctx context.Context) ([]models.Flight, error)
	UpdateFlight(ctx context.Context, id uint, update FlightUpdate) (*models.Flight, error)
	DeleteFlight(ctx context.Context, id uint) error
	ReservedSeats(ctx context.Context, flightID uint) ([]string, error)
}

type flightService struct {
	flightRepo repository.FlightRepository
	weather    WeatherLookup
}

func NewFlightService(flightRepo repository.FlightRepository, weather WeatherLookup) FlightService {
	return &flightService{flightRepo: flightRepo, weather: weather}
}

func (s *flightService) CreateFlight(ctx context.Context, flight *models.Flight) error {
	if flight.AvailableSeats == 0 {
		flight.AvailableSeats = flight.TotalSeats
	}

	s.enrichWeather(ctx, flight)

	if err := s.flightRepo.Create(ctx, flight); err != nil {
		return fmt.Errorf("create flight: %w", err)
	}
	return nil
}

func (s *flightService) GetFlight(ctx context.Context, id uint) (*models.Flight, error) {
	flight, err := s.flightRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return flight, nil
}

func (s *flightService) ListFlights(ctx context.Context) ([]models.Flight, error) {
	return s.flightRepo.FindAll(ctx)
}

// UpdateFlight applies field changes under the same row lock the ledger uses,
// so a flight update can never clobber a concurrent seat claim.
func (s *flightService) UpdateFlight(ctx context.Context, id uint, update FlightUpdate) (*models.Flight, error) {
	var updated *models.Flight

	err := s.flightRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		flight, err := s.flightRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFlightNotFound
			}
			return err
		}

		destinationChanged := false

		if update.FlightNumber != nil {
			flight.FlightNumber = *update.FlightNumber
		}
		if update.Origin != nil {
			flight.Origin = *update.Origin
		}
		if update.Destination != nil && *update.Destination != flight.Destination {
			flight.Destination = *update.Destination
			destinationChanged = true
		}
		if update.DepartureDate != nil {
			flight.DepartureDate = *update.DepartureDate
		}
		if update.Price != nil {
			flight.Price = *update.Price
		}
		if update.Status != nil {
			flight.Status = *update.Status
		}
		if update.TotalSeats != nil {
			claimed, err := s.flightRepo.CountSeatClaims(ctx, tx, id)
			if err != nil {
				return err
			}
			// Seats already claimed cannot be taken away from passengers.
			if *update.TotalSeats < int(claimed) {
				return ErrTotalSeatsBelowClaims
			}
			flight.TotalSeats = *update.TotalSeats
			flight.AvailableSeats = flight.TotalSeats - int(claimed)
		}

		if destinationChanged {
			s.enrichWeather(ctx, flight)
		}

		if err := tx.Save(flight).Error; err != nil {
			return fmt.Errorf("update flight: %w", err)
		}
		updated = flight
		return nil
	})

	return updated, err
}

func (s *flightService) DeleteFlight(ctx context.Context, id uint) error {
	if _, err := s.flightRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFlightNotFound
		}
		return err
	}
	return s.flightRepo.Delete(ctx, id)
}

func (s *flightService) ReservedSeats(ctx context.Context, flightID uint) ([]string, error) {
	if _, err := s.flightRepo.FindByID(ctx, flightID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return s.flightRepo.ListSeatClaims(ctx, flightID)
}

// enrichWeather fills in the destination weather snapshot. Lookup failures
// never block a flight write.
func (s *flightService) enrichWeather(ctx context.Context, flight *models.Flight) {
	if s.weather == nil {
		return
	}
	info, err := s.weather.CurrentForCity(ctx, flight.Destination)
	if err != nil {
		log.Printf("[Flights] weather lookup failed for %s: %v", flight.Destination, err)
		return
	}
	flight.Weather = *info
}
