package service

import (
	"context"
	"errors"
	"strings"

	"github.com/crazydog22/sistema-gerenciamento-voos/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrFlightNotFound   = errors.New("flight not found")
	ErrSeatTaken        = errors.New("seat is already taken")
	ErrNoSeatsAvailable = errors.New("no seats available on this flight")
	ErrSeatNotReserved  = errors.New("seat is not reserved")
)

// FlightLedger owns the seat inventory of a flight: the set of claimed seats
// and the available-seat counter. Claim and release are the only mutations.
type FlightLedger interface {
	ClaimSeat(ctx context.Context, flightID uint, seat string) error
	ReleaseSeat(ctx context.Context, flightID uint, seat string) error
}

type flightLedger struct {
	flightRepo repository.FlightRepository
}

func NewFlightLedger(flightRepo repository.FlightRepository) FlightLedger {
	return &flightLedger{flightRepo: flightRepo}
}

// ClaimSeat marks a seat taken and decrements available_seats in one
// transaction. The row lock on the flight serializes concurrent claims for
// the same flight; the first claim to acquire it wins and all contenders for
// the same seat fail with ErrSeatTaken.
func (l *flightLedger) ClaimSeat(ctx context.Context, flightID uint, seat string) error {
	return l.flightRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		flight, err := l.flightRepo.FindByIDForUpdate(ctx, tx, flightID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFlightNotFound
			}
			return err
		}

		if flight.AvailableSeats <= 0 {
			return ErrNoSeatsAvailable
		}

		taken, err := l.flightRepo.SeatClaimed(ctx, tx, flightID, seat)
		if err != nil {
			return err
		}
		if taken {
			return ErrSeatTaken
		}

		if err := l.flightRepo.InsertSeatClaim(ctx, tx, flightID, seat); err != nil {
			// The unique (flight_id, seat_number) index backstops the lock: a
			// racer that slipped past SeatClaimed still loses here.
			if isUniqueViolation(err) {
				return ErrSeatTaken
			}
			return err
		}
		return l.flightRepo.AdjustAvailableSeats(ctx, tx, flightID, -1)
	})
}

// Postgres surfaces unique-index violations through gorm with this phrasing.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}

// ReleaseSeat frees a claimed seat and increments available_seats, atomically
// with the same per-flight lock as ClaimSeat.
func (l *flightLedger) ReleaseSeat(ctx context.Context, flightID uint, seat string) error {
	return l.flightRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := l.flightRepo.FindByIDForUpdate(ctx, tx, flightID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFlightNotFound
			}
			return err
		}

		removed, err := l.flightRepo.DeleteSeatClaim(ctx, tx, flightID, seat)
		if err != nil {
			return err
		}
		if !removed {
			return ErrSeatNotReserved
		}

		return l.flightRepo.AdjustAvailableSeats(ctx, tx, flightID, 1)
	})
}
