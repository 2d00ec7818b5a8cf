package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/crazydog22/sistema-gerenciamento-voos/internal/models"
	"github.com/crazydog22/sistema-gerenciamento-voos/internal/notifier"
	"github.com/crazydog22/sistema-gerenciamento-voos/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrReservationNotFound      = errors.New("reservation not found")
	ErrReservationCodeExhausted = errors.New("could not generate a unique reservation code")
)

// PassengerInfo carries the passenger fields of a booking intent.
type PassengerInfo struct {
	Name     string
	Email    string
	Document string
}

// ReservationService is the single entry point for creating and cancelling
// reservations. It owns the claim/release protocol for a flight+seat pair.
type ReservationService interface {
	CreateReservation(ctx context.Context, flightID uint, passenger PassengerInfo, seat string) (*models.Reservation, error)
	CancelReservation(ctx context.Context, id uint) (*models.Reservation, error)
	GetReservation(ctx context.Context, id uint) (*models.Reservation, error)
	GetReservationByCode(ctx context.Context, code string) (*models.Reservation, error)
	ListReservationsForFlight(ctx context.Context, flightID uint) ([]models.Reservation, error)
}

type reservationService struct {
	ledger          FlightLedger
	reservationRepo repository.ReservationRepository
	flightRepo      repository.FlightRepository
	notifier        notifier.Notifier
}

func NewReservationService(
	ledger FlightLedger,
	reservationRepo repository.ReservationRepository,
	flightRepo repository.FlightRepository,
	n notifier.Notifier,
) ReservationService {
	return &reservationService{
		ledger:          ledger,
		reservationRepo: reservationRepo,
		flightRepo:      flightRepo,
		notifier:        n,
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, flightID uint, passenger PassengerInfo, seat string) (*models.Reservation, error) {
	flight, err := s.flightRepo.FindByID(ctx, flightID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, fmt.Errorf("resolve flight: %w", err)
	}

	// Fast path before attempting the claim; the ledger re-checks under lock.
	if flight.AvailableSeats <= 0 {
		return nil, ErrNoSeatsAvailable
	}

	// Whichever caller's claim lands first wins; everyone else gets
	// ErrSeatTaken. No retry, no seat reassignment.
	if err := s.ledger.ClaimSeat(ctx, flightID, seat); err != nil {
		return nil, err
	}

	code, err := s.uniqueCode(ctx)
	if err != nil {
		s.compensateClaim(ctx, flightID, seat)
		return nil, err
	}

	reservation := &models.Reservation{
		FlightID:          flightID,
		PassengerName:     passenger.Name,
		PassengerEmail:    passenger.Email,
		PassengerDocument: passenger.Document,
		SeatNumber:        seat,
		Status:            models.ReservationConfirmed,
		ReservationCode:   code,
	}

	if err := s.reservationRepo.Create(ctx, s.reservationRepo.GetDB(), reservation); err != nil {
		// The seat was claimed but the record did not land: release it so the
		// flight is not left with a ghost hold.
		s.compensateClaim(ctx, flightID, seat)
		return nil, fmt.Errorf("persist reservation: %w", err)
	}

	s.notifyAsync(notifier.TypeConfirmation, reservation, flight)

	return reservation, nil
}

func (s *reservationService) CancelReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("resolve reservation: %w", err)
	}

	// Cancelling twice must not release the seat twice.
	if reservation.Status == models.ReservationCancelled {
		return reservation, nil
	}

	// Release before the status write so a storage failure surfaces while the
	// cancel can still be retried. A deleted flight or an already-freed claim
	// must not trap the cancellation.
	if err := s.ledger.ReleaseSeat(ctx, reservation.FlightID, reservation.SeatNumber); err != nil {
		if !errors.Is(err, ErrFlightNotFound) && !errors.Is(err, ErrSeatNotReserved) {
			return nil, fmt.Errorf("release seat: %w", err)
		}
		log.Printf("[Reservations] seat release skipped for %s (flight %d, seat %s): %v",
			reservation.ReservationCode, reservation.FlightID, reservation.SeatNumber, err)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, s.reservationRepo.GetDB(), id, models.ReservationCancelled); err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}
	reservation.Status = models.ReservationCancelled

	if flight, err := s.flightRepo.FindByID(ctx, reservation.FlightID); err == nil {
		s.notifyAsync(notifier.TypeCancellation, reservation, flight)
	}

	return reservation, nil
}

func (s *reservationService) GetReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return reservation, nil
}

func (s *reservationService) GetReservationByCode(ctx context.Context, code string) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return reservation, nil
}

func (s *reservationService) ListReservationsForFlight(ctx context.Context, flightID uint) ([]models.Reservation, error) {
	return s.reservationRepo.FindByFlightID(ctx, flightID)
}

// uniqueCode generates a reservation code, regenerating on collision. The
// unique index on reservation_code remains the final authority.
func (s *reservationService) uniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := newReservationCode(time.Now())
		exists, err := s.reservationRepo.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check reservation code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrReservationCodeExhausted
}

func (s *reservationService) compensateClaim(ctx context.Context, flightID uint, seat string) {
	if err := s.ledger.ReleaseSeat(ctx, flightID, seat); err != nil {
		log.Printf("[Reservations] compensating release failed (flight %d, seat %s): %v", flightID, seat, err)
	}
}

// notifyAsync fires the notification off the critical path. Failures are
// logged and dropped, they never reach the caller.
func (s *reservationService) notifyAsync(msgType string, reservation *models.Reservation, flight *models.Flight) {
	if s.notifier == nil {
		return
	}
	res := *reservation
	fl := *flight
	go func() {
		var ok bool
		switch msgType {
		case notifier.TypeCancellation:
			ok = s.notifier.SendReservationCancellation(&res, &fl)
		default:
			ok = s.notifier.SendReservationConfirmation(&res, &fl)
		}
		if !ok {
			log.Printf("[Reservations] %s notification dropped for %s", msgType, res.ReservationCode)
		}
	}()
}
