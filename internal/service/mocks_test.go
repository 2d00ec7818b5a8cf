package service

import (
	"context"

	"github.com/crazydog22/sistema-gerenciamento-voos/internal/models"
	"gorm.io/gorm"
)

// --- Mock FlightLedger ---

type mockLedger struct {
	claimFn   func(ctx context.Context, flightID uint, seat string) error
	releaseFn func(ctx context.Context, flightID uint, seat string) error

	claims   []string
	releases []string
}

func (m *mockLedger) ClaimSeat(ctx context.Context, flightID uint, seat string) error {
	m.claims = append(m.claims, seat)
	if m.claimFn != nil {
		return m.claimFn(ctx, flightID, seat)
	}
	return nil
}

func (m *mockLedger) ReleaseSeat(ctx context.Context, flightID uint, seat string) error {
	m.releases = append(m.releases, seat)
	if m.releaseFn != nil {
		return m.releaseFn(ctx, flightID, seat)
	}
	return nil
}

// --- Mock FlightRepository ---

type mockFlightRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*models.Flight, error)
	createFn   func(ctx context.Context, flight *models.Flight) error
	findAllFn  func(ctx context.Context) ([]models.Flight, error)
	deleteFn   func(ctx context.Context, id uint) error
	listFn     func(ctx context.Context, flightID uint) ([]string, error)
}

func (m *mockFlightRepo) Create(ctx context.Context, flight *models.Flight) error {
	if m.createFn != nil {
		return m.createFn(ctx, flight)
	}
	flight.ID = 1
	return nil
}
func (m *mockFlightRepo) Save(ctx context.Context, flight *models.Flight) error { return nil }
func (m *mockFlightRepo) FindAll(ctx context.Context) ([]models.Flight, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}
func (m *mockFlightRepo) FindByID(ctx context.Context, id uint) (*models.Flight, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockFlightRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Flight, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockFlightRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}
func (m *mockFlightRepo) SeatClaimed(ctx context.Context, tx *gorm.DB, flightID uint, seat string) (bool, error) {
	return false, nil
}
func (m *mockFlightRepo) InsertSeatClaim(ctx context.Context, tx *gorm.DB, flightID uint, seat string) error {
	return nil
}
func (m *mockFlightRepo) DeleteSeatClaim(ctx context.Context, tx *gorm.DB, flightID uint, seat string) (bool, error) {
	return true, nil
}
func (m *mockFlightRepo) AdjustAvailableSeats(ctx context.Context, tx *gorm.DB, flightID uint, delta int) error {
	return nil
}
func (m *mockFlightRepo) ListSeatClaims(ctx context.Context, flightID uint) ([]string, error) {
	if m.listFn != nil {
		return m.listFn(ctx, flightID)
	}
	return nil, nil
}
func (m *mockFlightRepo) CountSeatClaims(ctx context.Context, tx *gorm.DB, flightID uint) (int64, error) {
	return 0, nil
}
func (m *mockFlightRepo) GetDB() *gorm.DB { return nil }

// --- Mock ReservationRepository ---

type mockReservationRepo struct {
	createFn       func(ctx context.Context, tx *gorm.DB, r *models.Reservation) error
	findByIDFn     func(ctx context.Context, id uint) (*models.Reservation, error)
	findByCodeFn   func(ctx context.Context, code string) (*models.Reservation, error)
	findByFlightFn func(ctx context.Context, flightID uint) ([]models.Reservation, error)
	codeExistsFn   func(ctx context.Context, code string) (bool, error)
	updateStatusFn func(ctx context.Context, tx *gorm.DB, id uint, status models.ReservationStatus) error
}

func (m *mockReservationRepo) Create(ctx context.Context, tx *gorm.DB, r *models.Reservation) error {
	if m.createFn != nil {
		return m.createFn(ctx, tx, r)
	}
	r.ID = 1
	return nil
}
func (m *mockReservationRepo) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockReservationRepo) FindByCode(ctx context.Context, code string) (*models.Reservation, error) {
	return m.findByCodeFn(ctx, code)
}
func (m *mockReservationRepo) FindByFlightID(ctx context.Context, flightID uint) ([]models.Reservation, error) {
	return m.findByFlightFn(ctx, flightID)
}
func (m *mockReservationRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	if m.codeExistsFn != nil {
		return m.codeExistsFn(ctx, code)
	}
	return false, nil
}
func (m *mockReservationRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.ReservationStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, tx, id, status)
	}
	return nil
}
func (m *mockReservationRepo) GetDB() *gorm.DB { return nil }
