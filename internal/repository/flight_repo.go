package repository

import (
	"context"

	"github.com/crazydog22/sistema-gerenciamento-voos/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *models.Flight) error
	Save(ctx context.Context, flight *models.Flight) error
	FindAll(ctx context.Context) ([]models.Flight, error)
	FindByID(ctx context.Context, id uint) (*models.Flight, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Flight, error)
	Delete(ctx context.Context, id uint) error

	SeatClaimed(ctx context.Context, tx *gorm.DB, flightID uint, seat string) (bool, error)
	InsertSeatClaim(ctx context.Context, tx *gorm.DB, flightID uint, seat string) error
	DeleteSeatClaim(ctx context.Context, tx *gorm.DB, flightID uint, seat string) (bool, error)
	AdjustAvailableSeats(ctx context.Context, tx *gorm.DB, flightID uint, delta int) error
	ListSeatClaims(ctx context.Context, flightID uint) ([]string, error)
	CountSeatClaims(ctx context.Context, tx *gorm.DB, flightID uint) (int64, error)

	GetDB() *gorm.DB
}

type flightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) FlightRepository {
	return &flightRepository{db: db}
}

func (r *flightRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *flightRepository) Create(ctx context.Context, flight *models.Flight) error {
	return r.db.WithContext(ctx).Create(flight).Error
}

func (r *flightRepository) Save(ctx context.Context, flight *models.Flight) error {
	return r.db.WithContext(ctx).Save(flight).Error
}

func (r *flightRepository) FindAll(ctx context.Context) ([]models.Flight, error) {
	var flights []models.Flight
	if err := r.db.WithContext(ctx).Order("departure_date ASC").Find(&flights).Error; err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *flightRepository) FindByID(ctx context.Context, id uint) (*models.Flight, error) {
	var flight models.Flight
	if err := r.db.WithContext(ctx).First(&flight, id).Error; err != nil {
		return nil, err
	}
	return &flight, nil
}

// FindByIDForUpdate acquires a row-level lock on the flight within the given
// transaction. Every claim and release for a flight funnels through this lock.
func (r *flightRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Flight, error) {
	var flight models.Flight
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&flight, id).Error; err != nil {
		return nil, err
	}
	return &flight, nil
}

// Delete removes a flight and its seat claims. Reservations referencing the
// flight are intentionally left in place.
func (r *flightRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("flight_id = ?", id).Delete(&models.SeatClaim{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Flight{}, id).Error
	})
}

func (r *flightRepository) SeatClaimed(ctx context.Context, tx *gorm.DB, flightID uint, seat string) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.SeatClaim{}).
		Where("flight_id = ? AND seat_number = ?", flightID, seat).
		Count(&count).Error
	return count > 0, err
}

func (r *flightRepository) InsertSeatClaim(ctx context.Context, tx *gorm.DB, flightID uint, seat string) error {
	return tx.WithContext(ctx).Create(&models.SeatClaim{FlightID: flightID, SeatNumber: seat}).Error
}

func (r *flightRepository) DeleteSeatClaim(ctx context.Context, tx *gorm.DB, flightID uint, seat string) (bool, error) {
	res := tx.WithContext(ctx).
		Where("flight_id = ? AND seat_number = ?", flightID, seat).
		Delete(&models.SeatClaim{})
	return res.RowsAffected > 0, res.Error
}

func (r *flightRepository) AdjustAvailableSeats(ctx context.Context, tx *gorm.DB, flightID uint, delta int) error {
	return tx.WithContext(ctx).
		Model(&models.Flight{}).
		Where("id = ?", flightID).
		Update("available_seats", gorm.Expr("LEAST(total_seats, available_seats + ?)", delta)).Error
}

func (r *flightRepository) ListSeatClaims(ctx context.Context, flightID uint) ([]string, error) {
	var seats []string
	err := r.db.WithContext(ctx).
		Model(&models.SeatClaim{}).
		Where("flight_id = ?", flightID).
		Order("seat_number ASC").
		Pluck("seat_number", &seats).Error
	return seats, err
}

func (r *flightRepository) CountSeatClaims(ctx context.Context, tx *gorm.DB, flightID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.SeatClaim{}).
		Where("flight_id = ?", flightID).
		Count(&count).Error
	return count, err
}
