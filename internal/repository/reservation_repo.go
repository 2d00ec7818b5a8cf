package repository

import (
	"context"

	"github.com/crazydog22/sistema-gerenciamento-voos/internal/models"
	"gorm.io/gorm"
)

type ReservationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error
	FindByID(ctx context.Context, id uint) (*models.Reservation, error)
	FindByCode(ctx context.Context, code string) (*models.Reservation, error)
	FindByFlightID(ctx context.Context, flightID uint) ([]models.Reservation, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.ReservationStatus) error
	GetDB() *gorm.DB
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *reservationRepository) Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error {
	return tx.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.WithContext(ctx).First(&reservation, id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) FindByCode(ctx context.Context, code string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.WithContext(ctx).
		Where("reservation_code = ?", code).
		First(&reservation).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) FindByFlightID(ctx context.Context, flightID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.WithContext(ctx).
		Where("flight_id = ?", flightID).
		Order("created_at ASC, id ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("reservation_code = ?", code).
		Count(&count).Error
	return count > 0, err
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.ReservationStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", id).
		Update("status", status).Error
}
