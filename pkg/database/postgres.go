package database

import (
	"log"

	"github.com/crazydog22/sistema-gerenciamento-voos/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Reservations keep their flight_id after the flight is deleted, so no
		// FK constraints are generated for associations.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Flight{},
		&models.SeatClaim{},
		&models.Reservation{},
		&models.User{},
		&models.Token{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial unique index: at most one non-cancelled reservation per seat.
	// Final authority behind the ledger's row-locked claim.
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_reservation_active_seat
		ON reservations (flight_id, seat_number)
		WHERE status <> 'cancelled'
	`)

	return db
}
