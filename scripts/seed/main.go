// Seed populates the database with sample flights for local development.
package main

import (
	"log"
	"time"

	"github.com/crazydog22/sistema-gerenciamento-voos/config"
	"github.com/crazydog22/sistema-gerenciamento-voos/internal/models"
	"github.com/crazydog22/sistema-gerenciamento-voos/pkg/database"
)

func main() {
	cfg := config.Load()
	db := database.NewPostgresDB(cfg.DSN())

	db.Exec("DELETE FROM seat_claims")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM flights")
	log.Println("cleared flights, seat claims and reservations")

	flights := []models.Flight{
		{
			FlightNumber:   "JJ1234",
			Origin:         "São Paulo",
			Destination:    "Rio de Janeiro",
			DepartureDate:  time.Date(2026, 10, 10, 10, 0, 0, 0, time.UTC),
			TotalSeats:     180,
			AvailableSeats: 180,
			Price:          350.00,
			Status:         models.FlightScheduled,
		},
		{
			FlightNumber:   "AD4567",
			Origin:         "Rio de Janeiro",
			Destination:    "Salvador",
			DepartureDate:  time.Date(2026, 10, 11, 14, 30, 0, 0, time.UTC),
			TotalSeats:     150,
			AvailableSeats: 150,
			Price:          500.00,
			Status:         models.FlightScheduled,
		},
		{
			FlightNumber:   "LA7890",
			Origin:         "Brasília",
			Destination:    "Fortaleza",
			DepartureDate:  time.Date(2026, 10, 12, 8, 15, 0, 0, time.UTC),
			TotalSeats:     200,
			AvailableSeats: 200,
			Price:          620.00,
			Status:         models.FlightScheduled,
		},
		{
			FlightNumber:   "G31122",
			Origin:         "Porto Alegre",
			Destination:    "Curitiba",
			DepartureDate:  time.Date(2026, 10, 13, 19, 45, 0, 0, time.UTC),
			TotalSeats:     120,
			AvailableSeats: 120,
			Price:          280.00,
			Status:         models.FlightScheduled,
		},
	}

	for i := range flights {
		if err := db.Create(&flights[i]).Error; err != nil {
			log.Fatalf("failed to seed flight %s: %v", flights[i].FlightNumber, err)
		}
		log.Printf("seeded flight %s (%s -> %s)", flights[i].FlightNumber, flights[i].Origin, flights[i].Destination)
	}

	log.Printf("done, %d flights seeded", len(flights))
}
