package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"luminavenues/internal/catalog"
	"luminavenues/internal/config"
	"luminavenues/internal/database"
	"luminavenues/internal/domain"
	"luminavenues/internal/repository"
)

// Seeds the booking store with a few demo records so the bookings view has
// data out of the box. The venue catalog itself is static and needs no
// seeding.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	venues := catalog.NewSeeded()
	repo := repository.NewBookingRepository(db)
	ctx := context.Background()

	existing, err := repo.ReadAll(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if len(existing) > 0 {
		log.Printf("booking store already has %d records, skipping demo seed", len(existing))
		return
	}

	demo := []struct {
		venueID   string
		date      string
		startTime string
		duration  int
		guests    int
	}{
		{"v2", "2026-09-12", "17:00", 4, 80},
		{"v4", "2026-09-20", "10:00", 6, 12},
		{"v5", "2026-10-03", "14:00", 8, 210},
	}

	for _, d := range demo {
		v, err := venues.GetByID(d.venueID)
		if err != nil {
			log.Fatal(err)
		}
		b := &domain.Booking{
			ID:         uuid.NewString(),
			VenueID:    v.ID,
			VenueName:  v.Name,
			Date:       d.date,
			StartTime:  d.startTime,
			EndTime:    endTime(d.startTime, d.duration),
			TotalPrice: v.PricePerHour * float64(d.duration),
			GuestCount: d.guests,
			Status:     domain.BookingConfirmed,
			CreatedAt:  time.Now().UTC(),
		}
		if err := repo.Append(ctx, b); err != nil {
			log.Fatal(err)
		}
		log.Printf("seeded booking venue=%s date=%s total=%.0f", v.Name, d.date, b.TotalPrice)
	}

	log.Println("Done.")
}

func endTime(start string, duration int) string {
	t, err := time.Parse("15:04", start)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%02d:00", t.Hour()+duration)
}
