package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"luminavenues/internal/domain"
)

// ErrDuplicateBooking is returned when a booking ID is appended twice.
var ErrDuplicateBooking = errors.New("booking already exists")

// BookingRepository is the durable booking store: append-only, read in
// insertion order. No update or delete is exposed.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	Seq        int64     `gorm:"column:seq;primaryKey;autoIncrement"`
	ID         string    `gorm:"column:id;uniqueIndex;size:64"`
	VenueID    string    `gorm:"column:venue_id;size:64"`
	VenueName  string    `gorm:"column:venue_name"`
	Date       string    `gorm:"column:date"`
	StartTime  string    `gorm:"column:start_time"`
	EndTime    string    `gorm:"column:end_time"`
	TotalPrice float64   `gorm:"column:total_price"`
	GuestCount int       `gorm:"column:guest_count"`
	Status     string    `gorm:"column:status"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) domain.Booking {
	return domain.Booking{
		ID:         m.ID,
		VenueID:    m.VenueID,
		VenueName:  m.VenueName,
		Date:       m.Date,
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
		TotalPrice: m.TotalPrice,
		GuestCount: m.GuestCount,
		Status:     domain.BookingStatus(m.Status),
		CreatedAt:  m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:         b.ID,
		VenueID:    b.VenueID,
		VenueName:  b.VenueName,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		TotalPrice: b.TotalPrice,
		GuestCount: b.GuestCount,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
	}
}

// Migrate creates the bookings table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&bookingModel{})
}

func (r *BookingRepository) Append(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(tx.Error, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateBooking
		}
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateBooking
		}
		return tx.Error
	}
	b.CreatedAt = m.CreatedAt
	return nil
}

func (r *BookingRepository) ReadAll(ctx context.Context) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).Order("seq ASC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainBooking(m))
	}
	return out, nil
}
